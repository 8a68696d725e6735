package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain"
)

// RoleHandler maneja las peticiones HTTP para el catálogo de roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler inyectando el caso de uso.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol
// @Tags         role
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRoleRequest  true  "name"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /v1/role [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if len(in.Name) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Name should be at least 2 characters"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrRoleAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("Role already exists"))
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar roles
// @Tags         role
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /v1/role [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}
