package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain"
)

// CommunityHandler maneja las peticiones HTTP para el recurso Community.
type CommunityHandler struct {
	uc *usecase.CommunityUseCase
}

// NewCommunityHandler construye el handler inyectando el caso de uso.
func NewCommunityHandler(uc *usecase.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comunidad (el caller queda como owner y Community Admin)
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCommunityRequest  true  "name"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /v1/community [post]
func (h *CommunityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommunityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if len(in.Name) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Name should be at least 2 characters"))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrSlugAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("Community with this name already exists"))
		case domain.ErrRoleCatalogIncomplete:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Community Admin role not found"))
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar todas las comunidades
// @Tags         community
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /v1/community [get]
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}

// Members godoc
// @Summary      Listar miembros de una comunidad
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la comunidad"
// @Success      200  {object}  dto.Response
// @Router       /v1/community/{id}/members [get]
func (h *CommunityHandler) Members(c *fiber.Ctx) error {
	items, err := h.uc.Members(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}

// Owned godoc
// @Summary      Listar comunidades del caller como owner
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /v1/community/me/owner [get]
func (h *CommunityHandler) Owned(c *fiber.Ctx) error {
	items, err := h.uc.ListOwned(GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}

// Joined godoc
// @Summary      Listar comunidades a las que pertenece el caller
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Router       /v1/community/me/member [get]
func (h *CommunityHandler) Joined(c *fiber.Ctx) error {
	items, err := h.uc.ListJoined(GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.OKList(items, len(items)))
}
