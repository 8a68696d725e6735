package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain"
)

// MemberHandler maneja las peticiones HTTP para membresías.
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler inyectando el caso de uso.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar miembro a una comunidad (solo Community Admin)
// @Tags         member
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddMemberRequest  true  "community, user, role"
// @Success      201   {object}  dto.Response
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /v1/member [post]
func (h *MemberHandler) Add(c *fiber.Ctx) error {
	var in dto.AddMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.Community == "" || in.User == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Community, user and role are required"))
	}
	out, err := h.uc.Add(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrCommunityNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Community not found"))
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("NOT_ALLOWED_ACCESS"))
		case domain.ErrRoleNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Role not found"))
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		case domain.ErrAlreadyMember:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("User is already a member of this community"))
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Remove godoc
// @Summary      Expulsar miembro (Community Admin o Community Moderator)
// @Tags         member
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la membresía"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/member/{id} [delete]
func (h *MemberHandler) Remove(c *fiber.Ctx) error {
	err := h.uc.Remove(GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrMemberNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Member not found"))
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("NOT_ALLOWED_ACCESS"))
		}
		return internalError(c, err)
	}
	return c.JSON(dto.Response{Status: true})
}
