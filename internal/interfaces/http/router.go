package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/community-api/internal/application/auth"
	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CommunityUC *usecase.CommunityUseCase
	MemberUC    *usecase.MemberUseCase
	RoleUC      *usecase.RoleUseCase
	JWTSecret   string
}

// Router registra las rutas de la API bajo el prefijo versionado /v1.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/v1")
	protect := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)
	authGroup.Get("/me", protect, authHandler.Me)

	// Communities
	communities := v1.Group("/community")
	communityHandler := NewCommunityHandler(deps.CommunityUC)
	communities.Post("/", protect, communityHandler.Create)
	communities.Get("/", communityHandler.List)
	// /me/* antes de /:id/* para que no lo capture el parámetro
	communities.Get("/me/owner", protect, communityHandler.Owned)
	communities.Get("/me/member", protect, communityHandler.Joined)
	communities.Get("/:id/members", protect, communityHandler.Members)

	// Members
	members := v1.Group("/member")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Post("/", protect, memberHandler.Add)
	members.Delete("/:id", protect, memberHandler.Remove)

	// Roles
	roles := v1.Group("/role")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", protect, roleHandler.Create)
	roles.Get("/", roleHandler.List)

	// 404 en formato envelope para rutas no definidas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Route " + c.OriginalURL() + " not found"))
	})
}

// internalError responde un 500 genérico con el mensaje del error.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
}
