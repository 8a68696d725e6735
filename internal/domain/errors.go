package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrCommunityNotFound = errors.New("comunidad no encontrada")
	ErrRoleNotFound      = errors.New("rol no encontrado")
	ErrMemberNotFound    = errors.New("miembro no encontrado")

	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrRoleAlreadyExists  = errors.New("el rol ya existe")
	ErrSlugAlreadyExists  = errors.New("ya existe una comunidad con ese slug")
	ErrAlreadyMember      = errors.New("el usuario ya es miembro de la comunidad")

	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrRoleCatalogIncomplete indica que falta un rol sembrado del catálogo.
	// Tras el bootstrap no debería ocurrir nunca; se reporta como 500.
	ErrRoleCatalogIncomplete = errors.New("catálogo de roles incompleto")
)
