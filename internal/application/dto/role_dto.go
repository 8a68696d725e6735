package dto

import "time"

// CreateRoleRequest entrada para crear un rol. El nombre es único global.
type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=64"`
}

// RoleResponse salida de un rol del catálogo.
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
