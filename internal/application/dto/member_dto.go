package dto

import "time"

// AddMemberRequest entrada para agregar un miembro a una comunidad.
// Los campos llevan los ids de los registros referenciados.
type AddMemberRequest struct {
	Community string `json:"community" validate:"required"`
	User      string `json:"user" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

// MemberResponse salida de una membresía recién creada (referencias planas).
type MemberResponse struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      string    `json:"user"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRef / RoleRef referencias expandidas en el listado de miembros.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MemberDetailResponse salida de un miembro con usuario y rol expandidos.
type MemberDetailResponse struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      UserRef   `json:"user"`
	Role      RoleRef   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// JoinedCommunityResponse salida de una membresía con la comunidad expandida.
type JoinedCommunityResponse struct {
	ID        string            `json:"id"`
	Community CommunityResponse `json:"community"`
	Role      string            `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
}
