package dto

import "time"

// CreateCommunityRequest entrada para crear una comunidad. El slug se deriva del nombre.
type CreateCommunityRequest struct {
	Name string `json:"name" validate:"required,min=2,max=128"`
}

// CommunityResponse salida de una comunidad con el owner como id plano.
type CommunityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerRef referencia expandida al owner en listados públicos.
type OwnerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommunityWithOwnerResponse salida de una comunidad con el owner expandido.
type CommunityWithOwnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     OwnerRef  `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
