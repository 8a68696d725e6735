package entity

import "time"

// Community es un espacio con exactamente un owner. El slug se deriva del nombre,
// es único global y no cambia tras la creación; el owner tampoco.
type Community struct {
	ID        string
	Name      string
	Slug      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommunityWithOwner proyección de comunidad con el nombre del owner resuelto.
type CommunityWithOwner struct {
	Community
	OwnerName string
}
