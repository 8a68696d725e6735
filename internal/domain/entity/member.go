package entity

import "time"

// Member es la relación usuario-comunidad con exactamente un rol.
// Invariante: a lo sumo un Member por par (community, user); lo respalda el
// constraint único compuesto en la tabla, no solo las verificaciones previas.
// No existe cambio de rol en caliente: se expulsa y se vuelve a agregar.
type Member struct {
	ID          string
	CommunityID string
	UserID      string
	RoleID      string
	CreatedAt   time.Time
}

// MemberDetail proyección de un miembro con usuario y rol resueltos
// (listado de miembros de una comunidad).
type MemberDetail struct {
	ID          string
	CommunityID string
	UserID      string
	UserName    string
	RoleID      string
	RoleName    string
	CreatedAt   time.Time
}

// JoinedCommunity proyección de una membresía con la comunidad resuelta
// (listado de comunidades a las que pertenece un usuario).
type JoinedCommunity struct {
	MemberID  string
	Community Community
	RoleID    string
	CreatedAt time.Time
}
