package entity

import "time"

// RoleKind es el catálogo cerrado de roles que la política de autorización entiende.
// Los valores coinciden con los nombres persistidos, de modo que la traducción
// registro<->variante en la frontera de almacenamiento es directa.
type RoleKind string

const (
	RoleKindAdmin     RoleKind = "Community Admin"
	RoleKindModerator RoleKind = "Community Moderator"
	RoleKindMember    RoleKind = "Community Member"
)

// SeededRoleKinds son los roles sembrados en el bootstrap, en orden de privilegio.
var SeededRoleKinds = []RoleKind{RoleKindAdmin, RoleKindModerator, RoleKindMember}

// ParseRoleKind traduce un nombre persistido a la variante del catálogo.
// ok=false para roles creados vía API que la política no reconoce: esos roles
// pueden asignarse a miembros pero no otorgan ningún privilegio.
func ParseRoleKind(name string) (RoleKind, bool) {
	switch RoleKind(name) {
	case RoleKindAdmin, RoleKindModerator, RoleKindMember:
		return RoleKind(name), true
	}
	return "", false
}

// CanAddMembers indica si el rol permite agregar miembros (solo Admin).
func (k RoleKind) CanAddMembers() bool {
	return k == RoleKindAdmin
}

// CanRemoveMembers indica si el rol permite expulsar miembros (Admin o Moderator).
func (k RoleKind) CanRemoveMembers() bool {
	return k == RoleKindAdmin || k == RoleKindModerator
}

// Role es un registro del catálogo de roles. El nombre es único global.
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind devuelve la variante del catálogo para este registro, si corresponde.
func (r *Role) Kind() (RoleKind, bool) {
	return ParseRoleKind(r.Name)
}
