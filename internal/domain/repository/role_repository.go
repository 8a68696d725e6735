package repository

import "github.com/jhoicas/community-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para el catálogo de roles.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Count() (int, error)
}
