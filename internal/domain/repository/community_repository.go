package repository

import "github.com/jhoicas/community-api/internal/domain/entity"

// CommunityRepository define el puerto de persistencia para Community.
// Create debe devolver domain.ErrSlugAlreadyExists ante slug duplicado:
// la unicidad la garantiza el store (insert-or-conflict), no el caller.
type CommunityRepository interface {
	Create(community *entity.Community) error
	GetByID(id string) (*entity.Community, error)
	GetBySlug(slug string) (*entity.Community, error)
	ListWithOwner() ([]*entity.CommunityWithOwner, error)
	ListByOwner(ownerID string) ([]*entity.Community, error)
}
