package repository

import "github.com/jhoicas/community-api/internal/domain/entity"

// MemberRepository define el puerto de persistencia para Member.
// Create debe devolver domain.ErrAlreadyMember si ya existe membresía para el
// par (community, user): dos Add concurrentes sobre el mismo par no pueden
// tener éxito ambos, y eso lo decide el constraint compuesto del store.
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByID(id string) (*entity.Member, error)
	GetByCommunityAndUser(communityID, userID string) (*entity.Member, error)
	ListByCommunity(communityID string) ([]*entity.MemberDetail, error)
	ListByUser(userID string) ([]*entity.JoinedCommunity, error)
	Delete(id string) error
}
