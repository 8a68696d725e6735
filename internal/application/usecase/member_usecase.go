package usecase

import (
	"time"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/domain/repository"
	"github.com/jhoicas/community-api/pkg/id"
)

// MemberUseCase es el motor de membresías: decide si el caller puede mutar la
// relación usuario-comunidad y mantiene el invariante de un rol por par
// (community, user).
type MemberUseCase struct {
	communityRepo repository.CommunityRepository
	memberRepo    repository.MemberRepository
	roleRepo      repository.RoleRepository
}

// NewMemberUseCase construye el caso de uso con los puertos de persistencia.
func NewMemberUseCase(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
	roleRepo repository.RoleRepository,
) *MemberUseCase {
	return &MemberUseCase{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		roleRepo:      roleRepo,
	}
}

// callerKind resuelve el rol del caller dentro de una comunidad.
// ok=false si no es miembro o si su rol no pertenece al catálogo cerrado.
func (uc *MemberUseCase) callerKind(communityID, callerID string) (entity.RoleKind, bool, error) {
	member, err := uc.memberRepo.GetByCommunityAndUser(communityID, callerID)
	if err != nil {
		return "", false, err
	}
	if member == nil {
		return "", false, nil
	}
	role, err := uc.roleRepo.GetByID(member.RoleID)
	if err != nil {
		return "", false, err
	}
	if role == nil {
		return "", false, nil
	}
	kind, ok := role.Kind()
	return kind, ok, nil
}

// Add agrega un usuario a una comunidad con el rol indicado. Solo un
// Community Admin de esa comunidad puede hacerlo; Moderator no alcanza.
// Errores: domain.ErrCommunityNotFound, domain.ErrForbidden,
// domain.ErrRoleNotFound, domain.ErrAlreadyMember. El pre-check de membresía
// existente es solo cortesía: ante dos Add concurrentes para el mismo par
// decide el constraint único compuesto del store.
func (uc *MemberUseCase) Add(callerID string, in dto.AddMemberRequest) (*dto.MemberResponse, error) {
	community, err := uc.communityRepo.GetByID(in.Community)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, domain.ErrCommunityNotFound
	}

	kind, ok, err := uc.callerKind(community.ID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok || !kind.CanAddMembers() {
		return nil, domain.ErrForbidden
	}

	role, err := uc.roleRepo.GetByID(in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}

	existing, err := uc.memberRepo.GetByCommunityAndUser(community.ID, in.User)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyMember
	}

	member := &entity.Member{
		ID:          id.New(),
		CommunityID: community.ID,
		UserID:      in.User,
		RoleID:      role.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.memberRepo.Create(member); err != nil {
		return nil, err
	}
	return &dto.MemberResponse{
		ID:        member.ID,
		Community: member.CommunityID,
		User:      member.UserID,
		Role:      member.RoleID,
		CreatedAt: member.CreatedAt,
	}, nil
}

// Remove elimina una membresía por id. Requiere que el caller sea
// Community Admin o Community Moderator de la comunidad del miembro.
// Sin piso de admins: un Admin puede expulsarse a sí mismo o al último Admin,
// dejando la comunidad sin miembros privilegiados (comportamiento heredado,
// documentado como gap conocido).
// Errores: domain.ErrMemberNotFound, domain.ErrForbidden.
func (uc *MemberUseCase) Remove(callerID, memberID string) error {
	member, err := uc.memberRepo.GetByID(memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrMemberNotFound
	}

	kind, ok, err := uc.callerKind(member.CommunityID, callerID)
	if err != nil {
		return err
	}
	if !ok || !kind.CanRemoveMembers() {
		return domain.ErrForbidden
	}

	return uc.memberRepo.Delete(member.ID)
}
