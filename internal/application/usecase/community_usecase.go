package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/domain/repository"
	"github.com/jhoicas/community-api/pkg/id"
	"github.com/jhoicas/community-api/pkg/slug"
)

// CommunityUseCase casos de uso de comunidades: creación (con inscripción del
// owner) y proyecciones de lectura.
type CommunityUseCase struct {
	communityRepo repository.CommunityRepository
	memberRepo    repository.MemberRepository
	roleRepo      repository.RoleRepository
	tx            TxRunner
}

// NewCommunityUseCase construye el caso de uso con los puertos de persistencia.
func NewCommunityUseCase(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
	roleRepo repository.RoleRepository,
	tx TxRunner,
) *CommunityUseCase {
	return &CommunityUseCase{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		roleRepo:      roleRepo,
		tx:            tx,
	}
}

// Create crea una comunidad con ownerID como owner y lo inscribe como
// Community Admin. Ambos inserts corren en una misma transacción.
// Errores: domain.ErrSlugAlreadyExists si el slug derivado ya existe;
// domain.ErrRoleCatalogIncomplete si el rol Community Admin no está sembrado.
// El pre-check del slug es solo cortesía: ante dos Create concurrentes con el
// mismo slug decide el constraint único del store.
func (uc *CommunityUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	adminRole, err := uc.roleRepo.GetByName(string(entity.RoleKindAdmin))
	if err != nil {
		return nil, err
	}
	if adminRole == nil {
		return nil, domain.ErrRoleCatalogIncomplete
	}

	newSlug := slug.Make(in.Name)
	existing, err := uc.communityRepo.GetBySlug(newSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugAlreadyExists
	}

	now := time.Now().UTC()
	community := &entity.Community{
		ID:        id.New(),
		Name:      in.Name,
		Slug:      newSlug,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &entity.Member{
		ID:          id.New(),
		CommunityID: community.ID,
		UserID:      ownerID,
		RoleID:      adminRole.ID,
		CreatedAt:   now,
	}

	err = uc.tx.Run(ctx, func(communityRepo repository.CommunityRepository, memberRepo repository.MemberRepository) error {
		if err := communityRepo.Create(community); err != nil {
			return err
		}
		return memberRepo.Create(owner)
	})
	if err != nil {
		return nil, err
	}
	return toCommunityResponse(community), nil
}

// List lista todas las comunidades con el owner expandido, más recientes primero.
func (uc *CommunityUseCase) List() ([]dto.CommunityWithOwnerResponse, error) {
	list, err := uc.communityRepo.ListWithOwner()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommunityWithOwnerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CommunityWithOwnerResponse{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			Owner:     dto.OwnerRef{ID: c.OwnerID, Name: c.OwnerName},
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return items, nil
}

// ListOwned lista las comunidades cuyo owner es el usuario dado.
func (uc *CommunityUseCase) ListOwned(ownerID string) ([]dto.CommunityResponse, error) {
	list, err := uc.communityRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommunityResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCommunityResponse(c))
	}
	return items, nil
}

// ListJoined lista las comunidades a las que pertenece el usuario dado,
// con la comunidad expandida y el rol como id plano.
func (uc *CommunityUseCase) ListJoined(userID string) ([]dto.JoinedCommunityResponse, error) {
	list, err := uc.memberRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JoinedCommunityResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.JoinedCommunityResponse{
			ID:        m.MemberID,
			Community: *toCommunityResponse(&m.Community),
			Role:      m.RoleID,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

// Members lista los miembros de una comunidad con usuario y rol expandidos.
// Una comunidad inexistente produce una lista vacía, no 404.
func (uc *CommunityUseCase) Members(communityID string) ([]dto.MemberDetailResponse, error) {
	list, err := uc.memberRepo.ListByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MemberDetailResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MemberDetailResponse{
			ID:        m.ID,
			Community: m.CommunityID,
			User:      dto.UserRef{ID: m.UserID, Name: m.UserName},
			Role:      dto.RoleRef{ID: m.RoleID, Name: m.RoleName},
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

func toCommunityResponse(c *entity.Community) *dto.CommunityResponse {
	if c == nil {
		return nil
	}
	return &dto.CommunityResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Owner:     c.OwnerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
