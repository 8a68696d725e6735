package usecase

import (
	"time"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/domain/repository"
	"github.com/jhoicas/community-api/pkg/id"
)

// RoleUseCase casos de uso del catálogo de roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso con el puerto de persistencia.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol nuevo. Devuelve domain.ErrRoleAlreadyExists si el nombre
// ya existe (constraint único en roles.name).
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	now := time.Now().UTC()
	role := &entity.Role{
		ID:        id.New(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List lista el catálogo completo, más recientes primero.
func (uc *RoleUseCase) List() ([]dto.RoleResponse, error) {
	roles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, *toRoleResponse(r))
	}
	return items, nil
}

// SeedDefaults siembra los roles por defecto si el catálogo está vacío.
// Idempotente: correr dos veces deja exactamente los tres roles. Ante arranques
// concurrentes el constraint único de roles.name resuelve la carrera; un
// duplicado aquí no es error.
func (uc *RoleUseCase) SeedDefaults() error {
	count, err := uc.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, kind := range entity.SeededRoleKinds {
		role := &entity.Role{
			ID:        id.New(),
			Name:      string(kind),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(role); err != nil && err != domain.ErrRoleAlreadyExists {
			return err
		}
	}
	return nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
