package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/infrastructure/memory"
	"github.com/jhoicas/community-api/pkg/id"
)

// fixture arma el motor completo sobre el store en memoria, con el catálogo
// de roles sembrado.
type fixture struct {
	store       *memory.Store
	roleUC      *usecase.RoleUseCase
	communityUC *usecase.CommunityUseCase
	memberUC    *usecase.MemberUseCase

	adminRole     *entity.Role
	moderatorRole *entity.Role
	memberRole    *entity.Role
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	roleUC := usecase.NewRoleUseCase(store.Roles())
	require.NoError(t, roleUC.SeedDefaults())

	f := &fixture{
		store:       store,
		roleUC:      roleUC,
		communityUC: usecase.NewCommunityUseCase(store.Communities(), store.Members(), store.Roles(), store),
		memberUC:    usecase.NewMemberUseCase(store.Communities(), store.Members(), store.Roles()),
	}
	f.adminRole = f.roleByName(t, string(entity.RoleKindAdmin))
	f.moderatorRole = f.roleByName(t, string(entity.RoleKindModerator))
	f.memberRole = f.roleByName(t, string(entity.RoleKindMember))
	return f
}

func (f *fixture) roleByName(t *testing.T, name string) *entity.Role {
	t.Helper()
	role, err := f.store.Roles().GetByName(name)
	require.NoError(t, err)
	require.NotNil(t, role, "el rol %q debe estar sembrado", name)
	return role
}

// newUser inserta un usuario directo al store y devuelve su id.
func (f *fixture) newUser(t *testing.T, name string) string {
	t.Helper()
	user := &entity.User{
		ID:           id.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "$2a$10$hash-irrelevante-para-estos-tests",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, f.store.Users().Create(user))
	return user.ID
}

// newCommunity crea una comunidad vía el caso de uso (inscribe al owner como Admin).
func (f *fixture) newCommunity(t *testing.T, ownerID, name string) *dto.CommunityResponse {
	t.Helper()
	out, err := f.communityUC.Create(context.Background(), ownerID, dto.CreateCommunityRequest{Name: name})
	require.NoError(t, err)
	return out
}

// addMember agrega un miembro vía el caso de uso, fallando el test si no se puede.
func (f *fixture) addMember(t *testing.T, callerID, communityID, userID, roleID string) *dto.MemberResponse {
	t.Helper()
	out, err := f.memberUC.Add(callerID, dto.AddMemberRequest{
		Community: communityID,
		User:      userID,
		Role:      roleID,
	})
	require.NoError(t, err)
	return out
}
