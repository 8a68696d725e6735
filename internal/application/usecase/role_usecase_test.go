package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/infrastructure/memory"
)

// Sembrar dos veces deja exactamente los tres roles del catálogo.
func TestSeedDefaults_Idempotente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewRoleUseCase(store.Roles())

	require.NoError(t, uc.SeedDefaults())
	require.NoError(t, uc.SeedDefaults())

	roles, err := uc.List()
	require.NoError(t, err)
	require.Len(t, roles, 3)

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{
		string(entity.RoleKindAdmin),
		string(entity.RoleKindModerator),
		string(entity.RoleKindMember),
	}, names)
}

// Con catálogo no vacío la siembra no agrega nada, aunque falten roles:
// la condición es "catálogo vacío", no "faltan roles".
func TestSeedDefaults_NoCompletaCatalogosParciales(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewRoleUseCase(store.Roles())

	_, err := uc.Create(dto.CreateRoleRequest{Name: "Custom Role"})
	require.NoError(t, err)
	require.NoError(t, uc.SeedDefaults())

	roles, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestRoleCreate_NombreDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewRoleUseCase(store.Roles())

	_, err := uc.Create(dto.CreateRoleRequest{Name: "Community Helper"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateRoleRequest{Name: "Community Helper"})
	assert.ErrorIs(t, err, domain.ErrRoleAlreadyExists)
}

// Un rol creado vía API fuera del catálogo cerrado no otorga privilegios.
func TestParseRoleKind_RolesFueraDelCatalogo(t *testing.T) {
	_, ok := entity.ParseRoleKind("Community Helper")
	assert.False(t, ok)

	kind, ok := entity.ParseRoleKind("Community Admin")
	require.True(t, ok)
	assert.True(t, kind.CanAddMembers())
	assert.True(t, kind.CanRemoveMembers())

	kind, ok = entity.ParseRoleKind("Community Moderator")
	require.True(t, ok)
	assert.False(t, kind.CanAddMembers())
	assert.True(t, kind.CanRemoveMembers())

	kind, ok = entity.ParseRoleKind("Community Member")
	require.True(t, ok)
	assert.False(t, kind.CanAddMembers())
	assert.False(t, kind.CanRemoveMembers())
}
