package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/community-api/internal/application/dto"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/domain"
	"github.com/jhoicas/community-api/internal/domain/entity"
	"github.com/jhoicas/community-api/internal/infrastructure/memory"
)

// Crear una comunidad deja al owner inscripto como Community Admin:
// exactamente una membresía, nunca cero ni más de una.
func TestCommunityCreate_OwnerQuedaComoAdmin(t *testing.T) {
	f := newFixture(t)
	owner := f.newUser(t, "ana")

	out := f.newCommunity(t, owner, "Test Org")
	assert.Equal(t, "test-org", out.Slug)
	assert.Equal(t, owner, out.Owner)

	members, err := f.communityUC.Members(out.ID)
	require.NoError(t, err)
	require.Len(t, members, 1, "exactamente una membresía para el owner")
	assert.Equal(t, owner, members[0].User.ID)
	assert.Equal(t, string(entity.RoleKindAdmin), members[0].Role.Name)
}

// Dos nombres que colapsan al mismo slug: el segundo falla con conflicto.
func TestCommunityCreate_SlugDuplicado(t *testing.T) {
	f := newFixture(t)
	owner := f.newUser(t, "ana")
	other := f.newUser(t, "bruno")

	f.newCommunity(t, owner, "Test Org")
	_, err := f.communityUC.Create(context.Background(), other, dto.CreateCommunityRequest{Name: "test   org!"})
	assert.ErrorIs(t, err, domain.ErrSlugAlreadyExists)

	// El pre-check del slug corta antes de cualquier escritura: el intento
	// fallido no deja membresías ni comunidades a medio crear.
	joined, err := f.communityUC.ListJoined(other)
	require.NoError(t, err)
	assert.Empty(t, joined)
	owned, err := f.communityUC.ListOwned(other)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

// Sin el rol Community Admin sembrado, crear comunidad es un error de
// configuración, no un 4xx.
func TestCommunityCreate_CatalogoIncompleto(t *testing.T) {
	store := memory.NewStore() // sin sembrar
	uc := usecase.NewCommunityUseCase(store.Communities(), store.Members(), store.Roles(), store)

	_, err := uc.Create(context.Background(), "owner-id", dto.CreateCommunityRequest{Name: "Gophers"})
	assert.ErrorIs(t, err, domain.ErrRoleCatalogIncomplete)
}

func TestCommunityList_ExpandeOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.newUser(t, "ana")
	f.newCommunity(t, owner, "Gophers")

	list, err := f.communityUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ana", list[0].Owner.Name)
	assert.Equal(t, owner, list[0].Owner.ID)
}

func TestCommunityListOwned(t *testing.T) {
	f := newFixture(t)
	ana := f.newUser(t, "ana")
	bruno := f.newUser(t, "bruno")
	f.newCommunity(t, ana, "Gophers")
	f.newCommunity(t, ana, "Rustaceans")
	f.newCommunity(t, bruno, "Pythonistas")

	owned, err := f.communityUC.ListOwned(ana)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	for _, c := range owned {
		assert.Equal(t, ana, c.Owner)
	}
}

func TestCommunityListJoined(t *testing.T) {
	f := newFixture(t)
	ana := f.newUser(t, "ana")
	bruno := f.newUser(t, "bruno")
	gophers := f.newCommunity(t, ana, "Gophers")
	f.addMember(t, ana, gophers.ID, bruno, f.memberRole.ID)

	joined, err := f.communityUC.ListJoined(bruno)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, gophers.ID, joined[0].Community.ID)
	assert.Equal(t, "gophers", joined[0].Community.Slug)
	assert.Equal(t, f.memberRole.ID, joined[0].Role)
}

// Una comunidad inexistente lista vacío, no 404 (comportamiento heredado).
func TestCommunityMembers_ComunidadInexistente(t *testing.T) {
	f := newFixture(t)
	members, err := f.communityUC.Members("no-existe")
	require.NoError(t, err)
	assert.Empty(t, members)
}
