package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/community-api/internal/application/auth"
	"github.com/jhoicas/community-api/internal/application/usecase"
	"github.com/jhoicas/community-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/community-api/internal/interfaces/http"
)

// newTestAPI levanta la API completa sobre el store en memoria, con el
// catálogo de roles ya sembrado.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()

	roleUC := usecase.NewRoleUseCase(store.Roles())
	require.NoError(t, roleUC.SeedDefaults())

	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	communityUC := usecase.NewCommunityUseCase(store.Communities(), store.Members(), store.Roles(), store)
	memberUC := usecase.NewMemberUseCase(store.Communities(), store.Members(), store.Roles())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CommunityUC: communityUC,
		MemberUC:    memberUC,
		RoleUC:      roleUC,
		JWTSecret:   testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve status + body decodificado.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// signup registra un usuario y devuelve (id, access_token).
func signup(t *testing.T, app *fiber.App, name, email string) (string, string) {
	t.Helper()
	code, body := doJSON(t, app, http.MethodPost, "/v1/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, code)

	content := body["content"].(map[string]interface{})
	data := content["data"].(map[string]interface{})
	meta := content["meta"].(map[string]interface{})
	return data["id"].(string), meta["access_token"].(string)
}

// contenido extrae content.data del envelope.
func contenido(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	content, ok := body["content"].(map[string]interface{})
	require.True(t, ok, "envelope sin content: %v", body)
	data, ok := content["data"].(map[string]interface{})
	require.True(t, ok, "content sin data objeto: %v", body)
	return data
}

// listado extrae content.data (lista) y content.meta del envelope.
func listado(t *testing.T, body map[string]interface{}) ([]interface{}, map[string]interface{}) {
	t.Helper()
	content := body["content"].(map[string]interface{})
	data, ok := content["data"].([]interface{})
	require.True(t, ok, "content.data no es lista: %v", body)
	meta, _ := content["meta"].(map[string]interface{})
	return data, meta
}

// Flujo completo: signup, crear comunidad, owner queda como Community Admin,
// el admin agrega un miembro, y un Community Member no puede agregar a otro.
func TestAPI_FlujoCompleto(t *testing.T) {
	app := newTestAPI(t)

	idA, tokenA := signup(t, app, "Alice", "alice@example.com")
	idB, tokenB := signup(t, app, "Bob", "bob@example.com")
	idC, _ := signup(t, app, "Carol", "carol@example.com")

	// Alice crea la comunidad
	code, body := doJSON(t, app, http.MethodPost, "/v1/community", tokenA, map[string]string{
		"name": "Test Org",
	})
	require.Equal(t, http.StatusCreated, code)
	community := contenido(t, body)
	communityID := community["id"].(string)
	assert.Equal(t, "test-org", community["slug"])
	assert.Equal(t, idA, community["owner"])

	// Alice es Community Admin de su comunidad recién creada
	code, body = doJSON(t, app, http.MethodGet, "/v1/community/"+communityID+"/members", tokenA, nil)
	require.Equal(t, http.StatusOK, code)
	members, meta := listado(t, body)
	require.Len(t, members, 1)
	assert.Equal(t, float64(1), meta["total"])
	first := members[0].(map[string]interface{})
	assert.Equal(t, "Community Admin", first["role"].(map[string]interface{})["name"])
	assert.Equal(t, idA, first["user"].(map[string]interface{})["id"])

	// id del rol Community Member desde el catálogo
	code, body = doJSON(t, app, http.MethodGet, "/v1/role", "", nil)
	require.Equal(t, http.StatusOK, code)
	roles, _ := listado(t, body)
	var memberRoleID string
	for _, r := range roles {
		role := r.(map[string]interface{})
		if role["name"] == "Community Member" {
			memberRoleID = role["id"].(string)
		}
	}
	require.NotEmpty(t, memberRoleID)

	// Alice (admin) agrega a Bob como Community Member
	code, body = doJSON(t, app, http.MethodPost, "/v1/member", tokenA, map[string]string{
		"community": communityID,
		"user":      idB,
		"role":      memberRoleID,
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	assert.Equal(t, idB, contenido(t, body)["user"])

	// Bob aparece en el listado de miembros
	code, body = doJSON(t, app, http.MethodGet, "/v1/community/"+communityID+"/members", tokenA, nil)
	require.Equal(t, http.StatusOK, code)
	members, _ = listado(t, body)
	assert.Len(t, members, 2)

	// Bob (Community Member) no puede agregar a Carol
	code, body = doJSON(t, app, http.MethodPost, "/v1/member", tokenB, map[string]string{
		"community": communityID,
		"user":      idC,
		"role":      memberRoleID,
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "NOT_ALLOWED_ACCESS", body["error"].(map[string]interface{})["message"])
}

// Duplicar el slug de una comunidad devuelve conflicto.
func TestAPI_SlugDuplicado(t *testing.T) {
	app := newTestAPI(t)
	_, token := signup(t, app, "Alice", "alice@example.com")

	code, _ := doJSON(t, app, http.MethodPost, "/v1/community", token, map[string]string{"name": "My  Cool Community!"})
	require.Equal(t, http.StatusCreated, code)

	// Mismo slug derivado aunque el nombre difiera en puntuación
	code, body := doJSON(t, app, http.MethodPost, "/v1/community", token, map[string]string{"name": "my cool community"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["status"])
}

// signin devuelve el token en content.meta y el mismo mensaje genérico para
// email inexistente y password incorrecto.
func TestAPI_Signin(t *testing.T) {
	app := newTestAPI(t)
	signup(t, app, "Alice", "alice@example.com")

	code, body := doJSON(t, app, http.MethodPost, "/v1/auth/signin", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, code)
	content := body["content"].(map[string]interface{})
	assert.NotEmpty(t, content["meta"].(map[string]interface{})["access_token"])

	codeBadPass, bodyBadPass := doJSON(t, app, http.MethodPost, "/v1/auth/signin", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	codeBadEmail, bodyBadEmail := doJSON(t, app, http.MethodPost, "/v1/auth/signin", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, codeBadPass)
	assert.Equal(t, http.StatusUnauthorized, codeBadEmail)
	assert.Equal(t,
		bodyBadPass["error"].(map[string]interface{})["message"],
		bodyBadEmail["error"].(map[string]interface{})["message"])
}

// /v1/auth/me devuelve el perfil del dueño del token.
func TestAPI_Me(t *testing.T) {
	app := newTestAPI(t)
	id, token := signup(t, app, "Alice", "alice@example.com")

	code, body := doJSON(t, app, http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	data := contenido(t, body)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "alice@example.com", data["email"])
}

// Email repetido en signup -> conflicto.
func TestAPI_SignupEmailDuplicado(t *testing.T) {
	app := newTestAPI(t)
	signup(t, app, "Alice", "alice@example.com")

	code, body := doJSON(t, app, http.MethodPost, "/v1/auth/signup", "", map[string]string{
		"name":     "Alicia",
		"email":    "alice@example.com",
		"password": "otrosecret",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["status"])
}

// Un moderador puede remover miembros; un member no.
func TestAPI_RemoverMiembro(t *testing.T) {
	app := newTestAPI(t)
	_, tokenA := signup(t, app, "Alice", "alice@example.com")
	idB, tokenB := signup(t, app, "Bob", "bob@example.com")
	idC, _ := signup(t, app, "Carol", "carol@example.com")

	code, body := doJSON(t, app, http.MethodPost, "/v1/community", tokenA, map[string]string{"name": "Org"})
	require.Equal(t, http.StatusCreated, code)
	communityID := contenido(t, body)["id"].(string)

	var moderatorRoleID, memberRoleID string
	_, body = doJSON(t, app, http.MethodGet, "/v1/role", "", nil)
	roles, _ := listado(t, body)
	for _, r := range roles {
		role := r.(map[string]interface{})
		switch role["name"] {
		case "Community Moderator":
			moderatorRoleID = role["id"].(string)
		case "Community Member":
			memberRoleID = role["id"].(string)
		}
	}
	require.NotEmpty(t, moderatorRoleID)
	require.NotEmpty(t, memberRoleID)

	// Bob entra como moderador, Carol como member
	code, _ = doJSON(t, app, http.MethodPost, "/v1/member", tokenA, map[string]string{
		"community": communityID, "user": idB, "role": moderatorRoleID,
	})
	require.Equal(t, http.StatusCreated, code)
	code, body = doJSON(t, app, http.MethodPost, "/v1/member", tokenA, map[string]string{
		"community": communityID, "user": idC, "role": memberRoleID,
	})
	require.Equal(t, http.StatusCreated, code)
	carolMemberID := contenido(t, body)["id"].(string)

	// Bob (moderador) remueve a Carol
	code, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/v1/member/%s", carolMemberID), tokenB, nil)
	assert.Equal(t, http.StatusOK, code, "body: %v", body)
	assert.Equal(t, true, body["status"])

	// Remover dos veces -> 404
	code, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/v1/member/%s", carolMemberID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

// Rutas sin registrar responden 404 con envelope de error.
func TestAPI_RutaInexistente(t *testing.T) {
	app := newTestAPI(t)
	code, body := doJSON(t, app, http.MethodGet, "/v1/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["status"])
	assert.Contains(t, body["error"].(map[string]interface{})["message"], "/v1/no-existe")
}

// /v1/community/me/owner y /me/member devuelven las proyecciones del caller.
func TestAPI_MisComunidades(t *testing.T) {
	app := newTestAPI(t)
	_, tokenA := signup(t, app, "Alice", "alice@example.com")
	idB, tokenB := signup(t, app, "Bob", "bob@example.com")

	code, body := doJSON(t, app, http.MethodPost, "/v1/community", tokenA, map[string]string{"name": "Org Uno"})
	require.Equal(t, http.StatusCreated, code)
	communityID := contenido(t, body)["id"].(string)

	var memberRoleID string
	_, body = doJSON(t, app, http.MethodGet, "/v1/role", "", nil)
	roles, _ := listado(t, body)
	for _, r := range roles {
		role := r.(map[string]interface{})
		if role["name"] == "Community Member" {
			memberRoleID = role["id"].(string)
		}
	}
	code, _ = doJSON(t, app, http.MethodPost, "/v1/member", tokenA, map[string]string{
		"community": communityID, "user": idB, "role": memberRoleID,
	})
	require.Equal(t, http.StatusCreated, code)

	// Alice es owner; Bob no
	_, body = doJSON(t, app, http.MethodGet, "/v1/community/me/owner", tokenA, nil)
	owned, _ := listado(t, body)
	assert.Len(t, owned, 1)
	_, body = doJSON(t, app, http.MethodGet, "/v1/community/me/owner", tokenB, nil)
	owned, _ = listado(t, body)
	assert.Empty(t, owned)

	// Ambos son miembros de alguna comunidad
	_, body = doJSON(t, app, http.MethodGet, "/v1/community/me/member", tokenB, nil)
	joined, _ := listado(t, body)
	require.Len(t, joined, 1)
	entry := joined[0].(map[string]interface{})
	assert.Equal(t, "Org Uno", entry["community"].(map[string]interface{})["name"])
}
