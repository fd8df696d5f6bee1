package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.Conflict("Email already registered")
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("User not found")
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	out := []domain.User{}
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Save(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperror.NotFound("User not found")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if _, ok := r.users[id]; !ok {
		return apperror.NotFound("User not found")
	}
	delete(r.users, id)
	return nil
}

func setupRouter(repo domain.UserRepository) *mux.Router {
	router := mux.NewRouter()
	NewUserHandler(repo).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *mux.Router, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserEndpoint(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h","first_name":"Ana"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["user_id"])
	assert.Equal(t, "ana@example.com", got["email"])
	assert.NotContains(t, got, "password_hash", "hash must never be serialized")
	assert.NotEmpty(t, got["registration_date"])
}

func TestCreateUserDuplicateEmailIs400(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestCreateUserMissingEmailIs422(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"password_hash":"h"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email", body["field"])
}

func TestGetUserNotFound(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodGet, "/users/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestPatchOnlyTouchesPresentFields(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h","first_name":"Ana","address":"Main St 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPatch, "/users/1", `{"phone_number":"555-0100"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "555-0100", got["phone_number"])
	assert.Equal(t, "Ana", got["first_name"])
	assert.Equal(t, "Main St 1", got["address"])
}

func TestPutResetsOmittedFields(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h","first_name":"Ana","address":"Main St 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPut, "/users/1", `{"email":"ana@example.com","password_hash":"h"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got["first_name"])
	assert.Nil(t, got["address"])
	assert.Equal(t, "ana@example.com", got["email"])
}

func TestDeleteUserReturnsDeletedRecord(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":"ana@example.com","password_hash":"h"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")

	rec = do(t, router, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsersEndpoint(t *testing.T) {
	repo := newFakeUserRepo()
	router := setupRouter(repo)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, repo.Create(&domain.User{Email: email, PasswordHash: "h"}))
	}

	rec := do(t, router, http.MethodGet, "/users?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "b@example.com", got[0]["email"])
}

func TestTrailingSlashCollectionRoutes(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users/", `{"email":"ana@example.com","password_hash":"h"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "slashed create must not redirect")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["user_id"])

	rec = do(t, router, http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestInvalidBodyIs400(t *testing.T) {
	router := setupRouter(newFakeUserRepo())

	rec := do(t, router, http.MethodPost, "/users", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}
