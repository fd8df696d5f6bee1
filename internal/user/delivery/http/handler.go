package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/internal/user/usecase/command"
	"github.com/mercadito/retail-api/internal/user/usecase/query"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/logger"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler
	getHandler    *query.GetUserHandler
	listHandler   *query.ListUsersHandler
}

// NewUserHandler creates a new user handler (manual DI)
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return &UserHandler{
		createHandler: command.NewCreateUserHandler(repo),
		updateHandler: command.NewUpdateUserHandler(repo),
		deleteHandler: command.NewDeleteUserHandler(repo),
		getHandler:    query.NewGetUserHandler(repo),
		listHandler:   query.NewListUsersHandler(repo),
	}
}

// NewUserHandlerWithDI creates a new user handler using dependency injection
func NewUserHandlerWithDI(
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	getHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
) *UserHandler {
	return &UserHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// CreateUser handles POST /users/
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	user, err := h.createHandler.Handle(command.CreateUserCommand{CreateUser: req})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /users/?skip=&limit=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	users, err := h.listHandler.Handle(query.ListUsersQuery{Skip: skip, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.getHandler.Handle(query.GetUserQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// ReplaceUser handles PUT /users/{id}. The full payload becomes a change-set
// with every slot set, then runs through the same merge as PATCH.
func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{ID: id, Changes: req.Changes()})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// PatchUser handles PATCH /users/{id}. Keys absent from the body stay unset
// and are left untouched by the merge.
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var changes domain.UserChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{ID: id, Changes: changes})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id} and returns the deleted record.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// RegisterRoutes registers all user routes. The collection path is bound
// with and without the trailing slash so a POST body never goes through a
// redirect.
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	for _, p := range []string{"/users", "/users/"} {
		router.HandleFunc(p, h.CreateUser).Methods("POST")
		router.HandleFunc(p, h.ListUsers).Methods("GET")
	}
	router.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.ReplaceUser).Methods("PUT")
	router.HandleFunc("/users/{id:[0-9]+}", h.PatchUser).Methods("PATCH")
	router.HandleFunc("/users/{id:[0-9]+}", h.DeleteUser).Methods("DELETE")
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid user ID"))
		return 0, false
	}
	return uint(id), true
}

func pagination(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return skip, limit
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	if appErr.Kind() == apperror.KindInternal {
		logger.Error(r.Context()).Err(err).Msg("user request failed")
	}
	body := errorBody(appErr.Message())
	if appErr.Field() != "" {
		body["field"] = appErr.Field()
	}
	respondJSON(w, appErr.StatusCode(), body)
}

func errorBody(detail string) map[string]string {
	return map[string]string{"detail": detail}
}
