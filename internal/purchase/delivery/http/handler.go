package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mercadito/retail-api/internal/purchase/domain"
	"github.com/mercadito/retail-api/internal/purchase/usecase/command"
	"github.com/mercadito/retail-api/internal/purchase/usecase/query"
	userdomain "github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/logger"
)

// PurchaseHandler handles HTTP requests for purchases, including the
// per-user ownership listing mounted under the users resource.
type PurchaseHandler struct {
	createHandler   *command.CreatePurchaseHandler
	updateHandler   *command.UpdatePurchaseHandler
	deleteHandler   *command.DeletePurchaseHandler
	getHandler      *query.GetPurchaseHandler
	listHandler     *query.ListPurchasesHandler
	listUserHandler *query.ListUserPurchasesHandler
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(repo domain.PurchaseRepository, users userdomain.UserRepository) *PurchaseHandler {
	return &PurchaseHandler{
		createHandler:   command.NewCreatePurchaseHandler(repo),
		updateHandler:   command.NewUpdatePurchaseHandler(repo),
		deleteHandler:   command.NewDeletePurchaseHandler(repo),
		getHandler:      query.NewGetPurchaseHandler(repo),
		listHandler:     query.NewListPurchasesHandler(repo),
		listUserHandler: query.NewListUserPurchasesHandler(repo, users),
	}
}

// CreatePurchase handles POST /purchases/
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePurchase
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	purchase, err := h.createHandler.Handle(command.CreatePurchaseCommand{CreatePurchase: req})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, purchase)
}

// ListPurchases handles GET /purchases/?skip=&limit=
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	purchases, err := h.listHandler.Handle(query.ListPurchasesQuery{Skip: skip, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}

// ListUserPurchases handles GET /users/{user_id}/purchases/
func (h *PurchaseHandler) ListUserPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid user ID"))
		return
	}

	purchases, err := h.listUserHandler.Handle(query.ListUserPurchasesQuery{UserID: uint(userID)})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}

// GetPurchase handles GET /purchases/{id}
func (h *PurchaseHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	purchase, err := h.getHandler.Handle(query.GetPurchaseQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// ReplacePurchase handles PUT /purchases/{id}
func (h *PurchaseHandler) ReplacePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreatePurchase
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	purchase, err := h.updateHandler.Handle(command.UpdatePurchaseCommand{ID: id, Changes: req.Changes()})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// PatchPurchase handles PATCH /purchases/{id}
func (h *PurchaseHandler) PatchPurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var changes domain.PurchaseChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	purchase, err := h.updateHandler.Handle(command.UpdatePurchaseCommand{ID: id, Changes: changes})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// DeletePurchase handles DELETE /purchases/{id} and returns the deleted record.
func (h *PurchaseHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	purchase, err := h.deleteHandler.Handle(command.DeletePurchaseCommand{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// RegisterRoutes registers all purchase routes. Collection and ownership
// paths are bound with and without the trailing slash so a POST body never
// goes through a redirect.
func (h *PurchaseHandler) RegisterRoutes(router *mux.Router) {
	for _, p := range []string{"/purchases", "/purchases/"} {
		router.HandleFunc(p, h.CreatePurchase).Methods("POST")
		router.HandleFunc(p, h.ListPurchases).Methods("GET")
	}
	router.HandleFunc("/purchases/{id:[0-9]+}", h.GetPurchase).Methods("GET")
	router.HandleFunc("/purchases/{id:[0-9]+}", h.ReplacePurchase).Methods("PUT")
	router.HandleFunc("/purchases/{id:[0-9]+}", h.PatchPurchase).Methods("PATCH")
	router.HandleFunc("/purchases/{id:[0-9]+}", h.DeletePurchase).Methods("DELETE")
	for _, p := range []string{"/users/{user_id:[0-9]+}/purchases", "/users/{user_id:[0-9]+}/purchases/"} {
		router.HandleFunc(p, h.ListUserPurchases).Methods("GET")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid purchase ID"))
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	if appErr.Kind() == apperror.KindInternal {
		logger.Error(r.Context()).Err(err).Msg("purchase request failed")
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
