package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mercadito/retail-api/internal/invoice/domain"
	"github.com/mercadito/retail-api/internal/invoice/usecase/command"
	"github.com/mercadito/retail-api/internal/invoice/usecase/query"
	userdomain "github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/logger"
)

// InvoiceHandler handles HTTP requests for invoices, including the
// per-user ownership listing mounted under the users resource.
type InvoiceHandler struct {
	createHandler   *command.CreateInvoiceHandler
	updateHandler   *command.UpdateInvoiceHandler
	deleteHandler   *command.DeleteInvoiceHandler
	getHandler      *query.GetInvoiceHandler
	listHandler     *query.ListInvoicesHandler
	listUserHandler *query.ListUserInvoicesHandler
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(repo domain.InvoiceRepository, users userdomain.UserRepository) *InvoiceHandler {
	return &InvoiceHandler{
		createHandler:   command.NewCreateInvoiceHandler(repo),
		updateHandler:   command.NewUpdateInvoiceHandler(repo),
		deleteHandler:   command.NewDeleteInvoiceHandler(repo),
		getHandler:      query.NewGetInvoiceHandler(repo),
		listHandler:     query.NewListInvoicesHandler(repo),
		listUserHandler: query.NewListUserInvoicesHandler(repo, users),
	}
}

// CreateInvoice handles POST /invoices/
func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInvoice
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	invoice, err := h.createHandler.Handle(command.CreateInvoiceCommand{CreateInvoice: req})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, invoice)
}

// ListInvoices handles GET /invoices/?skip=&limit=
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	invoices, err := h.listHandler.Handle(query.ListInvoicesQuery{Skip: skip, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// ListUserInvoices handles GET /users/{user_id}/invoices/
func (h *InvoiceHandler) ListUserInvoices(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid user ID"))
		return
	}

	invoices, err := h.listUserHandler.Handle(query.ListUserInvoicesQuery{UserID: uint(userID)})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

// GetInvoice handles GET /invoices/{id}
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	invoice, err := h.getHandler.Handle(query.GetInvoiceQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// ReplaceInvoice handles PUT /invoices/{id}
func (h *InvoiceHandler) ReplaceInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreateInvoice
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	invoice, err := h.updateHandler.Handle(command.UpdateInvoiceCommand{ID: id, Changes: req.Changes()})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// PatchInvoice handles PATCH /invoices/{id}
func (h *InvoiceHandler) PatchInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var changes domain.InvoiceChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	invoice, err := h.updateHandler.Handle(command.UpdateInvoiceCommand{ID: id, Changes: changes})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /invoices/{id} and returns the deleted record.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	invoice, err := h.deleteHandler.Handle(command.DeleteInvoiceCommand{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

// RegisterRoutes registers all invoice routes. Collection and ownership
// paths are bound with and without the trailing slash so a POST body never
// goes through a redirect.
func (h *InvoiceHandler) RegisterRoutes(router *mux.Router) {
	for _, p := range []string{"/invoices", "/invoices/"} {
		router.HandleFunc(p, h.CreateInvoice).Methods("POST")
		router.HandleFunc(p, h.ListInvoices).Methods("GET")
	}
	router.HandleFunc("/invoices/{id:[0-9]+}", h.GetInvoice).Methods("GET")
	router.HandleFunc("/invoices/{id:[0-9]+}", h.ReplaceInvoice).Methods("PUT")
	router.HandleFunc("/invoices/{id:[0-9]+}", h.PatchInvoice).Methods("PATCH")
	router.HandleFunc("/invoices/{id:[0-9]+}", h.DeleteInvoice).Methods("DELETE")
	for _, p := range []string{"/users/{user_id:[0-9]+}/invoices", "/users/{user_id:[0-9]+}/invoices/"} {
		router.HandleFunc(p, h.ListUserInvoices).Methods("GET")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid invoice ID"))
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
		logger.Error(r.Context()).Err(err).Msg("invoice request failed")
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
