package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mercadito/retail-api/internal/employee/domain"
	"github.com/mercadito/retail-api/internal/employee/usecase/command"
	"github.com/mercadito/retail-api/internal/employee/usecase/query"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/logger"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	createHandler *command.CreateEmployeeHandler
	updateHandler *command.UpdateEmployeeHandler
	deleteHandler *command.DeleteEmployeeHandler
	getHandler    *query.GetEmployeeHandler
	listHandler   *query.ListEmployeesHandler
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(repo domain.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		createHandler: command.NewCreateEmployeeHandler(repo),
		updateHandler: command.NewUpdateEmployeeHandler(repo),
		deleteHandler: command.NewDeleteEmployeeHandler(repo),
		getHandler:    query.NewGetEmployeeHandler(repo),
		listHandler:   query.NewListEmployeesHandler(repo),
	}
}

// CreateEmployee handles POST /employees/
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployee
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	employee, err := h.createHandler.Handle(command.CreateEmployeeCommand{CreateEmployee: req})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, employee)
}

// ListEmployees handles GET /employees/?skip=&limit=
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	employees, err := h.listHandler.Handle(query.ListEmployeesQuery{Skip: skip, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, employees)
}

// GetEmployee handles GET /employees/{id}
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	employee, err := h.getHandler.Handle(query.GetEmployeeQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// ReplaceEmployee handles PUT /employees/{id}
func (h *EmployeeHandler) ReplaceEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreateEmployee
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	employee, err := h.updateHandler.Handle(command.UpdateEmployeeCommand{ID: id, Changes: req.Changes()})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// PatchEmployee handles PATCH /employees/{id}
func (h *EmployeeHandler) PatchEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var changes domain.EmployeeChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	employee, err := h.updateHandler.Handle(command.UpdateEmployeeCommand{ID: id, Changes: changes})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/{id} and returns the deleted record.
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	employee, err := h.deleteHandler.Handle(command.DeleteEmployeeCommand{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// RegisterRoutes registers all employee routes. The collection path is bound
// with and without the trailing slash so a POST body never goes through a
// redirect.
func (h *EmployeeHandler) RegisterRoutes(router *mux.Router) {
	for _, p := range []string{"/employees", "/employees/"} {
		router.HandleFunc(p, h.CreateEmployee).Methods("POST")
		router.HandleFunc(p, h.ListEmployees).Methods("GET")
	}
	router.HandleFunc("/employees/{id:[0-9]+}", h.GetEmployee).Methods("GET")
	router.HandleFunc("/employees/{id:[0-9]+}", h.ReplaceEmployee).Methods("PUT")
	router.HandleFunc("/employees/{id:[0-9]+}", h.PatchEmployee).Methods("PATCH")
	router.HandleFunc("/employees/{id:[0-9]+}", h.DeleteEmployee).Methods("DELETE")
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid employee ID"))
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
		logger.Error(r.Context()).Err(err).Msg("employee request failed")
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
