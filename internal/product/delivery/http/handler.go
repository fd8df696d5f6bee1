package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mercadito/retail-api/internal/product/domain"
	"github.com/mercadito/retail-api/internal/product/usecase/command"
	"github.com/mercadito/retail-api/internal/product/usecase/query"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/logger"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler
	getHandler    *query.GetProductHandler
	listHandler   *query.ListProductsHandler
}

// NewProductHandler creates a new product handler (manual DI)
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return &ProductHandler{
		createHandler: command.NewCreateProductHandler(repo),
		updateHandler: command.NewUpdateProductHandler(repo),
		deleteHandler: command.NewDeleteProductHandler(repo),
		getHandler:    query.NewGetProductHandler(repo),
		listHandler:   query.NewListProductsHandler(repo),
	}
}

// NewProductHandlerWithDI creates a new product handler using dependency injection
func NewProductHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// CreateProduct handles POST /products/
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{CreateProduct: req})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// ListProducts handles GET /products/?skip=&limit=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.listHandler.Handle(query.ListProductsQuery{Skip: skip, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// ReplaceProduct handles PUT /products/{id}
func (h *ProductHandler) ReplaceProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req domain.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{ID: id, Changes: req.Changes()})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// PatchProduct handles PATCH /products/{id}
func (h *ProductHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var changes domain.ProductChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{ID: id, Changes: changes})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id} and returns the deleted record.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// RegisterRoutes registers all product routes. The collection path is bound
// with and without the trailing slash so a POST body never goes through a
// redirect.
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	for _, p := range []string{"/products", "/products/"} {
		router.HandleFunc(p, h.CreateProduct).Methods("POST")
		router.HandleFunc(p, h.ListProducts).Methods("GET")
	}
	router.HandleFunc("/products/{id:[0-9]+}", h.GetProduct).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", h.ReplaceProduct).Methods("PUT")
	router.HandleFunc("/products/{id:[0-9]+}", h.PatchProduct).Methods("PATCH")
	router.HandleFunc("/products/{id:[0-9]+}", h.DeleteProduct).Methods("DELETE")
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid product ID"))
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
		logger.Error(r.Context()).Err(err).Msg("product request failed")
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
