package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/httpx"
	"github.com/fekuna/retail-backoffice/internal/product"
	"github.com/fekuna/retail-backoffice/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

func (h *ProductHandler) RegisterRoutes(r *mux.Router) {
	sub := r.PathPrefix("/product").Subrouter()
	sub.HandleFunc("", h.CreateProduct).Methods(http.MethodPost)
	sub.HandleFunc("", h.ListProducts).Methods(http.MethodGet)
	sub.HandleFunc("", h.UpdateProduct).Methods(http.MethodPut)
	sub.HandleFunc("/product/{id}", h.GetProductByID).Methods(http.MethodGet)
	sub.HandleFunc("/category/{name}/{category}", h.FilterByNameCategory).Methods(http.MethodGet)
	sub.HandleFunc("/filter/{category}/{storeId}", h.FilterByCategoryAndStore).Methods(http.MethodGet)
	sub.HandleFunc("/searchProduct/{name}", h.SearchProduct).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.DeleteProduct).Methods(http.MethodDelete)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if _, err := h.uc.CreateProduct(r.Context(), &input); err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusCreated, "Product added successfully")
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": p})
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if _, err := h.uc.UpdateProduct(r.Context(), &input); err != nil {
		h.logger.Error("failed to update product", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Data updated successfully")
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListProducts(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) FilterByNameCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	products, err := h.uc.FilterByNameCategory(r.Context(), vars["name"], vars["category"])
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// FilterByCategoryAndStore responds with the "product" key, matching the
// shape the front-end already consumes for this route.
func (h *ProductHandler) FilterByCategoryAndStore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	products, err := h.uc.FilterByCategoryAndStore(r.Context(), vars["category"], vars["storeId"])
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"product": products})
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Deleted product successfully with id: "+id)
}

func (h *ProductHandler) SearchProduct(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	products, err := h.uc.SearchBySubName(r.Context(), name)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}
