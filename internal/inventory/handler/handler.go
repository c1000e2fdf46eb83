package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/httpx"
	"github.com/fekuna/retail-backoffice/internal/inventory"
	"github.com/fekuna/retail-backoffice/internal/inventory/dto"
	"github.com/fekuna/retail-backoffice/internal/product"
)

type InventoryHandler struct {
	uc       inventory.UseCase
	products product.UseCase
	logger   *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, products product.UseCase, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, products: products, logger: logger}
}

func (h *InventoryHandler) RegisterRoutes(r *mux.Router) {
	sub := r.PathPrefix("/inventory").Subrouter()
	sub.HandleFunc("", h.SaveInventory).Methods(http.MethodPost)
	sub.HandleFunc("", h.UpdateInventory).Methods(http.MethodPut)
	sub.HandleFunc("/filter/{category}/{name}/{storeid}", h.FilterProducts).Methods(http.MethodGet)
	sub.HandleFunc("/search/{name}/{storeId}", h.SearchProduct).Methods(http.MethodGet)
	sub.HandleFunc("/validate/{quantity}/{storeId}/{productId}", h.ValidateQuantity).Methods(http.MethodGet)
	sub.HandleFunc("/{storeid}", h.ListStoreProducts).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.RemoveProduct).Methods(http.MethodDelete)
}

func (h *InventoryHandler) SaveInventory(w http.ResponseWriter, r *http.Request) {
	var input dto.InventoryPayload
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if _, err := h.uc.CreateInventory(r.Context(), &input); err != nil {
		h.logger.Error("failed to create inventory row", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusCreated, "Product added to inventory successfully")
}

func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	var input dto.CombinedRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if err := h.uc.UpdateProductAndInventory(r.Context(), &input); err != nil {
		if errors.Is(err, inventory.ErrNoInventoryRow) {
			httpx.Message(w, http.StatusNoContent, "No data available for this product")
			return
		}
		h.logger.Error("failed to update product and inventory", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Successfully updated product with id: "+input.Product.ID)
}

func (h *InventoryHandler) ListStoreProducts(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeid"]

	products, err := h.products.ListByStore(r.Context(), storeID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *InventoryHandler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	products, err := h.products.FilterInStore(r.Context(), vars["category"], vars["name"], vars["storeid"])
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"product": products})
}

func (h *InventoryHandler) SearchProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	products, err := h.products.SearchInStore(r.Context(), vars["name"], vars["storeId"])
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"product": products})
}

func (h *InventoryHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.uc.DeleteByProduct(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Deleted product successfully with id: "+id)
}

func (h *InventoryHandler) ValidateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	quantity, err := strconv.Atoi(vars["quantity"])
	if err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	ok, err := h.uc.ValidateStock(r.Context(), quantity, vars["storeId"], vars["productId"])
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ok)
}
