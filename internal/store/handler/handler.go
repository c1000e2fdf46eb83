package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/httpx"
	"github.com/fekuna/retail-backoffice/internal/order"
	orderdto "github.com/fekuna/retail-backoffice/internal/order/dto"
	"github.com/fekuna/retail-backoffice/internal/store"
	"github.com/fekuna/retail-backoffice/internal/store/dto"
)

// StoreHandler also hosts the order placement route: placing an order is a
// store-scoped action on the API surface.
type StoreHandler struct {
	uc     store.UseCase
	orders order.UseCase
	logger *zap.Logger
}

func NewStoreHandler(uc store.UseCase, orders order.UseCase, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, orders: orders, logger: logger}
}

func (h *StoreHandler) RegisterRoutes(r *mux.Router) {
	sub := r.PathPrefix("/store").Subrouter()
	sub.HandleFunc("", h.AddStore).Methods(http.MethodPost)
	sub.HandleFunc("/validate/{storeId}", h.ValidateStore).Methods(http.MethodGet)
	sub.HandleFunc("/placeOrder", h.PlaceOrder).Methods(http.MethodPost)
}

func (h *StoreHandler) AddStore(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateStoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if _, err := h.uc.CreateStore(r.Context(), &input); err != nil {
		h.logger.Error("failed to create store", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Store added successfully")
}

func (h *StoreHandler) ValidateStore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["storeId"]

	ok, err := h.uc.ValidateStore(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ok)
}

func (h *StoreHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var input orderdto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}

	if _, err := h.orders.PlaceOrder(r.Context(), &input); err != nil {
		h.logger.Error("failed to place order", zap.Error(err))
		httpx.WriteJSON(w, httpx.StatusOf(err), map[string]string{
			"Error": "An error occurred: " + apperr.MessageOf(err),
		})
		return
	}

	httpx.Message(w, http.StatusCreated, "Order placed successfully")
}
