package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/customer"
	"github.com/fekuna/retail-backoffice/internal/httpx"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/review"
)

// unknownCustomer is shown when a review's customer id no longer resolves.
const unknownCustomer = "Unknown"

type ReviewHandler struct {
	repo      review.Repository
	customers customer.Repository
	logger    *zap.Logger
}

func NewReviewHandler(repo review.Repository, customers customer.Repository, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{repo: repo, customers: customers, logger: logger}
}

func (h *ReviewHandler) RegisterRoutes(r *mux.Router) {
	sub := r.PathPrefix("/reviews").Subrouter()
	sub.HandleFunc("", h.CreateReview).Methods(http.MethodPost)
	sub.HandleFunc("", h.ListAllReviews).Methods(http.MethodGet)
	sub.HandleFunc("/{storeId}/{productId}", h.ListReviews).Methods(http.MethodGet)
}

type createReviewInput struct {
	StoreID    string `json:"storeId"`
	ProductID  string `json:"productId"`
	CustomerID string `json:"customerId"`
	Comment    string `json:"comment"`
	Rating     int    `json:"rating"`
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var input createReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "Invalid input: The data provided is not valid."))
		return
	}
	if input.StoreID == "" || input.ProductID == "" {
		httpx.Error(w, apperr.New(apperr.InvalidInput, "storeId and productId are required"))
		return
	}

	rv := &model.Review{
		ID:         uuid.New().String(),
		StoreID:    input.StoreID,
		ProductID:  input.ProductID,
		CustomerID: input.CustomerID,
		Comment:    input.Comment,
		Rating:     input.Rating,
		CreatedAt:  time.Now(),
	}
	if err := h.repo.Create(r.Context(), rv); err != nil {
		h.logger.Error("failed to store review", zap.Error(err))
		httpx.Error(w, err)
		return
	}

	httpx.Message(w, http.StatusCreated, "Review added successfully")
}

// ListReviews returns the reviews for a product in a store with the
// customer name resolved by a secondary lookup.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviews, err := h.repo.FindByStoreAndProduct(r.Context(), vars["storeId"], vars["productId"])
	if err != nil {
		httpx.Error(w, err)
		return
	}

	out := make([]map[string]interface{}, 0, len(reviews))
	for _, rv := range reviews {
		name := unknownCustomer
		if rv.CustomerID != "" {
			c, err := h.customers.FindByID(r.Context(), rv.CustomerID)
			if err != nil {
				httpx.Error(w, err)
				return
			}
			if c != nil {
				name = c.Name
			}
		}
		out = append(out, map[string]interface{}{
			"review":       rv.Comment,
			"rating":       rv.Rating,
			"customerName": name,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"reviews": out})
}

func (h *ReviewHandler) ListAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.FindAll(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}
