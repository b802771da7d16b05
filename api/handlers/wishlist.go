package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Wishlist exposes the saved services and doctors endpoints
type Wishlist struct {
	DB databases.WishlistDatabase
}

// AddHandler saves a service or a doctor for later
func (h Wishlist) AddHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		ServiceID string `json:"serviceId"`
		DoctorID  string `json:"doctorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if (req.ServiceID == "") == (req.DoctorID == "") {
		config.ValidationStatus(w, models.NewValidationError("serviceId", "exactly one of serviceId or doctorId is required"))
		return
	}

	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	item := &models.WishlistItem{
		UserID:    userID,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if req.ServiceID != "" {
		oid, err := primitive.ObjectIDFromHex(req.ServiceID)
		if err != nil {
			config.ValidationStatus(w, models.NewValidationError("serviceId", "a valid service id is required"))
			return
		}
		item.ServiceID = &oid
	} else {
		oid, err := primitive.ObjectIDFromHex(req.DoctorID)
		if err != nil {
			config.ValidationStatus(w, models.NewValidationError("doctorId", "a valid doctor id is required"))
			return
		}
		item.DoctorID = &oid
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Add(ctx, item); err != nil {
		config.ErrorStatus("failed to add wishlist item", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusCreated, item)
}

// ListHandler lists the caller's wishlist
func (h Wishlist) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	items, err := h.DB.ListByUser(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to list wishlist", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// RemoveHandler removes one of the caller's wishlist items
func (h Wishlist) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["itemId"])
	if err != nil {
		config.ErrorStatus("invalid item id", http.StatusBadRequest, w, err)
		return
	}
	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Remove(ctx, itemID, userID); err != nil {
		handleError(w, &models.NotFoundError{Resource: "wishlist item"})
		return
	}
	respondMessage(w, http.StatusOK, "wishlist item removed")
}
