package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Medicine exposes the medicine catalog endpoints
type Medicine struct {
	DB databases.MedicineDatabase
}

// ListHandler returns the medicine catalog, filterable by name or category
func (h Medicine) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{"active": true}
	if name := r.URL.Query().Get("name"); name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	medicines, pagination, err := h.DB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list medicines", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, medicines, pagination)
}

// GetHandler returns one medicine
func (h Medicine) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	medicine, err := h.DB.GetByID(ctx, mux.Vars(r)["medicineId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "medicine"})
		return
	}
	respond(w, http.StatusOK, medicine)
}

// CreateHandler adds a medicine to the catalog
func (h Medicine) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var medicine models.Medicine
	if err := json.NewDecoder(r.Body).Decode(&medicine); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	verr := &models.ValidationError{Fields: map[string]string{}}
	if medicine.Name == "" {
		verr.Fields["name"] = "name is required"
	}
	if medicine.Unit == "" {
		verr.Fields["unit"] = "unit is required"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	medicine.ID = primitive.NilObjectID
	medicine.Active = true
	medicine.CreatedAt = now
	medicine.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := h.DB.Create(ctx, &medicine)
	if err != nil {
		config.ErrorStatus("failed to create medicine", http.StatusInternalServerError, w, err)
		return
	}
	medicine.ID = id
	respond(w, http.StatusCreated, medicine)
}

// UpdateHandler updates catalog fields of a medicine
func (h Medicine) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	medicineID, err := primitive.ObjectIDFromHex(mux.Vars(r)["medicineId"])
	if err != nil {
		config.ErrorStatus("invalid medicine id", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Unit        string `json:"unit"`
		ImageURL    string `json:"imageUrl"`
		Active      *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Unit != "" {
		set["unit"] = req.Unit
	}
	if req.ImageURL != "" {
		set["imageUrl"] = req.ImageURL
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Update(ctx, medicineID, set); err != nil {
		config.ErrorStatus("failed to update medicine", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "medicine updated")
}
