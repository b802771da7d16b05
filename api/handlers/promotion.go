package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Promotion exposes discount code management and validation
type Promotion struct {
	DB databases.PromotionDatabase
}

// CreateHandler adds a discount code
func (h Promotion) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Code            string `json:"code"`
		Description     string `json:"description"`
		DiscountPercent int    `json:"discountPercent"`
		ValidFrom       string `json:"validFrom"`
		ValidUntil      string `json:"validUntil"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	verr := &models.ValidationError{Fields: map[string]string{}}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if req.Code == "" {
		verr.Fields["code"] = "code is required"
	}
	if req.DiscountPercent < 1 || req.DiscountPercent > 100 {
		verr.Fields["discountPercent"] = "discountPercent must be between 1 and 100"
	}
	from, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		verr.Fields["validFrom"] = "validFrom must be YYYY-MM-DD"
	}
	until, err := time.Parse("2006-01-02", req.ValidUntil)
	if err != nil {
		verr.Fields["validUntil"] = "validUntil must be YYYY-MM-DD"
	} else if !until.After(from) {
		verr.Fields["validUntil"] = "validUntil must be after validFrom"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if existing, err := h.DB.GetByCode(ctx, req.Code); err == nil && existing != nil {
		config.ErrorStatus("promotion code already exists", http.StatusConflict, w, nil)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	promo := &models.Promotion{
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       primitive.NewDateTimeFromTime(from),
		ValidUntil:      primitive.NewDateTimeFromTime(until),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	id, err := h.DB.Create(ctx, promo)
	if err != nil {
		config.ErrorStatus("failed to create promotion", http.StatusInternalServerError, w, err)
		return
	}
	promo.ID = id
	respond(w, http.StatusCreated, promo)
}

// UpdateHandler updates a promotion
func (h Promotion) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	promoID, err := primitive.ObjectIDFromHex(mux.Vars(r)["promotionId"])
	if err != nil {
		config.ErrorStatus("invalid promotion id", http.StatusBadRequest, w, err)
		return
	}

	var req struct {
		Description     string `json:"description"`
		DiscountPercent *int   `json:"discountPercent"`
		ValidUntil      string `json:"validUntil"`
		Active          *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 1 || *req.DiscountPercent > 100 {
			config.ValidationStatus(w, models.NewValidationError("discountPercent", "discountPercent must be between 1 and 100"))
			return
		}
		set["discountPercent"] = *req.DiscountPercent
	}
	if req.ValidUntil != "" {
		until, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			config.ValidationStatus(w, models.NewValidationError("validUntil", "validUntil must be YYYY-MM-DD"))
			return
		}
		set["validUntil"] = primitive.NewDateTimeFromTime(until)
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.Update(ctx, promoID, set); err != nil {
		config.ErrorStatus("failed to update promotion", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "promotion updated")
}

// ListHandler lists promotions for staff
func (h Promotion) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	promos, pagination, err := h.DB.List(ctx, bson.M{}, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list promotions", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, promos, pagination)
}

// ValidateHandler checks a code and returns its discount when applicable
func (h Promotion) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("code")))
	if code == "" {
		config.ValidationStatus(w, models.NewValidationError("code", "code is required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	promo, err := h.DB.GetByCode(ctx, code)
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "promotion"})
		return
	}
	if !promo.IsValid(time.Now()) {
		config.ValidationStatus(w, models.NewValidationError("code", "promotion code is expired or inactive"))
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"code":            promo.Code,
		"discountPercent": promo.DiscountPercent,
		"validUntil":      promo.ValidUntil,
	})
}
