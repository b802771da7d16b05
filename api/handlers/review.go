package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Review exposes doctor rating endpoints
type Review struct {
	DB     databases.ReviewDatabase
	DocDB  databases.DoctorDatabase
	ApptDB databases.AppointmentDatabase
}

// CreateHandler records a rating. When the review references an appointment
// it must be the caller's own completed appointment with that doctor.
func (h Review) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		DoctorID      string `json:"doctorId"`
		AppointmentID string `json:"appointmentId"`
		Rating        int    `json:"rating"`
		Comment       string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		config.ValidationStatus(w, models.NewValidationError("rating", "rating must be between 1 and 5"))
		return
	}
	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		config.ValidationStatus(w, models.NewValidationError("doctorId", "a valid doctor id is required"))
		return
	}

	customerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.DocDB.GetByID(ctx, req.DoctorID); err != nil {
		handleError(w, &models.NotFoundError{Resource: "doctor"})
		return
	}

	review := &models.Review{
		CustomerID: customerID,
		DoctorID:   doctorID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Active:     true,
		CreatedAt:  primitive.NewDateTimeFromTime(time.Now()),
		UpdatedAt:  primitive.NewDateTimeFromTime(time.Now()),
	}

	if req.AppointmentID != "" {
		appt, err := h.ApptDB.GetByID(ctx, req.AppointmentID)
		if err != nil {
			handleError(w, &models.NotFoundError{Resource: "appointment"})
			return
		}
		if appt.CustomerID != customerID || appt.DoctorID != doctorID {
			handleError(w, &models.UnauthorizedError{Reason: "appointment does not belong to this customer and doctor", Forbidden: true})
			return
		}
		if appt.Status != models.AppointmentStatusCompleted {
			config.ValidationStatus(w, models.NewValidationError("appointmentId", "only completed appointments can be reviewed"))
			return
		}
		review.AppointmentID = &appt.ID
	}

	id, err := h.DB.Create(ctx, review)
	if err != nil {
		config.ErrorStatus("failed to create review", http.StatusInternalServerError, w, err)
		return
	}
	review.ID = id

	h.refreshDoctorRating(ctx, doctorID)
	respond(w, http.StatusCreated, review)
}

// UpdateHandler lets the author edit their review
func (h Review) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Rating  *int   `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	review, err := h.DB.GetByID(ctx, mux.Vars(r)["reviewId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "review"})
		return
	}
	if review.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
		handleError(w, &models.UnauthorizedError{Reason: "review belongs to another account", Forbidden: true})
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			config.ValidationStatus(w, models.NewValidationError("rating", "rating must be between 1 and 5"))
			return
		}
		set["rating"] = *req.Rating
	}
	if req.Comment != "" {
		set["comment"] = req.Comment
	}

	if err := h.DB.Update(ctx, review.ID, set); err != nil {
		config.ErrorStatus("failed to update review", http.StatusInternalServerError, w, err)
		return
	}

	h.refreshDoctorRating(ctx, review.DoctorID)
	respondMessage(w, http.StatusOK, "review updated")
}

// ListDoctorReviewsHandler lists a doctor's reviews, newest first
func (h Review) ListDoctorReviewsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doctorID, err := primitive.ObjectIDFromHex(mux.Vars(r)["doctorId"])
	if err != nil {
		config.ErrorStatus("invalid doctor id", http.StatusBadRequest, w, err)
		return
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reviews, pagination, err := h.DB.ListByDoctor(ctx, doctorID, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list reviews", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, reviews, pagination)
}

// refreshDoctorRating recomputes the denormalized rating on the doctor profile
func (h Review) refreshDoctorRating(ctx context.Context, doctorID primitive.ObjectID) {
	avg, count, err := h.DB.AverageForDoctor(ctx, doctorID)
	if err != nil {
		zap.S().Warnw("failed to compute doctor rating", "error", err, "doctorId", doctorID.Hex())
		return
	}
	if err := h.DocDB.ApplyRating(ctx, doctorID, avg, count); err != nil {
		zap.S().Warnw("failed to apply doctor rating", "error", err, "doctorId", doctorID.Hex())
	}
}
