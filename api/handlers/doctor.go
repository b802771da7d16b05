package handlers

import (
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

// Doctor exposes the public doctor directory and its management endpoints
type Doctor struct {
	DB  databases.DoctorDatabase
	UDB databases.UserDatabase
}

// ListDoctorsHandler returns the active doctor directory, filterable by
// specialty
func (d Doctor) ListDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{"active": true}
	if specialty := r.URL.Query().Get("specialty"); specialty != "" {
		filter["specialty"] = specialty
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctors, pagination, err := d.DB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list doctors", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, doctors, pagination)
}

// GetDoctorHandler returns one doctor profile
func (d Doctor) GetDoctorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	doctor, err := d.DB.GetByID(ctx, mux.Vars(r)["doctorId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "doctor"})
		return
	}
	respond(w, http.StatusOK, doctor)
}

// CreateDoctorHandler adds a doctor profile linked to a doctor user account
func (d Doctor) CreateDoctorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		UserID    string `json:"userId"`
		FullName  string `json:"fullName"`
		Specialty string `json:"specialty"`
		Bio       string `json:"bio"`
		PhotoURL  string `json:"photoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	verr := &models.ValidationError{Fields: map[string]string{}}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		verr.Fields["userId"] = "a valid user id is required"
	}
	if req.FullName == "" {
		verr.Fields["fullName"] = "full name is required"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := d.UDB.GetByID(ctx, req.UserID)
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "user"})
		return
	}
	if user.Role != models.RoleDoctor {
		config.ValidationStatus(w, models.NewValidationError("userId", "the linked account must have the doctor role"))
		return
	}
	if _, err := d.DB.GetByUserID(ctx, userID); err == nil {
		config.ErrorStatus("a doctor profile already exists for this account", http.StatusConflict, w, nil)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	doctor := &models.Doctor{
		UserID:    userID,
		FullName:  req.FullName,
		Specialty: req.Specialty,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := d.DB.Create(ctx, doctor)
	if err != nil {
		config.ErrorStatus("failed to create doctor", http.StatusInternalServerError, w, err)
		return
	}
	doctor.ID = id
	zap.S().Infow("created doctor profile", "doctorId", id.Hex(), "userId", userID.Hex())
	respond(w, http.StatusCreated, doctor)
}

// UpdateDoctorHandler updates a doctor profile
func (d Doctor) UpdateDoctorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		FullName  string `json:"fullName"`
		Specialty string `json:"specialty"`
		Bio       string `json:"bio"`
		PhotoURL  string `json:"photoUrl"`
		Active    *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.FullName != "" {
		set["fullName"] = req.FullName
	}
	if req.Specialty != "" {
		set["specialty"] = req.Specialty
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.PhotoURL != "" {
		set["photoUrl"] = req.PhotoURL
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := d.DB.Update(ctx, mux.Vars(r)["doctorId"], set); err != nil {
		config.ErrorStatus("failed to update doctor", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "doctor updated")
}
