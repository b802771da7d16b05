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

const defaultSnooze = 15 * time.Minute

// Reminder exposes the medication reminder endpoints
type Reminder struct {
	DB  databases.MedicationReminderDatabase
	NDB databases.NotificationDayDatabase
}

type reminderRequest struct {
	Medicines []models.ReminderMedicine `json:"medicines"`
	Times     []string                  `json:"times"`
	StartDate string                    `json:"startDate"`
	EndDate   string                    `json:"endDate"`
}

func (req reminderRequest) validate() *models.ValidationError {
	verr := &models.ValidationError{Fields: map[string]string{}}
	if len(req.Medicines) == 0 {
		verr.Fields["medicines"] = "at least one medicine is required"
	}
	for _, m := range req.Medicines {
		if m.Name == "" {
			verr.Fields["medicines"] = "every medicine needs a name"
		}
	}
	if len(req.Times) == 0 {
		verr.Fields["times"] = "at least one time is required"
	}
	for _, t := range req.Times {
		if _, err := time.Parse("15:04", t); err != nil {
			verr.Fields["times"] = "times must be HH:MM"
		}
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		verr.Fields["startDate"] = "startDate must be YYYY-MM-DD"
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		verr.Fields["endDate"] = "endDate must be YYYY-MM-DD"
	} else if end.Before(start) {
		verr.Fields["endDate"] = "endDate must not be before startDate"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// CreateHandler registers a reminder group and fans out today's dose rows so
// the user does not wait for the overnight job
func (h Reminder) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if verr := req.validate(); verr != nil {
		config.ValidationStatus(w, verr)
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	now := primitive.NewDateTimeFromTime(time.Now())
	reminder := &models.MedicationReminder{
		OwnerID:   ownerID,
		Medicines: req.Medicines,
		Times:     req.Times,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := h.DB.Create(ctx, reminder)
	if err != nil {
		config.ErrorStatus("failed to create reminder", http.StatusInternalServerError, w, err)
		return
	}
	reminder.ID = id

	today := time.Now().Format("2006-01-02")
	if req.StartDate <= today && today <= req.EndDate {
		fanOutReminderDay(ctx, h.NDB, reminder, today)
	}

	zap.S().Infow("created medication reminder", "reminderId", id.Hex(), "medicines", len(req.Medicines))
	respond(w, http.StatusCreated, reminder)
}

// fanOutReminderDay upserts one dose row per time per medicine for the given
// date. The upsert key makes re-runs idempotent, shared with the nightly job.
func fanOutReminderDay(ctx context.Context, ndb databases.NotificationDayDatabase, reminder *models.MedicationReminder, date string) {
	now := primitive.NewDateTimeFromTime(time.Now())
	for _, t := range reminder.Times {
		for _, medicine := range reminder.Medicines {
			day := &models.NotificationDay{
				ReminderID:   reminder.ID,
				OwnerID:      reminder.OwnerID,
				Date:         date,
				Time:         t,
				MedicineName: medicine.Name,
				Dosage:       medicine.Dosage,
				Status:       models.DoseStatusPending,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := ndb.Upsert(ctx, day); err != nil {
				zap.S().Warnw("failed to fan out dose row",
					"error", err, "reminderId", reminder.ID.Hex(), "date", date, "time", t)
			}
		}
	}
}

// ListHandler lists the caller's reminders
func (h Reminder) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reminders, err := h.DB.ListByOwner(ctx, ownerID)
	if err != nil {
		config.ErrorStatus("failed to list reminders", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, reminders)
}

// GetHandler returns one reminder
func (h Reminder) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reminder, err := h.ownedReminder(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	respond(w, http.StatusOK, reminder)
}

// UpdateHandler updates a reminder's schedule or switches it off
func (h Reminder) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Times   []string `json:"times"`
		EndDate string   `json:"endDate"`
		Active  *bool    `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reminder, err := h.ownedReminder(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if len(req.Times) > 0 {
		for _, t := range req.Times {
			if _, err := time.Parse("15:04", t); err != nil {
				config.ValidationStatus(w, models.NewValidationError("times", "times must be HH:MM"))
				return
			}
		}
		set["times"] = req.Times
	}
	if req.EndDate != "" {
		if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
			config.ValidationStatus(w, models.NewValidationError("endDate", "endDate must be YYYY-MM-DD"))
			return
		}
		set["endDate"] = req.EndDate
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	if err := h.DB.Update(ctx, reminder.ID, set); err != nil {
		config.ErrorStatus("failed to update reminder", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "reminder updated")
}

// ListDayHandler returns the caller's dose rows for one date, defaulting to
// today
func (h Reminder) ListDayHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		config.ValidationStatus(w, models.NewValidationError("date", "date must be YYYY-MM-DD"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	days, err := h.NDB.ListByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		config.ErrorStatus("failed to list dose notifications", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, days)
}

// MarkTakenHandler records that a dose was taken
func (h Reminder) MarkTakenHandler(w http.ResponseWriter, r *http.Request) {
	h.setDoseStatus(w, r, models.DoseStatusTaken)
}

// SkipHandler records that a dose was skipped
func (h Reminder) SkipHandler(w http.ResponseWriter, r *http.Request) {
	h.setDoseStatus(w, r, models.DoseStatusSkipped)
}

func (h Reminder) setDoseStatus(w http.ResponseWriter, r *http.Request, status string) {
	w.Header().Set("Content-Type", "application/json")

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["notificationId"])
	if err != nil {
		config.ErrorStatus("invalid notification id", http.StatusBadRequest, w, err)
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.NDB.UpdateStatus(ctx, id, ownerID, status); err != nil {
		handleError(w, &models.NotFoundError{Resource: "dose notification"})
		return
	}
	respondMessage(w, http.StatusOK, "dose marked "+status)
}

// SnoozeHandler pushes a dose reminder back a few minutes
func (h Reminder) SnoozeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	snooze := defaultSnooze
	if req.Minutes > 0 {
		snooze = time.Duration(req.Minutes) * time.Minute
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["notificationId"])
	if err != nil {
		config.ErrorStatus("invalid notification id", http.StatusBadRequest, w, err)
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.NDB.Snooze(ctx, id, ownerID, time.Now().Add(snooze)); err != nil {
		handleError(w, &models.NotFoundError{Resource: "dose notification"})
		return
	}
	respondMessage(w, http.StatusOK, "dose snoozed")
}

func (h Reminder) ownedReminder(ctx context.Context, r *http.Request) (*models.MedicationReminder, error) {
	reminder, err := h.DB.GetByID(ctx, mux.Vars(r)["reminderId"])
	if err != nil {
		return nil, &models.NotFoundError{Resource: "reminder"}
	}
	if reminder.OwnerID.Hex() != api.UserIDFromContext(r.Context()) {
		return nil, &models.UnauthorizedError{Reason: "reminder belongs to another account", Forbidden: true}
	}
	return reminder, nil
}
