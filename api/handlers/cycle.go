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
	"github.com/gencareclinic/gencare-api/api/handlers/billings"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Cycle exposes the menstrual cycle tracking endpoints
type Cycle struct {
	DB    databases.MenstrualCycleDatabase
	DayDB databases.CycleDayDatabase
}

// CreateHandler starts a new cycle on a bleeding day. The first day record is
// created alongside the cycle and is protected from deletion.
func (c Cycle) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		StartDate string `json:"startDate"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		config.ValidationStatus(w, models.NewValidationError("startDate", "startDate must be YYYY-MM-DD"))
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	count, err := c.DB.CountByOwner(ctx, ownerID)
	if err != nil {
		config.ErrorStatus("failed to count cycles", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	cycle := &models.MenstrualCycle{
		OwnerID:     ownerID,
		StartDate:   req.StartDate,
		CycleNumber: int(count) + 1,
		Status:      models.CycleStatusTracking,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	cycleID, err := c.DB.Create(ctx, cycle)
	if err != nil {
		config.ErrorStatus("failed to create cycle", http.StatusInternalServerError, w, err)
		return
	}
	cycle.ID = cycleID

	firstDay := &models.CycleDay{
		CycleID:              cycleID,
		OwnerID:              ownerID,
		Date:                 req.StartDate,
		CycleDayNumber:       1,
		Observation:          billings.ObservationBlood,
		FertilityProbability: billings.FertilityProbability(billings.ObservationBlood, ""),
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := c.DayDB.Upsert(ctx, firstDay); err != nil {
		zap.S().Errorw("failed to create cycle start day", "error", err, "cycleId", cycleID.Hex())
	}

	zap.S().Infow("created cycle", "cycleId", cycleID.Hex(), "cycleNumber", cycle.CycleNumber)
	respond(w, http.StatusCreated, cycle)
}

// ListHandler lists the caller's cycles, newest first
func (c Cycle) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycles, err := c.DB.ListByOwner(ctx, ownerID)
	if err != nil {
		config.ErrorStatus("failed to list cycles", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, cycles)
}

// GetHandler returns one cycle
func (c Cycle) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	respond(w, http.StatusOK, cycle)
}

// UpdateHandler updates cycle fields. Moving the start date renumbers every
// recorded day against the new anchor.
func (c Cycle) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		StartDate string `json:"startDate"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Status != "" {
		switch req.Status {
		case models.CycleStatusTracking, models.CycleStatusCompleted, models.CycleStatusArchived:
			set["status"] = req.Status
		default:
			config.ValidationStatus(w, models.NewValidationError("status", "status must be tracking, completed or archived"))
			return
		}
	}

	if req.StartDate != "" && req.StartDate != cycle.StartDate {
		newStart, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			config.ValidationStatus(w, models.NewValidationError("startDate", "startDate must be YYYY-MM-DD"))
			return
		}
		set["startDate"] = req.StartDate

		days, err := c.DayDB.ListByCycle(ctx, cycle.ID)
		if err != nil {
			config.ErrorStatus("failed to load cycle days", http.StatusInternalServerError, w, err)
			return
		}
		for _, day := range days {
			d, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				continue
			}
			num := int(d.Sub(newStart).Hours()/24) + 1
			if num < 1 {
				// days before the new anchor keep their record but fall out
				// of the numbering
				num = 0
			}
			if num == day.CycleDayNumber {
				continue
			}
			if err := c.DayDB.Update(ctx, day.ID, bson.M{
				"cycleDayNumber": num,
				"updatedAt":      primitive.NewDateTimeFromTime(time.Now()),
			}); err != nil {
				zap.S().Warnw("failed to renumber cycle day", "error", err, "cycleDayId", day.ID.Hex())
			}
		}
	}

	if err := c.DB.Update(ctx, cycle.ID, set); err != nil {
		config.ErrorStatus("failed to update cycle", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "cycle updated")
}

// UpsertDayHandler records or overwrites one day's observation
func (c Cycle) UpsertDayHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Date        string `json:"date"`
		Observation string `json:"observation"`
		Feeling     string `json:"feeling"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		config.ValidationStatus(w, models.NewValidationError("date", "date must be YYYY-MM-DD"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}

	start, _ := time.Parse("2006-01-02", cycle.StartDate)
	if date.Before(start) {
		config.ValidationStatus(w, models.NewValidationError("date", "day cannot be before the cycle start date"))
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	day := &models.CycleDay{
		CycleID:              cycle.ID,
		OwnerID:              cycle.OwnerID,
		Date:                 req.Date,
		CycleDayNumber:       int(date.Sub(start).Hours()/24) + 1,
		Observation:          req.Observation,
		Feeling:              req.Feeling,
		FertilityProbability: billings.FertilityProbability(req.Observation, req.Feeling),
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := c.DayDB.Upsert(ctx, day); err != nil {
		config.ErrorStatus("failed to save cycle day", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, day)
}

// ListDaysHandler returns the cycle's days ordered by date
func (c Cycle) ListDaysHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	days, err := c.DayDB.ListByCycle(ctx, cycle.ID)
	if err != nil {
		config.ErrorStatus("failed to list cycle days", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, days)
}

// DeleteDayHandler removes one day. The start day anchors the whole cycle and
// cannot be removed.
func (c Cycle) DeleteDayHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}

	date := mux.Vars(r)["date"]
	if date == cycle.StartDate {
		config.ValidationStatus(w, models.NewValidationError("date", "the cycle start day cannot be deleted"))
		return
	}

	day, err := c.DayDB.GetByCycleAndDate(ctx, cycle.ID, date)
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "cycle day"})
		return
	}
	if err := c.DayDB.Delete(ctx, day.ID); err != nil {
		config.ErrorStatus("failed to delete cycle day", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "cycle day deleted")
}

// AnalysisHandler runs the Billings classification over the cycle's days.
// Finding a confirmed peak persists it, and a completed cycle is closed and
// prefilled with its three drying days.
func (c Cycle) AnalysisHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	days, err := c.DayDB.ListByCycle(ctx, cycle.ID)
	if err != nil {
		config.ErrorStatus("failed to list cycle days", http.StatusInternalServerError, w, err)
		return
	}

	observations := make([]billings.DayObservation, 0, len(days))
	for _, day := range days {
		observations = append(observations, billings.DayObservation{
			Date:        day.Date,
			Observation: day.Observation,
			Feeling:     day.Feeling,
		})
	}
	result := billings.Analyze(observations)

	if result.PeakDate != "" && cycle.PeakDate != result.PeakDate {
		if err := c.DB.Update(ctx, cycle.ID, bson.M{
			"peakDate":  result.PeakDate,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		}); err != nil {
			zap.S().Warnw("failed to persist peak date", "error", err, "cycleId", cycle.ID.Hex())
		}
		if peakDay, err := c.DayDB.GetByCycleAndDate(ctx, cycle.ID, result.PeakDate); err == nil && !peakDay.IsPeakDay {
			if err := c.DayDB.Update(ctx, peakDay.ID, bson.M{
				"isPeakDay": true,
				"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
			}); err != nil {
				zap.S().Warnw("failed to mark peak day", "error", err, "cycleDayId", peakDay.ID.Hex())
			}
		}
		c.prefillDryingDays(ctx, cycle, result.PeakDate)
	}

	if result.IsComplete && cycle.Status == models.CycleStatusTracking {
		if err := c.DB.Update(ctx, cycle.ID, bson.M{
			"status":    models.CycleStatusCompleted,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		}); err != nil {
			zap.S().Warnw("failed to complete cycle", "error", err, "cycleId", cycle.ID.Hex())
		}
	}

	respond(w, http.StatusOK, result)
}

// prefillDryingDays inserts the expected post-peak days that have no record yet
func (c Cycle) prefillDryingDays(ctx context.Context, cycle *models.MenstrualCycle, peakDate string) {
	start, err := time.Parse("2006-01-02", cycle.StartDate)
	if err != nil {
		return
	}
	var missing []models.CycleDay
	now := primitive.NewDateTimeFromTime(time.Now())
	for _, gen := range billings.GeneratePostPeakDays(peakDate) {
		if _, err := c.DayDB.GetByCycleAndDate(ctx, cycle.ID, gen.Date); err == nil {
			continue
		}
		d, err := time.Parse("2006-01-02", gen.Date)
		if err != nil {
			continue
		}
		missing = append(missing, models.CycleDay{
			CycleID:              cycle.ID,
			OwnerID:              cycle.OwnerID,
			Date:                 gen.Date,
			CycleDayNumber:       int(d.Sub(start).Hours()/24) + 1,
			Observation:          gen.Observation,
			FertilityProbability: gen.FertilityProbability,
			AutoGenerated:        true,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}
	if len(missing) == 0 {
		return
	}
	if err := c.DayDB.InsertMany(ctx, missing); err != nil {
		zap.S().Warnw("failed to prefill drying days", "error", err, "cycleId", cycle.ID.Hex())
	}
}

// GenderPredictionHandler maps the conception offset from the peak day to a
// leaning
func (c Cycle) GenderPredictionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cycle, err := c.ownedCycle(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	if cycle.PeakDate == "" {
		config.ValidationStatus(w, models.NewValidationError("cycle", "the cycle has no confirmed peak day yet"))
		return
	}

	conception, err := time.Parse("2006-01-02", r.URL.Query().Get("conceptionDate"))
	if err != nil {
		config.ValidationStatus(w, models.NewValidationError("conceptionDate", "conceptionDate must be YYYY-MM-DD"))
		return
	}
	peak, err := time.Parse("2006-01-02", cycle.PeakDate)
	if err != nil {
		config.ErrorStatus("stored peak date is invalid", http.StatusInternalServerError, w, err)
		return
	}

	daysFromPeak := int(conception.Sub(peak).Hours() / 24)
	respond(w, http.StatusOK, map[string]interface{}{
		"peakDate":     cycle.PeakDate,
		"daysFromPeak": daysFromPeak,
		"prediction":   billings.PredictGender(daysFromPeak),
	})
}

func (c Cycle) ownedCycle(ctx context.Context, r *http.Request) (*models.MenstrualCycle, error) {
	cycle, err := c.DB.GetByID(ctx, mux.Vars(r)["cycleId"])
	if err != nil {
		return nil, &models.NotFoundError{Resource: "cycle"}
	}
	if cycle.OwnerID.Hex() != api.UserIDFromContext(r.Context()) {
		return nil, &models.UnauthorizedError{Reason: "cycle belongs to another account", Forbidden: true}
	}
	return cycle, nil
}
