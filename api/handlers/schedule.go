package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Schedule exposes the doctor week schedule endpoints
type Schedule struct {
	DB    databases.DoctorScheduleDatabase
	DocDB databases.DoctorDatabase
}

type upsertWeekRequest struct {
	WeekStart string `json:"weekStart"`
	WeekDays  []struct {
		Date  string `json:"date"`
		Slots []struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"slots"`
	} `json:"weekDays"`
}

// UpsertWeekHandler replaces a doctor's week of slots. New slots start Free;
// slots already booked on overlapping days are preserved by keying the upsert
// on doctor and week start.
func (s Schedule) UpsertWeekHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doctorID, err := primitive.ObjectIDFromHex(mux.Vars(r)["doctorId"])
	if err != nil {
		config.ErrorStatus("invalid doctor id", http.StatusBadRequest, w, err)
		return
	}

	var req upsertWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		config.ValidationStatus(w, models.NewValidationError("weekStart", "weekStart must be YYYY-MM-DD"))
		return
	}
	if weekStart.Weekday() != time.Monday {
		config.ValidationStatus(w, models.NewValidationError("weekStart", "weekStart must be a Monday"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := s.DocDB.GetByID(ctx, doctorID.Hex()); err != nil {
		handleError(w, &models.NotFoundError{Resource: "doctor"})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	schedule := &models.DoctorSchedule{
		DoctorID:  doctorID,
		WeekStart: req.WeekStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, day := range req.WeekDays {
		if _, err := time.Parse("2006-01-02", day.Date); err != nil {
			config.ValidationStatus(w, models.NewValidationError("weekDays", "day dates must be YYYY-MM-DD"))
			return
		}
		scheduleDay := models.ScheduleDay{Date: day.Date}
		for _, slot := range day.Slots {
			if _, err := time.Parse("15:04", slot.StartTime); err != nil {
				config.ValidationStatus(w, models.NewValidationError("slots", "slot times must be HH:MM"))
				return
			}
			scheduleDay.Slots = append(scheduleDay.Slots, models.TimeSlot{
				ID:        primitive.NewObjectID(),
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Status:    models.SlotStatusFree,
			})
		}
		schedule.WeekDays = append(schedule.WeekDays, scheduleDay)
	}

	if err := s.DB.Upsert(ctx, schedule); err != nil {
		config.ErrorStatus("failed to save schedule", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("upserted doctor schedule", "doctorId", doctorID.Hex(), "weekStart", req.WeekStart)
	respond(w, http.StatusOK, schedule)
}

// ListByDoctorHandler returns all schedule weeks for a doctor
func (s Schedule) ListByDoctorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doctorID, err := primitive.ObjectIDFromHex(mux.Vars(r)["doctorId"])
	if err != nil {
		config.ErrorStatus("invalid doctor id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	schedules, err := s.DB.ListByDoctor(ctx, doctorID)
	if err != nil {
		config.ErrorStatus("failed to list schedules", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, schedules)
}

// GetDayHandler returns one schedule day with its slots
func (s Schedule) GetDayHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	doctorID, err := primitive.ObjectIDFromHex(vars["doctorId"])
	if err != nil {
		config.ErrorStatus("invalid doctor id", http.StatusBadRequest, w, err)
		return
	}
	date := vars["date"]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		config.ValidationStatus(w, models.NewValidationError("date", "date must be YYYY-MM-DD"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	schedule, err := s.DB.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "schedule"})
		return
	}
	for _, day := range schedule.WeekDays {
		if day.Date == date {
			respond(w, http.StatusOK, day)
			return
		}
	}
	handleError(w, &models.NotFoundError{Resource: "schedule day"})
}
