package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/api/handlers"
	"github.com/gencareclinic/gencare-api/databases/mocks"
	"github.com/gencareclinic/gencare-api/models"
)

func TestReminder_CreateHandlerValidation(t *testing.T) {
	body := `{"medicines":[],"times":["25:99"],"startDate":"2026-09-10","endDate":"2026-09-01"}`
	req, err := http.NewRequest("POST", "/api/v1/reminders", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: &mocks.MedicationReminderDatabase{}, NDB: &mocks.NotificationDayDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "medicines")
	assert.Contains(t, rr.Body.String(), "times")
	assert.Contains(t, rr.Body.String(), "endDate")
}

func TestReminder_CreateHandlerFansOutToday(t *testing.T) {
	ownerID := primitive.NewObjectID()
	reminderID := primitive.NewObjectID()
	today := time.Now().Format("2006-01-02")
	end := time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")

	db := &mocks.MedicationReminderDatabase{}
	db.On("Create", mock.Anything, mock.MatchedBy(func(rem *models.MedicationReminder) bool {
		return rem.OwnerID == ownerID && rem.Active && len(rem.Medicines) == 2 && len(rem.Times) == 2
	})).Return(reminderID, nil)

	ndb := &mocks.NotificationDayDatabase{}
	ndb.On("Upsert", mock.Anything, mock.MatchedBy(func(d *models.NotificationDay) bool {
		return d.ReminderID == reminderID && d.Date == today && d.Status == models.DoseStatusPending
	})).Return(nil).Times(4)

	body := fmt.Sprintf(`{"medicines":[{"name":"Ferrovit","dosage":"1 viên"},{"name":"Vitamin D3","dosage":"2 giọt"}],"times":["08:00","20:00"],"startDate":%q,"endDate":%q}`, today, end)
	req, err := http.NewRequest("POST", "/api/v1/reminders", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: db, NDB: ndb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	ndb.AssertNumberOfCalls(t, "Upsert", 4)
	db.AssertExpectations(t)
}

func TestReminder_CreateHandlerSkipsFanOutBeforeStart(t *testing.T) {
	ownerID := primitive.NewObjectID()
	reminderID := primitive.NewObjectID()
	start := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	end := time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")

	db := &mocks.MedicationReminderDatabase{}
	db.On("Create", mock.Anything, mock.Anything).Return(reminderID, nil)
	ndb := &mocks.NotificationDayDatabase{}

	body := fmt.Sprintf(`{"medicines":[{"name":"Ferrovit","dosage":"1 viên"}],"times":["08:00"],"startDate":%q,"endDate":%q}`, start, end)
	req, err := http.NewRequest("POST", "/api/v1/reminders", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: db, NDB: ndb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	ndb.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestReminder_MarkTakenHandler(t *testing.T) {
	ownerID := primitive.NewObjectID()
	doseID := primitive.NewObjectID()

	ndb := &mocks.NotificationDayDatabase{}
	ndb.On("UpdateStatus", mock.Anything, doseID, ownerID, models.DoseStatusTaken).Return(nil)

	req, err := http.NewRequest("POST", "/api/v1/reminders/doses/"+doseID.Hex()+"/taken", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"notificationId": doseID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: &mocks.MedicationReminderDatabase{}, NDB: ndb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.MarkTakenHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	ndb.AssertExpectations(t)
}

func TestReminder_SnoozeHandlerDefaultDuration(t *testing.T) {
	ownerID := primitive.NewObjectID()
	doseID := primitive.NewObjectID()

	ndb := &mocks.NotificationDayDatabase{}
	ndb.On("Snooze", mock.Anything, doseID, ownerID, mock.MatchedBy(func(until time.Time) bool {
		d := time.Until(until)
		return d > 14*time.Minute && d <= 15*time.Minute
	})).Return(nil)

	req, err := http.NewRequest("POST", "/api/v1/reminders/doses/"+doseID.Hex()+"/snooze", bytes.NewBufferString(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"notificationId": doseID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: &mocks.MedicationReminderDatabase{}, NDB: ndb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.SnoozeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	ndb.AssertExpectations(t)
}

func TestReminder_UpdateHandlerDeactivates(t *testing.T) {
	ownerID := primitive.NewObjectID()
	reminderID := primitive.NewObjectID()

	db := &mocks.MedicationReminderDatabase{}
	db.On("GetByID", mock.Anything, reminderID.Hex()).Return(&models.MedicationReminder{
		ID:      reminderID,
		OwnerID: ownerID,
		Active:  true,
	}, nil)
	db.On("Update", mock.Anything, reminderID, mock.MatchedBy(func(set bson.M) bool {
		active, found := set["active"]
		return found && active == false
	})).Return(nil)

	req, err := http.NewRequest("PATCH", "/api/v1/reminders/"+reminderID.Hex(), bytes.NewBufferString(`{"active":false}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"reminderId": reminderID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	h := handlers.Reminder{DB: db, NDB: &mocks.NotificationDayDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}
