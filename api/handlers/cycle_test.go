package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/api/handlers"
	"github.com/gencareclinic/gencare-api/api/handlers/billings"
	"github.com/gencareclinic/gencare-api/databases/mocks"
	"github.com/gencareclinic/gencare-api/models"
)

func TestCycle_CreateHandlerNumbersSequentially(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("CountByOwner", mock.Anything, ownerID).Return(int64(2), nil)
	db.On("Create", mock.Anything, mock.MatchedBy(func(c *models.MenstrualCycle) bool {
		return c.OwnerID == ownerID && c.CycleNumber == 3 && c.Status == models.CycleStatusTracking
	})).Return(cycleID, nil)

	dayDB := &mocks.CycleDayDatabase{}
	dayDB.On("Upsert", mock.Anything, mock.MatchedBy(func(d *models.CycleDay) bool {
		return d.CycleID == cycleID &&
			d.CycleDayNumber == 1 &&
			d.Observation == billings.ObservationBlood
	})).Return(nil)

	body := `{"startDate":"2026-08-10"}`
	req, err := http.NewRequest("POST", "/api/v1/cycles", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: dayDB}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.MenstrualCycle
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 3, got.CycleNumber)
	db.AssertExpectations(t)
	dayDB.AssertExpectations(t)
}

func TestCycle_UpsertDayHandlerComputesDayNumber(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:        cycleID,
		OwnerID:   ownerID,
		StartDate: "2026-08-10",
		Status:    models.CycleStatusTracking,
	}, nil)

	dayDB := &mocks.CycleDayDatabase{}
	dayDB.On("Upsert", mock.Anything, mock.MatchedBy(func(d *models.CycleDay) bool {
		return d.CycleID == cycleID &&
			d.Date == "2026-08-14" &&
			d.CycleDayNumber == 5 &&
			d.FertilityProbability == 0.95
	})).Return(nil)

	body := `{"date":"2026-08-14","observation":"trong và âm hộ căng","feeling":"trơn"}`
	req, err := http.NewRequest("PUT", "/api/v1/cycles/"+cycleID.Hex()+"/days", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: dayDB}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.UpsertDayHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	dayDB.AssertExpectations(t)
}

func TestCycle_UpsertDayHandlerRejectsDayBeforeStart(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:        cycleID,
		OwnerID:   ownerID,
		StartDate: "2026-08-10",
	}, nil)

	dayDB := &mocks.CycleDayDatabase{}

	body := `{"date":"2026-08-09","observation":"khô"}`
	req, err := http.NewRequest("PUT", "/api/v1/cycles/"+cycleID.Hex()+"/days", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: dayDB}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.UpsertDayHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	dayDB.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCycle_DeleteDayHandlerProtectsStartDay(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:        cycleID,
		OwnerID:   ownerID,
		StartDate: "2026-08-10",
	}, nil)

	dayDB := &mocks.CycleDayDatabase{}

	req, err := http.NewRequest("DELETE", "/api/v1/cycles/"+cycleID.Hex()+"/days/2026-08-10", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex(), "date": "2026-08-10"})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: dayDB}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.DeleteDayHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "cannot be deleted")
	dayDB.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCycle_AnalysisHandlerCompletesCycle(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	days := []models.CycleDay{
		{Date: "2026-08-10", Observation: billings.ObservationBlood},
		{Date: "2026-08-11", Observation: billings.ObservationBlood},
		{Date: "2026-08-12", Observation: billings.ObservationDry, Feeling: billings.FeelingDry},
		{Date: "2026-08-13", Observation: billings.ObservationCloudy, Feeling: billings.FeelingMoist},
		{Date: "2026-08-14", Observation: billings.ObservationClearTaut, Feeling: billings.FeelingSlippery},
		{Date: "2026-08-15", Observation: billings.ObservationLowMucus, Feeling: billings.FeelingDry},
		{Date: "2026-08-16", Observation: billings.ObservationDry, Feeling: billings.FeelingDry},
		{Date: "2026-08-17", Observation: billings.ObservationDry, Feeling: billings.FeelingDry},
	}

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:        cycleID,
		OwnerID:   ownerID,
		StartDate: "2026-08-10",
		Status:    models.CycleStatusTracking,
	}, nil)
	db.On("Update", mock.Anything, cycleID, mock.Anything).Return(nil)

	dayDB := &mocks.CycleDayDatabase{}
	dayDB.On("ListByCycle", mock.Anything, cycleID).Return(days, nil)
	// every post-peak date already has a record, nothing to prefill
	dayDB.On("GetByCycleAndDate", mock.Anything, cycleID, mock.Anything).
		Return(&models.CycleDay{ID: primitive.NewObjectID(), IsPeakDay: true}, nil)

	req, err := http.NewRequest("GET", "/api/v1/cycles/"+cycleID.Hex()+"/analysis", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: dayDB}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.AnalysisHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got billings.Result
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.IsComplete)
	assert.Equal(t, "2026-08-14", got.PeakDate)
	dayDB.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	db.AssertExpectations(t)
}

func TestCycle_GenderPredictionHandler(t *testing.T) {
	ownerID := primitive.NewObjectID()
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:       cycleID,
		OwnerID:  ownerID,
		PeakDate: "2026-08-14",
	}, nil)

	req, err := http.NewRequest("GET", "/api/v1/cycles/"+cycleID.Hex()+"/gender-prediction?conceptionDate=2026-08-13", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: &mocks.CycleDayDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.GenderPredictionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, float64(-1), got["daysFromPeak"])
	assert.Equal(t, "boy_leaning", got["prediction"])
}

func TestCycle_GetHandlerWrongOwner(t *testing.T) {
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(&models.MenstrualCycle{
		ID:      cycleID,
		OwnerID: primitive.NewObjectID(),
	}, nil)

	req, err := http.NewRequest("GET", "/api/v1/cycles/"+cycleID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: &mocks.CycleDayDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.GetHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCycle_GetHandlerNotFound(t *testing.T) {
	cycleID := primitive.NewObjectID()

	db := &mocks.MenstrualCycleDatabase{}
	db.On("GetByID", mock.Anything, cycleID.Hex()).Return(nil, errors.New("mongo: no documents in result"))

	req, err := http.NewRequest("GET", "/api/v1/cycles/"+cycleID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"cycleId": cycleID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	c := handlers.Cycle{DB: db, DayDB: &mocks.CycleDayDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(c.GetHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
