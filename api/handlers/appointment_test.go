package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/api/handlers"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/databases/mocks"
	"github.com/gencareclinic/gencare-api/models"
)

type appointmentMocks struct {
	db      *mocks.AppointmentDatabase
	sched   *mocks.DoctorScheduleDatabase
	service *mocks.ServiceDatabase
	purch   *mocks.PackagePurchaseDatabase
	pay     *mocks.PaymentTrackingDatabase
	patient *mocks.PatientProfileDatabase
	doctor  *mocks.DoctorDatabase
	notif   *mocks.NotificationDatabase
}

func newAppointmentHandler() (handlers.Appointment, *appointmentMocks) {
	m := &appointmentMocks{
		db:      &mocks.AppointmentDatabase{},
		sched:   &mocks.DoctorScheduleDatabase{},
		service: &mocks.ServiceDatabase{},
		purch:   &mocks.PackagePurchaseDatabase{},
		pay:     &mocks.PaymentTrackingDatabase{},
		patient: &mocks.PatientProfileDatabase{},
		doctor:  &mocks.DoctorDatabase{},
		notif:   &mocks.NotificationDatabase{},
	}
	h := handlers.Appointment{
		DB:        m.db,
		SchedDB:   m.sched,
		ServiceDB: m.service,
		PurchDB:   m.purch,
		PayDB:     m.pay,
		PatientDB: m.patient,
		DoctorDB:  m.doctor,
		NotifDB:   m.notif,
		BaseURL:   "http://localhost:8080",
	}
	return h, m
}

func TestAppointment_CreateHandlerValidation(t *testing.T) {
	body := `{"patientId":"not-an-id","doctorId":"also-bad","serviceId":"","packagePurchaseId":"","scheduleDate":"30-08-2026","slotId":"nope"}`
	req, err := http.NewRequest("POST", "/api/v1/appointments", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	h, _ := newAppointmentHandler()
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "patientId")
	assert.Contains(t, rr.Body.String(), "scheduleDate")
	assert.Contains(t, rr.Body.String(), "exactly one of serviceId or packagePurchaseId")
}

func TestAppointment_CreateHandlerWithPackagePurchase(t *testing.T) {
	customerID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	body := fmt.Sprintf(`{"patientId":%q,"doctorId":%q,"packagePurchaseId":%q,"appointmentType":"consultation","scheduleDate":"2026-09-01","slotId":%q}`,
		patientID.Hex(), doctorID.Hex(), purchaseID.Hex(), slotID.Hex())
	req, err := http.NewRequest("POST", "/api/v1/appointments", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), customerID.Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.patient.On("GetByID", mock.Anything, patientID.Hex()).
		Return(&models.PatientProfile{ID: patientID, OwnerUserID: customerID}, nil)
	m.doctor.On("GetByID", mock.Anything, doctorID.Hex()).
		Return(&models.Doctor{ID: doctorID}, nil)
	m.purch.On("GetByID", mock.Anything, purchaseID.Hex()).
		Return(&models.PackagePurchase{
			ID:              purchaseID,
			CustomerID:      customerID,
			Status:          models.PurchaseStatusActive,
			RemainingUsages: 2,
			ExpiresAt:       primitive.NewDateTimeFromTime(time.Now().Add(48 * time.Hour)),
		}, nil)
	m.db.On("Create", mock.Anything, mock.Anything).Return(apptID, nil)
	m.sched.On("BookSlot", mock.Anything, doctorID, "2026-09-01", slotID, apptID, patientID).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.Appointment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.AppointmentStatusPendingPayment, got.Status)
	assert.Equal(t, apptID, got.ID)
	assert.NotNil(t, got.PackagePurchaseID)
	m.db.AssertExpectations(t)
	m.sched.AssertExpectations(t)
}

func TestAppointment_CreateHandlerSlotConflict(t *testing.T) {
	customerID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	body := fmt.Sprintf(`{"patientId":%q,"doctorId":%q,"packagePurchaseId":%q,"appointmentType":"consultation","scheduleDate":"2026-09-01","slotId":%q}`,
		patientID.Hex(), doctorID.Hex(), purchaseID.Hex(), slotID.Hex())
	req, err := http.NewRequest("POST", "/api/v1/appointments", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), customerID.Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.patient.On("GetByID", mock.Anything, patientID.Hex()).
		Return(&models.PatientProfile{ID: patientID, OwnerUserID: customerID}, nil)
	m.doctor.On("GetByID", mock.Anything, doctorID.Hex()).
		Return(&models.Doctor{ID: doctorID}, nil)
	m.purch.On("GetByID", mock.Anything, purchaseID.Hex()).
		Return(&models.PackagePurchase{
			ID:              purchaseID,
			CustomerID:      customerID,
			Status:          models.PurchaseStatusActive,
			RemainingUsages: 1,
			ExpiresAt:       primitive.NewDateTimeFromTime(time.Now().Add(48 * time.Hour)),
		}, nil)
	m.db.On("Create", mock.Anything, mock.Anything).Return(apptID, nil)
	m.sched.On("BookSlot", mock.Anything, doctorID, "2026-09-01", slotID, apptID, patientID).
		Return(databases.ErrSlotUnavailable)
	m.db.On("Delete", mock.Anything, apptID).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	m.db.AssertCalled(t, "Delete", mock.Anything, apptID)
}

func TestAppointment_CreateHandlerWrongPatientOwner(t *testing.T) {
	customerID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()

	body := fmt.Sprintf(`{"patientId":%q,"doctorId":%q,"serviceId":%q,"appointmentType":"consultation","scheduleDate":"2026-09-01","slotId":%q}`,
		patientID.Hex(), doctorID.Hex(), primitive.NewObjectID().Hex(), slotID.Hex())
	req, err := http.NewRequest("POST", "/api/v1/appointments", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), customerID.Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.patient.On("GetByID", mock.Anything, patientID.Hex()).
		Return(&models.PatientProfile{ID: patientID, OwnerUserID: primitive.NewObjectID()}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAppointment_CancelHandlerTooSoonAfterBooking(t *testing.T) {
	customerID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	req, err := http.NewRequest("POST", "/api/v1/appointments/"+apptID.Hex()+"/cancel", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), customerID.Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:           apptID,
		CustomerID:   customerID,
		DoctorID:     doctorID,
		ScheduleDate: "2026-09-01",
		SlotID:       slotID,
		Status:       models.AppointmentStatusConfirmed,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Now().Add(-5 * time.Minute)),
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CancelHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "at least 10 minutes after booking")
	m.db.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointment_CancelHandlerOldBookingNearSlotStart(t *testing.T) {
	customerID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	// slot starts in five minutes, but the booking is an hour old so the
	// cutoff anchored on creation time does not apply
	date := time.Now().Add(5 * time.Minute).Format("2006-01-02")

	req, err := http.NewRequest("POST", "/api/v1/appointments/"+apptID.Hex()+"/cancel", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), customerID.Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:           apptID,
		CustomerID:   customerID,
		DoctorID:     doctorID,
		ScheduleDate: date,
		SlotID:       slotID,
		Status:       models.AppointmentStatusConfirmed,
		CreatedAt:    primitive.NewDateTimeFromTime(time.Now().Add(-time.Hour)),
	}, nil)
	m.db.On("UpdateStatus", mock.Anything, apptID, models.AppointmentStatusCancelled).Return(nil)
	m.sched.On("ReleaseSlot", mock.Anything, doctorID, date, slotID).Return(nil)
	m.notif.On("Create", mock.Anything, mock.Anything).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CancelHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.sched.AssertNotCalled(t, "GetByDoctorAndDate", mock.Anything, mock.Anything, mock.Anything)
	m.db.AssertExpectations(t)
	m.sched.AssertExpectations(t)
}

func TestAppointment_CancelHandlerByStaff(t *testing.T) {
	customerID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()

	req, err := http.NewRequest("POST", "/api/v1/appointments/"+apptID.Hex()+"/cancel", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleStaff))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:           apptID,
		CustomerID:   customerID,
		DoctorID:     doctorID,
		ScheduleDate: "2026-09-01",
		SlotID:       slotID,
		Status:       models.AppointmentStatusConfirmed,
	}, nil)
	m.db.On("UpdateStatus", mock.Anything, apptID, models.AppointmentStatusCancelled).Return(nil)
	m.sched.On("ReleaseSlot", mock.Anything, doctorID, "2026-09-01", slotID).Return(nil)
	m.notif.On("Create", mock.Anything, mock.Anything).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CancelHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.db.AssertExpectations(t)
	m.sched.AssertExpectations(t)
}

func TestAppointment_CancelHandlerRefundsConsumedUsage(t *testing.T) {
	customerID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	apptID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()

	req, err := http.NewRequest("POST", "/api/v1/appointments/"+apptID.Hex()+"/cancel", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleAdmin))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:                apptID,
		CustomerID:        customerID,
		DoctorID:          doctorID,
		ScheduleDate:      "2026-09-01",
		SlotID:            slotID,
		Status:            models.AppointmentStatusScheduled,
		PackagePurchaseID: &purchaseID,
	}, nil)
	m.purch.On("RefundUsage", mock.Anything, purchaseID).Return(nil)
	m.db.On("UpdateStatus", mock.Anything, apptID, models.AppointmentStatusCancelled).Return(nil)
	m.sched.On("ReleaseSlot", mock.Anything, doctorID, "2026-09-01", slotID).Return(nil)
	m.notif.On("Create", mock.Anything, mock.Anything).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CancelHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.purch.AssertCalled(t, "RefundUsage", mock.Anything, purchaseID)
}

func TestAppointment_UpdateStatusHandlerInvalidTransition(t *testing.T) {
	apptID := primitive.NewObjectID()

	req, err := http.NewRequest("PATCH", "/api/v1/appointments/"+apptID.Hex()+"/status", bytes.NewBufferString(`{"status":"consulting"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleStaff))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:     apptID,
		Status: models.AppointmentStatusConfirmed,
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	m.db.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointment_UpdateStatusHandlerTerminal(t *testing.T) {
	apptID := primitive.NewObjectID()

	req, err := http.NewRequest("PATCH", "/api/v1/appointments/"+apptID.Hex()+"/status", bytes.NewBufferString(`{"status":"scheduled"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleStaff))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:     apptID,
		Status: models.AppointmentStatusCompleted,
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAppointment_UpdateStatusHandlerReleasesSlotOnCancel(t *testing.T) {
	apptID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()

	req, err := http.NewRequest("PATCH", "/api/v1/appointments/"+apptID.Hex()+"/status", bytes.NewBufferString(`{"status":"cancelled"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleStaff))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:           apptID,
		DoctorID:     doctorID,
		ScheduleDate: "2026-09-01",
		SlotID:       slotID,
		Status:       models.AppointmentStatusScheduled,
	}, nil)
	m.db.On("UpdateStatus", mock.Anything, apptID, models.AppointmentStatusCancelled).Return(nil)
	m.sched.On("ReleaseSlot", mock.Anything, doctorID, "2026-09-01", slotID).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.UpdateStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.sched.AssertCalled(t, "ReleaseSlot", mock.Anything, doctorID, "2026-09-01", slotID)
}

func TestAppointment_GetHandlerForbiddenForOtherCustomer(t *testing.T) {
	apptID := primitive.NewObjectID()

	req, err := http.NewRequest("GET", "/api/v1/appointments/"+apptID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": apptID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	h, m := newAppointmentHandler()
	m.db.On("GetByID", mock.Anything, apptID.Hex()).Return(&models.Appointment{
		ID:         apptID,
		CustomerID: primitive.NewObjectID(),
		Status:     models.AppointmentStatusConfirmed,
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.GetHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
