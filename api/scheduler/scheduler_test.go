package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/databases/mocks"
	"github.com/gencareclinic/gencare-api/models"
)

type schedulerMocks struct {
	appt  *mocks.AppointmentDatabase
	sched *mocks.DoctorScheduleDatabase
	pay   *mocks.PaymentTrackingDatabase
	rem   *mocks.MedicationReminderDatabase
	nday  *mocks.NotificationDayDatabase
	user  *mocks.UserDatabase
	lock  *mocks.SchedulerLockDatabase
}

func newTestScheduler() (*Scheduler, *schedulerMocks) {
	m := &schedulerMocks{
		appt:  &mocks.AppointmentDatabase{},
		sched: &mocks.DoctorScheduleDatabase{},
		pay:   &mocks.PaymentTrackingDatabase{},
		rem:   &mocks.MedicationReminderDatabase{},
		nday:  &mocks.NotificationDayDatabase{},
		user:  &mocks.UserDatabase{},
		lock:  &mocks.SchedulerLockDatabase{},
	}
	s := NewScheduler(m.appt, m.sched, m.pay, m.rem, m.nday, m.user, m.lock)
	return s, m
}

func TestScheduler_ExpireStaleAppointments(t *testing.T) {
	s, m := newTestScheduler()

	apptID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	paymentID := primitive.NewObjectID()

	m.lock.On("TryAcquireLock", mock.Anything, "stale_appointment_job", s.instanceID, 10*time.Minute).Return(true, nil)
	m.lock.On("ReleaseLock", mock.Anything, "stale_appointment_job", s.instanceID).Return(nil)
	m.appt.On("FindStalePendingPayment", mock.Anything, mock.Anything).Return([]models.Appointment{{
		ID:           apptID,
		DoctorID:     doctorID,
		ScheduleDate: "2026-08-30",
		SlotID:       slotID,
		Status:       models.AppointmentStatusPendingPayment,
	}}, nil)
	m.appt.On("UpdateStatus", mock.Anything, apptID, models.AppointmentStatusExpired).Return(nil)
	m.pay.On("GetByAppointmentID", mock.Anything, apptID).Return(&models.PaymentTracking{
		ID:     paymentID,
		Status: models.PaymentStatusPending,
	}, nil)
	m.pay.On("UpdateStatus", mock.Anything, paymentID, models.PaymentStatusFailed).Return(nil)
	m.sched.On("ReleaseSlot", mock.Anything, doctorID, "2026-08-30", slotID).Return(nil)

	s.expireStaleAppointments()

	m.appt.AssertExpectations(t)
	m.pay.AssertExpectations(t)
	m.sched.AssertExpectations(t)
	m.lock.AssertExpectations(t)
}

func TestScheduler_ExpireStaleAppointmentsSkipsWithoutLock(t *testing.T) {
	s, m := newTestScheduler()

	m.lock.On("TryAcquireLock", mock.Anything, "stale_appointment_job", s.instanceID, 10*time.Minute).Return(false, nil)

	s.expireStaleAppointments()

	m.appt.AssertNotCalled(t, "FindStalePendingPayment", mock.Anything, mock.Anything)
	m.lock.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduler_FanOutReminderDays(t *testing.T) {
	s, m := newTestScheduler()

	reminderID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	today := time.Now().Format("2006-01-02")

	m.lock.On("TryAcquireLock", mock.Anything, "reminder_fanout_job", s.instanceID, 15*time.Minute).Return(true, nil)
	m.lock.On("ReleaseLock", mock.Anything, "reminder_fanout_job", s.instanceID).Return(nil)
	m.rem.On("ListActiveOn", mock.Anything, today).Return([]models.MedicationReminder{{
		ID:      reminderID,
		OwnerID: ownerID,
		Medicines: []models.ReminderMedicine{
			{Name: "Ferrovit", Dosage: "1 viên"},
		},
		Times:  []string{"08:00", "20:00"},
		Active: true,
	}}, nil)
	m.nday.On("Upsert", mock.Anything, mock.MatchedBy(func(d *models.NotificationDay) bool {
		return d.ReminderID == reminderID &&
			d.OwnerID == ownerID &&
			d.Date == today &&
			d.MedicineName == "Ferrovit" &&
			d.Status == models.DoseStatusPending
	})).Return(nil).Times(2)
	m.nday.On("MarkMissedBefore", mock.Anything, today).Return(int64(3), nil)

	s.fanOutReminderDays()

	m.nday.AssertNumberOfCalls(t, "Upsert", 2)
	m.nday.AssertExpectations(t)
	m.rem.AssertExpectations(t)
}

func TestScheduler_SendDueDoseRemindersHonorsSnooze(t *testing.T) {
	s, m := newTestScheduler()

	snoozed := primitive.NewDateTimeFromTime(time.Now().Add(10 * time.Minute))

	m.lock.On("TryAcquireLock", mock.Anything, "dose_reminder_job", s.instanceID, 10*time.Minute).Return(true, nil)
	m.lock.On("ReleaseLock", mock.Anything, "dose_reminder_job", s.instanceID).Return(nil)
	m.nday.On("FindDue", mock.Anything, mock.Anything, mock.Anything).Return([]models.NotificationDay{{
		ID:           primitive.NewObjectID(),
		OwnerID:      primitive.NewObjectID(),
		MedicineName: "Ferrovit",
		Status:       models.DoseStatusPending,
		SnoozedUntil: &snoozed,
	}}, nil)

	s.sendDueDoseReminders()

	m.nday.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.user.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestNewSchedulerInstanceID(t *testing.T) {
	t.Setenv("DYNO", "web.1")
	s, _ := newTestScheduler()
	assert.Equal(t, "web.1", s.instanceID)
}
