package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
	templates "github.com/gencareclinic/gencare-api/templates/html"
)

// pendingPaymentTTL is how long an appointment may sit unpaid before the
// cleanup job expires it and frees the slot
const pendingPaymentTTL = 30 * time.Minute

// Scheduler handles periodic background jobs for the clinic
type Scheduler struct {
	cron       *cron.Cron
	ApptDB     databases.AppointmentDatabase
	SchedDB    databases.DoctorScheduleDatabase
	PayDB      databases.PaymentTrackingDatabase
	RemDB      databases.MedicationReminderDatabase
	NDayDB     databases.NotificationDayDatabase
	UDB        databases.UserDatabase
	LockDB     databases.SchedulerLockDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	apptDB databases.AppointmentDatabase,
	schedDB databases.DoctorScheduleDatabase,
	payDB databases.PaymentTrackingDatabase,
	remDB databases.MedicationReminderDatabase,
	ndayDB databases.NotificationDayDatabase,
	uDB databases.UserDatabase,
	lockDB databases.SchedulerLockDatabase,
) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.Local)),
		ApptDB:     apptDB,
		SchedDB:    schedDB,
		PayDB:      payDB,
		RemDB:      remDB,
		NDayDB:     ndayDB,
		UDB:        uDB,
		LockDB:     lockDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Expire appointments that never completed checkout, every 10 minutes
	_, err := s.cron.AddFunc("*/10 * * * *", s.expireStaleAppointments)
	if err != nil {
		zap.S().Errorw("failed to register stale appointment job", "error", err)
	}

	// Fan out the day's medication dose rows shortly after midnight
	_, err = s.cron.AddFunc("5 0 * * *", s.fanOutReminderDays)
	if err != nil {
		zap.S().Errorw("failed to register reminder fan out job", "error", err)
	}

	// Deliver due dose reminders every 5 minutes
	_, err = s.cron.AddFunc("*/5 * * * *", s.sendDueDoseReminders)
	if err != nil {
		zap.S().Errorw("failed to register dose reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Clinic scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Clinic scheduler stopped")
}

// expireStaleAppointments expires pending_payment appointments older than the
// payment TTL, fails their payment record and frees the held slot
func (s *Scheduler) expireStaleAppointments() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	acquired, err := s.LockDB.TryAcquireLock(ctx, "stale_appointment_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for stale appointment job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Stale appointment job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "stale_appointment_job", s.instanceID)

	cutoff := time.Now().Add(-pendingPaymentTTL)
	stale, err := s.ApptDB.FindStalePendingPayment(ctx, cutoff)
	if err != nil {
		zap.S().Errorw("failed to find stale pending appointments", "error", err)
		return
	}

	expired := 0
	for _, appt := range stale {
		if err := s.ApptDB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusExpired); err != nil {
			zap.S().Errorw("failed to expire appointment", "error", err, "appointmentId", appt.ID.Hex())
			continue
		}
		expired++

		if payment, err := s.PayDB.GetByAppointmentID(ctx, appt.ID); err == nil && payment.Status == models.PaymentStatusPending {
			if err := s.PayDB.UpdateStatus(ctx, payment.ID, models.PaymentStatusFailed); err != nil {
				zap.S().Warnw("failed to fail stale payment", "error", err, "paymentId", payment.ID.Hex())
			}
		}

		if err := s.SchedDB.ReleaseSlot(ctx, appt.DoctorID, appt.ScheduleDate, appt.SlotID); err != nil {
			zap.S().Warnw("failed to release slot of expired appointment",
				"error", err, "appointmentId", appt.ID.Hex())
		}
	}

	if len(stale) > 0 {
		zap.S().Infow("Stale appointment cleanup complete",
			"found", len(stale),
			"expired", expired,
			"instance", s.instanceID,
		)
	}
}

// fanOutReminderDays creates the day's dose rows for every reminder active
// today and marks earlier still pending doses as missed
func (s *Scheduler) fanOutReminderDays() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	acquired, err := s.LockDB.TryAcquireLock(ctx, "reminder_fanout_job", s.instanceID, 15*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for reminder fan out job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Reminder fan out job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "reminder_fanout_job", s.instanceID)

	today := time.Now().Format("2006-01-02")
	zap.S().Infow("Running reminder fan out job", "date", today, "instance", s.instanceID)

	reminders, err := s.RemDB.ListActiveOn(ctx, today)
	if err != nil {
		zap.S().Errorw("failed to list active reminders", "error", err)
		return
	}

	rows := 0
	now := primitive.NewDateTimeFromTime(time.Now())
	for _, reminder := range reminders {
		for _, t := range reminder.Times {
			for _, medicine := range reminder.Medicines {
				day := &models.NotificationDay{
					ReminderID:   reminder.ID,
					OwnerID:      reminder.OwnerID,
					Date:         today,
					Time:         t,
					MedicineName: medicine.Name,
					Dosage:       medicine.Dosage,
					Status:       models.DoseStatusPending,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := s.NDayDB.Upsert(ctx, day); err != nil {
					zap.S().Warnw("failed to fan out dose row",
						"error", err, "reminderId", reminder.ID.Hex(), "time", t)
					continue
				}
				rows++
			}
		}
	}

	missed, err := s.NDayDB.MarkMissedBefore(ctx, today)
	if err != nil {
		zap.S().Warnw("failed to mark missed doses", "error", err)
	}

	zap.S().Infow("Reminder fan out complete",
		"reminders", len(reminders),
		"rowsUpserted", rows,
		"markedMissed", missed,
	)
}

// sendDueDoseReminders emails the owner of each dose row whose time has come
// and flips the row to sent
func (s *Scheduler) sendDueDoseReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	acquired, err := s.LockDB.TryAcquireLock(ctx, "dose_reminder_job", s.instanceID, 10*time.Minute)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for dose reminder job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("Dose reminder job already running on another instance, skipping")
		return
	}
	defer s.LockDB.ReleaseLock(ctx, "dose_reminder_job", s.instanceID)

	now := time.Now()
	today := now.Format("2006-01-02")
	due, err := s.NDayDB.FindDue(ctx, today, now.Format("15:04"))
	if err != nil {
		zap.S().Errorw("failed to find due dose reminders", "error", err)
		return
	}

	sent := 0
	for _, dose := range due {
		if dose.SnoozedUntil != nil && dose.SnoozedUntil.Time().After(now) {
			continue
		}
		if err := s.NDayDB.UpdateStatus(ctx, dose.ID, dose.OwnerID, models.DoseStatusSent); err != nil {
			zap.S().Warnw("failed to mark dose sent", "error", err, "doseId", dose.ID.Hex())
			continue
		}
		s.sendDoseEmail(ctx, dose)
		sent++
	}

	if sent > 0 {
		zap.S().Infow("Dose reminder delivery complete", "due", len(due), "sent", sent)
	}
}

func (s *Scheduler) sendDoseEmail(ctx context.Context, dose models.NotificationDay) {
	user, err := s.UDB.GetByID(ctx, dose.OwnerID.Hex())
	if err != nil || user.Email == "" {
		return
	}

	subject := "Medication reminder: " + dose.MedicineName
	body := "It is time to take " + dose.MedicineName
	if dose.Dosage != "" {
		body += " (" + dose.Dosage + ")"
	}
	body += ".\nScheduled for " + dose.Time + " today."
	htmlContent := templates.RenderGenericEmail(subject, body)

	if err := s.sendEmail(user.Email, user.Username, subject, htmlContent, body); err != nil {
		zap.S().Errorw("failed to send dose reminder email", "error", err, "userId", user.ID.Hex())
	}
}

func (s *Scheduler) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("GenCare Clinic", "no-reply@gencareclinic.vn")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
