package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/api/scheduler"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	dbHelper  databases.DatabaseHelper
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	api.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{
		DB:  databases.NewUserDatabase(a.dbHelper),
		LDB: databases.NewLoginHistoryDatabase(a.dbHelper),
		PDB: databases.NewPatientProfileDatabase(a.dbHelper),
	}
	d := Doctor{
		DB:  databases.NewDoctorDatabase(a.dbHelper),
		UDB: databases.NewUserDatabase(a.dbHelper),
	}
	sched := Schedule{
		DB:    databases.NewDoctorScheduleDatabase(a.dbHelper),
		DocDB: databases.NewDoctorDatabase(a.dbHelper),
	}
	appt := Appointment{
		DB:        databases.NewAppointmentDatabase(a.dbHelper),
		SchedDB:   databases.NewDoctorScheduleDatabase(a.dbHelper),
		ServiceDB: databases.NewServiceDatabase(a.dbHelper),
		PurchDB:   databases.NewPackagePurchaseDatabase(a.dbHelper),
		PayDB:     databases.NewPaymentTrackingDatabase(a.dbHelper),
		PatientDB: databases.NewPatientProfileDatabase(a.dbHelper),
		DoctorDB:  databases.NewDoctorDatabase(a.dbHelper),
		NotifDB:   databases.NewNotificationDatabase(a.dbHelper),
		BaseURL:   a.Config.BaseURL,
	}
	pay := Payment{
		DB:      databases.NewPaymentTrackingDatabase(a.dbHelper),
		ApptDB:  databases.NewAppointmentDatabase(a.dbHelper),
		PurchDB: databases.NewPackagePurchaseDatabase(a.dbHelper),
		PkgDB:   databases.NewServicePackageDatabase(a.dbHelper),
		SchedDB: databases.NewDoctorScheduleDatabase(a.dbHelper),
		NotifDB: databases.NewNotificationDatabase(a.dbHelper),
	}
	purch := PackagePurchase{
		DB:      databases.NewPackagePurchaseDatabase(a.dbHelper),
		PkgDB:   databases.NewServicePackageDatabase(a.dbHelper),
		PayDB:   databases.NewPaymentTrackingDatabase(a.dbHelper),
		PromoDB: databases.NewPromotionDatabase(a.dbHelper),
		BaseURL: a.Config.BaseURL,
	}
	svc := Service{
		DB:    databases.NewServiceDatabase(a.dbHelper),
		PkgDB: databases.NewServicePackageDatabase(a.dbHelper),
	}
	cyc := Cycle{
		DB:    databases.NewMenstrualCycleDatabase(a.dbHelper),
		DayDB: databases.NewCycleDayDatabase(a.dbHelper),
	}
	rem := Reminder{
		DB:  databases.NewMedicationReminderDatabase(a.dbHelper),
		NDB: databases.NewNotificationDayDatabase(a.dbHelper),
	}
	notif := NotificationHandler{DB: databases.NewNotificationDatabase(a.dbHelper)}
	rev := Review{
		DB:     databases.NewReviewDatabase(a.dbHelper),
		DocDB:  databases.NewDoctorDatabase(a.dbHelper),
		ApptDB: databases.NewAppointmentDatabase(a.dbHelper),
	}
	promo := Promotion{DB: databases.NewPromotionDatabase(a.dbHelper)}
	wish := Wishlist{DB: databases.NewWishlistDatabase(a.dbHelper)}
	med := Medicine{DB: databases.NewMedicineDatabase(a.dbHelper)}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	// public auth routes
	apiCreate.Handle("/auth/register", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/verify-email", http.HandlerFunc(u.VerifyEmailHandler)).Methods("GET")
	apiCreate.Handle("/auth/forgot-password", http.HandlerFunc(u.ForgotPasswordHandler)).Methods("POST")
	apiCreate.Handle("/auth/reset-password", http.HandlerFunc(u.ResetPasswordHandler)).Methods("POST")

	// account
	apiCreate.Handle("/users/me", api.Middleware(http.HandlerFunc(u.MeHandler))).Methods("GET")
	apiCreate.Handle("/users/me", api.Middleware(http.HandlerFunc(u.UpdateProfileHandler))).Methods("PUT")
	apiCreate.Handle("/users/me/password", api.Middleware(http.HandlerFunc(u.ChangePasswordHandler))).Methods("PUT")
	apiCreate.Handle("/users/me/login-history", api.Middleware(http.HandlerFunc(u.LoginHistoryHandler))).Methods("GET")
	apiCreate.Handle("/users", api.RequireRole(models.RoleStaff, http.HandlerFunc(u.ListUsersHandler))).Methods("GET")
	apiCreate.Handle("/users/staff", api.RequireRole(models.RoleAdmin, http.HandlerFunc(u.CreateStaffHandler))).Methods("POST")
	apiCreate.Handle("/users/{userId}/active", api.RequireRole(models.RoleAdmin, http.HandlerFunc(u.SetUserActiveHandler))).Methods("PUT")

	// patient profiles owned by the account
	apiCreate.Handle("/patients", api.Middleware(http.HandlerFunc(u.CreatePatientProfileHandler))).Methods("POST")
	apiCreate.Handle("/patients", api.Middleware(http.HandlerFunc(u.ListPatientProfilesHandler))).Methods("GET")
	apiCreate.Handle("/patients/{patientId}", api.Middleware(http.HandlerFunc(u.UpdatePatientProfileHandler))).Methods("PUT")
	apiCreate.Handle("/patients/{patientId}", api.Middleware(http.HandlerFunc(u.DeletePatientProfileHandler))).Methods("DELETE")

	// doctor directory, browsing is public
	apiCreate.Handle("/doctors", http.HandlerFunc(d.ListDoctorsHandler)).Methods("GET")
	apiCreate.Handle("/doctors/{doctorId}", http.HandlerFunc(d.GetDoctorHandler)).Methods("GET")
	apiCreate.Handle("/doctors", api.RequireRole(models.RoleManager, http.HandlerFunc(d.CreateDoctorHandler))).Methods("POST")
	apiCreate.Handle("/doctors/{doctorId}", api.RequireRole(models.RoleManager, http.HandlerFunc(d.UpdateDoctorHandler))).Methods("PUT")
	apiCreate.Handle("/doctors/{doctorId}/reviews", http.HandlerFunc(rev.ListDoctorReviewsHandler)).Methods("GET")

	// schedules
	apiCreate.Handle("/doctors/{doctorId}/schedules", api.Middleware(http.HandlerFunc(sched.ListByDoctorHandler))).Methods("GET")
	apiCreate.Handle("/doctors/{doctorId}/schedules/{date}", api.Middleware(http.HandlerFunc(sched.GetDayHandler))).Methods("GET")
	apiCreate.Handle("/doctors/{doctorId}/schedules", api.RequireRole(models.RoleStaff, http.HandlerFunc(sched.UpsertWeekHandler))).Methods("PUT")

	// appointments
	apiCreate.Handle("/appointments", api.Middleware(http.HandlerFunc(appt.CreateHandler))).Methods("POST")
	apiCreate.Handle("/appointments", api.Middleware(http.HandlerFunc(appt.ListHandler))).Methods("GET")
	apiCreate.Handle("/appointments/{appointmentId}", api.Middleware(http.HandlerFunc(appt.GetHandler))).Methods("GET")
	apiCreate.Handle("/appointments/{appointmentId}/confirm", api.RequireRole(models.RoleStaff, http.HandlerFunc(appt.ConfirmPaymentHandler))).Methods("POST")
	apiCreate.Handle("/appointments/{appointmentId}/cancel", api.Middleware(http.HandlerFunc(appt.CancelHandler))).Methods("PUT")
	apiCreate.Handle("/appointments/{appointmentId}/status", api.RequireRole(models.RoleStaff, http.HandlerFunc(appt.UpdateStatusHandler))).Methods("PUT")
	apiCreate.Handle("/appointments/{appointmentId}/doctor-cancel", api.RequireRole(models.RoleDoctor, http.HandlerFunc(appt.DoctorCancelHandler))).Methods("PUT")
	apiCreate.Handle("/appointments/{appointmentId}/notes", api.RequireRole(models.RoleStaff, http.HandlerFunc(appt.AddNoteHandler))).Methods("POST")

	// payments
	apiCreate.Handle("/payments/webhook", http.HandlerFunc(pay.StripeWebhookHandler)).Methods("POST")
	apiCreate.Handle("/payments/success", http.HandlerFunc(pay.SuccessRedirectHandler)).Methods("GET")
	apiCreate.Handle("/payments/cancel", http.HandlerFunc(pay.CancelRedirectHandler)).Methods("GET")
	apiCreate.Handle("/payments", api.RequireRole(models.RoleStaff, http.HandlerFunc(pay.ListHandler))).Methods("GET")
	apiCreate.Handle("/payments/{paymentId}", api.Middleware(http.HandlerFunc(pay.GetHandler))).Methods("GET")
	apiCreate.Handle("/payments/{paymentId}/refund-request", api.Middleware(http.HandlerFunc(pay.RequestRefundHandler))).Methods("POST")
	apiCreate.Handle("/payments/{paymentId}/refund", api.RequireRole(models.RoleStaff, http.HandlerFunc(pay.ProcessRefundHandler))).Methods("PUT")

	// services and prepaid packages
	apiCreate.Handle("/services", http.HandlerFunc(svc.ListServicesHandler)).Methods("GET")
	apiCreate.Handle("/services/{serviceId}", http.HandlerFunc(svc.GetServiceHandler)).Methods("GET")
	apiCreate.Handle("/services", api.RequireRole(models.RoleManager, http.HandlerFunc(svc.CreateServiceHandler))).Methods("POST")
	apiCreate.Handle("/services/{serviceId}", api.RequireRole(models.RoleManager, http.HandlerFunc(svc.UpdateServiceHandler))).Methods("PUT")
	apiCreate.Handle("/service-packages", http.HandlerFunc(svc.ListPackagesHandler)).Methods("GET")
	apiCreate.Handle("/service-packages/{packageId}", http.HandlerFunc(svc.GetPackageHandler)).Methods("GET")
	apiCreate.Handle("/service-packages", api.RequireRole(models.RoleManager, http.HandlerFunc(svc.CreatePackageHandler))).Methods("POST")
	apiCreate.Handle("/service-packages/{packageId}", api.RequireRole(models.RoleManager, http.HandlerFunc(svc.UpdatePackageHandler))).Methods("PUT")
	apiCreate.Handle("/package-purchases", api.Middleware(http.HandlerFunc(purch.PurchaseHandler))).Methods("POST")
	apiCreate.Handle("/package-purchases", api.Middleware(http.HandlerFunc(purch.ListMineHandler))).Methods("GET")
	apiCreate.Handle("/package-purchases/{purchaseId}", api.Middleware(http.HandlerFunc(purch.GetHandler))).Methods("GET")

	// menstrual cycle tracking
	apiCreate.Handle("/cycles", api.Middleware(http.HandlerFunc(cyc.CreateHandler))).Methods("POST")
	apiCreate.Handle("/cycles", api.Middleware(http.HandlerFunc(cyc.ListHandler))).Methods("GET")
	apiCreate.Handle("/cycles/{cycleId}", api.Middleware(http.HandlerFunc(cyc.GetHandler))).Methods("GET")
	apiCreate.Handle("/cycles/{cycleId}", api.Middleware(http.HandlerFunc(cyc.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/cycles/{cycleId}/days", api.Middleware(http.HandlerFunc(cyc.UpsertDayHandler))).Methods("PUT")
	apiCreate.Handle("/cycles/{cycleId}/days", api.Middleware(http.HandlerFunc(cyc.ListDaysHandler))).Methods("GET")
	apiCreate.Handle("/cycles/{cycleId}/days/{date}", api.Middleware(http.HandlerFunc(cyc.DeleteDayHandler))).Methods("DELETE")
	apiCreate.Handle("/cycles/{cycleId}/analysis", api.Middleware(http.HandlerFunc(cyc.AnalysisHandler))).Methods("GET")
	apiCreate.Handle("/cycles/{cycleId}/gender-prediction", api.Middleware(http.HandlerFunc(cyc.GenderPredictionHandler))).Methods("GET")

	// medication reminders
	apiCreate.Handle("/medication-reminders", api.Middleware(http.HandlerFunc(rem.CreateHandler))).Methods("POST")
	apiCreate.Handle("/medication-reminders", api.Middleware(http.HandlerFunc(rem.ListHandler))).Methods("GET")
	apiCreate.Handle("/medication-reminders/{reminderId}", api.Middleware(http.HandlerFunc(rem.GetHandler))).Methods("GET")
	apiCreate.Handle("/medication-reminders/{reminderId}", api.Middleware(http.HandlerFunc(rem.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/medication-notifications", api.Middleware(http.HandlerFunc(rem.ListDayHandler))).Methods("GET")
	apiCreate.Handle("/medication-notifications/{notificationId}/taken", api.Middleware(http.HandlerFunc(rem.MarkTakenHandler))).Methods("PUT")
	apiCreate.Handle("/medication-notifications/{notificationId}/skip", api.Middleware(http.HandlerFunc(rem.SkipHandler))).Methods("PUT")
	apiCreate.Handle("/medication-notifications/{notificationId}/snooze", api.Middleware(http.HandlerFunc(rem.SnoozeHandler))).Methods("PUT")

	// in-app notifications
	apiCreate.Handle("/notifications", api.Middleware(http.HandlerFunc(notif.ListHandler))).Methods("GET")
	apiCreate.Handle("/notifications/stream", api.Middleware(http.HandlerFunc(notif.StreamHandler))).Methods("GET")
	apiCreate.Handle("/notifications/{notificationId}/read", api.Middleware(http.HandlerFunc(notif.MarkReadHandler))).Methods("PUT")
	apiCreate.Handle("/notifications/{notificationId}", api.Middleware(http.HandlerFunc(notif.DeleteHandler))).Methods("DELETE")

	// reviews
	apiCreate.Handle("/reviews", api.Middleware(http.HandlerFunc(rev.CreateHandler))).Methods("POST")
	apiCreate.Handle("/reviews/{reviewId}", api.Middleware(http.HandlerFunc(rev.UpdateHandler))).Methods("PUT")

	// promotions
	apiCreate.Handle("/promotions", api.RequireRole(models.RoleStaff, http.HandlerFunc(promo.ListHandler))).Methods("GET")
	apiCreate.Handle("/promotions", api.RequireRole(models.RoleManager, http.HandlerFunc(promo.CreateHandler))).Methods("POST")
	apiCreate.Handle("/promotions/{promotionId}", api.RequireRole(models.RoleManager, http.HandlerFunc(promo.UpdateHandler))).Methods("PUT")
	apiCreate.Handle("/promotions/validate", api.Middleware(http.HandlerFunc(promo.ValidateHandler))).Methods("GET")

	// wishlist
	apiCreate.Handle("/wishlist", api.Middleware(http.HandlerFunc(wish.AddHandler))).Methods("POST")
	apiCreate.Handle("/wishlist", api.Middleware(http.HandlerFunc(wish.ListHandler))).Methods("GET")
	apiCreate.Handle("/wishlist/{itemId}", api.Middleware(http.HandlerFunc(wish.RemoveHandler))).Methods("DELETE")

	// medicine catalog
	apiCreate.Handle("/medicines", http.HandlerFunc(med.ListHandler)).Methods("GET")
	apiCreate.Handle("/medicines/{medicineId}", http.HandlerFunc(med.GetHandler)).Methods("GET")
	apiCreate.Handle("/medicines", api.RequireRole(models.RoleStaff, http.HandlerFunc(med.CreateHandler))).Methods("POST")
	apiCreate.Handle("/medicines/{medicineId}", api.RequireRole(models.RoleStaff, http.HandlerFunc(med.UpdateHandler))).Methods("PUT")

	// media uploads
	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")
	apiCreate.Handle("/uploads", api.Middleware(http.HandlerFunc(cloudinaryHandler.UploadHandler))).Methods("POST")

	// ops
	apiCreate.Handle("/metrics", api.RequireRole(models.RoleAdmin, http.HandlerFunc(metricsHandler))).Methods("GET")

	r.Use(api.MetricsMiddleware)
	r.Use(api.TimeoutMiddleware(30 * time.Second))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("gencare-api has connected to the database")

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return fmt.Errorf("stripe secret key is not set")
	}
	stripe.Key = stripeKey

	api.InitMetrics()

	a.scheduler = scheduler.NewScheduler(
		databases.NewAppointmentDatabase(a.dbHelper),
		databases.NewDoctorScheduleDatabase(a.dbHelper),
		databases.NewPaymentTrackingDatabase(a.dbHelper),
		databases.NewMedicationReminderDatabase(a.dbHelper),
		databases.NewNotificationDayDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
		databases.NewSchedulerLockDatabase(a.dbHelper),
	)
	a.scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(api.GetMetrics().Summary())
}
