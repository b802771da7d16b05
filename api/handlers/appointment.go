package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// customers may cancel only once this much time has passed since booking
const cancelCutoff = 10 * time.Minute

// Appointment exposes the booking lifecycle endpoints
type Appointment struct {
	DB        databases.AppointmentDatabase
	SchedDB   databases.DoctorScheduleDatabase
	ServiceDB databases.ServiceDatabase
	PurchDB   databases.PackagePurchaseDatabase
	PayDB     databases.PaymentTrackingDatabase
	PatientDB databases.PatientProfileDatabase
	DoctorDB  databases.DoctorDatabase
	NotifDB   databases.NotificationDatabase
	BaseURL   string
}

type createAppointmentRequest struct {
	PatientID         string `json:"patientId"`
	DoctorID          string `json:"doctorId"`
	ServiceID         string `json:"serviceId"`
	PackagePurchaseID string `json:"packagePurchaseId"`
	AppointmentType   string `json:"appointmentType"`
	ScheduleDate      string `json:"scheduleDate"`
	SlotID            string `json:"slotId"`
}

// CreateHandler books an appointment. All validation happens before any
// write, and the slot booking is the single racing write: losing the race
// rolls the appointment back.
func (a Appointment) CreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	verr := &models.ValidationError{Fields: map[string]string{}}
	patientID, err := primitive.ObjectIDFromHex(req.PatientID)
	if err != nil {
		verr.Fields["patientId"] = "a valid patient id is required"
	}
	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		verr.Fields["doctorId"] = "a valid doctor id is required"
	}
	slotID, err := primitive.ObjectIDFromHex(req.SlotID)
	if err != nil {
		verr.Fields["slotId"] = "a valid slot id is required"
	}
	if _, err := time.Parse("2006-01-02", req.ScheduleDate); err != nil {
		verr.Fields["scheduleDate"] = "scheduleDate must be YYYY-MM-DD"
	}
	if (req.ServiceID == "") == (req.PackagePurchaseID == "") {
		verr.Fields["serviceId"] = "exactly one of serviceId or packagePurchaseId is required"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	customerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	patient, err := a.PatientDB.GetByID(ctx, req.PatientID)
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "patient profile"})
		return
	}
	if patient.OwnerUserID != customerID {
		handleError(w, &models.UnauthorizedError{Reason: "patient profile belongs to another account", Forbidden: true})
		return
	}
	if _, err := a.DoctorDB.GetByID(ctx, req.DoctorID); err != nil {
		handleError(w, &models.NotFoundError{Resource: "doctor"})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	appt := &models.Appointment{
		CustomerID:      customerID,
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentType: req.AppointmentType,
		ScheduleDate:    req.ScheduleDate,
		SlotID:          slotID,
		Status:          models.AppointmentStatusPendingPayment,
		Notes:           []models.AppointmentNote{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var svc *models.Service
	if req.ServiceID != "" {
		svc, err = a.ServiceDB.GetByID(ctx, req.ServiceID)
		if err != nil || !svc.Active {
			handleError(w, &models.NotFoundError{Resource: "service"})
			return
		}
		// the booked slot type must match what the service delivers,
		// checked before any write happens
		if svc.ServiceType != req.AppointmentType {
			config.ValidationStatus(w, models.NewValidationError("appointmentType",
				fmt.Sprintf("appointment type %q does not match service type %q", req.AppointmentType, svc.ServiceType)))
			return
		}
		appt.ServiceID = &svc.ID
	} else {
		purchase, err := a.PurchDB.GetByID(ctx, req.PackagePurchaseID)
		if err != nil {
			handleError(w, &models.NotFoundError{Resource: "package purchase"})
			return
		}
		if purchase.CustomerID != customerID {
			handleError(w, &models.UnauthorizedError{Reason: "package purchase belongs to another account", Forbidden: true})
			return
		}
		if !purchase.IsActive(time.Now()) {
			config.ValidationStatus(w, models.NewValidationError("packagePurchaseId", "package purchase is not active, has expired or has no remaining usages"))
			return
		}
		appt.PackagePurchaseID = &purchase.ID
	}

	apptID, err := a.DB.Create(ctx, appt)
	if err != nil {
		config.ErrorStatus("failed to create appointment", http.StatusInternalServerError, w, err)
		return
	}
	appt.ID = apptID

	if err := a.SchedDB.BookSlot(ctx, doctorID, req.ScheduleDate, slotID, apptID, patientID); err != nil {
		// lost the race or the slot is gone, roll the appointment back
		if delErr := a.DB.Delete(ctx, apptID); delErr != nil {
			zap.S().Errorw("failed to roll back appointment after slot conflict", "error", delErr, "appointmentId", apptID.Hex())
		}
		if errors.Is(err, databases.ErrSlotUnavailable) {
			config.ErrorStatus("slot is no longer available", http.StatusConflict, w, nil)
			return
		}
		config.ErrorStatus("failed to book slot", http.StatusInternalServerError, w, err)
		return
	}

	if svc != nil {
		if err := a.attachCheckout(ctx, appt, svc); err != nil {
			// undo both writes before reporting failure
			if relErr := a.SchedDB.ReleaseSlot(ctx, doctorID, req.ScheduleDate, slotID); relErr != nil {
				zap.S().Errorw("failed to release slot after checkout failure", "error", relErr, "appointmentId", apptID.Hex())
			}
			if delErr := a.DB.Delete(ctx, apptID); delErr != nil {
				zap.S().Errorw("failed to roll back appointment after checkout failure", "error", delErr, "appointmentId", apptID.Hex())
			}
			config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
			return
		}
	}

	zap.S().Infow("created appointment",
		"appointmentId", apptID.Hex(),
		"customerId", customerID.Hex(),
		"doctorId", doctorID.Hex(),
		"date", req.ScheduleDate)
	respond(w, http.StatusCreated, appt)
}

// attachCheckout creates the payment record and stripe checkout session for a
// pay-per-visit appointment
func (a Appointment) attachCheckout(ctx context.Context, appt *models.Appointment, svc *models.Service) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	payment := &models.PaymentTracking{
		CustomerID:    appt.CustomerID,
		AppointmentID: &appt.ID,
		Amount:        svc.Price,
		Currency:      "vnd",
		Reference:     "appt-" + appt.ID.Hex(),
		Status:        models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	payID, err := a.PayDB.Create(ctx, payment)
	if err != nil {
		return err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("vnd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(svc.Name),
				},
				UnitAmount: stripe.Int64(svc.Price),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(a.BaseURL + "/api/v1/payments/success"),
		CancelURL:         stripe.String(a.BaseURL + "/api/v1/payments/cancel"),
		ClientReferenceID: stripe.String(payID.Hex()),
	}
	sess, err := session.New(params)
	if err != nil {
		if cancelErr := a.PayDB.UpdateStatus(ctx, payID, models.PaymentStatusCancelled); cancelErr != nil {
			zap.S().Errorw("failed to cancel payment after stripe failure", "error", cancelErr, "paymentId", payID.Hex())
		}
		return err
	}
	if err := a.PayDB.SetStripeSession(ctx, payID, sess.ID); err != nil {
		zap.S().Warnw("failed to store stripe session id", "error", err, "paymentId", payID.Hex())
	}

	appt.PaymentTrackingID = &payID
	appt.CheckoutURL = sess.URL
	_, err = a.DB.UpdateOne(ctx, bson.M{"_id": appt.ID}, bson.M{"$set": bson.M{
		"paymentTrackingId": payID,
		"checkoutUrl":       sess.URL,
		"updatedAt":         primitive.NewDateTimeFromTime(time.Now()),
	}})
	return err
}

// ConfirmPaymentHandler moves a pending_payment appointment to confirmed.
// For package-backed appointments this is the point where one usage is
// consumed, and the consumption is restored when the confirm fails after it.
func (a Appointment) ConfirmPaymentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appt, err := a.DB.GetByID(ctx, mux.Vars(r)["appointmentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "appointment"})
		return
	}
	if err := a.confirmAppointment(ctx, appt); err != nil {
		if errors.Is(err, databases.ErrUsageExhausted) {
			config.ErrorStatus("package purchase has no remaining usages", http.StatusBadRequest, w, nil)
			return
		}
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			config.ValidationStatus(w, verr)
			return
		}
		config.ErrorStatus("failed to confirm appointment", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "appointment confirmed")
}

// confirmAppointment is shared with the stripe webhook
func (a Appointment) confirmAppointment(ctx context.Context, appt *models.Appointment) error {
	if appt.Status != models.AppointmentStatusPendingPayment {
		return models.NewValidationError("status", "only pending_payment appointments can be confirmed")
	}

	consumed := false
	if appt.PackagePurchaseID != nil {
		if err := a.PurchDB.ConsumeUsage(ctx, *appt.PackagePurchaseID, time.Now()); err != nil {
			return err
		}
		consumed = true
	}

	if err := a.DB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusConfirmed); err != nil {
		if consumed {
			if refundErr := a.PurchDB.RefundUsage(ctx, *appt.PackagePurchaseID); refundErr != nil {
				zap.S().Errorw("failed to restore package usage after confirm failure",
					"error", refundErr, "appointmentId", appt.ID.Hex())
			}
		}
		return err
	}

	if appt.PaymentTrackingID != nil {
		if err := a.PayDB.UpdateStatus(ctx, *appt.PaymentTrackingID, models.PaymentStatusCompleted); err != nil {
			zap.S().Warnw("failed to mark payment completed", "error", err, "paymentId", appt.PaymentTrackingID.Hex())
		}
	}

	a.notify(ctx, appt.CustomerID, "appointment_confirmed", "Appointment confirmed",
		"Your appointment on "+appt.ScheduleDate+" has been confirmed.")
	zap.S().Infow("confirmed appointment", "appointmentId", appt.ID.Hex())
	return nil
}

// usageConsumed reports whether a package usage has already been taken for
// this appointment, which happens at confirmation
func usageConsumed(appt *models.Appointment) bool {
	switch appt.Status {
	case models.AppointmentStatusConfirmed,
		models.AppointmentStatusScheduled,
		models.AppointmentStatusConsulting:
		return true
	}
	return false
}

// CancelHandler cancels an appointment. Customers can cancel their own once
// ten minutes have passed since booking, staff can cancel any non-terminal one.
func (a Appointment) CancelHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appt, err := a.DB.GetByID(ctx, mux.Vars(r)["appointmentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "appointment"})
		return
	}

	role := api.RoleFromContext(r.Context())
	isStaff := models.RoleSatisfies(role, models.RoleStaff)
	if !isStaff {
		if appt.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
			handleError(w, &models.UnauthorizedError{Reason: "appointment belongs to another account", Forbidden: true})
			return
		}
		if time.Since(appt.CreatedAt.Time()) < cancelCutoff {
			config.ValidationStatus(w, models.NewValidationError("appointment",
				"appointments can only be cancelled at least 10 minutes after booking"))
			return
		}
	}

	if !models.CanTransitionAppointment(appt.Status, models.AppointmentStatusCancelled) {
		config.ErrorStatus("appointment can no longer be cancelled", http.StatusConflict, w, nil)
		return
	}

	refunded := false
	if appt.PackagePurchaseID != nil && usageConsumed(appt) {
		// the refund is capped at the original allowance inside the db layer
		if err := a.PurchDB.RefundUsage(ctx, *appt.PackagePurchaseID); err != nil {
			if !errors.Is(err, databases.ErrUsageExhausted) {
				config.ErrorStatus("failed to refund package usage", http.StatusInternalServerError, w, err)
				return
			}
		} else {
			refunded = true
		}
	}

	if err := a.DB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusCancelled); err != nil {
		if refunded {
			if rbErr := a.PurchDB.ConsumeUsage(ctx, *appt.PackagePurchaseID, time.Now()); rbErr != nil {
				zap.S().Errorw("failed to roll back usage refund after cancel failure",
					"error", rbErr, "appointmentId", appt.ID.Hex())
			}
		}
		config.ErrorStatus("failed to cancel appointment", http.StatusInternalServerError, w, err)
		return
	}

	if appt.PaymentTrackingID != nil && appt.Status == models.AppointmentStatusPendingPayment {
		if err := a.PayDB.UpdateStatus(ctx, *appt.PaymentTrackingID, models.PaymentStatusCancelled); err != nil {
			zap.S().Warnw("failed to cancel pending payment", "error", err, "paymentId", appt.PaymentTrackingID.Hex())
		}
	}

	if err := a.SchedDB.ReleaseSlot(ctx, appt.DoctorID, appt.ScheduleDate, appt.SlotID); err != nil {
		zap.S().Warnw("failed to release slot on cancel", "error", err, "appointmentId", appt.ID.Hex())
	}

	a.notify(ctx, appt.CustomerID, "appointment_cancelled", "Appointment cancelled",
		"Your appointment on "+appt.ScheduleDate+" has been cancelled.")
	zap.S().Infow("cancelled appointment", "appointmentId", appt.ID.Hex(), "byStaff", isStaff)
	respondMessage(w, http.StatusOK, "appointment cancelled")
}

// UpdateStatusHandler lets staff walk an appointment through the state machine
func (a Appointment) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appt, err := a.DB.GetByID(ctx, mux.Vars(r)["appointmentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "appointment"})
		return
	}
	if appt.Status == req.Status {
		respondMessage(w, http.StatusOK, "appointment already in requested status")
		return
	}
	if models.IsTerminalAppointmentStatus(appt.Status) {
		config.ErrorStatus("appointment is in a terminal status", http.StatusConflict, w, nil)
		return
	}
	if !models.CanTransitionAppointment(appt.Status, req.Status) {
		config.ValidationStatus(w, models.NewValidationError("status",
			fmt.Sprintf("cannot move appointment from %q to %q", appt.Status, req.Status)))
		return
	}

	if err := a.DB.UpdateStatus(ctx, appt.ID, req.Status); err != nil {
		config.ErrorStatus("failed to update appointment status", http.StatusInternalServerError, w, err)
		return
	}

	switch req.Status {
	case models.AppointmentStatusCancelled,
		models.AppointmentStatusPaymentCancelled,
		models.AppointmentStatusExpired:
		if err := a.SchedDB.ReleaseSlot(ctx, appt.DoctorID, appt.ScheduleDate, appt.SlotID); err != nil {
			zap.S().Warnw("failed to release slot on status change", "error", err, "appointmentId", appt.ID.Hex())
		}
	}

	zap.S().Infow("updated appointment status", "appointmentId", appt.ID.Hex(), "from", appt.Status, "to", req.Status)
	respondMessage(w, http.StatusOK, "appointment status updated")
}

// DoctorCancelHandler lets the assigned doctor call off an appointment. The
// slot becomes Absent instead of Free so nobody books into it.
func (a Appointment) DoctorCancelHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Reason == "" {
		config.ValidationStatus(w, models.NewValidationError("reason", "a cancellation reason is required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appt, err := a.DB.GetByID(ctx, mux.Vars(r)["appointmentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "appointment"})
		return
	}

	callerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}
	doctor, err := a.DoctorDB.GetByUserID(ctx, callerID)
	if err != nil || doctor.ID != appt.DoctorID {
		handleError(w, &models.UnauthorizedError{Reason: "appointment is assigned to another doctor", Forbidden: true})
		return
	}

	if !models.CanTransitionAppointment(appt.Status, models.AppointmentStatusCancelled) {
		config.ErrorStatus("appointment can no longer be cancelled", http.StatusConflict, w, nil)
		return
	}

	if appt.PackagePurchaseID != nil && usageConsumed(appt) {
		if err := a.PurchDB.RefundUsage(ctx, *appt.PackagePurchaseID); err != nil && !errors.Is(err, databases.ErrUsageExhausted) {
			zap.S().Errorw("failed to refund package usage on doctor cancel", "error", err, "appointmentId", appt.ID.Hex())
		}
	}

	if err := a.DB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusCancelled); err != nil {
		config.ErrorStatus("failed to cancel appointment", http.StatusInternalServerError, w, err)
		return
	}
	note := models.AppointmentNote{
		Author:    api.EmailFromContext(r.Context()),
		Text:      "Cancelled by doctor: " + req.Reason,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := a.DB.AppendNote(ctx, appt.ID, note); err != nil {
		zap.S().Warnw("failed to append cancellation note", "error", err, "appointmentId", appt.ID.Hex())
	}
	if err := a.SchedDB.MarkSlotAbsent(ctx, appt.DoctorID, appt.ScheduleDate, appt.SlotID); err != nil {
		zap.S().Warnw("failed to mark slot absent", "error", err, "appointmentId", appt.ID.Hex())
	}

	a.notify(ctx, appt.CustomerID, "appointment_cancelled", "Appointment cancelled by doctor",
		"Your appointment on "+appt.ScheduleDate+" was cancelled by the doctor: "+req.Reason)
	zap.S().Infow("doctor cancelled appointment", "appointmentId", appt.ID.Hex(), "doctorId", doctor.ID.Hex())
	respondMessage(w, http.StatusOK, "appointment cancelled")
}

// AddNoteHandler appends a staff note to an appointment
func (a Appointment) AddNoteHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Text == "" {
		config.ValidationStatus(w, models.NewValidationError("text", "note text is required"))
		return
	}

	apptID, err := primitive.ObjectIDFromHex(mux.Vars(r)["appointmentId"])
	if err != nil {
		config.ErrorStatus("invalid appointment id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	note := models.AppointmentNote{
		Author:    api.EmailFromContext(r.Context()),
		Text:      req.Text,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := a.DB.AppendNote(ctx, apptID, note); err != nil {
		config.ErrorStatus("failed to append note", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusCreated, "note added")
}

// GetHandler returns one appointment, visible to its customer and to staff
func (a Appointment) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appt, err := a.DB.GetByID(ctx, mux.Vars(r)["appointmentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "appointment"})
		return
	}
	if !models.RoleSatisfies(api.RoleFromContext(r.Context()), models.RoleStaff) &&
		appt.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
		handleError(w, &models.UnauthorizedError{Reason: "appointment belongs to another account", Forbidden: true})
		return
	}
	respond(w, http.StatusOK, appt)
}

// ListHandler lists appointments. Customers always see only their own, staff
// can filter by doctor, status and date.
func (a Appointment) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{}
	if models.RoleSatisfies(api.RoleFromContext(r.Context()), models.RoleStaff) {
		if doctorID := r.URL.Query().Get("doctorId"); doctorID != "" {
			oid, err := primitive.ObjectIDFromHex(doctorID)
			if err != nil {
				config.ErrorStatus("invalid doctor id", http.StatusBadRequest, w, err)
				return
			}
			filter["doctorId"] = oid
		}
	} else {
		customerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
		if err != nil {
			config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
			return
		}
		filter["customerId"] = customerID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["scheduleDate"] = date
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appts, pagination, err := a.DB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list appointments", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, appts, pagination)
}

func (a Appointment) notify(ctx context.Context, userID primitive.ObjectID, kind, title, body string) {
	n := &models.Notification{
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := a.NotifDB.Create(ctx, n); err != nil {
		zap.S().Warnw("failed to create notification", "error", err, "userId", userID.Hex())
	}
}
