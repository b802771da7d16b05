package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Payment exposes payment tracking, refunds and the stripe webhook
type Payment struct {
	DB      databases.PaymentTrackingDatabase
	ApptDB  databases.AppointmentDatabase
	PurchDB databases.PackagePurchaseDatabase
	PkgDB   databases.ServicePackageDatabase
	SchedDB databases.DoctorScheduleDatabase
	NotifDB databases.NotificationDatabase
}

const webhookMaxBody = 65536

// StripeWebhookHandler settles checkout sessions. The webhook is the source
// of truth for payment completion, handlers only create pending records.
func (p Payment) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookMaxBody))
	if err != nil {
		config.ErrorStatus("failed to read webhook body", http.StatusServiceUnavailable, w, err)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		config.ErrorStatus("webhook signature verification failed", http.StatusBadRequest, w, err)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			config.ErrorStatus("failed to parse checkout session", http.StatusBadRequest, w, err)
			return
		}
		p.settleSession(r.Context(), &sess)
	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			config.ErrorStatus("failed to parse checkout session", http.StatusBadRequest, w, err)
			return
		}
		p.expireSession(r.Context(), &sess)
	default:
		zap.S().Debugw("ignoring stripe event", "type", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

func (p Payment) findSessionPayment(ctx context.Context, sess *stripe.CheckoutSession) *models.PaymentTracking {
	if sess.ClientReferenceID != "" {
		if payment, err := p.DB.GetByID(ctx, sess.ClientReferenceID); err == nil {
			return payment
		}
	}
	payment, err := p.DB.GetByStripeSessionID(ctx, sess.ID)
	if err != nil {
		zap.S().Errorw("stripe session has no payment record", "sessionId", sess.ID)
		return nil
	}
	return payment
}

func (p Payment) settleSession(ctx context.Context, sess *stripe.CheckoutSession) {
	ctx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()

	payment := p.findSessionPayment(ctx, sess)
	if payment == nil {
		return
	}
	if payment.Status == models.PaymentStatusCompleted {
		// stripe retries deliveries, settling twice is a no-op
		return
	}

	if err := p.DB.UpdateStatus(ctx, payment.ID, models.PaymentStatusCompleted); err != nil {
		zap.S().Errorw("failed to mark payment completed", "error", err, "paymentId", payment.ID.Hex())
		return
	}

	if payment.AppointmentID != nil {
		if err := p.confirmPaidAppointment(ctx, *payment.AppointmentID); err != nil {
			zap.S().Errorw("failed to confirm appointment from webhook", "error", err, "appointmentId", payment.AppointmentID.Hex())
		}
	}
	if payment.PackagePurchaseID != nil {
		if err := p.activatePurchase(ctx, *payment.PackagePurchaseID); err != nil {
			zap.S().Errorw("failed to activate package purchase from webhook", "error", err, "purchaseId", payment.PackagePurchaseID.Hex())
		}
	}

	n := &models.Notification{
		UserID:    payment.CustomerID,
		Type:      "payment_completed",
		Title:     "Payment received",
		Body:      "We have received your payment. Thank you!",
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := p.NotifDB.Create(ctx, n); err != nil {
		zap.S().Warnw("failed to create payment notification", "error", err, "userId", payment.CustomerID.Hex())
	}
	zap.S().Infow("settled stripe checkout session", "paymentId", payment.ID.Hex(), "sessionId", sess.ID)
}

func (p Payment) confirmPaidAppointment(ctx context.Context, appointmentID primitive.ObjectID) error {
	appt, err := p.ApptDB.GetByID(ctx, appointmentID.Hex())
	if err != nil {
		return err
	}
	if appt.Status != models.AppointmentStatusPendingPayment {
		return nil
	}
	return p.ApptDB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusConfirmed)
}

func (p Payment) activatePurchase(ctx context.Context, purchaseID primitive.ObjectID) error {
	purchase, err := p.PurchDB.GetByID(ctx, purchaseID.Hex())
	if err != nil {
		return err
	}
	if purchase.Status == models.PurchaseStatusActive {
		return nil
	}
	pkg, err := p.PkgDB.GetByID(ctx, purchase.PackageID.Hex())
	if err != nil {
		return err
	}
	expiresAt := time.Now().AddDate(0, 0, pkg.ValidityDays)
	return p.PurchDB.Activate(ctx, purchase.ID, pkg.TotalAllowedUses, expiresAt)
}

func (p Payment) expireSession(ctx context.Context, sess *stripe.CheckoutSession) {
	ctx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()

	payment := p.findSessionPayment(ctx, sess)
	if payment == nil || payment.Status != models.PaymentStatusPending {
		return
	}

	if err := p.DB.UpdateStatus(ctx, payment.ID, models.PaymentStatusFailed); err != nil {
		zap.S().Errorw("failed to mark payment failed", "error", err, "paymentId", payment.ID.Hex())
		return
	}
	if payment.AppointmentID != nil {
		appt, err := p.ApptDB.GetByID(ctx, payment.AppointmentID.Hex())
		if err == nil && appt.Status == models.AppointmentStatusPendingPayment {
			if err := p.ApptDB.UpdateStatus(ctx, appt.ID, models.AppointmentStatusPaymentCancelled); err != nil {
				zap.S().Errorw("failed to cancel unpaid appointment", "error", err, "appointmentId", appt.ID.Hex())
			} else if err := p.SchedDB.ReleaseSlot(ctx, appt.DoctorID, appt.ScheduleDate, appt.SlotID); err != nil {
				zap.S().Warnw("failed to release slot of expired checkout", "error", err, "appointmentId", appt.ID.Hex())
			}
		}
	}
	zap.S().Infow("expired stripe checkout session", "paymentId", payment.ID.Hex(), "sessionId", sess.ID)
}

// GetHandler returns one payment, visible to its customer and to staff
func (p Payment) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	payment, err := p.DB.GetByID(ctx, mux.Vars(r)["paymentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "payment"})
		return
	}
	if !models.RoleSatisfies(api.RoleFromContext(r.Context()), models.RoleStaff) &&
		payment.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
		handleError(w, &models.UnauthorizedError{Reason: "payment belongs to another account", Forbidden: true})
		return
	}
	respond(w, http.StatusOK, payment)
}

// ListHandler lists payments for staff, filterable by status
func (p Payment) ListHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if r.URL.Query().Get("refundsOnly") == "true" {
		filter["refund"] = bson.M{"$ne": nil}
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	payments, pagination, err := p.DB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list payments", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, payments, pagination)
}

// RequestRefundHandler files a refund request on a completed payment
func (p Payment) RequestRefundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		BankName      string `json:"bankName"`
		AccountNumber string `json:"accountNumber"`
		AccountHolder string `json:"accountHolder"`
		Reason        string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	verr := &models.ValidationError{Fields: map[string]string{}}
	if req.BankName == "" {
		verr.Fields["bankName"] = "bank name is required"
	}
	if req.AccountNumber == "" {
		verr.Fields["accountNumber"] = "account number is required"
	}
	if req.AccountHolder == "" {
		verr.Fields["accountHolder"] = "account holder is required"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	payment, err := p.DB.GetByID(ctx, mux.Vars(r)["paymentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "payment"})
		return
	}
	if payment.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
		handleError(w, &models.UnauthorizedError{Reason: "payment belongs to another account", Forbidden: true})
		return
	}
	if payment.Status != models.PaymentStatusCompleted {
		config.ValidationStatus(w, models.NewValidationError("payment", "only completed payments can be refunded"))
		return
	}
	if payment.Refund != nil {
		config.ErrorStatus("a refund has already been requested", http.StatusConflict, w, nil)
		return
	}

	refund := &models.RefundRequest{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		Reason:        req.Reason,
		Status:        models.RefundStatusRequested,
		RequestedAt:   primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := p.DB.SetRefund(ctx, payment.ID, refund); err != nil {
		config.ErrorStatus("failed to file refund request", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("refund requested", "paymentId", payment.ID.Hex())
	respondMessage(w, http.StatusCreated, "refund request filed")
}

// ProcessRefundHandler moves a refund request through processing. Marking it
// completed also flips the payment to refunded.
func (p Payment) ProcessRefundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	switch req.Status {
	case models.RefundStatusProcessing, models.RefundStatusCompleted, models.RefundStatusRejected:
	default:
		config.ValidationStatus(w, models.NewValidationError("status", "status must be processing, completed or rejected"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	payment, err := p.DB.GetByID(ctx, mux.Vars(r)["paymentId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "payment"})
		return
	}
	if payment.Refund == nil {
		config.ErrorStatus("payment has no refund request", http.StatusConflict, w, nil)
		return
	}

	processedBy, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}
	if err := p.DB.UpdateRefundStatus(ctx, payment.ID, req.Status, processedBy); err != nil {
		config.ErrorStatus("failed to update refund", http.StatusInternalServerError, w, err)
		return
	}

	n := &models.Notification{
		UserID:    payment.CustomerID,
		Type:      "refund_" + req.Status,
		Title:     "Refund update",
		Body:      "Your refund request is now " + req.Status + ".",
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := p.NotifDB.Create(ctx, n); err != nil {
		zap.S().Warnw("failed to create refund notification", "error", err, "userId", payment.CustomerID.Hex())
	}
	zap.S().Infow("processed refund", "paymentId", payment.ID.Hex(), "status", req.Status)
	respondMessage(w, http.StatusOK, "refund updated")
}

// SuccessRedirectHandler is the browser return page after a paid checkout
func (p Payment) SuccessRedirectHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<html><body><h2>Payment received</h2><p>You can close this window and return to the GenCare app.</p></body></html>"))
}

// CancelRedirectHandler is the browser return page after an abandoned checkout
func (p Payment) CancelRedirectHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<html><body><h2>Payment cancelled</h2><p>Your booking is still awaiting payment. You can retry from the GenCare app.</p></body></html>"))
}
