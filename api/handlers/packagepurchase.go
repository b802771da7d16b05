package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// PackagePurchase exposes prepaid package buying and browsing
type PackagePurchase struct {
	DB      databases.PackagePurchaseDatabase
	PkgDB   databases.ServicePackageDatabase
	PayDB   databases.PaymentTrackingDatabase
	PromoDB databases.PromotionDatabase
	BaseURL string
}

// PurchaseHandler starts a package purchase: a pending purchase plus a stripe
// checkout session. Activation happens when the webhook settles the payment.
func (p PackagePurchase) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		PackageID     string `json:"packageId"`
		PromotionCode string `json:"promotionCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	customerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	pkg, err := p.PkgDB.GetByID(ctx, req.PackageID)
	if err != nil || !pkg.Active {
		handleError(w, &models.NotFoundError{Resource: "service package"})
		return
	}

	amount := pkg.Price
	if req.PromotionCode != "" {
		promo, err := p.PromoDB.GetByCode(ctx, req.PromotionCode)
		if err != nil || !promo.IsValid(time.Now()) {
			config.ValidationStatus(w, models.NewValidationError("promotionCode", "promotion code is invalid or expired"))
			return
		}
		amount = amount - amount*int64(promo.DiscountPercent)/100
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	purchase := &models.PackagePurchase{
		CustomerID:       customerID,
		PackageID:        pkg.ID,
		TotalAllowedUses: pkg.TotalAllowedUses,
		RemainingUsages:  0,
		Status:           models.PurchaseStatusPending,
		PurchasedAt:      now,
	}
	purchaseID, err := p.DB.Create(ctx, purchase)
	if err != nil {
		config.ErrorStatus("failed to create purchase", http.StatusInternalServerError, w, err)
		return
	}
	purchase.ID = purchaseID

	payment := &models.PaymentTracking{
		CustomerID:        customerID,
		PackagePurchaseID: &purchaseID,
		Amount:            amount,
		Currency:          "vnd",
		Reference:         "pkg-" + purchaseID.Hex(),
		Status:            models.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	payID, err := p.PayDB.Create(ctx, payment)
	if err != nil {
		config.ErrorStatus("failed to create payment", http.StatusInternalServerError, w, err)
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("vnd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(pkg.Name),
				},
				UnitAmount: stripe.Int64(amount),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(p.BaseURL + "/api/v1/payments/success"),
		CancelURL:         stripe.String(p.BaseURL + "/api/v1/payments/cancel"),
		ClientReferenceID: stripe.String(payID.Hex()),
	}
	sess, err := session.New(params)
	if err != nil {
		if cancelErr := p.PayDB.UpdateStatus(ctx, payID, models.PaymentStatusCancelled); cancelErr != nil {
			zap.S().Errorw("failed to cancel payment after stripe failure", "error", cancelErr, "paymentId", payID.Hex())
		}
		config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
		return
	}
	if err := p.PayDB.SetStripeSession(ctx, payID, sess.ID); err != nil {
		zap.S().Warnw("failed to store stripe session id", "error", err, "paymentId", payID.Hex())
	}

	zap.S().Infow("started package purchase", "purchaseId", purchaseID.Hex(), "packageId", pkg.ID.Hex(), "amount", amount)
	respond(w, http.StatusCreated, map[string]interface{}{
		"purchase":    purchase,
		"checkoutUrl": sess.URL,
	})
}

// ListMineHandler lists the caller's package purchases
func (p PackagePurchase) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	purchases, err := p.DB.ListByCustomer(ctx, customerID)
	if err != nil {
		config.ErrorStatus("failed to list purchases", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, purchases)
}

// GetHandler returns one purchase, visible to its customer and to staff
func (p PackagePurchase) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	purchase, err := p.DB.GetByID(ctx, mux.Vars(r)["purchaseId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "package purchase"})
		return
	}
	if !models.RoleSatisfies(api.RoleFromContext(r.Context()), models.RoleStaff) &&
		purchase.CustomerID.Hex() != api.UserIDFromContext(r.Context()) {
		handleError(w, &models.UnauthorizedError{Reason: "purchase belongs to another account", Forbidden: true})
		return
	}
	respond(w, http.StatusOK, purchase)
}
