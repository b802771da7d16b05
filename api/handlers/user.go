package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

const tokenTTL = 24 * time.Hour

// User exposes the account, auth and patient profile endpoints
type User struct {
	DB  databases.UserDatabase
	LDB databases.LoginHistoryDatabase
	PDB databases.PatientProfileDatabase
}

type registerRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
}

func randomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// RegisterHandler creates a customer account and sends the verification email
func (u User) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	verr := &models.ValidationError{Fields: map[string]string{}}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		verr.Fields["email"] = "a valid email is required"
	}
	if req.Username == "" {
		verr.Fields["username"] = "username is required"
	}
	if len(req.Password) < 8 {
		verr.Fields["password"] = "password must be at least 8 characters"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if existing, err := u.DB.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		config.ValidationStatus(w, models.NewValidationError("email", "email is already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	user := &models.User{
		Email:                 req.Email,
		Username:              req.Username,
		Password:              string(hashed),
		Role:                  models.RoleCustomer,
		Gender:                req.Gender,
		PhoneNumber:           req.PhoneNumber,
		Active:                true,
		EmailVerified:         false,
		VerificationToken:     randomToken(),
		VerificationExpiresAt: primitive.NewDateTimeFromTime(time.Now().Add(48 * time.Hour)),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	id, err := u.DB.Create(ctx, user)
	if err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}
	user.ID = id

	verifyLink := "https://www.gencareclinic.vn/verify-email?token=" + user.VerificationToken
	sendEmailAsync(user.Email, user.Username,
		"Verify your GenCare Clinic account",
		"Welcome to GenCare Clinic!\n\nPlease verify your email address by opening the link below within 48 hours:\n\n"+verifyLink)

	zap.S().Infow("registered new user", "userId", id.Hex())
	respond(w, http.StatusCreated, user)
}

// VerifyEmailHandler confirms the emailed verification token
func (u User) VerifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := r.URL.Query().Get("token")
	if token == "" {
		config.ValidationStatus(w, models.NewValidationError("token", "token is required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := u.DB.UpdateOne(ctx,
		bson.M{
			"verificationToken":     token,
			"verificationExpiresAt": bson.M{"$gt": primitive.NewDateTimeFromTime(time.Now())},
		},
		bson.M{
			"$set":   bson.M{"emailVerified": true, "updatedAt": primitive.NewDateTimeFromTime(time.Now())},
			"$unset": bson.M{"verificationToken": "", "verificationExpiresAt": ""},
		},
	)
	if err != nil {
		config.ErrorStatus("failed to verify email", http.StatusInternalServerError, w, err)
		return
	}
	if res.ModifiedCount == 0 {
		config.ErrorStatus("verification token is invalid or expired", http.StatusBadRequest, w, nil)
		return
	}
	respondMessage(w, http.StatusOK, "email verified")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler checks credentials and issues a signed token
func (u User) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || user == nil {
		config.ErrorStatus("invalid email or password", http.StatusUnauthorized, w, nil)
		return
	}

	success := user.Active &&
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) == nil

	entry := &models.LoginHistory{
		UserID:    user.ID,
		IP:        r.RemoteAddr,
		UserAgent: r.UserAgent(),
		Success:   success,
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := u.LDB.Create(ctx, entry); err != nil {
		zap.S().Warnw("failed to record login history", "error", err, "userId", user.ID.Hex())
	}

	if !success {
		config.ErrorStatus("invalid email or password", http.StatusUnauthorized, w, nil)
		return
	}

	token, err := api.NewToken(user, tokenTTL)
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

// ForgotPasswordHandler emails a reset token. The response does not reveal
// whether the email exists.
func (u User) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err == nil && user != nil {
		reset := randomToken()
		_, err = u.DB.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{
				"resetToken":     reset,
				"resetExpiresAt": primitive.NewDateTimeFromTime(time.Now().Add(time.Hour)),
				"updatedAt":      primitive.NewDateTimeFromTime(time.Now()),
			}},
		)
		if err != nil {
			zap.S().Errorw("failed to set reset token", "error", err, "userId", user.ID.Hex())
		} else {
			resetLink := "https://www.gencareclinic.vn/reset-password?token=" + reset
			sendEmailAsync(user.Email, user.Username,
				"Reset your GenCare Clinic password",
				"We received a request to reset your password.\n\nOpen the link below within one hour to choose a new password:\n\n"+resetLink+"\n\nIf you did not request this you can ignore this email.")
		}
	}
	respondMessage(w, http.StatusOK, "if the email exists, a reset link has been sent")
}

// ResetPasswordHandler sets a new password from a valid reset token
func (u User) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(req.Password) < 8 {
		config.ValidationStatus(w, models.NewValidationError("password", "password must be at least 8 characters"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := u.DB.UpdateOne(ctx,
		bson.M{
			"resetToken":     req.Token,
			"resetExpiresAt": bson.M{"$gt": primitive.NewDateTimeFromTime(time.Now())},
		},
		bson.M{
			"$set":   bson.M{"password": string(hashed), "updatedAt": primitive.NewDateTimeFromTime(time.Now())},
			"$unset": bson.M{"resetToken": "", "resetExpiresAt": ""},
		},
	)
	if err != nil {
		config.ErrorStatus("failed to reset password", http.StatusInternalServerError, w, err)
		return
	}
	if res.ModifiedCount == 0 {
		config.ErrorStatus("reset token is invalid or expired", http.StatusBadRequest, w, nil)
		return
	}
	respondMessage(w, http.StatusOK, "password updated")
}

// MeHandler returns the authenticated user's account
func (u User) MeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.GetByID(ctx, api.UserIDFromContext(r.Context()))
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "user"})
		return
	}
	respond(w, http.StatusOK, user)
}

// UpdateProfileHandler updates the caller's own profile fields
func (u User) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Username    string `json:"username"`
		Gender      string `json:"gender"`
		PhoneNumber string `json:"phoneNumber"`
		AvatarURL   string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Username != "" {
		set["username"] = req.Username
	}
	if req.Gender != "" {
		set["gender"] = req.Gender
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	if req.AvatarURL != "" {
		set["avatarUrl"] = req.AvatarURL
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := u.DB.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set}); err != nil {
		config.ErrorStatus("failed to update profile", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "profile updated")
}

// ChangePasswordHandler rotates the caller's password after checking the
// current one
func (u User) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(req.NewPassword) < 8 {
		config.ValidationStatus(w, models.NewValidationError("newPassword", "password must be at least 8 characters"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.GetByID(ctx, api.UserIDFromContext(r.Context()))
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "user"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		config.ErrorStatus("current password is incorrect", http.StatusUnauthorized, w, nil)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}
	if _, err := u.DB.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"password":  string(hashed),
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}}); err != nil {
		config.ErrorStatus("failed to update password", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "password updated")
}

// LoginHistoryHandler returns the caller's recent login attempts
func (u User) LoginHistoryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	entries, err := u.LDB.ListByUser(ctx, userID, 20)
	if err != nil {
		config.ErrorStatus("failed to list login history", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, entries)
}

// ListUsersHandler returns the user directory for staff, filterable by role
func (u User) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, pagination, err := u.DB.Find(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list users", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, users, pagination)
}

// CreateStaffHandler lets an admin provision staff, manager and doctor accounts
func (u User) CreateStaffHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		registerRequest
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	switch req.Role {
	case models.RoleStaff, models.RoleManager, models.RoleDoctor:
	default:
		config.ValidationStatus(w, models.NewValidationError("role", "role must be staff, manager or doctor"))
		return
	}
	if req.Email == "" || len(req.Password) < 8 {
		config.ValidationStatus(w, models.NewValidationError("email", "email and a password of at least 8 characters are required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := u.DB.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		config.ValidationStatus(w, models.NewValidationError("email", "email is already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	user := &models.User{
		Email:         req.Email,
		Username:      req.Username,
		Password:      string(hashed),
		Role:          req.Role,
		Gender:        req.Gender,
		PhoneNumber:   req.PhoneNumber,
		Active:        true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, err := u.DB.Create(ctx, user)
	if err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}
	user.ID = id
	zap.S().Infow("created staff account", "userId", id.Hex(), "role", req.Role)
	respond(w, http.StatusCreated, user)
}

// SetUserActiveHandler enables or disables an account
func (u User) SetUserActiveHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}
	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := u.DB.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"active":    req.Active,
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}})
	if err != nil {
		config.ErrorStatus("failed to update user", http.StatusInternalServerError, w, err)
		return
	}
	if res.MatchedCount == 0 {
		handleError(w, &models.NotFoundError{Resource: "user"})
		return
	}
	respondMessage(w, http.StatusOK, "user updated")
}

// CreatePatientProfileHandler adds a bookable patient under the caller's account
func (u User) CreatePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var profile models.PatientProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if profile.FullName == "" {
		config.ValidationStatus(w, models.NewValidationError("fullName", "full name is required"))
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	profile.ID = primitive.NilObjectID
	profile.OwnerUserID = ownerID
	profile.CreatedAt = now
	profile.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := u.PDB.Create(ctx, &profile)
	if err != nil {
		config.ErrorStatus("failed to create patient profile", http.StatusInternalServerError, w, err)
		return
	}
	profile.ID = id
	respond(w, http.StatusCreated, profile)
}

// ListPatientProfilesHandler lists the caller's patient profiles
func (u User) ListPatientProfilesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ownerID, err := primitive.ObjectIDFromHex(api.UserIDFromContext(r.Context()))
	if err != nil {
		config.ErrorStatus("invalid user id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	profiles, err := u.PDB.ListByOwner(ctx, ownerID)
	if err != nil {
		config.ErrorStatus("failed to list patient profiles", http.StatusInternalServerError, w, err)
		return
	}
	respond(w, http.StatusOK, profiles)
}

// UpdatePatientProfileHandler updates one of the caller's patient profiles
func (u User) UpdatePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	profile, err := u.ownedProfile(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req struct {
		FullName    string `json:"fullName"`
		DateOfBirth string `json:"dateOfBirth"`
		Gender      string `json:"gender"`
		PhoneNumber string `json:"phoneNumber"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.FullName != "" {
		set["fullName"] = req.FullName
	}
	if req.DateOfBirth != "" {
		set["dateOfBirth"] = req.DateOfBirth
	}
	if req.Gender != "" {
		set["gender"] = req.Gender
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	if req.Notes != "" {
		set["notes"] = req.Notes
	}

	if err := u.PDB.Update(ctx, profile.ID.Hex(), set); err != nil {
		config.ErrorStatus("failed to update patient profile", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "patient profile updated")
}

// DeletePatientProfileHandler removes one of the caller's patient profiles
func (u User) DeletePatientProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	profile, err := u.ownedProfile(ctx, r)
	if err != nil {
		handleError(w, err)
		return
	}
	if err := u.PDB.Delete(ctx, profile.ID.Hex()); err != nil {
		config.ErrorStatus("failed to delete patient profile", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "patient profile deleted")
}

func (u User) ownedProfile(ctx context.Context, r *http.Request) (*models.PatientProfile, error) {
	profile, err := u.PDB.GetByID(ctx, mux.Vars(r)["patientId"])
	if err != nil {
		return nil, &models.NotFoundError{Resource: "patient profile"}
	}
	if profile.OwnerUserID.Hex() != api.UserIDFromContext(r.Context()) {
		return nil, &models.UnauthorizedError{Reason: "patient profile belongs to another account", Forbidden: true}
	}
	return profile, nil
}
