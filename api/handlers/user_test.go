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
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/api/handlers"
	"github.com/gencareclinic/gencare-api/databases/mocks"
	"github.com/gencareclinic/gencare-api/models"
)

func TestUser_RegisterHandlerValidation(t *testing.T) {
	body := `{"email":"not-an-email","username":"","password":"short"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.User{DB: &mocks.UserDatabase{}, LDB: &mocks.LoginHistoryDatabase{}, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email")
	assert.Contains(t, rr.Body.String(), "username")
	assert.Contains(t, rr.Body.String(), "password")
}

func TestUser_RegisterHandlerDuplicateEmail(t *testing.T) {
	body := `{"email":"Jane@Example.com","username":"jane","password":"supersecret"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.UserDatabase{}
	db.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&models.User{ID: primitive.NewObjectID(), Email: "jane@example.com"}, nil)

	u := handlers.User{DB: db, LDB: &mocks.LoginHistoryDatabase{}, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already registered")
	db.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUser_RegisterHandlerCreatesCustomer(t *testing.T) {
	body := `{"email":"jane@example.com","username":"jane","password":"supersecret","gender":"female"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	userID := primitive.NewObjectID()
	db := &mocks.UserDatabase{}
	db.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, errors.New("mongo: no documents in result"))
	db.On("Create", mock.Anything, mock.Anything).Return(userID, nil)

	u := handlers.User{DB: db, LDB: &mocks.LoginHistoryDatabase{}, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, models.RoleCustomer, got.Role)
	assert.False(t, got.EmailVerified)
	db.AssertExpectations(t)
}

func TestUser_LoginHandlerSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	userID := primitive.NewObjectID()

	db := &mocks.UserDatabase{}
	db.On("GetByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		ID:       userID,
		Email:    "jane@example.com",
		Username: "jane",
		Password: string(hashed),
		Role:     models.RoleCustomer,
		Active:   true,
	}, nil)
	ldb := &mocks.LoginHistoryDatabase{}
	ldb.On("Create", mock.Anything, mock.MatchedBy(func(e *models.LoginHistory) bool {
		return e.UserID == userID && e.Success
	})).Return(nil)

	body := `{"email":"jane@example.com","password":"supersecret"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.User{DB: db, LDB: ldb, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.NotEmpty(t, got["token"])
	ldb.AssertExpectations(t)
}

func TestUser_LoginHandlerWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	userID := primitive.NewObjectID()

	db := &mocks.UserDatabase{}
	db.On("GetByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		ID:       userID,
		Email:    "jane@example.com",
		Password: string(hashed),
		Active:   true,
	}, nil)
	ldb := &mocks.LoginHistoryDatabase{}
	ldb.On("Create", mock.Anything, mock.MatchedBy(func(e *models.LoginHistory) bool {
		return e.UserID == userID && !e.Success
	})).Return(nil)

	body := `{"email":"jane@example.com","password":"wrong-password"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.User{DB: db, LDB: ldb, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	ldb.AssertExpectations(t)
}

func TestUser_VerifyEmailHandlerExpiredToken(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/auth/verify-email?token=stale-token", nil)
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.UserDatabase{}
	db.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil)

	u := handlers.User{DB: db, LDB: &mocks.LoginHistoryDatabase{}, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.VerifyEmailHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid or expired")
}

func TestUser_CreateStaffHandlerRejectsCustomerRole(t *testing.T) {
	body := `{"email":"mod@example.com","username":"mod","password":"supersecret","role":"customer"}`
	req, err := http.NewRequest("POST", "/api/v1/admin/users", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleAdmin))

	u := handlers.User{DB: &mocks.UserDatabase{}, LDB: &mocks.LoginHistoryDatabase{}, PDB: &mocks.PatientProfileDatabase{}}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreateStaffHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "role must be staff, manager or doctor")
}

func TestUser_CreatePatientProfileHandler(t *testing.T) {
	ownerID := primitive.NewObjectID()
	profileID := primitive.NewObjectID()

	pdb := &mocks.PatientProfileDatabase{}
	pdb.On("Create", mock.Anything, mock.MatchedBy(func(p *models.PatientProfile) bool {
		return p.OwnerUserID == ownerID && p.FullName == "Tran Thi B"
	})).Return(profileID, nil)

	body := `{"fullName":"Tran Thi B","dateOfBirth":"1995-04-12","gender":"female"}`
	req, err := http.NewRequest("POST", "/api/v1/patients", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = req.WithContext(api.WithCaller(req.Context(), ownerID.Hex(), models.RoleCustomer))

	u := handlers.User{DB: &mocks.UserDatabase{}, LDB: &mocks.LoginHistoryDatabase{}, PDB: pdb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreatePatientProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.PatientProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, profileID, got.ID)
	assert.Equal(t, ownerID, got.OwnerUserID)
	pdb.AssertExpectations(t)
}

func TestUser_DeletePatientProfileHandlerWrongOwner(t *testing.T) {
	profileID := primitive.NewObjectID()

	pdb := &mocks.PatientProfileDatabase{}
	pdb.On("GetByID", mock.Anything, profileID.Hex()).Return(&models.PatientProfile{
		ID:          profileID,
		OwnerUserID: primitive.NewObjectID(),
	}, nil)

	req, err := http.NewRequest("DELETE", "/api/v1/patients/"+profileID.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patientId": profileID.Hex()})
	req = req.WithContext(api.WithCaller(req.Context(), primitive.NewObjectID().Hex(), models.RoleCustomer))

	u := handlers.User{DB: &mocks.UserDatabase{}, LDB: &mocks.LoginHistoryDatabase{}, PDB: pdb}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.DeletePatientProfileHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	pdb.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
