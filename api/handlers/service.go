package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/api"
	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/databases"
	"github.com/gencareclinic/gencare-api/models"
)

// Service exposes the service catalog and prepaid package catalog endpoints
type Service struct {
	DB    databases.ServiceDatabase
	PkgDB databases.ServicePackageDatabase
}

func validServiceType(t string) bool {
	switch t {
	case models.ServiceTypeConsultation, models.ServiceTypeTesting, models.ServiceTypeTherapy:
		return true
	}
	return false
}

// ListServicesHandler returns the active services, filterable by type
func (s Service) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{"active": true}
	if t := r.URL.Query().Get("serviceType"); t != "" {
		filter["serviceType"] = t
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	services, pagination, err := s.DB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list services", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, services, pagination)
}

// GetServiceHandler returns one service
func (s Service) GetServiceHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	service, err := s.DB.GetByID(ctx, mux.Vars(r)["serviceId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "service"})
		return
	}
	respond(w, http.StatusOK, service)
}

// CreateServiceHandler adds a service to the catalog
func (s Service) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	verr := &models.ValidationError{Fields: map[string]string{}}
	if service.Name == "" {
		verr.Fields["name"] = "name is required"
	}
	if !validServiceType(service.ServiceType) {
		verr.Fields["serviceType"] = "serviceType must be consultation, testing or therapy"
	}
	if service.Price <= 0 {
		verr.Fields["price"] = "price must be positive"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	service.ID = primitive.NilObjectID
	service.Active = true
	service.CreatedAt = now
	service.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := s.DB.Create(ctx, &service)
	if err != nil {
		config.ErrorStatus("failed to create service", http.StatusInternalServerError, w, err)
		return
	}
	service.ID = id
	respond(w, http.StatusCreated, service)
}

// UpdateServiceHandler updates catalog fields of a service
func (s Service) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		Price           *int64 `json:"price"`
		DurationMinutes *int   `json:"durationMinutes"`
		Active          *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			config.ValidationStatus(w, models.NewValidationError("price", "price must be positive"))
			return
		}
		set["price"] = *req.Price
	}
	if req.DurationMinutes != nil {
		set["durationMinutes"] = *req.DurationMinutes
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := s.DB.Update(ctx, mux.Vars(r)["serviceId"], set); err != nil {
		config.ErrorStatus("failed to update service", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "service updated")
}

// ListPackagesHandler returns the active prepaid packages
func (s Service) ListPackagesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := bson.M{"active": true}
	if t := r.URL.Query().Get("serviceType"); t != "" {
		filter["serviceType"] = t
	}
	limit, page := paginationParams(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	packages, pagination, err := s.PkgDB.List(ctx, filter, limit, page)
	if err != nil {
		config.ErrorStatus("failed to list service packages", http.StatusInternalServerError, w, err)
		return
	}
	respondPaginated(w, packages, pagination)
}

// GetPackageHandler returns one prepaid package
func (s Service) GetPackageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	pkg, err := s.PkgDB.GetByID(ctx, mux.Vars(r)["packageId"])
	if err != nil {
		handleError(w, &models.NotFoundError{Resource: "service package"})
		return
	}
	respond(w, http.StatusOK, pkg)
}

// CreatePackageHandler adds a prepaid package
func (s Service) CreatePackageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var pkg models.ServicePackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	verr := &models.ValidationError{Fields: map[string]string{}}
	if pkg.Name == "" {
		verr.Fields["name"] = "name is required"
	}
	if !validServiceType(pkg.ServiceType) {
		verr.Fields["serviceType"] = "serviceType must be consultation, testing or therapy"
	}
	if pkg.Price <= 0 {
		verr.Fields["price"] = "price must be positive"
	}
	if pkg.TotalAllowedUses <= 0 {
		verr.Fields["totalAllowedUses"] = "totalAllowedUses must be positive"
	}
	if pkg.ValidityDays <= 0 {
		verr.Fields["validityDays"] = "validityDays must be positive"
	}
	if len(verr.Fields) > 0 {
		config.ValidationStatus(w, verr)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	pkg.ID = primitive.NilObjectID
	pkg.Active = true
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := s.PkgDB.Create(ctx, &pkg)
	if err != nil {
		config.ErrorStatus("failed to create service package", http.StatusInternalServerError, w, err)
		return
	}
	pkg.ID = id
	respond(w, http.StatusCreated, pkg)
}

// UpdatePackageHandler updates catalog fields of a prepaid package. The usage
// allowance of already sold purchases never changes.
func (s Service) UpdatePackageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       *int64 `json:"price"`
		Active      *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			config.ValidationStatus(w, models.NewValidationError("price", "price must be positive"))
			return
		}
		set["price"] = *req.Price
	}
	if req.Active != nil {
		set["active"] = *req.Active
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := s.PkgDB.Update(ctx, mux.Vars(r)["packageId"], set); err != nil {
		config.ErrorStatus("failed to update service package", http.StatusInternalServerError, w, err)
		return
	}
	respondMessage(w, http.StatusOK, "service package updated")
}
