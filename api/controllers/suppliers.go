package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marketconnect/marketconnect-backend/api/responses"
	"github.com/marketconnect/marketconnect-backend/api/validators"
	"github.com/marketconnect/marketconnect-backend/internal/suppliers"
	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
	"github.com/marketconnect/marketconnect-backend/pkg/logger"
)

// SupplierCreate registers a new supplier profile.
func SupplierCreate(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto suppliers.CreateSupplierDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// SupplierList returns every supplier, newest first.
func SupplierList(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SupplierGet returns a single supplier by id.
func SupplierGet(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		supplier, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, supplier)
	}
}

// SupplierGetByUser resolves the supplier bound to an auth account.
func SupplierGetByUser(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalAuthID := chi.URLParam(r, "externalAuthID")
		if externalAuthID == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "externalAuthID is required"))
			return
		}
		supplier, err := svc.GetByExternalAuthID(r.Context(), externalAuthID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, supplier)
	}
}

// SupplierSearchCapabilities filters suppliers whose capabilities overlap
// the comma-separated query.
func SupplierSearchCapabilities(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("capabilities")
		capabilities := strings.Split(raw, ",")
		matched, err := svc.SearchByCapabilities(r.Context(), capabilities)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"suppliers": matched,
			"total":     len(matched),
		})
	}
}

// SupplierSearchLocation filters suppliers by city, state or pincode.
func SupplierSearchLocation(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := suppliers.LocationQuery{
			City:    strings.TrimSpace(r.URL.Query().Get("city")),
			State:   strings.TrimSpace(r.URL.Query().Get("state")),
			Pincode: strings.TrimSpace(r.URL.Query().Get("pincode")),
		}
		matched, err := svc.SearchByLocation(r.Context(), q)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"suppliers": matched,
			"total":     len(matched),
		})
	}
}

// SupplierUpdate replaces a supplier's mutable fields.
func SupplierUpdate(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var dto suppliers.UpdateSupplierDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Update(r.Context(), id, dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// SupplierDelete removes a supplier profile.
func SupplierDelete(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "supplier deleted"})
	}
}
