package controllers

import (
	"net/http"

	"github.com/marketconnect/marketconnect-backend/api/responses"
	"github.com/marketconnect/marketconnect-backend/api/validators"
	"github.com/marketconnect/marketconnect-backend/internal/dashboard"
	"github.com/marketconnect/marketconnect-backend/pkg/logger"
)

// DashboardSupplier serves the supplier home screen.
func DashboardSupplier(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, err := validators.ParseIDParam(r, "supplierID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dash, err := svc.SupplierDashboard(r.Context(), supplierID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}

// DashboardVendor serves the vendor home screen.
func DashboardVendor(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := validators.ParseIDParam(r, "vendorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dash, err := svc.VendorDashboard(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}
