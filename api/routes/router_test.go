package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/marketconnect-backend/internal/dashboard"
	"github.com/marketconnect/marketconnect-backend/internal/groups"
	"github.com/marketconnect/marketconnect-backend/internal/orders"
	"github.com/marketconnect/marketconnect-backend/internal/products"
	"github.com/marketconnect/marketconnect-backend/internal/suppliers"
	"github.com/marketconnect/marketconnect-backend/internal/vendors"
	"github.com/marketconnect/marketconnect-backend/pkg/config"
	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Vendor{}, &models.Supplier{}, &models.Product{},
		&models.ProductGroup{}, &models.Order{},
	))

	vendorSvc, err := vendors.NewService(vendors.NewRepository(gdb))
	require.NoError(t, err)
	supplierSvc, err := suppliers.NewService(suppliers.NewRepository(gdb))
	require.NoError(t, err)
	productSvc, err := products.NewService(products.NewRepository(gdb))
	require.NoError(t, err)
	groupSvc, err := groups.NewService(groups.NewRepository(gdb))
	require.NoError(t, err)
	orderSvc, err := orders.NewService(orders.NewRepository(gdb))
	require.NoError(t, err)
	dashboardSvc, err := dashboard.NewService(groupSvc, orderSvc, supplierSvc)
	require.NoError(t, err)

	return New(Dependencies{
		Config:    &config.Config{},
		Logger:    logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Vendors:   vendorSvc,
		Suppliers: supplierSvc,
		Products:  productSvc,
		Groups:    groupSvc,
		Orders:    orderSvc,
		Dashboard: dashboardSvc,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func vendorPayload(authID string) map[string]any {
	payload := map[string]any{
		"fullName":              "Ravi Kumar",
		"mobileNumber":          "9876543210",
		"languagePreference":    "Hindi",
		"stallAddress":          "12 Market Road",
		"city":                  "Pune",
		"pincode":               "411001",
		"state":                 "Maharashtra",
		"stallType":             "chaat",
		"rawMaterialNeeds":      []string{"onions", "potatoes"},
		"preferredDeliveryTime": "morning",
	}
	if authID != "" {
		payload["externalAuthId"] = authID
	}
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", decodeData(t, w)["status"])
}

func TestRootBannerListsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Contains(t, data["message"], "MarketConnect")
}

func TestVendorLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("uid-1"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	id := created["id"].(float64)
	assert.Equal(t, []any{"onions", "potatoes"}, created["rawMaterialNeeds"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/vendors/%d", int64(id)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/vendors/by-user/uid-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/vendors/%d", int64(id)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/vendors/%d", int64(id)), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorDuplicateAuthIDConflict(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("uid-dup"))
	require.Equal(t, http.StatusCreated, w.Code)
	existingID := decodeData(t, w)["id"].(float64)

	w = doJSON(t, router, http.MethodPost, "/api/vendors", vendorPayload("uid-dup"))
	require.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
	assert.Equal(t, existingID, envelope.Error.Details["vendorId"])
}

func TestVendorCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/vendors", map[string]any{"fullName": "Only Name"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestOrderCreateAcceptFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{
		"vendorId": 1,
		"items": []map[string]any{
			{"name": "Onions", "quantity": 10, "pricePerKg": 28.5, "subtotal": 285},
		},
		"subtotal":    285,
		"totalAmount": 285,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)
	orderID := created["id"].(string)
	require.NotEmpty(t, orderID)
	assert.Equal(t, "pending", created["status"])

	w = doJSON(t, router, http.MethodGet, "/api/orders/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orderID)

	w = doJSON(t, router, http.MethodPut, "/api/orders/"+orderID+"/accept", map[string]any{"supplierId": 7})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", decodeData(t, w)["status"])

	w = doJSON(t, router, http.MethodPut, "/api/orders/"+orderID+"/accept", map[string]any{"supplierId": 8})
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders/supplier/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orderID)
}

func TestOrderCreateRejectsClientTotals(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{
		"vendorId": 1,
		"items": []map[string]any{
			{"name": "Onions", "quantity": 10, "pricePerKg": 28.5, "subtotal": 285},
		},
		"subtotal":    285,
		"totalAmount": 9999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupStatusTransitionOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/product-groups", map[string]any{
		"product":   "Onions",
		"quantity":  "500kg",
		"location":  "Pune",
		"deadline":  "2026-09-15T00:00:00Z",
		"createdBy": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeData(t, w)["id"].(float64)

	path := fmt.Sprintf("/api/product-groups/%d/status", int64(id))

	w = doJSON(t, router, http.MethodPatch, path, map[string]any{"status": "delivered"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodPatch, path, map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPatch, path, map[string]any{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", decodeData(t, w)["status"])
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/dashboard/supplier/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Contains(t, data, "productGroups")
	assert.Contains(t, data, "counts")

	w = doJSON(t, router, http.MethodGet, "/api/dashboard/vendor/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Contains(t, data, "openGroups")
	assert.Contains(t, data, "suppliers")
}
