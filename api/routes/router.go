// Package routes assembles the HTTP surface: middleware chain, API
// endpoints, and the operational extras.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/marketconnect/marketconnect-backend/api/controllers"
	appmiddleware "github.com/marketconnect/marketconnect-backend/api/middleware"
	"github.com/marketconnect/marketconnect-backend/internal/dashboard"
	"github.com/marketconnect/marketconnect-backend/internal/groups"
	"github.com/marketconnect/marketconnect-backend/internal/orders"
	"github.com/marketconnect/marketconnect-backend/internal/products"
	"github.com/marketconnect/marketconnect-backend/internal/suppliers"
	"github.com/marketconnect/marketconnect-backend/internal/vendors"
	"github.com/marketconnect/marketconnect-backend/pkg/config"
	"github.com/marketconnect/marketconnect-backend/pkg/logger"
	"github.com/marketconnect/marketconnect-backend/pkg/metrics"
	pkgredis "github.com/marketconnect/marketconnect-backend/pkg/redis"
)

// Dependencies carries everything the router mounts.
type Dependencies struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        controllers.Pinger
	Registry  *prometheus.Registry
	Metrics   *metrics.HTTPMetrics
	Redis     pkgredis.IdempotencyStore
	Vendors   vendors.Service
	Suppliers suppliers.Service
	Products  products.Service
	Groups    groups.Service
	Orders    orders.Service
	Dashboard dashboard.Service
}

// New builds the chi router with the full middleware chain.
func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	logg := deps.Logger

	r.Use(appmiddleware.Recoverer(logg))
	r.Use(appmiddleware.RequestID(logg))
	r.Use(appmiddleware.Logging(logg, deps.Metrics))
	r.Use(appmiddleware.CORS())
	if deps.Config != nil {
		r.Use(appmiddleware.Auth(deps.Config.Auth, logg))
	}

	r.Get("/", controllers.Root())
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Registry))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", controllers.Health(deps.DB))

		api.Route("/vendors", func(v chi.Router) {
			v.Post("/", controllers.VendorCreate(deps.Vendors, logg))
			v.Get("/", controllers.VendorList(deps.Vendors, logg))
			v.Get("/by-user/{externalAuthID}", controllers.VendorGetByUser(deps.Vendors, logg))
			v.Get("/{id}", controllers.VendorGet(deps.Vendors, logg))
			v.Put("/{id}", controllers.VendorUpdate(deps.Vendors, logg))
			v.Delete("/{id}", controllers.VendorDelete(deps.Vendors, logg))
		})

		api.Route("/suppliers", func(s chi.Router) {
			s.Post("/", controllers.SupplierCreate(deps.Suppliers, logg))
			s.Get("/", controllers.SupplierList(deps.Suppliers, logg))
			s.Get("/search/capabilities", controllers.SupplierSearchCapabilities(deps.Suppliers, logg))
			s.Get("/search/location", controllers.SupplierSearchLocation(deps.Suppliers, logg))
			s.Get("/by-user/{externalAuthID}", controllers.SupplierGetByUser(deps.Suppliers, logg))
			s.Get("/{id}", controllers.SupplierGet(deps.Suppliers, logg))
			s.Put("/{id}", controllers.SupplierUpdate(deps.Suppliers, logg))
			s.Delete("/{id}", controllers.SupplierDelete(deps.Suppliers, logg))
		})

		api.Route("/products", func(p chi.Router) {
			p.Post("/", controllers.ProductCreate(deps.Products, logg))
			p.Get("/", controllers.ProductList(deps.Products, logg))
			p.Get("/{id}", controllers.ProductGet(deps.Products, logg))
			p.Put("/{id}", controllers.ProductUpdate(deps.Products, logg))
			p.Delete("/{id}", controllers.ProductDelete(deps.Products, logg))
		})

		api.Route("/product-groups", func(g chi.Router) {
			g.Post("/", controllers.GroupCreate(deps.Groups, logg))
			g.Get("/", controllers.GroupList(deps.Groups, logg))
			g.Get("/{id}", controllers.GroupGet(deps.Groups, logg))
			g.Patch("/{id}/status", controllers.GroupUpdateStatus(deps.Groups, logg))
		})

		api.Route("/orders", func(o chi.Router) {
			o.With(appmiddleware.Idempotency(deps.Redis, logg)).
				Post("/", controllers.OrderCreate(deps.Orders, logg))
			o.Get("/", controllers.OrderList(deps.Orders, logg))
			o.Get("/pending", controllers.OrderListPending(deps.Orders, logg))
			o.Get("/vendor/{vendorID}", controllers.OrderListByVendor(deps.Orders, logg))
			o.Get("/supplier/{supplierID}", controllers.OrderListBySupplier(deps.Orders, logg))
			o.Get("/{id}", controllers.OrderGet(deps.Orders, logg))
			o.Put("/{id}/accept", controllers.OrderAccept(deps.Orders, logg))
			o.Put("/{id}/status", controllers.OrderUpdateStatus(deps.Orders, logg))
			o.Delete("/{id}", controllers.OrderDelete(deps.Orders, logg))
		})

		api.Route("/dashboard", func(d chi.Router) {
			d.Get("/supplier/{supplierID}", controllers.DashboardSupplier(deps.Dashboard, logg))
			d.Get("/vendor/{vendorID}", controllers.DashboardVendor(deps.Dashboard, logg))
		})
	})

	return r
}
