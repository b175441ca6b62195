package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JRGCaponde/peixaria-backend/api/controllers"
	"github.com/JRGCaponde/peixaria-backend/api/middleware"
	"github.com/JRGCaponde/peixaria-backend/internal/auth"
	"github.com/JRGCaponde/peixaria-backend/internal/cart"
	"github.com/JRGCaponde/peixaria-backend/internal/catalog"
	checkoutsvc "github.com/JRGCaponde/peixaria-backend/internal/checkout"
	"github.com/JRGCaponde/peixaria-backend/internal/customers"
	"github.com/JRGCaponde/peixaria-backend/internal/employees"
	"github.com/JRGCaponde/peixaria-backend/internal/notifications"
	"github.com/JRGCaponde/peixaria-backend/internal/orders"
	"github.com/JRGCaponde/peixaria-backend/internal/settings"
	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/logger"
	"github.com/JRGCaponde/peixaria-backend/pkg/metrics"
)

// Services bundles every domain service the router wires to controllers.
type Services struct {
	Auth          auth.Service
	Catalog       catalog.Service
	Cart          cart.Service
	Checkout      checkoutsvc.Service
	Orders        orders.Service
	Customers     customers.Service
	Employees     employees.Service
	Settings      settings.Service
	Notifications notifications.Service
}

// NewRouter assembles the middleware chain and the full route table.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.Post("/register", controllers.AuthRegister(svcs.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
		})

		r.Get("/products", controllers.ListProducts(svcs.Catalog, logg))
		r.Get("/products/{productId}", controllers.GetProduct(svcs.Catalog, logg))
		r.Get("/settings", controllers.GetSettings(svcs.Settings, logg))
		r.Get("/delivery-slots", controllers.DeliverySlots())

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(svcs.Cart, logg))
				r.Post("/", controllers.AddCartItem(svcs.Cart, logg))
				r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
				r.Delete("/{productId}", controllers.RemoveCartItem(svcs.Cart, logg))
				r.Get("/quote", controllers.QuoteCart(svcs.Cart, logg))
			})

			r.Post("/checkout", controllers.Checkout(svcs.Checkout, logg))

			r.Get("/orders", controllers.ListOrders(svcs.Orders, logg))
			r.Get("/orders/{orderId}", controllers.GetOrder(svcs.Orders, logg))

			r.Get("/notifications", controllers.ListNotifications(svcs.Notifications, logg))
			r.Post("/notifications/read", controllers.MarkNotificationsRead(svcs.Notifications, logg))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireBackOffice(logg))

				r.Post("/products", controllers.CreateProduct(svcs.Catalog, logg))
				r.Put("/products/{productId}", controllers.UpdateProduct(svcs.Catalog, logg))

				r.Get("/orders", controllers.ListOrders(svcs.Orders, logg))
				r.Patch("/orders/{orderId}/status", controllers.UpdateOrderStatus(svcs.Orders, logg))

				r.Get("/customers", controllers.ListCustomers(svcs.Customers, logg))
				r.Post("/customers", controllers.CreateCustomer(svcs.Customers, logg))

				r.Get("/employees", controllers.ListEmployees(svcs.Employees, logg))
				r.Post("/employees", controllers.CreateEmployee(svcs.Employees, logg))
				r.Put("/employees/{employeeId}", controllers.UpdateEmployee(svcs.Employees, logg))
				r.Delete("/employees/{employeeId}", controllers.DeleteEmployee(svcs.Employees, logg))

				r.Put("/settings", controllers.UpdateSettings(svcs.Settings, logg))
			})
		})
	})

	return r
}
