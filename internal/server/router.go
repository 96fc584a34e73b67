// Package server wires the reference function gateway: chi routes under
// /functions/v1, the middleware chain and the background token janitor.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/server/handlers"
	"github.com/iudanet/marketsync/internal/server/middleware"
	"github.com/iudanet/marketsync/internal/server/storage"
	"github.com/iudanet/marketsync/pkg/api"
)

// FunctionsPrefix общий префикс всех функций шлюза
const FunctionsPrefix = "/functions/v1"

// Store объединяет все хранилища шлюза
type Store interface {
	storage.UserStorage
	storage.TokenStorage
	storage.ProductStorage
	storage.CartStorage
	storage.VoucherStorage
	storage.MaintenanceStorage
	storage.OrderStorage
	storage.RefundStorage
	storage.ConversationStorage
	storage.NotificationStorage
	handlers.Pinger
}

// RouterConfig настройки маршрутизатора
type RouterConfig struct {
	Logger      *slog.Logger
	Store       Store
	Clock       clockwork.Clock // nil означает реальные часы
	AnonKey     string
	Version     string
	AdminEmails []string
	JWT         handlers.JWTConfig
	RateLimit   int // запросов в минуту с одного IP
}

// Router is the gateway HTTP handler.
type Router struct {
	http.Handler
	limits *middleware.RateLimitByPath
}

// Stop releases the rate limiter goroutines.
func (r *Router) Stop() {
	r.limits.Stop()
}

// NewRouter собирает маршруты шлюза
func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	store := cfg.Store
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	authH := handlers.NewAuthHandler(logger, store, store, cfg.JWT, clock, cfg.AdminEmails)
	healthH := handlers.NewHealthHandler(logger, store, cfg.Version)
	shopH := handlers.NewShopHandler(logger, store, store, store, clock)
	maintH := handlers.NewMaintenanceHandler(logger, store, clock)
	orderH := handlers.NewOrderHandler(logger, store, store, store, shopH, maintH, clock)
	supportH := handlers.NewSupportHandler(logger, store, store, store, store, clock)

	// вход и регистрация ограничены строже остальных функций
	limits := middleware.NewRateLimitByPath([]middleware.PathRateLimit{
		{Path: FunctionsPrefix + "/auth/login", Rate: 10, Window: time.Minute},
		{Path: FunctionsPrefix + "/auth/signup", Rate: 5, Window: time.Minute},
	}, cfg.RateLimit, time.Minute, clock, logger)

	requireAuth := middleware.AuthMiddleware(logger, cfg.JWT)
	requireAdmin := middleware.RequireAdmin(logger)

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.LoggingWithSkip(logger, []string{FunctionsPrefix + "/health"}),
		middleware.RecoveryMiddleware(logger),
		limits.Middleware,
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteEnvelope(w, logger, api.Fail("function not found"), http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteEnvelope(w, logger, api.Fail("method not allowed"), http.StatusMethodNotAllowed)
	})

	r.Route(FunctionsPrefix, func(r chi.Router) {
		r.Use(middleware.APIKeyMiddleware(logger, cfg.AnonKey))

		// публичные функции
		r.Post("/auth/signup", authH.SignUp)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)
		r.Get("/health", healthH.Health)
		r.Get("/products", shopH.ListProducts)
		r.Get("/maintenance", maintH.Get)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", shopH.ListCart)
				r.Post("/", shopH.AddCartItem)
				r.Delete("/", shopH.ClearCart)
				r.Patch("/{productID}", shopH.UpdateCartItem)
				r.Delete("/{productID}", shopH.RemoveCartItem)
			})
			r.Post("/vouchers/validate", shopH.ValidateVoucher)

			r.Post("/orders", orderH.Create)
			r.Get("/orders", orderH.List)

			r.Post("/refunds", supportH.CreateRefund)
			r.Get("/refunds", supportH.ListRefunds)

			r.Post("/conversations", supportH.CreateConversation)
			r.Get("/conversations", supportH.ListConversations)
			r.Get("/conversations/{id}/messages", supportH.ListMessages)
			r.Post("/conversations/{id}/messages", supportH.SendMessage)

			r.Get("/notifications", supportH.ListNotifications)
			r.Post("/notifications/{id}/read", supportH.MarkNotificationRead)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)

				r.Post("/products", shopH.CreateProduct)
				r.Put("/products/{id}", shopH.UpdateProduct)
				r.Put("/maintenance", maintH.Set)
				r.Patch("/orders/{id}/status", orderH.UpdateStatus)
				r.Patch("/refunds/{id}", supportH.UpdateRefund)
			})
		})
	})

	return &Router{Handler: r, limits: limits}
}
