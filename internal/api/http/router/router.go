package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pricewatch/pricewatch-server/internal/api/http/handler"
	"github.com/pricewatch/pricewatch-server/internal/api/http/middleware"
	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
	"github.com/pricewatch/pricewatch-server/internal/service"
)

// Router wires HTTP handlers and middleware for the price tracker API.
type Router struct {
	authService    *service.Auth
	productService *service.Product
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	productService *service.Product,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		productService: productService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register sets up all routes and middleware.
// Registration and login are public, product routes require a bearer token.
//
// Returns the configured HTTP handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	productHandler := handler.NewProduct(r.productService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)

	mux.Route("/api", func(api chi.Router) {
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handle)

			protected.Post("/products", productHandler.Add)
			protected.Get("/products", productHandler.List)
			protected.Delete("/products/{productID}", productHandler.Delete)
			protected.Put("/products/{productID}/price", productHandler.UpdatePrice)
		})
	})

	return mux
}
