// Package router wires the HTTP handlers, middleware and routes.
package router

import (
	"net/http"

	"github.com/atelier-ai/atelier-server/internal/api/http/handler"
	"github.com/atelier-ai/atelier-server/internal/api/http/middleware"
	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/service"
)

// Router builds the HTTP handler tree for the API.
type Router struct {
	authService      *service.Auth
	hierarchyService *service.Hierarchy
	settingsService  *service.Settings
	designService    *service.Design
	tokenManager     model.TokenManager
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	hierarchyService *service.Hierarchy,
	settingsService *service.Settings,
	designService *service.Design,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		hierarchyService: hierarchyService,
		settingsService:  settingsService,
		designService:    designService,
		tokenManager:     tokenManager,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// Register builds the ServeMux with all routes and middleware applied.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return logging.Handle(h)
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return logging.Handle(authenticate.Handle(h))
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuth(r.authService, r.logger)
	mux.HandleFunc("POST /api/auth/register", public(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", public(authHandler.Login))
	mux.HandleFunc("POST /api/auth/refresh", public(authHandler.Refresh))

	hierarchyHandler := handler.NewHierarchy(r.hierarchyService, r.contextManager, r.logger)
	mux.HandleFunc("GET /api/hierarchy", protected(hierarchyHandler.List))
	mux.HandleFunc("POST /api/hierarchy/floors", protected(hierarchyHandler.AddFloor))
	mux.HandleFunc("POST /api/hierarchy/floors/{floor}/rooms", protected(hierarchyHandler.AddRoom))
	mux.HandleFunc("GET /api/hierarchy/floors/{floor}/rooms/{room}", protected(hierarchyHandler.GetRoom))

	settingsHandler := handler.NewSettings(r.settingsService, r.contextManager, r.logger)
	mux.HandleFunc("GET /api/settings", protected(settingsHandler.Get))
	mux.HandleFunc("PUT /api/settings", protected(settingsHandler.Save))

	designHandler := handler.NewDesign(r.designService, r.contextManager, r.logger)
	mux.HandleFunc("POST /api/design/interior", protected(designHandler.Interior))
	mux.HandleFunc("POST /api/design/plan", protected(designHandler.Plan))
	mux.HandleFunc("POST /api/design/render3d", protected(designHandler.Render3D))
	mux.HandleFunc("POST /api/design/exterior", protected(designHandler.Exterior))

	return middleware.CORS(mux)
}
