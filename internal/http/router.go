package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	httpH "github.com/freightdesk/fleetadmin/internal/http/handlers"
	httpMW "github.com/freightdesk/fleetadmin/internal/http/middleware"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string
	// TracingService enables otelgin spans under this service name.
	TracingService string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	StationHandler   *httpH.StationHandler
	BrokerHandler    *httpH.BrokerHandler
	DriverHandler    *httpH.DriverHandler
	OwnerHandler     *httpH.OwnerHandler
	LorryHandler     *httpH.LorryHandler
	ConsigneeHandler *httpH.PartyHandler
	ConsignorHandler *httpH.PartyHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/sign-up", cfg.AuthHandler.SignUp)
			api.POST("/auth/sign-in", cfg.AuthHandler.SignIn)
			api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
		}
	}

	protected := api.Group("")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}
	{
		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/sign-out", cfg.AuthHandler.SignOut)
			protected.GET("/me", cfg.AuthHandler.Me)
		}

		// Stations (admin)
		if cfg.StationHandler != nil {
			stations := protected.Group("/stations")
			if cfg.AuthMiddleware != nil {
				stations.Use(cfg.AuthMiddleware.RequireRole(types.RoleAdmin))
			}
			stations.GET("", cfg.StationHandler.List)
			stations.GET("/:id", cfg.StationHandler.Get)
			stations.POST("", cfg.StationHandler.Create)
			stations.PUT("/:id", cfg.StationHandler.Update)
		}

		// Fleet
		if cfg.BrokerHandler != nil {
			protected.GET("/brokers", cfg.BrokerHandler.List)
			protected.GET("/brokers/:id", cfg.BrokerHandler.Get)
			protected.POST("/brokers", cfg.BrokerHandler.Create)
			protected.PUT("/brokers/:id", cfg.BrokerHandler.Update)
		}
		if cfg.DriverHandler != nil {
			protected.GET("/drivers", cfg.DriverHandler.List)
			protected.GET("/drivers/:id", cfg.DriverHandler.Get)
			protected.POST("/drivers", cfg.DriverHandler.Create)
			protected.PUT("/drivers/:id", cfg.DriverHandler.Update)
			protected.DELETE("/drivers/:id", cfg.DriverHandler.Delete)
		}
		if cfg.OwnerHandler != nil {
			protected.GET("/owners", cfg.OwnerHandler.List)
			protected.GET("/owners/:id", cfg.OwnerHandler.Get)
			protected.POST("/owners", cfg.OwnerHandler.Create)
			protected.PUT("/owners/:id", cfg.OwnerHandler.Update)
			protected.DELETE("/owners/:id", cfg.OwnerHandler.Delete)
		}
		if cfg.LorryHandler != nil {
			protected.GET("/lorries", cfg.LorryHandler.List)
			protected.GET("/lorries/:id", cfg.LorryHandler.Get)
			protected.POST("/lorries", cfg.LorryHandler.Create)
			protected.PUT("/lorries/:id", cfg.LorryHandler.Update)
			protected.DELETE("/lorries/:id", cfg.LorryHandler.Delete)
		}

		// Clients
		mountParty(protected, "/consignees", cfg.ConsigneeHandler)
		mountParty(protected, "/consignors", cfg.ConsignorHandler)
	}

	return r
}

func mountParty(g *gin.RouterGroup, path string, h *httpH.PartyHandler) {
	if h == nil {
		return
	}
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
