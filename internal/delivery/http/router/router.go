// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"referidos/internal/delivery/http/middleware"
	"referidos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SocioHandler   *handler.SocioHandler
	CuponHandler   *handler.CuponHandler
	ArtistaHandler *handler.ArtistaHandler
	PagoHandler    *handler.PagoHandler
	ConfigHandler  *handler.ConfigHandler
	PortalHandler  *handler.PortalHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	socioHandler   *handler.SocioHandler
	cuponHandler   *handler.CuponHandler
	artistaHandler *handler.ArtistaHandler
	pagoHandler    *handler.PagoHandler
	configHandler  *handler.ConfigHandler
	portalHandler  *handler.PortalHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		socioHandler:   params.SocioHandler,
		cuponHandler:   params.CuponHandler,
		artistaHandler: params.ArtistaHandler,
		pagoHandler:    params.PagoHandler,
		configHandler:  params.ConfigHandler,
		portalHandler:  params.PortalHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login routes
	e.POST("/auth/login", r.authHandler.LoginAdmin)
	e.POST("/portal/login", r.authHandler.LoginSocio)

	// Public routes: the studio's referral landing pages call these without
	// any session.
	publicGroup := e.Group("/public")
	{
		publicGroup.POST("/socios", r.socioHandler.Register)
		publicGroup.GET("/socios/:codigo/qr", r.cuponHandler.QR)
		publicGroup.POST("/cupones", r.cuponHandler.Create)
		publicGroup.GET("/configuracion", r.configHandler.Get)
	}

	// Partner portal routes that require authentication and the "socio" role
	portalGroup := e.Group("/portal")
	portalGroup.Use(r.authMiddleware.Authenticate)
	portalGroup.Use(r.authMiddleware.RequireRole("socio"))
	{
		portalGroup.GET("/perfil", r.portalHandler.Perfil)
		portalGroup.GET("/resumen", r.portalHandler.Resumen)
		portalGroup.GET("/cupones", r.portalHandler.Cupones)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/socios", r.socioHandler.Create)
		adminGroup.GET("/socios", r.socioHandler.List)
		adminGroup.GET("/socios/:id", r.socioHandler.Get)
		adminGroup.PUT("/socios/:id", r.socioHandler.Update)
		adminGroup.DELETE("/socios/:id", r.socioHandler.Delete)
		adminGroup.PUT("/socios/:id/aprobado", r.socioHandler.SetAprobado)
		adminGroup.PUT("/socios/:id/activo", r.socioHandler.SetActivo)
		adminGroup.POST("/socios/:id/codigo", r.socioHandler.RegenerateCredenciales)
		adminGroup.POST("/socios/:id/logo", r.socioHandler.UploadLogo)
		adminGroup.GET("/socios/:id/resumen", r.pagoHandler.Resumen)

		adminGroup.GET("/cupones", r.cuponHandler.List)
		adminGroup.GET("/cupones/:id", r.cuponHandler.Get)
		adminGroup.PUT("/cupones/:id/estado", r.cuponHandler.CambiarEstado)

		adminGroup.POST("/artistas", r.artistaHandler.Create)
		adminGroup.GET("/artistas", r.artistaHandler.List)
		adminGroup.GET("/artistas/:id", r.artistaHandler.Get)
		adminGroup.PUT("/artistas/:id", r.artistaHandler.Update)
		adminGroup.PUT("/artistas/:id/activo", r.artistaHandler.SetActivo)
		adminGroup.DELETE("/artistas/:id", r.artistaHandler.Delete)

		adminGroup.GET("/pagos", r.pagoHandler.List)
		adminGroup.POST("/pagos", r.pagoHandler.Registrar)
		adminGroup.GET("/reportes/comisiones.xlsx", r.pagoHandler.ExportarComisiones)

		adminGroup.GET("/configuracion", r.configHandler.Get)
		adminGroup.PUT("/configuracion", r.configHandler.Update)
		adminGroup.POST("/configuracion/logo", r.configHandler.UploadLogo)
	}
}
