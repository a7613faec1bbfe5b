// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"strconv"

	"fileshare/config"
	"fileshare/internal/delivery/api/middleware"
	"fileshare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead is the body allowance on top of the file size for multipart framing and fields.
const multipartOverhead = 1 << 20

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ShareHandler   *handler.ShareHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	shareHandler   *handler.ShareHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		shareHandler:   params.ShareHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes mounts every route at the root and again under /api.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)

	uploadLimiter := middleware.NewUploadRateLimiter(r.config)
	for _, prefix := range []string{"", "/api"} {
		r.registerGroup(e.Group(prefix), uploadLimiter)
	}
}

func (r *router) registerGroup(g *echo.Group, uploadLimiter echo.MiddlewareFunc) {
	g.GET("/health", r.healthHandler.HealthCheck)

	authGroup := g.Group("/auth")
	{
		authGroup.POST("/send-otp", r.authHandler.SendOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/external", r.authHandler.ExternalLogin)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	uploadGroup := g.Group("/upload", r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("", r.shareHandler.Upload,
			uploadLimiter,
			echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
				Limit: formatBytes(r.config.Share.MaxUploadSize + multipartOverhead),
			}),
		)
		uploadGroup.GET("", r.shareHandler.ListShares)
		uploadGroup.DELETE("/:fileId", r.shareHandler.DeleteShare)
		uploadGroup.GET("/:fileId/qr", r.shareHandler.ShareQRCode)
	}

	g.GET("/download/:shareId", r.shareHandler.Download)
}

// IsUploadRequest reports whether the request targets the upload endpoint, which carries its own
// body limit.
func IsUploadRequest(c echo.Context) bool {
	if c.Request().Method != http.MethodPost {
		return false
	}
	path := c.Request().URL.Path

	return path == "/upload" || path == "/api/upload"
}

// formatBytes renders n in the "<n>B" form echo's body limit parser accepts.
func formatBytes(n int64) string {
	return strconv.FormatInt(n, 10) + "B"
}
