package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/vmaryna/cashdine_backend/cmd/docs"
	portssvc "github.com/vmaryna/cashdine_backend/internal/core/ports/services"
	"github.com/vmaryna/cashdine_backend/internal/middleware"
	"github.com/vmaryna/cashdine_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	registerHomeRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1",
		middleware.RateLimit(rateLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	registerBalanceRoutes(v1, services.Balance)
	registerTransferRoutes(v1, services.Transfer, services.Balance)
	registerRestaurantRoutes(v1, services.Restaurant, services.Ranking)
	registerPurchaseRoutes(v1, services.Purchase)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
