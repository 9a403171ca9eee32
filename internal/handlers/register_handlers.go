package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/openpurse/walletd/cmd/docs"
	portssvc "github.com/openpurse/walletd/internal/core/ports/services"
	"github.com/openpurse/walletd/internal/middleware"
	"github.com/openpurse/walletd/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.Use(cors.Default())

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")

	// The mutating wallet routes get an IP rate limit on top of the usual
	// middleware.
	limiterInstance, err := middleware.NewRateLimiter(cfg.SendRateLimit)
	if err != nil {
		return err
	}

	registerHomeRoutes(v1)
	RegisterCurrencyRoutes(v1, services.Converter)
	RegisterConvertRoutes(v1, services.Converter)
	RegisterWalletRoutes(v1, services.Wallet, services.Converter, middleware.RateLimit(limiterInstance))

	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
