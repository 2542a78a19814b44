package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/middleware"
	"github.com/wekesamabwi/theboat_backend/internal/platform/config"
	"github.com/wekesamabwi/theboat_backend/internal/rates"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	registerCurrencyCodeValidator()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Authenticated API v1 routes
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerUserRoutes(v1, services.Auth)
	registerConversionRoutes(v1, services.Converter, services.Ledger)
	registerBalanceRoutes(v1, services.Balance)
}

// registerCurrencyCodeValidator binds the `currencycode` rule used by the
// conversion DTOs to the supported currency set.
func registerCurrencyCodeValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return rates.IsSupported(fl.Field().String())
		})
	}
}
