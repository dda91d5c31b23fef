package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/LBaravalle/payroll_engine_app/cmd/docs"
	"github.com/LBaravalle/payroll_engine_app/internal/core/domain"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
	"github.com/LBaravalle/payroll_engine_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceProvider,
) {
	registerCustomValidators()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", home)

	// Public authentication routes
	registerAuthRoutes(r, cfg)

	// API v1 routes behind the auth middleware
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes, disabled in production
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires the "payperiod" binding tag that checks
// YYYY-MM period strings in request payloads.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payperiod", func(fl validator.FieldLevel) bool {
			_, err := domain.ParsePeriod(fl.Field().String())
			return err == nil
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceProvider,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEmployeeRoutes(v1, services.EmployeeSvc)
	registerRateCardRoutes(v1, services.RateCardSvc)
	registerAttendanceRoutes(v1, services.TimesheetSvc, services.PayrollSvc)
	registerPayrollRoutes(v1, services.PayrollSvc, services.ExportSvc, services.PayslipSvc)
	registerLedgerRoutes(v1, services.LedgerSvc, services.ExportSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
