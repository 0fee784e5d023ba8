package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pact-recycling/pact/internal/application/membership/usecases"
	"github.com/pact-recycling/pact/internal/domain/membership"
	"github.com/pact-recycling/pact/internal/infrastructure/config"
	"github.com/pact-recycling/pact/internal/infrastructure/preferences"
	"github.com/pact-recycling/pact/internal/infrastructure/repository"
	"github.com/pact-recycling/pact/internal/interfaces/http/handlers"
	"github.com/pact-recycling/pact/internal/interfaces/http/middleware"
	"github.com/pact-recycling/pact/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	memberHandler     *handlers.MemberHandler
	calculatorHandler *handlers.CalculatorHandler
	tierHandler       *handlers.TierHandler
	exportHandler     *handlers.ExportHandler
	preferenceHandler *handlers.PreferenceHandler
	healthHandler     *handlers.HealthHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cycleEnd time.Time, log logger.Interface) *Router {
	engine := gin.New()

	catalog := membership.NewCatalog()
	memberRepo := repository.NewMemberRepository(db, log)
	viewModeStore := preferences.NewViewModeStore(redisClient)

	listMembersUC := usecases.NewListMembersUseCase(memberRepo, catalog, cycleEnd, log)
	getMemberUC := usecases.NewGetMemberUseCase(memberRepo, catalog, cycleEnd, log)
	changeTierUC := usecases.NewChangeTierUseCase(memberRepo, catalog, cycleEnd, log)
	changeEnrollmentUC := usecases.NewChangeEnrollmentUseCase(memberRepo, catalog, cycleEnd, log)
	recordQuantityUC := usecases.NewRecordQuantityUseCase(memberRepo, catalog, cycleEnd, log)
	getHistoryUC := usecases.NewGetMemberHistoryUseCase(memberRepo, log)
	redistributeUC := usecases.NewRedistributeUseCase(memberRepo, catalog, cycleEnd, log)
	exportUC := usecases.NewExportMembersUseCase(memberRepo, catalog, cycleEnd, log)
	listTiersUC := usecases.NewListTiersUseCase(catalog)
	getViewModeUC := usecases.NewGetViewModeUseCase(viewModeStore, log)
	setViewModeUC := usecases.NewSetViewModeUseCase(viewModeStore, log)

	return &Router{
		engine: engine,
		memberHandler: handlers.NewMemberHandler(
			listMembersUC,
			getMemberUC,
			changeTierUC,
			changeEnrollmentUC,
			recordQuantityUC,
			getHistoryUC,
		),
		calculatorHandler: handlers.NewCalculatorHandler(redistributeUC),
		tierHandler:       handlers.NewTierHandler(listTiersUC),
		exportHandler:     handlers.NewExportHandler(exportUC),
		preferenceHandler: handlers.NewPreferenceHandler(getViewModeUC, setViewModeUC),
		healthHandler:     handlers.NewHealthHandler(db),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/tiers", r.tierHandler.ListTiers)

		members := v1.Group("/members")
		{
			members.GET("", r.memberHandler.ListMembers)
			members.GET("/export", r.exportHandler.ExportMembers)
			members.GET("/:id", r.memberHandler.GetMember)
			members.PUT("/:id/tier", r.memberHandler.ChangeTier)
			members.PUT("/:id/enrollments", r.memberHandler.ChangeEnrollment)
			members.PUT("/:id/quantities", r.memberHandler.RecordQuantity)
			members.GET("/:id/history", r.memberHandler.GetHistory)
			members.POST("/:id/redistribute", r.calculatorHandler.Redistribute)
		}

		prefs := v1.Group("/preferences")
		{
			prefs.GET("/view-mode", r.preferenceHandler.GetViewMode)
			prefs.PUT("/view-mode", r.preferenceHandler.SetViewMode)
		}
	}
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
