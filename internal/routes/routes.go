package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/controllers"
	"taller-system/internal/repositories"
	"taller-system/internal/services"
	"taller-system/pkg/config"
	"taller-system/pkg/middleware"
	"taller-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts every
// route group under /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, cfg.JWT.CookieName, logger)
	txManager := repositories.NewTxManager(dbConn)
	cache := repositories.NewRedisCacheRepository(redisClient)

	lotRepo := repositories.NewLotRepository(dbConn, logger)
	catalogRepo := repositories.NewCatalogRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	inventoryRepo := repositories.NewInventoryRepository(dbConn, logger)
	commissionRepo := repositories.NewCommissionRepository(dbConn, logger)
	configurationRepo := repositories.NewConfigurationRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	branchRepo := repositories.NewBranchRepository(dbConn)
	cashRepo := repositories.NewCashRepository(dbConn, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)

	configurationSvc := services.NewConfigurationService(configurationRepo, cache, cfg.Cache.ConfigTTL, logger)
	catalogSvc := services.NewCatalogService(catalogRepo, cache, cfg.Cache.CatalogTTL, logger)
	lotSvc := services.NewLotService(lotRepo, txManager, logger)
	labelPDFSvc := services.NewLabelPDFService(lotRepo, logger)
	equipmentSvc := services.NewEquipmentService(equipmentRepo, logger)
	intakeSvc := services.NewIntakeService(
		equipmentRepo, lotRepo, catalogRepo, inventoryRepo, commissionRepo,
		configurationSvc, txManager, logger,
	)
	inventorySvc := services.NewInventoryService(inventoryRepo, txManager, logger)
	commissionSvc := services.NewCommissionService(commissionRepo, logger)
	authSvc := services.NewAuthService(userRepo, jwtSvc, logger)
	userSvc := services.NewUserService(userRepo, logger)
	branchSvc := services.NewBranchService(branchRepo)
	cashSvc := services.NewCashService(cashRepo, txManager, logger)
	maintenanceSvc := services.NewMaintenanceService(
		maintenanceRepo, catalogRepo, commissionRepo, configurationSvc, txManager, logger,
	)
	reportSvc := services.NewReportService(inventoryRepo, commissionRepo, logger)

	lotCtrl := controllers.NewLotController(lotSvc, labelPDFSvc, logger)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentSvc, intakeSvc, logger)
	inventoryCtrl := controllers.NewInventoryController(inventorySvc, logger)
	commissionCtrl := controllers.NewCommissionController(commissionSvc, logger)
	configurationCtrl := controllers.NewConfigurationController(configurationSvc, logger)
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWT.CookieName, cfg.JWT.AccessTokenTTL, logger)
	userCtrl := controllers.NewUserController(userSvc, logger)
	branchCtrl := controllers.NewBranchController(branchSvc, logger)
	cashCtrl := controllers.NewCashController(cashSvc, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceSvc, logger)
	reportCtrl := controllers.NewReportController(reportSvc, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authCtrl)
	runLotRouter(secure, lotCtrl, authMW)
	runCatalogRouter(secure, catalogCtrl)
	runEquipmentRouter(secure, equipmentCtrl, authMW)
	runInventoryRouter(secure, inventoryCtrl, authMW)
	runCommissionRouter(secure, commissionCtrl, authMW)
	runConfigurationRouter(secure, configurationCtrl, authMW)
	runUserRouter(secure, userCtrl, authMW)
	runBranchRouter(secure, branchCtrl)
	runCashRouter(secure, cashCtrl, authMW)
	runMaintenanceRouter(secure, maintenanceCtrl, authMW)
	runReportRouter(secure, reportCtrl, authMW)
}
