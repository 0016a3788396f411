package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-system/internal/controllers"
	"hr-system/internal/repositories"
	"hr-system/internal/services"
	"hr-system/pkg/config"
)

const cachePrefix = "hr:"

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient, cachePrefix)
	} else {
		logger.Warn("Redis не настроен, кэш карточек сотрудников отключен")
	}

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	leaveBenefitRepo := repositories.NewLeaveBenefitRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)
	worktimeRepo := repositories.NewWorktimeRepository(dbConn, logger)
	timecheckRepo := repositories.NewTimecheckRepository(dbConn, logger)

	// --- 2. СЕРВИСЫ ---
	userService := services.NewUserService(
		userRepo, departmentRepo, worktimeRepo, leaveBenefitRepo,
		cacheRepo, cfg.Cache.OwnersInfoTTL, logger,
	)
	timecheckService := services.NewTimecheckService(userRepo, timecheckRepo, logger)
	departmentService := services.NewDepartmentService(departmentRepo, userRepo, cacheRepo, logger)
	leaveBenefitService := services.NewLeaveBenefitService(leaveBenefitRepo, logger)
	roleService := services.NewRoleService(roleRepo, userRepo, logger)
	worktimeService := services.NewWorktimeService(txManager, worktimeRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	userController := controllers.NewUserController(userService, timecheckService, logger)
	timecheckController := controllers.NewTimecheckController(timecheckService, logger)

	// --- 4. РОУТЕРЫ ---
	runUserRouter(api, userController)
	runTimecheckRouter(api, timecheckController)
	runDepartmentRouter(api, departmentService, logger)
	runLeaveBenefitRouter(api, leaveBenefitService, logger)
	runRoleRouter(api, roleService, logger)
	runWorktimeRouter(api, worktimeService, logger)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
