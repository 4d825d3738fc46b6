package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agrorent-api/internal/controllers"
	"agrorent-api/internal/repositories"
	"agrorent-api/internal/services"
	"agrorent-api/pkg/config"
	"agrorent-api/pkg/filestorage"
	"agrorent-api/pkg/middleware"
	"agrorent-api/pkg/service"
)

// InitRouter wires repositories, services and controllers together and
// mounts every route of the API.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) error {
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	photoRepo := repositories.NewPhotoRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, &cfg.Auth, logger)
	userService := services.NewUserService(userRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, photoRepo, fileStorage, cfg.Server.PublicBaseURL, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	exportCtrl := controllers.NewExportController(equipmentService, logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.Static("/uploads", cfg.Upload.Dir)

	runAuthRouter(e, authCtrl)
	runEquipmentRouter(e, equipmentCtrl, exportCtrl, authMW)
	runUserRouter(e, userCtrl, authMW)

	logger.Info("rotas registradas")
	return nil
}
