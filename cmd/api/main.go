package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	appcontext "schememonitor/internal/app_context"
	"schememonitor/internal/config"
	"schememonitor/internal/controller"
	"schememonitor/internal/database"
	"schememonitor/internal/env"
	"schememonitor/internal/external"
	filestorage "schememonitor/internal/file_storage"
	"schememonitor/internal/middleware"
	"schememonitor/internal/model"
	ratelimiter "schememonitor/internal/rate_limiter"
	"schememonitor/internal/repository"
	"schememonitor/internal/route"
	"schememonitor/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	if err := db.AutoMigrate(&model.Scheme{}, &model.Component{}, &model.ComponentImage{}); err != nil {
		logger.Panic(err)
	}

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	repo := repository.NewRepository(db, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		S3:         s3,
		SMDP:       external.NewSMDPClient(cfg.SMDP, logger),
		Tourism:    external.NewTourismClient(cfg.Tourism, logger),
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/uploads/:bucket/:filename", _controller.Index.Uploads)

	rApi := r.Group("/api")

	route.Schemes(rApi, _controller.Scheme)
	route.Components(rApi, _controller.Component)
	route.Uploads(rApi, _controller.Upload)
	route.Reports(rApi, _controller.Report)
	route.External(rApi, _controller.External)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
