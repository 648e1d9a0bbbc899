package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	dbCfg := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbCfg.URI, dbCfg.MaxPoolSize, dbCfg.MinPoolSize, dbCfg.MaxConnIdleTime)
}

func setupRouter(timerCfg config.TimerConfig, scoringCfg config.ScoringConfig) (*gin.Engine, *usecase.TimerManager) {
	router := gin.Default()

	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)
	studyLogsRepo := repository.GetStudyLogsRepo(utils.MongoClient)
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	profilesRepo := repository.GetProfilesRepo(utils.MongoClient)
	achievementsRepo := repository.GetAchievementsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)

	scoringService := usecase.NewScoringService(
		scoringCfg, sessionsRepo, studyLogsRepo, profilesRepo, achievementsRepo,
		services.GlobalProfileCache,
	)
	ledgerService := usecase.NewLedgerService(sessionsRepo, studyLogsRepo, scoringService)
	statsService := usecase.NewStatsService(sessionsRepo, studyLogsRepo, tasksRepo, achievementsRepo, profilesRepo)
	tasksService := usecase.NewTasksService(tasksRepo)
	userService := usecase.NewUserService(usersRepo)
	timerManager := usecase.NewTimerManager(timerCfg, ledgerService)

	authHandler := handler.NewAuthHandler(userService)
	tasksHandler := handler.NewTasksHandler(tasksService)
	pomodoroHandler := handler.NewPomodoroHandler(ledgerService, statsService)
	studyHandler := handler.NewStudyHandler(ledgerService, statsService)
	profileHandler := handler.NewProfileHandler(scoringService, achievementsRepo, scoringCfg)
	statsHandler := handler.NewStatsHandler(statsService)
	timerHandler := handler.NewTimerHandler(timerManager)

	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodyBytes))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/me", authHandler.Me)
			user.POST("/logout", authHandler.Logout)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("/", tasksHandler.GetTasks)
			tasks.POST("/", tasksHandler.CreateTask)
			tasks.PUT("/:id", tasksHandler.UpdateTask)
			tasks.DELETE("/:id", tasksHandler.DeleteTask)
		}

		pomodoro := protected.Group("/pomodoro")
		{
			pomodoro.POST("/sessions", pomodoroHandler.CreateSession)
			pomodoro.GET("/stats", pomodoroHandler.GetDayStats)
		}

		timer := protected.Group("/timer")
		{
			timer.GET("/", timerHandler.GetTimerState)
			timer.POST("/start", timerHandler.StartTimer)
			timer.POST("/pause", timerHandler.PauseTimer)
			timer.POST("/reset", timerHandler.ResetTimer)
		}

		study := protected.Group("/study")
		{
			study.POST("/logs", studyHandler.CreateStudyLog)
			study.GET("/logs", studyHandler.GetStudyLogs)
			study.GET("/subjects", studyHandler.GetSubjectSummary)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("/", profileHandler.GetProfile)
			profile.PUT("/settings", profileHandler.UpdateSettings)
			profile.GET("/achievements", profileHandler.GetAchievements)
		}

		stats := protected.Group("/stats")
		{
			stats.GET("/dashboard", statsHandler.GetDashboard)
			stats.GET("/heatmap", statsHandler.GetHeatmap)
			stats.GET("/weekly", statsHandler.GetWeeklyReport)
		}
	}

	return router, timerManager
}

func main() {
	dbCfg := config.LoadDatabaseConfig()
	redisCfg := config.LoadRedisConfig()
	timerCfg := config.LoadTimerConfig()
	scoringCfg := config.LoadScoringConfig()

	db := utils.MongoClient.Database(dbCfg.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Redis is optional; without it profiles are uncached and logout
	// token invalidation is unavailable.
	if cache, err := services.NewProfileCache(redisCfg.URL, 5*time.Minute); err != nil {
		log.Printf("Profile cache disabled: %v", err)
	} else {
		services.GlobalProfileCache = cache
	}
	if blacklist, err := services.NewTokenBlacklist(redisCfg.URL); err != nil {
		log.Printf("Token blacklist disabled: %v", err)
	} else {
		services.TokenBlacklist = blacklist
	}

	router, timerManager := setupRouter(timerCfg, scoringCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go timerManager.Run(ctx)

	utils.StartSystemMetrics(15 * time.Second)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
