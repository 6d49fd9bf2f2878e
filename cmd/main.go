package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/datlq-dev/quizhub/config"
	"github.com/datlq-dev/quizhub/database"
	_ "github.com/datlq-dev/quizhub/docs" // Swagger docs
	"github.com/datlq-dev/quizhub/internal/controller"
	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/logger"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/datlq-dev/quizhub/internal/service"
)

// @title QuizHub API
// @version 1.0
// @description REST backend for quiz-taking and chat: auth (password + Google OAuth), quiz CRUD and scoring, attempt history, analytics.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
			repository.NewConversationRepository,
			repository.NewMessageRepository,
		),

		// Services
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewGoogleOAuthService,
			service.NewQuizService,
			service.NewQuizScoringService,
			service.NewQuizSubmissionService,
			service.NewAnalyticsService,
			service.NewChatService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewAnalyticsController,
			controller.NewChatController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokenService service.TokenService,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	analyticsCtrl *controller.AnalyticsController,
	chatCtrl *controller.ChatController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "OK", Message: "Server is running"})
	})

	requireAuth := middleware.RequireAuth(tokenService)

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/google", authCtrl.GoogleLogin)
		authGroup.GET("/google/callback", authCtrl.GoogleCallback)
		authGroup.GET("/google/failure", authCtrl.GoogleFailure)
		authGroup.GET("/me", requireAuth, authCtrl.GetMe)
	}

	quizGroup := router.Group("/api/quiz", requireAuth)
	{
		quizGroup.GET("", quizCtrl.GetQuizzes)
		quizGroup.POST("", quizCtrl.CreateQuiz)
		quizGroup.GET("/:id", quizCtrl.GetQuiz)
		quizGroup.GET("/:id/start", quizCtrl.StartQuiz)
		quizGroup.POST("/submit", quizCtrl.SubmitQuiz)
		quizGroup.GET("/attempts/:id", quizCtrl.GetAttempt)
		quizGroup.GET("/history/me", quizCtrl.GetHistory)
	}

	analyticsGroup := router.Group("/api/analytics", requireAuth)
	{
		analyticsGroup.GET("", analyticsCtrl.GetOverview)
		analyticsGroup.GET("/graph", analyticsCtrl.GetPerformanceGraph)
		analyticsGroup.GET("/subjects", analyticsCtrl.GetSubjectBreakdown)
	}

	chatGroup := router.Group("/api/chat", requireAuth)
	{
		chatGroup.GET("/conversations", chatCtrl.GetConversations)
		chatGroup.GET("/conversations/:id", chatCtrl.GetConversation)
		chatGroup.POST("/conversations", chatCtrl.CreateConversation)
		chatGroup.POST("/messages", chatCtrl.SendMessage)
		chatGroup.DELETE("/conversations/:id", chatCtrl.DeleteConversation)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.UserQuizAttempt{},
		&model.UserAnswer{},
		&model.Conversation{},
		&model.Message{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
