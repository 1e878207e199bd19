package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/studiva/studiva-backend/config"
	"github.com/studiva/studiva-backend/internal/controller/admin"
	"github.com/studiva/studiva-backend/internal/controller/user"
	"github.com/studiva/studiva-backend/internal/database"
	"github.com/studiva/studiva-backend/internal/logger"
	"github.com/studiva/studiva-backend/internal/middleware"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
	"github.com/studiva/studiva-backend/internal/service"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewCatalogRepository,
			repository.NewMaterialProgressRepository,
			repository.NewUserAnswerRepository,
			repository.NewScoreRepository,
		),

		// Services
		fx.Provide(
			service.NewCatalogService,
			service.NewProgressService,
			service.NewSubmissionService,
			service.NewScoreService,
			service.NewLeaderboardService,
		),

		// Controllers
		fx.Provide(
			user.NewCatalogController,
			user.NewProgressController,
			user.NewSubmissionController,
			user.NewScoreController,
			user.NewLeaderboardController,
			admin.NewAdminScoreController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.Setup(cfg) }),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	return nil
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	catalogCtrl *user.CatalogController,
	progressCtrl *user.ProgressController,
	submissionCtrl *user.SubmissionController,
	scoreCtrl *user.ScoreController,
	leaderboardCtrl *user.LeaderboardController,
	adminScoreCtrl *admin.AdminScoreController,
) {
	api := router.Group("/api/v1")

	// The leaderboard is public.
	api.GET("/leaderboard", leaderboardCtrl.GetLeaderboard)

	authed := api.Group("")
	authed.Use(middleware.Identity(userRepo))
	{
		authed.GET("/modules", catalogCtrl.ListModules)
		authed.GET("/modules/:module_id", catalogCtrl.GetModule)

		authed.POST("/materials/:material_id/progress", progressCtrl.RecordProgress)
		authed.GET("/materials/:material_id/progress", progressCtrl.GetProgress)

		authed.POST("/user-answers", submissionCtrl.SubmitAnswer)
		authed.GET("/challenges/:challenge_id/stats", submissionCtrl.GetChallengeAttemptStats)

		authed.GET("/scores", scoreCtrl.GetScores)
		authed.GET("/statistics", scoreCtrl.GetStatistics)
		authed.GET("/daily-points", scoreCtrl.GetDailyPoints)
		authed.GET("/users/me/detail", scoreCtrl.GetUserDetail)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.Identity(userRepo), middleware.RequireAdmin())
	{
		adminGroup.GET("/scores", adminScoreCtrl.GetAllUserOverviews)
		adminGroup.GET("/users/:user_id/stats", adminScoreCtrl.GetUserStats)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Studiva API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Module{},
		&model.Material{},
		&model.Challenge{},
		&model.Question{},
		&model.Answer{},
		&model.MaterialProgress{},
		&model.UserAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
