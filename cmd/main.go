package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/config"
	"github.com/jobdesk/jobdesk/database"
	_ "github.com/jobdesk/jobdesk/docs" // Swagger docs - auto-generated
	"github.com/jobdesk/jobdesk/internal/access"
	accountctrl "github.com/jobdesk/jobdesk/internal/controller/account"
	applicantctrl "github.com/jobdesk/jobdesk/internal/controller/applicant"
	authctrl "github.com/jobdesk/jobdesk/internal/controller/auth"
	employerctrl "github.com/jobdesk/jobdesk/internal/controller/employer"
	"github.com/jobdesk/jobdesk/internal/logger"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/jobdesk/jobdesk/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title JobDesk API
// @version 1.0
// @description Job-board backend: employers post jobs and vacancies with optional screening tests, applicants apply and take tests.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
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
			repository.NewEmployerRepository,
			repository.NewApplicantRepository,
			repository.NewJobRepository,
			repository.NewVacancyRepository,
			repository.NewTagRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewApplicationRepository,
			repository.NewResumeRepository,
		),

		// Services
		fx.Provide(
			service.NewScoringService,
			service.NewAuthService,
			service.NewAccountService,
			service.NewJobService,
			service.NewVacancyService,
			service.NewScreeningService,
			service.NewApplicationService,
			service.NewAnalyticsService,
			service.NewResumeService,
		),

		// Controllers
		fx.Provide(
			authctrl.NewAuthController,
			accountctrl.NewAccountController,
			employerctrl.NewJobController,
			employerctrl.NewVacancyController,
			employerctrl.NewScreeningController,
			employerctrl.NewReviewController,
			applicantctrl.NewVacancyController,
			applicantctrl.NewResumeController,
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

	// Navigational requests pass the access gate; /api is exempt.
	r.Use(access.Middleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authController *authctrl.AuthController,
	accountController *accountctrl.AccountController,
	jobController *employerctrl.JobController,
	vacancyController *employerctrl.VacancyController,
	screeningController *employerctrl.ScreeningController,
	reviewController *employerctrl.ReviewController,
	applicantVacancyController *applicantctrl.VacancyController,
	resumeController *applicantctrl.ResumeController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/registration", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)

		api.GET("/users/employers/:id", accountController.GetEmployer)
		api.GET("/users/applicants/:id", accountController.GetApplicant)
		api.GET("/tags", accountController.ListTags)

		api.GET("/employers/:id/works", jobController.ListJobs)
		api.POST("/employers/:id/works", jobController.CreateJob)
		api.PUT("/works/:id", jobController.UpdateJob)
		api.DELETE("/works/:id", jobController.DeleteJob)

		api.GET("/works/:id/vacancies", vacancyController.ListVacancies)
		api.POST("/works/:id/vacancies", vacancyController.CreateVacancy)
		api.PUT("/vacancies/:id", vacancyController.UpdateVacancy)
		api.DELETE("/vacancies/:id", vacancyController.DeleteVacancy)

		api.GET("/vacancies/:id/test", screeningController.GetTest)
		api.POST("/vacancies/:id/test", screeningController.CreateTest)
		api.DELETE("/vacancies/:id/test", screeningController.DeleteTest)
		api.POST("/tests/:id/questions", screeningController.AddQuestion)
		api.PUT("/questions/:id", screeningController.UpdateQuestion)
		api.DELETE("/questions/:id", screeningController.DeleteQuestion)

		api.GET("/employers/:id/review", reviewController.Review)
		api.PUT("/employers/applications", reviewController.Decide)
		api.GET("/employers/:id/analytics", reviewController.Analytics)

		api.GET("/applicants/:id/vacancies", applicantVacancyController.ListVacancies)
		api.POST("/applicants/:id/applications", applicantVacancyController.Apply)
		api.DELETE("/applicants/:id/applications/:vacancy_id", applicantVacancyController.Withdraw)
		api.GET("/applicants/:id/analytics", applicantVacancyController.Analytics)

		api.GET("/applicants/:id/resume", resumeController.GetResume)
		api.POST("/applicants/:id/resume", resumeController.CreateResume)
		api.PUT("/applicants/:id/resume", resumeController.UpdateResume)
		api.DELETE("/applicants/:id/resume", resumeController.DeleteResume)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("JobDesk API server starting on port %s", cfg.Server.Port)
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
		&model.Employer{},
		&model.Applicant{},
		&model.Job{},
		&model.Vacancy{},
		&model.Tag{},
		&model.Test{},
		&model.Question{},
		&model.VacancyApplication{},
		&model.ApplicantTestResult{},
		&model.Resume{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
