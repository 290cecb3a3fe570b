package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vantagelearn/lumen/lumen"
	"github.com/vantagelearn/lumen/lumen/logger"
	"github.com/vantagelearn/lumen/lumen/migration"
	"github.com/vantagelearn/lumen/server/config"
	"github.com/vantagelearn/lumen/server/handlers"
	"github.com/vantagelearn/lumen/server/middleware"
	webservices "github.com/vantagelearn/lumen/server/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	importLegacy := flag.Bool("import-legacy", false, "import legacy MongoDB content and exit")
	flag.Parse()

	cfg, err := lumen.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	customHandler := logger.NewHandler("Lumen", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Lumen API",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	app := lumen.New(*cfg, version, commit)
	if err = app.Setup(ctx); err != nil {
		slog.Error("Failed to set up application", slog.Any("error", err))
		os.Exit(-1)
	}
	defer app.Close()

	if *importLegacy {
		if err = runLegacyImport(ctx, app); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			os.Exit(-1)
		}
		return
	}

	webCfg := config.NewWebAppConfig(cfg, cfg.Server.Debug)
	sessionService := webservices.NewSessionService(webCfg)
	mailer := webservices.NewLogMailer(cfg.Server.PublicBaseURL, cfg.Auth.MailFromAddress)
	authService := webservices.NewAuthService(webCfg, app.UserRepository, app.AuthTokenRepository, mailer)

	webApp := &handlers.WebApp{
		Config:         webCfg,
		App:            app,
		SessionService: sessionService,
		AuthService:    authService,
		Version:        version,
		Commit:         commit,
	}

	server := fiber.New(fiber.Config{
		AppName:      "Lumen API",
		ServerHeader: "Lumen",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	server.Use(recover.New())
	server.Use(middleware.SecurityHeaders())
	server.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	server.Use(cors.New(corsConfig(cfg)))
	server.Use(middleware.LoggingMiddleware())

	setupRoutes(server, webApp)

	address := cfg.Server.Addr()
	slog.Info("Starting server", slog.String("address", address))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	slog.Info("Server shutdown complete")
}

func corsConfig(cfg *lumen.Config) cors.Config {
	origins := "http://localhost:3000"
	if len(cfg.Server.CORSOrigins) > 0 {
		origins = cfg.Server.CORSOrigins[0]
		for _, origin := range cfg.Server.CORSOrigins[1:] {
			origins += "," + origin
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,Cookie",
		AllowCredentials: true,
	}
}

// runLegacyImport pulls the previous product's MongoDB content into Postgres.
func runLegacyImport(ctx context.Context, app *lumen.App) error {
	legacy := app.Cfg.Legacy

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(legacy.MongoURI))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("Failed to disconnect from MongoDB", slog.Any("error", err))
		}
	}()

	migrator := migration.NewMigrator(app.DB.BunDB())
	migrator.UseMongo(client, legacy.MongoDB)
	migrator.UsePool(app.DB.GetPool())
	if legacy.BatchSize > 0 {
		migrator.SetBatchSize(legacy.BatchSize)
	}
	migrator.SetUseCopy(legacy.UseCopy)
	return migrator.Run(ctx)
}

// setupRoutes configures all application routes
func setupRoutes(server *fiber.App, webApp *handlers.WebApp) {
	server.Get("/health", handlers.HealthCheck(webApp))

	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Lumen API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	// Auth routes, rate limited harder than the rest of the API
	auth := server.Group("/api/auth")
	auth.Use(middleware.AuthRateLimit())
	auth.Post("/signup", handlers.SignUp(webApp))
	auth.Post("/signin", handlers.SignIn(webApp))
	auth.Post("/signout", handlers.SignOut(webApp))
	auth.Post("/magic-link", handlers.RequestMagicLink(webApp))
	auth.Post("/magic-link/redeem", handlers.RedeemMagicLink(webApp))
	auth.Post("/password-reset", handlers.RequestPasswordReset(webApp))
	auth.Post("/password-reset/confirm", handlers.ConfirmPasswordReset(webApp))
	auth.Get("/validate", handlers.ValidateSession(webApp))

	// Signed-in API
	api := server.Group("/api")
	api.Use(middleware.APIRateLimit())
	api.Use(middleware.AuthRequired(webApp.SessionService))

	api.Get("/me", handlers.Me(webApp))
	api.Put("/me/subjects", handlers.UpdateSubjects(webApp))
	api.Get("/missions", handlers.Missions(webApp))
	api.Post("/missions/:id/claim", handlers.ClaimMission(webApp))
	api.Get("/badges", handlers.Badges(webApp))
	api.Get("/leaderboard", handlers.Leaderboard(webApp))

	api.Get("/lessons", handlers.ListLessons(webApp))
	api.Get("/lessons/search", handlers.SearchLessons(webApp))
	api.Get("/lessons/:id", handlers.GetLesson(webApp))
	api.Post("/lessons/:id/start", handlers.StartLesson(webApp))
	api.Post("/lessons/sessions/:session/answer", handlers.AnswerLesson(webApp))
	api.Post("/lessons/sessions/:session/collect", handlers.CollectLesson(webApp))

	api.Post("/drills", handlers.StartDrill(webApp))
	api.Get("/drills/:session", handlers.DrillCurrent(webApp))
	api.Post("/drills/:session/answer", handlers.DrillAnswer(webApp))
	api.Post("/drills/:session/hint", handlers.DrillHint(webApp))
	api.Post("/drills/:session/finish", handlers.DrillFinish(webApp))

	api.Get("/timetable", handlers.ListTimetable(webApp))
	api.Post("/timetable", handlers.CreateTimetableEntry(webApp))
	api.Put("/timetable/:id", handlers.UpdateTimetableEntry(webApp))
	api.Delete("/timetable/:id", handlers.DeleteTimetableEntry(webApp))

	api.Get("/journal", handlers.ListJournal(webApp))
	api.Post("/journal", handlers.CreateJournalEntry(webApp))
	api.Get("/journal/:id", handlers.GetJournalEntry(webApp))
	api.Put("/journal/:id", handlers.UpdateJournalEntry(webApp))
	api.Delete("/journal/:id", handlers.DeleteJournalEntry(webApp))

	// Admin surface
	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired())

	admin.Get("/stats", handlers.GetDashboardStats(webApp))

	lessons := admin.Group("/lessons")
	lessons.Post("/", middleware.AuditLogMiddleware("lesson_create"), handlers.CreateLesson(webApp))
	lessons.Put("/:id", middleware.AuditLogMiddleware("lesson_update"), handlers.UpdateLesson(webApp))
	lessons.Delete("/:id", middleware.AuditLogMiddleware("lesson_delete"), handlers.DeleteLesson(webApp))
	lessons.Get("/:id/questions", handlers.ListLessonQuestions(webApp))
	lessons.Get("/:id/questions/search", handlers.SearchQuestions(webApp))
	lessons.Get("/:id/conflicts", handlers.GetNumberConflicts(webApp))

	questions := admin.Group("/questions")
	questions.Post("/", middleware.AuditLogMiddleware("question_create"), handlers.CreateQuestion(webApp))
	questions.Put("/:id", middleware.AuditLogMiddleware("question_update"), handlers.UpdateQuestion(webApp))
	questions.Delete("/:id", middleware.AuditLogMiddleware("question_delete"), handlers.DeleteQuestion(webApp))
	questions.Post("/:id/image", middleware.AuditLogMiddleware("question_image_upload"), handlers.UploadQuestionImage(webApp))

	// No route matched
	server.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
	})
}
