package lumen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vantagelearn/lumen/lumen/database"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/lumen/progression"
	"github.com/vantagelearn/lumen/lumen/services"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App holds the wired dependencies shared by the HTTP surface and the CLI
// entrypoints.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB *database.DB

	UserRepository      repositories.UserRepository
	LessonRepository    repositories.LessonRepository
	QuestionRepository  repositories.QuestionRepository
	LessonLogRepository repositories.LessonLogRepository
	TimetableRepository repositories.TimetableRepository
	JournalRepository   repositories.JournalRepository
	AuthTokenRepository repositories.AuthTokenRepository

	Sessions           *services.SessionStore
	ProgressService    *services.ProgressService
	LessonService      *services.LessonService
	DrillService       *services.DrillService
	LeaderboardService *services.LeaderboardService
	SearchService      *services.SearchService
	SpacesService      *services.SpacesService
}

// Setup connects the database and wires repositories and services.
func (a *App) Setup(ctx context.Context) error {
	db, err := database.New(ctx, a.Cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.DB = db

	if err := db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	bunDB := db.BunDB()
	a.UserRepository = repositories.NewUserRepository(bunDB)
	a.LessonRepository = repositories.NewLessonRepository(bunDB)
	a.QuestionRepository = repositories.NewQuestionRepository(bunDB)
	a.LessonLogRepository = repositories.NewLessonLogRepository(bunDB)
	a.TimetableRepository = repositories.NewTimetableRepository(bunDB)
	a.JournalRepository = repositories.NewJournalRepository(bunDB)
	a.AuthTokenRepository = repositories.NewAuthTokenRepository(bunDB)

	a.Sessions = services.NewSessionStore()
	a.ProgressService = services.NewProgressService(a.UserRepository, progression.DefaultMissions(), progression.DefaultBadges())
	a.LessonService = services.NewLessonService(a.UserRepository, a.LessonRepository, a.QuestionRepository, a.LessonLogRepository, a.Sessions, services.SnowflakeIDs())
	a.DrillService = services.NewDrillService(a.QuestionRepository, a.Sessions)
	a.LeaderboardService = services.NewLeaderboardService(a.UserRepository, progression.DefaultBadges())
	a.SearchService = services.NewSearchService(a.LessonRepository, a.QuestionRepository)

	if a.Cfg.Spaces.Key != "" {
		spaces, err := services.NewSpacesService(
			a.Cfg.Spaces.Key,
			a.Cfg.Spaces.Secret,
			a.Cfg.Spaces.Region,
			a.Cfg.Spaces.Bucket,
			a.Cfg.Spaces.AssetRoot,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize spaces: %w", err)
		}
		a.SpacesService = spaces
	} else {
		slog.Warn("Spaces credentials missing, question image upload disabled")
	}

	slog.Info("Application wired",
		slog.String("type", "sys"),
		slog.String("version", a.Version),
		slog.String("commit", a.Commit))
	return nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
