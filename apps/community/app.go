package community

import (
	"embed"
	"html/template"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/community/internal/jobs"
	"readinglog.xdoubleu.com/apps/community/internal/repositories"
	"readinglog.xdoubleu.com/apps/community/internal/services"
	"readinglog.xdoubleu.com/internal/auth"
	"readinglog.xdoubleu.com/internal/config"
	"readinglog.xdoubleu.com/internal/timeago"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Community struct {
	logger   *slog.Logger
	Config   config.Config
	Services *services.Services
	tpl      *template.Template
	jobQueue *threading.JobQueue
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Community {
	repos := repositories.New(postgres.NewSpanDB(db))

	return NewInner(authService, logger, cfg, repos.Notes)
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	notes services.NoteStore,
) *Community {
	tpl := template.Must(
		template.New("community").
			Funcs(template.FuncMap{"age": timeago.Since}).
			ParseFS(htmlTemplates, "templates/html/**/*.html"),
	)

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 10)

	//nolint:exhaustruct //other fields are optional
	app := &Community{
		logger:   logger,
		Config:   cfg,
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.Services = services.New(logger, cfg, jobQueue, notes, authService)
	app.setJobs()

	return app
}

func (app *Community) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewRefreshJob(app.Services.Feed, app.Config.FeedRefreshDuration()),
		app.Services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.Services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}

// ApplyMigrations expects the library migrations to be applied first,
// book_notes references books.
func (app *Community) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("community_goose_db_version")

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Community) GetName() string {
	return "community"
}
