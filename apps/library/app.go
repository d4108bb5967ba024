package library

import (
	"embed"
	"html/template"
	"log/slog"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"readinglog.xdoubleu.com/apps/library/internal/jobs"
	"readinglog.xdoubleu.com/apps/library/internal/repositories"
	"readinglog.xdoubleu.com/apps/library/internal/services"
	"readinglog.xdoubleu.com/apps/library/pkg/goodreads"
	"readinglog.xdoubleu.com/internal/auth"
	"readinglog.xdoubleu.com/internal/config"
	"readinglog.xdoubleu.com/internal/timeago"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Library struct {
	logger   *slog.Logger
	Config   config.Config
	clients  Clients
	Services *services.Services
	tpl      *template.Template
	jobQueue *threading.JobQueue
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Library {
	clients := Clients{
		Goodreads: goodreads.New(logger),
	}

	repos := repositories.New(postgres.NewSpanDB(db))

	return NewInner(authService, logger, cfg, repos.Books, clients)
}

// NewInner wires the app around an arbitrary book store, which lets tests
// run without a database.
func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	books services.BookStore,
	clients Clients,
) *Library {
	tpl := template.Must(
		template.New("library").
			Funcs(template.FuncMap{"age": timeago.Since}).
			ParseFS(htmlTemplates, "templates/html/**/*.html"),
	)

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 10)

	//nolint:exhaustruct //other fields are optional
	app := &Library{
		logger:   logger,
		clients:  clients,
		Config:   cfg,
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.Services = services.New(
		logger,
		cfg,
		jobQueue,
		books,
		clients.Goodreads,
		authService,
	)
	app.setJobs()

	return app
}

func (app *Library) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewGoodreadsJob(app.Services.Goodreads, app.Services.Library),
		app.Services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.Services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}

func (app *Library) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("library_goose_db_version")

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Library) GetName() string {
	return "library"
}
