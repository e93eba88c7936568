package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/eventpanel/internal/config"
	"github.com/jask/eventpanel/internal/database"
	"github.com/jask/eventpanel/internal/database/repository"
	"github.com/jask/eventpanel/internal/logging"
	"github.com/jask/eventpanel/internal/service"
	"github.com/jask/eventpanel/internal/source"
	"github.com/jask/eventpanel/internal/tui"
)

// env holds what the persistent pre-run resolved for the subcommands.
type env struct {
	configFile string
	organizer  string
	verbose    bool

	cfg        config.Config
	configPath string
	logger     zerolog.Logger
	logCloser  io.Closer
	db         *sql.DB
}

// newRoot builds the command tree and the env it fills in. The caller owns
// the env and must Close it after execution, whether or not the command failed.
func newRoot() (*cobra.Command, *env) {
	e := &env{}
	root := &cobra.Command{
		Use:   "eventpanel",
		Short: "Browse an organizer's events in the terminal",
		Long: `eventpanel lists the events of one organizer. Each event expands into
a panel with a carousel of categories: menu, personalities, requirements,
activities, food and drinks.

Events come from the local sqlite store (fill it with "eventpanel import")
or, when catalog.file is set, straight from a YAML file.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		RunE:              e.runPanel,
	}

	root.PersistentFlags().StringVar(&e.configFile, "config", "", "config file (default is $EVENTPANEL_CONFIG or ~/.config/eventpanel/config.toml)")
	root.PersistentFlags().StringVarP(&e.organizer, "organizer", "o", "", "organizer id whose events are shown")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newImportCmd(e),
		newListCmd(e),
		newDeleteCmd(e),
		newResetCmd(e),
		newSeedCmd(e),
		newConfigCmd(e),
	)
	return root, e
}

// execute runs root with args and releases the store and log file afterwards.
func execute(ctx context.Context, root *cobra.Command, e *env, args []string) error {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if cerr := e.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (e *env) setup(cmd *cobra.Command, _ []string) error {
	loadEnvFiles()

	v := config.New()
	if e.configFile != "" {
		v.SetConfigFile(e.configFile)
	}
	if err := v.BindPFlag("catalog.organizer_id", cmd.Flags().Lookup("organizer")); err != nil {
		return fmt.Errorf("bind organizer flag: %w", err)
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return err
	}
	e.configPath = v.ConfigFileUsed()
	if e.verbose {
		cfg.Log.Level = "debug"
	}
	e.cfg = cfg

	logger, closer, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	e.logger, e.logCloser = logger, closer
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), &e.logger))
	return nil
}

// Close releases the database handle and the log file, if opened.
func (e *env) Close() error {
	var errs []error
	if e.db != nil {
		errs = append(errs, e.db.Close())
	}
	if e.logCloser != nil {
		errs = append(errs, e.logCloser.Close())
		e.logCloser = nil
	}
	return errors.Join(errs...)
}

// loadEnvFiles loads .env then .env.local; existing variables win.
func loadEnvFiles() {
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}
}

// openDB migrates and opens the sqlite store once per run.
func (e *env) openDB() (*sql.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	path := e.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	e.logger.Debug().Str("path", path).Msg("database ready")
	return db, nil
}

// catalogService wires the configured event source.
func (e *env) catalogService() (*service.CatalogService, error) {
	if e.cfg.Catalog.File != "" {
		e.logger.Debug().Str("file", e.cfg.Catalog.File).Msg("reading events from file")
		return &service.CatalogService{Events: source.File{Path: e.cfg.Catalog.File}}, nil
	}
	db, err := e.openDB()
	if err != nil {
		return nil, err
	}
	return &service.CatalogService{
		Events:     repository.NewEventRepo(db),
		Organizers: repository.NewOrganizerRepo(db),
	}, nil
}

func (e *env) organizerID() (string, error) {
	if e.cfg.Catalog.OrganizerID == "" {
		return "", fmt.Errorf("no organizer: pass --organizer or set catalog.organizer_id")
	}
	return e.cfg.Catalog.OrganizerID, nil
}

func (e *env) runPanel(cmd *cobra.Command, _ []string) error {
	organizerID, err := e.organizerID()
	if err != nil {
		return err
	}
	svc, err := e.catalogService()
	if err != nil {
		return err
	}
	app := tui.New(cmd.Context(), svc, organizerID, tui.Options{
		DefaultCategory: e.cfg.Catalog.DefaultCategory,
		Columns:         e.cfg.UI.Columns,
	})
	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run panel: %w", err)
	}
	return nil
}
