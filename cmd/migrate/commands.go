package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/logger"
)

// migrator — операции golang-migrate, которые использует CLI
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Force(version int) error
	Version() (version uint, dirty bool, err error)
}

// openFunc открывает migrator и возвращает функцию закрытия
type openFunc func(configPath, source string) (migrator, func(), error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openMigrator, os.Stdout)
}

func newRootCmdWith(open openFunc, out io.Writer) *cobra.Command {
	var configPath string
	var source string

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the trivia database schema",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("CONFIG_PATH", "config/config.yaml"), "Path to config file")
	cmd.PersistentFlags().StringVar(&source, "source", "", "Migrations source URL (defaults to database.migrations_path)")

	withMigrator := func(fn func(m migrator, args []string) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			m, closeFn, err := open(configPath, source)
			if err != nil {
				return err
			}
			defer closeFn()
			return fn(m, args)
		}
	}

	up := &cobra.Command{
		Use:   "up [N]",
		Short: "Apply all (or N) pending migrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: withMigrator(func(m migrator, args []string) error {
			if len(args) == 0 {
				return ignoreNoChange(m.Up())
			}
			n, err := positiveInt(args[0])
			if err != nil {
				return err
			}
			return ignoreNoChange(m.Steps(n))
		}),
	}

	var all bool
	down := &cobra.Command{
		Use:   "down [N]",
		Short: "Roll back N migrations (1 by default, --all for everything)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withMigrator(func(m migrator, args []string) error {
			if all {
				return ignoreNoChange(m.Down())
			}
			n := 1
			if len(args) == 1 {
				var err error
				if n, err = positiveInt(args[0]); err != nil {
					return err
				}
			}
			return ignoreNoChange(m.Steps(-n))
		}),
	}
	down.Flags().BoolVar(&all, "all", false, "Roll back all migrations")

	force := &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: withMigrator(func(m migrator, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < -1 {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return m.Force(v)
		}),
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m migrator, _ []string) error {
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(out, "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "version %d (dirty: %t)\n", v, dirty)
			return nil
		}),
	}

	cmd.AddCommand(up, down, force, version)
	return cmd
}

// openMigrator подключается к PostgreSQL через lib/pq
func openMigrator(configPath, source string) (migrator, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return nil, nil, fmt.Errorf("migrations require the postgres driver, got %q", cfg.Database.Driver)
	}
	if source == "" {
		source = cfg.Database.MigrationsPath
	}
	log := logger.New(cfg.Server.Mode, os.Stderr)

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	log.Info("connected", slog.String("host", cfg.Database.Host), slog.String("db", cfg.Database.DBName), slog.String("source", source))
	return m, func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("failed to close migrator", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
		}
	}, nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid step count %q", raw)
	}
	return n, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
