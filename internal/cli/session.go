package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jask/launchdeck/internal/config"
	"github.com/jask/launchdeck/internal/database"
	"github.com/jask/launchdeck/internal/logging"
	"github.com/jask/launchdeck/internal/service"
	"github.com/jask/launchdeck/internal/spacex"
	"github.com/jask/launchdeck/internal/store"
	"github.com/jask/launchdeck/internal/version"
)

// session is what every command needs: config, a logger and, when enabled,
// the fetch archive.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sql.DB
	archive *service.ArchiveService
	closers []io.Closer
}

// openSession loads config and opens the archive. logFile sends logs to the
// configured file instead of stderr, for the TUI.
func openSession(opts *RootOptions, stderr io.Writer, logFile bool) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	s := &session{cfg: cfg}

	if logFile {
		logger, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "open log", err)
		}
		s.logger = logger
		s.closers = append(s.closers, closer)
	} else {
		level := cfg.Log.Level
		if opts.Verbose {
			level = "debug"
		}
		s.logger = logging.New(stderr, level)
	}

	if cfg.Database.Enabled {
		if err := s.openArchive(); err != nil {
			s.logger.Warn("fetch archive unavailable", "path", cfg.Database.Path, "error", err)
		}
	}
	return s, nil
}

func (s *session) openArchive() error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.OpenMigrated(s.cfg.Database.Path)
	if err != nil {
		return err
	}
	s.db = db
	s.archive = &service.ArchiveService{DB: db, Logger: s.logger}
	s.closers = append(s.closers, db)
	return nil
}

func (s *session) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *session) client() *spacex.Client {
	return spacex.NewClient(s.cfg.API.Endpoint, s.cfg.API.Timeout,
		spacex.WithUserAgent(s.cfg.API.UserAgent+"/"+version.Version))
}

// liveLoader builds a store over the live API whose first load is archived
// when the archive is open.
func (s *session) liveLoader() (*store.LaunchStore, func(ctx context.Context) store.LoadState) {
	c := s.client()
	st := store.New(c, s.logger)
	l := &service.Loader{Store: st, Endpoint: c.Endpoint(), Logger: s.logger}
	if s.archive != nil {
		l.Archive = s.archive
	}
	return st, l.Load
}

// requireArchive fails commands that only make sense with the archive.
func (s *session) requireArchive() error {
	if s.archive != nil {
		return nil
	}
	if !s.cfg.Database.Enabled {
		return WrapExitError(ExitCommandError, "fetch archive is disabled", fmt.Errorf("set database.enabled = true"))
	}
	return WrapExitError(ExitCommandError, "fetch archive unavailable", fmt.Errorf("could not open %s", s.cfg.Database.Path))
}
