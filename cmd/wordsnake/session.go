package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/dictionary"
	"github.com/vovakirdan/wordsnake/internal/events"
	"github.com/vovakirdan/wordsnake/internal/progression"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

// session holds everything a play or menu run shares.
type session struct {
	env     registry.Env
	store   *storage.Store
	player  *audio.Player
	logger  *log.Logger
	logFile io.Closer
}

// openSession builds the logger, config, storage and audio from the global flags.
// Storage and audio failures degrade the session instead of aborting it.
func openSession() (*session, error) {
	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, logFile: logFile}

	cfg, err := config.LoadWordSnake(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}

	var best progression.HighScoreStore = storage.NewMemoryBest()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
	} else {
		s.store = store
		best = store
	}

	notifier := events.Fanout{events.NotifierFunc(func(evt events.Event) {
		logger.Debug("game event", "event", fmt.Sprintf("%T", evt), "data", fmt.Sprintf("%+v", evt))
	})}
	if !flagMute {
		s.player = audio.NewPlayer(logger)
		if err := s.player.Init(); err == nil {
			notifier = append(notifier, s.player)
		}
	}

	s.env = registry.Env{
		Config:   cfg,
		Words:    wordsFS(flagWords),
		Best:     best,
		Notifier: notifier,
		Logger:   logger,
	}
	return s, nil
}

// Close releases the audio device, the database and the log file.
func (s *session) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close store", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// wordsFS layers dir over the embedded lists. Empty dir means embedded only.
func wordsFS(dir string) fs.FS {
	if dir == "" {
		return dictionary.Embedded()
	}
	return dictionary.Overlay{
		Primary:  os.DirFS(expandHome(dir)),
		Fallback: dictionary.Embedded(),
	}
}

// newLogger opens path for appending and returns a logger writing to it.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer
	)
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordsnake",
		Level:           lvl,
	})
	log.SetDefault(logger)
	return logger, closer, nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
