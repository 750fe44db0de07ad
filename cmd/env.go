package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/phonix/internal/audio"
	"github.com/abhisek/phonix/internal/config"
	"github.com/abhisek/phonix/internal/game"
	"github.com/abhisek/phonix/internal/logging"
	"github.com/abhisek/phonix/internal/store"
	"github.com/abhisek/phonix/internal/words"
)

// env is everything a command needs to touch a player's progress.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	game   *game.Game
}

// resolveConfig loads the config file named by --config, or the default
// one, and applies the --db and --words flags over it.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("words"); p != "" {
		cfg.WordsFile = p
	}
	return cfg, path, nil
}

// openEnv builds the logger, store, word bank and game. Interactive runs
// log to a file because the TUI owns the terminal.
func openEnv(ctx context.Context, cmd *cobra.Command, interactive bool) (*env, error) {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logOpts := logging.Options{Level: cfg.LogLevel, Verbose: verbose, File: cfg.LogFile}
	if interactive && logOpts.File == "" {
		if logOpts.File, err = logging.DefaultFile(); err != nil {
			return nil, err
		}
	}
	if !interactive && !verbose && logOpts.File == "" {
		logOpts.Level = "warn"
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	backend, err := store.OpenSQLite(dbPath, cfg.SnapshotKeep)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	defaults := store.DefaultState()
	defaults.DailyGoal = cfg.DailyGoal
	defaults.VoiceSpeed = cfg.VoiceSpeed
	defaults.SFXEnabled = cfg.SFXEnabled
	defaults.Autoplay = cfg.Autoplay
	st := store.Open(ctx, backend, defaults, logger.Named("store"))

	bank := words.Default()
	if cfg.WordsFile != "" {
		if bank, err = words.LoadFile(cfg.WordsFile); err != nil {
			st.Close()
			return nil, fmt.Errorf("load word bank: %w", err)
		}
	}

	g, err := game.New(ctx, game.Options{
		Store:              st,
		Bank:               bank,
		Speaker:            audio.NewTranscript(logger.Named("speech"), 20),
		RecognitionTimeout: cfg.RecognitionTimeout,
		Logger:             logger,
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("environment ready",
		zap.String("db", dbPath),
		zap.Int("words", bank.Len()),
		zap.Bool("interactive", interactive))
	return &env{cfg: cfg, logger: logger, store: st, game: g}, nil
}

// Close releases the game, store and logger.
func (e *env) Close() error {
	err := e.game.Close()
	_ = e.logger.Sync()
	return err
}
