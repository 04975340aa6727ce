package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/logging"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/quiz"
	"github.com/abhisek/mathfacts/internal/screens/launch"
	"github.com/abhisek/mathfacts/internal/store"
)

// logFileName is created beside the database when the TUI runs without
// MATHFACTS_LOG_FILE.
const logFileName = "mathfacts.log"

// env holds what every command needs: the open store, the progress ledger
// with an active user, and a logger.
type env struct {
	store    *store.Store
	progress *store.Progress
	log      *logging.Logger
}

// openEnv resolves the database, builds the logger and loads progress.
// With tui set, logs default to a file so the screen stays clean.
func openEnv(cmd *cobra.Command, tui bool) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logOpts := logging.OptionsFromEnv()
	if tui && logOpts.OutputPath == "" {
		logOpts.OutputPath = filepath.Join(filepath.Dir(dbPath), logFileName)
		if logOpts.Level == "" {
			logOpts.Level = "info"
		}
	}
	log, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	progress, err := store.NewProgress(ctx, st.KV(), log)
	if err != nil {
		st.Close()
		log.Sync()
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if _, err := progress.Init(ctx); err != nil {
		st.Close()
		log.Sync()
		return nil, fmt.Errorf("init progress: %w", err)
	}
	log.Debug("store opened", "db", dbPath)
	return &env{store: st, progress: progress, log: log}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close store:", err)
	}
	e.log.Sync()
}

// deps wires the engine over the progress ledger.
func (e *env) deps() launch.Deps {
	rng := problemgen.NewRand()
	gen := problemgen.New(e.progress, e.progress, rng, problemgen.DefaultConfig())
	return launch.Deps{
		Progress:  e.progress,
		Generator: gen,
		Assembler: quiz.New(rng, gen.Distractors(), quiz.DefaultConfig()),
		Rng:       rng,
		Log:       e.log,
	}
}
