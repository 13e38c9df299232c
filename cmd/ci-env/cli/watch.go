package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 300 * time.Millisecond

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-print facts whenever the --env-file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return errors.New("watch requires --env-file")
		}
		if !slices.Contains(outputFormats, watchOutput) {
			return errors.Errorf("unknown output format %q", watchOutput)
		}

		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer func() { _ = d.log.Sync() }()

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		emit := func() {
			env, err := source(envFile)
			if err != nil {
				// Editors may replace the file in steps; the next event retries.
				d.log.Warn("read env file", zap.Error(err))
				return
			}

			// A fresh resolver so provider detection sees the new file.
			facts, err := d.environment(env).Snapshot(ctx)
			if err != nil {
				d.log.Warn("resolve facts", zap.Error(err))
			}
			if err := render(os.Stdout, facts, watchOutput); err != nil {
				d.log.Warn("render facts", zap.Error(err))
			}
		}

		emit()
		d.log.Info("watching", zap.String("env_file", envFile))
		return watchFile(ctx, envFile, d.log, emit)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "json", "output format: table, json, yaml or env")
	rootCmd.AddCommand(watchCmd)
}

// watchFile calls fire after path is written, created or renamed, debounced.
// fire runs on the calling goroutine, so calls never overlap. It returns when ctx is done.
func watchFile(ctx context.Context, path string, log *zap.Logger, fire func()) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "fsnotify init")
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "fsnotify add dir %s", dir)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			pending = nil
			fire()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Base(ev.Name) != base {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				pending = timer.C
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("fsnotify error", zap.Error(err))
		}
	}
}
