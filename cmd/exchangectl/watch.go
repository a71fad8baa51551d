package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/loader"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

// editors often write a file in several events; they are applied once
const settleDelay = 500 * time.Millisecond

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Apply an exchange document whenever it changes",
	Long: `Apply an exchange document on start and again every time the file is
written or replaced.

Example:
  exchangectl watch --user garygeeke /run/exchange/crm.yml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := importOptionsFrom(cmd)

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		b, err := openBackend(cfg, log)
		if err != nil {
			return err
		}
		defer func() { _ = b.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watchDocument(ctx, newLoader(b.exchange, opts, log), opts.userID, args[0], log.Named("watch"))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addImportFlags(watchCmd)
}

func watchDocument(ctx context.Context, l *loader.Loader, userID, filename string, log logger.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so replacing the file by rename is seen too
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	log.Infof("watching %s", filename)

	apply := func() {
		result, err := importFile(ctx, l, userID, filename)
		if err != nil {
			log.Errorx(err)
			return
		}
		log.Infof("applied %s: %d created, %d updated", filename, len(result.Created), len(result.Updated))
	}
	apply()

	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isDocumentChange(event, filename) {
				settle = time.After(settleDelay)
			}
		case <-settle:
			settle = nil
			apply()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watcher error: %v", err)
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		}
	}
}

// isDocumentChange reports whether event wrote or replaced filename.
func isDocumentChange(event fsnotify.Event, filename string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(filename) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
