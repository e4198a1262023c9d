package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/display"
	"github.com/isaacfidler/cratedig/pkg/filesystem"
	"github.com/isaacfidler/cratedig/pkg/paths"
	"github.com/isaacfidler/cratedig/pkg/reconcile"
	"github.com/isaacfidler/cratedig/pkg/store"
	"github.com/isaacfidler/cratedig/pkg/watch"
)

// engine bundles everything a command needs.
type engine struct {
	cfg        *config.Config
	paths      *paths.Paths
	reconciler *reconcile.Reconciler
	renderer   *display.Renderer
}

// buildEngine loads config, resolves paths, opens the link store, and
// wires the reconciler. Sync-style commands require the source root to
// exist; read-only commands (stats, validate) work from the store alone.
func buildEngine(requireSource bool) (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := paths.Options{
		SourceRoot:    sourceFlag,
		OrganizedRoot: destFlag,
	}
	var p *paths.Paths
	if requireSource {
		p, err = paths.New(cfg, opts)
	} else {
		p, err = paths.Resolve(cfg, opts)
	}
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	st := store.Load(fs, p.StateFilePath())

	reconciler, err := reconcile.FromConfig(cfg, fs, p, st, dryRun)
	if err != nil {
		return nil, err
	}

	return &engine{
		cfg:        cfg,
		paths:      p,
		reconciler: reconciler,
		renderer:   display.NewRenderer(),
	}, nil
}

// finishRun prints the report and turns recorded failures into a non-zero
// exit.
func (e *engine) finishRun(report reconcile.Report) error {
	fmt.Println(e.renderer.RenderReport(report))
	if report.Failed > 0 {
		return fmt.Errorf("%d link operations failed; see log for details", report.Failed)
	}
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan the library once and reconcile the organized tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(true)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		report, err := e.reconciler.FullSync(ctx)
		if err != nil {
			return err
		}
		return e.finishRun(report)
	},
}

// watchLoop blocks consuming source-tree events until ctx is cancelled.
func (e *engine) watchLoop(ctx context.Context) error {
	watcher, err := watch.New(e.paths.SourceRoot(), e.cfg.Classify.Extensions)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer func() { _ = watcher.Stop() }()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", e.paths.SourceRoot())
	if err := e.reconciler.Run(ctx, watcher.Events()); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync once, then keep the tree in sync as the library changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(true)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		report, err := e.reconciler.FullSync(ctx)
		if err != nil {
			return err
		}
		fmt.Println(e.renderer.RenderReport(report))

		return e.watchLoop(ctx)
	},
}

var resyncWatch bool

var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Remove every existing link and rebuild the tree from scratch",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(true)
		if err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()

		report, err := e.reconciler.Resync(ctx)
		if err != nil {
			return err
		}
		if err := e.finishRun(report); err != nil {
			return err
		}
		if resyncWatch {
			return e.watchLoop(ctx)
		}
		return nil
	},
}

func init() {
	resyncCmd.Flags().BoolVar(&resyncWatch, "watch", false, "Keep watching for changes after the rebuild")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Remove records whose source or link has gone missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(false)
		if err != nil {
			return err
		}
		report, err := e.reconciler.Validate()
		if err != nil {
			return err
		}
		return e.finishRun(report)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category link counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildEngine(false)
		if err != nil {
			return err
		}
		fmt.Println(e.renderer.RenderStats(e.reconciler.Stats()))
		return nil
	},
}
