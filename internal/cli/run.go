package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/internal/config"
	"github.com/aretw0/stepline/internal/presentation/tui"
	httpAdapter "github.com/aretw0/stepline/pkg/adapters/http"
	"github.com/aretw0/stepline/pkg/adapters/terminal"
	"github.com/aretw0/stepline/pkg/observability"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	ScenePath string
	Config    config.Config
	// Headless disables keyboard input and the banner; the scene still plays.
	Headless bool
	Output   *os.File
	Input    *os.File
}

// Play loads the scene and runs it on the terminal until ctx is done or the
// user quits. The HTTP control API, metrics endpoint and external event
// buses are started when configured.
func Play(ctx context.Context, opts PlayOptions, logger *slog.Logger) error {
	cfg := opts.Config
	sc, err := scene.Load(opts.ScenePath)
	if err != nil {
		return err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	width, height := cfg.Width, cfg.Height
	if w, h, err := term.GetSize(int(out.Fd())); err == nil {
		width, height = w, h-1
	}

	if !opts.Headless {
		tui.PrintBanner(out, stepline.Version)
		fmt.Fprintln(out, KeyHelp)
		time.Sleep(750 * time.Millisecond)
	}
	renderer := terminal.New(out, width, height)

	var reg *prometheus.Registry
	if cfg.Metrics.Addr != "" {
		reg = prometheus.NewRegistry()
	}
	sinks, err := createSinks(cfg, reg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sinks.Close(); err != nil {
			logger.Warn("failed to close event sinks", "error", err)
		}
	}()

	var api *httpAdapter.Server
	if cfg.HTTP.Addr != "" {
		api = httpAdapter.NewServer(nil, logger)
		sinks.add(api, nil)
	}

	engine, err := createEngine(ctx, sc, renderer, cfg, sinks.Bus(), DefaultEffects(out, logger), logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	resizes := make(chan [2]int, 1)
	g.Go(func() error { return engine.Run(ctx, resizes) })
	if term.IsTerminal(int(out.Fd())) {
		g.Go(func() error { return watchSize(ctx, int(out.Fd()), width, height, resizes) })
	}

	if api != nil {
		api.Controller = engine
		g.Go(func() error { return serve(ctx, cfg.HTTP.Addr, api.Handler(), logger) })
	}
	if reg != nil {
		reg.MustRegister(observability.NewQueueCollector(engine))
		g.Go(func() error { return serve(ctx, cfg.Metrics.Addr, observability.Handler(reg), logger) })
	}

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	if !opts.Headless && term.IsTerminal(int(in.Fd())) {
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(int(in.Fd()), state)
		// The reader blocks on stdin, so it lives outside the group and is
		// abandoned on exit.
		go readKeys(ctx, in, engine, cancel, logger)
	}

	return g.Wait()
}

// watchSize polls the terminal size and forwards changes to the engine.
func watchSize(ctx context.Context, fd, width, height int, resizes chan<- [2]int) error {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w, h, err := term.GetSize(fd)
			if err != nil || (w == width && h-1 == height) {
				continue
			}
			width, height = w, h-1
			select {
			case resizes <- [2]int{width, height}:
			default:
			}
		}
	}
}

// serve runs an HTTP server until ctx is done.
func serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown of %s did not complete: %w", addr, err)
		}
		return nil
	}
}

// Validate parses the scene and renders a markdown report of it to w.
func Validate(path string, w io.Writer, width int) error {
	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	render, err := tui.NewRenderer(width)
	if err != nil {
		return err
	}
	out, err := render(tui.SceneReport(sc))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
