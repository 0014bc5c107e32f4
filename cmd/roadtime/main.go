// Command roadtime finds the fastest route between two places of a road
// network and shows how traffic on a single road changes it.
//
// Without --from/--to it asks for the places interactively. With --serve
// it exposes the network over HTTP instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/roadtime/config"
	"github.com/katalvlaran/roadtime/core"
	"github.com/katalvlaran/roadtime/logging"
	"github.com/katalvlaran/roadtime/network"
	"github.com/katalvlaran/roadtime/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		stop()
		logging.Fatal("roadtime failed", "error", err)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	fs := config.Flags()
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	n, err := loadNetwork(cfg.Network)
	if err != nil {
		return err
	}
	g, err := n.Graph()
	if err != nil {
		return err
	}
	logging.Debug("network loaded", "name", n.Name, "places", g.VertexCount(), "roads", g.EdgeCount())

	switch {
	case cfg.Serve:
		return serve(ctx, out, cfg, g, n.Name)
	case cfg.Interactive():
		return newSession(in, out, g, n.Name).run()
	default:
		return runOnce(out, cfg, g)
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Verbosity)
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	logging.SetJSONOutput(cfg.JSONLogs)

	return nil
}

func loadNetwork(path string) (network.Network, error) {
	if path == "" {
		return network.Erode(), nil
	}
	return network.Load(path)
}

// runOnce prints the route for --from/--to, before and after the optional
// --delay-from/--delay-to traffic.
func runOnce(out io.Writer, cfg *config.Config, g *core.Graph) error {
	for _, place := range []string{cfg.From, cfg.To} {
		if !g.HasVertex(place) {
			return fmt.Errorf("%w: unknown place %q", core.ErrVertexNotFound, place)
		}
	}

	fmt.Fprintf(out, "Finding the shortest route from %s to %s...\n", cfg.From, cfg.To)
	if err := printRoute(out, g, cfg.From, cfg.To); err != nil {
		return err
	}
	if !cfg.HasDelay() {
		return nil
	}

	if err := applyDelay(out, g, cfg.DelayFrom, cfg.DelayTo, cfg.Delay); err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated route from %s to %s after traffic adjustment...\n", cfg.From, cfg.To)

	return printRoute(out, g, cfg.From, cfg.To)
}

func serve(ctx context.Context, out io.Writer, cfg *config.Config, g *core.Graph, name string) error {
	srv := server.NewServer(g, name)

	if cfg.Watch {
		w, err := network.NewWatcher(cfg.Network)
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.Start(ctx); err != nil {
			return err
		}
		go srv.Follow(w.Updates())
	}

	fmt.Fprintf(out, "Serving %s on http://localhost:%d\n", name, cfg.Port)
	return srv.Start(ctx, fmt.Sprintf(":%d", cfg.Port))
}
