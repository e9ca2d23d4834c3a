// SPDX-License-Identifier: MIT
// Package: polymap/cmd/mapgen

// Command mapgen generates territory maps and writes them as SVG previews.
//
// Configuration is read from a .env file in the working directory (if any),
// then from POLYMAP_* environment variables, then from flags:
//
//	mapgen -preset large -territories 6 -seeds 1,2,3 -out maps
//
// writes maps/map-1.svg, maps/map-2.svg and maps/map-3.svg. Maps for
// different seeds are generated in parallel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polymap/svgmap"
	"github.com/katalvlaran/polymap/world"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	// A missing .env is fine; the environment and flags still apply.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, "mapgen: .env:", err)
		return 2
	}

	s, err := parseArgs(args, os.Getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "mapgen:", err)
		return 2
	}

	log, err := newLogger(s.debug)
	if err != nil {
		fmt.Fprintln(stderr, "mapgen: logger:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generate(ctx, log, s); err != nil {
		log.Error("generation failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// generate builds and writes one map per seed, at most NumCPU at a time.
// The first failure cancels maps that have not started yet.
func generate(ctx context.Context, log *zap.Logger, s settings) error {
	if err := os.MkdirAll(s.out, 0o755); err != nil {
		return fmt.Errorf("mapgen: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, seed := range s.seeds {
		seed := seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := s.world
			cfg.Seed = seed
			w, err := world.New(cfg, world.WithLogger(log))
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			path := filepath.Join(s.out, fmt.Sprintf("map-%d.svg", seed))
			if err := writeMap(path, w, s); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			log.Info("map written", zap.Int64("seed", seed), zap.String("path", path))
			return nil
		})
	}
	return g.Wait()
}

func writeMap(path string, w *world.World, s settings) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return svgmap.Render(f, w,
		svgmap.WithScale(s.scale),
		svgmap.WithBorders(s.borders),
		svgmap.WithLabels(s.labels))
}
