package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/appengine-ltd/cozy-camp/internal/ai"
	"github.com/appengine-ltd/cozy-camp/internal/game"
	"github.com/appengine-ltd/cozy-camp/internal/gui"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		savePath    string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&savePath, "save", "cozy-camp-save.json", "save file path")
	flag.Int64Var(&seed, "seed", 0, "ambient behavior seed (0 uses the clock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Cozy Camp %s (%s) %s\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var thoughts game.ThoughtGenerator
	aiCfg, err := ai.LoadConfig()
	if err != nil {
		logger.Warn("ai config unreadable, pets stay on canned phrases", "error", err)
	} else if aiCfg.Enabled() {
		client, err := ai.NewClient(context.Background(), aiCfg)
		if err != nil {
			logger.Warn("ai client unavailable, pets stay on canned phrases", "error", err)
		} else {
			defer client.Close()
			thoughts = client
		}
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		SavePath:  savePath,
		Seed:      seed,
		Thoughts:  thoughts,
		Logger:    logger,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
