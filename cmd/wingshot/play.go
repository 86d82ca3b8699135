package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkostin/wingshot/internal/audio"
	"github.com/mkostin/wingshot/internal/config"
	"github.com/mkostin/wingshot/internal/core"
	"github.com/mkostin/wingshot/internal/game"
	"github.com/mkostin/wingshot/internal/platform/tui"
	"github.com/mkostin/wingshot/internal/registry"
	"github.com/mkostin/wingshot/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session",
	Long: `Start playing.

Controls:
  Space/W/Up   - Flap
  F/Right      - Fire
  Enter        - Start (or click the button)
  R            - Restart after game over
  Q/Ctrl+C     - Quit

Examples:
  wingshot play
  wingshot play --level 2
  wingshot play --config ./my-tuning.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level parameter set to play (1-based)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	// A broken or partial config is fatal: running on half a tuning file
	// would silently change gameplay.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	game.SetConfig(cfg)
	game.SetLevel(flagLevel - 1)

	g, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "err", err)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Window.FPS
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Score history is best-effort: the game runs fine without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, high scores won't persist", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		if hs, hsErr := store.HighScore(g.ID()); hsErr == nil {
			if seeder, ok := g.(interface{ SetHighScore(int) }); ok {
				seeder.SetHighScore(hs)
			}
		}
	}

	sound := audio.NewNop()
	if !flagMute {
		if sp, audioErr := audio.NewSpeaker(); audioErr != nil {
			logger.Warn("audio unavailable, continuing silent", "err", audioErr)
		} else {
			sound = sp
		}
	}

	if err := tui.Run(g, store, sound, rt); err != nil {
		logger.Fatal("game exited with error", "err", err)
	}
}
