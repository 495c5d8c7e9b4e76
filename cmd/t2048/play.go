package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagPlayLevel      int
	flagPlayDifficulty string
	flagPlayWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 with an AI coach",
	Long: `Start an interactive game of 2048.

Controls:
  Arrows/WASD/HJKL - Move
  ? or I           - Ask the AI for a hint
  Space or P       - Let the AI play (toggle)
  + / -            - Stronger / weaker AI
  C                - Keep playing after reaching the target
  R                - Restart
  Q/Ctrl+C         - Quit

Campaign levels (--level) set the winning tile:
  1: 128   2: 256   3: 512   4: 1024   5: 2048   6: 4096   7: 8192
Without --level a picker offers classic play or a campaign level.

Difficulty options:
  easy, medium, hard, expert - fixed AI tier
  adaptive                   - tier follows how well you play

Examples:
  t2048 play
  t2048 play --level 2
  t2048 play --difficulty expert --watch
  t2048 play --difficulty adaptive --config ./my-ai.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayLevel, "level", 0, "Campaign level 1-7 (0 = classic, target from config; unset = pick)")
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "AI tier: easy, medium, hard, expert, adaptive")
	playCmd.Flags().BoolVar(&flagPlayWatch, "watch", false, "Start with the AI playing")
}

func runPlay(cmd *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fail("play needs an interactive terminal; try 't2048 autoplay' instead")
	}
	if flagPlayLevel < 0 || flagPlayLevel > engine.LevelCount() {
		fail("level must be between 1 and %d", engine.LevelCount())
	}

	logger := newLogger()
	cfg, level := loadAIConfig(flagPlayDifficulty)

	if !cmd.Flags().Changed("level") {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}

		selection, err := tui.RunLevelPicker(cfg.Runner.Target, width, height)
		if err != nil {
			fail("%v", err)
		}
		// User quit the picker
		if selection == nil {
			return
		}
		flagPlayLevel = selection.Level
	}

	target := cfg.Runner.Target
	if flagPlayLevel > 0 {
		target = engine.TargetForLevel(flagPlayLevel)
	}

	opts := tui.Options{
		Seed:     seed(),
		Target:   target,
		Board:    tui.BoardName(flagPlayLevel),
		Level:    level,
		Watch:    flagPlayWatch,
		Selector: newSelector(cfg),
		Logger:   logger,
	}
	if cfg.Adaptive.Enabled {
		adaptive := cfg.ToAdaptive()
		opts.Adaptive = &adaptive
	}

	// Continue without storage - the game still works
	store := openStore(logger)
	opts.Store = store

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
