package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-attack/internal/audio"
	"github.com/vovakirdan/zombie-attack/internal/core"
	"github.com/vovakirdan/zombie-attack/internal/games/zombies"
	"github.com/vovakirdan/zombie-attack/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start Zombie Attack in the terminal.

Controls:
  W/A/S/D, arrows  - Move one cell
  Space            - Dash
  Mouse click/hold - Shoot toward the pointer
  F                - Shoot toward the last pointer position
  Enter            - Start / return to menu
  M                - Toggle sound
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More HP, slower zombies, longer waves
  normal - Config as loaded, waves speed up with level
  hard   - Less HP, tougher zombies, faster waves
  fixed  - Same opening as normal, but no progression

Examples:
  zombies play
  zombies play --difficulty easy
  zombies play --config ./my-zombies.yaml
  zombies play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger, err := newLogger(logOut, "zombies")
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the speaker; the game still works silently without one
	var dev audio.Device = audio.NullDevice{}
	speaker, spkErr := audio.OpenSpeaker()
	if spkErr != nil {
		logger.Warn("audio disabled", "error", spkErr)
	} else {
		dev = speaker
		defer speaker.Close()
	}

	jukebox := audio.NewJukebox(dev,
		audio.WithLogger(logger.WithPrefix("audio")),
		audio.WithMuted(flagMute),
	)

	game := zombies.New(
		zombies.WithConfig(gameCfg),
		zombies.WithAudio(jukebox),
		zombies.WithLogger(logger),
	)

	if err := tui.Run(game, cfg, tui.Options{Logger: logger.WithPrefix("tui")}); err != nil {
		logger.Error("run failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("bye", "level", game.State().Level, "kills", game.State().Kills)
	return nil
}
