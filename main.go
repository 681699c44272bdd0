// Command game2048 plays the sliding-tile game.
//
// It supports several commands:
//  1. "play" (default) opens a desktop window
//  2. "term" plays inside the terminal, with optional merge sounds
//  3. "configs" lists the board configurations found in the config directory
//  4. "validate" checks configuration files without starting a game
//  5. "mcp" serves the game as MCP tools on stdin/stdout for agents
//
// Settings come from the environment (and an optional .env file); flags override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/game2048/frontend"
	"github.com/wricardo/game2048/frontend/desktop"
	"github.com/wricardo/game2048/frontend/mcp"
	"github.com/wricardo/game2048/frontend/sound"
	"github.com/wricardo/game2048/frontend/terminal"
	"github.com/wricardo/game2048/game/config"
	"github.com/wricardo/game2048/game/engine"
	"github.com/wricardo/game2048/game/service"
	"github.com/wricardo/game2048/logging"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "game2048"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	if err := newApp(settings, os.Stdout).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

// newApp builds the command tree. settings supply flag defaults and are updated from flags.
func newApp(settings *config.Settings, out io.Writer) *cli.Command {
	play := &cli.Command{
		Name:  "play",
		Usage: "play in a desktop window",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sprites", Usage: "sprite sheet PNG, one square cell per tile rank"},
			&cli.IntFlag{Name: "sprite-size", Usage: "pixel size of one sprite sheet cell"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyFlags(cmd, settings)
			return runDesktop(ctx, settings)
		},
	}

	return &cli.Command{
		Name:    AppName,
		Usage:   "slide tiles, merge equal ones, reach the win tile",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-dir", Usage: "directory of board configurations", Value: settings.ConfigDir},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration to play", Value: settings.ConfigName},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: settings.LogLevel},
			&cli.StringFlag{Name: "log-file", Usage: "append logs to this file", Value: settings.LogFile},
			&cli.UintFlag{Name: "seed", Usage: "random seed; 0 picks one"},
		},
		Action: play.Action,
		Commands: []*cli.Command{
			play,
			{
				Name:  "term",
				Usage: "play in the terminal",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "no-sound", Usage: "disable merge sounds"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyFlags(cmd, settings)
					return runTerminal(ctx, settings)
				},
			},
			{
				Name:  "mcp",
				Usage: "serve the game as MCP tools over stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyFlags(cmd, settings)
					return runMCP(ctx, settings)
				},
			},
			{
				Name:  "configs",
				Usage: "list available configurations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyFlags(cmd, settings)
					return listConfigs(settings, out)
				},
			},
			{
				Name:      "validate",
				Usage:     "check configuration files",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return validateFiles(cmd.Args().Slice(), out)
				},
			},
		},
	}
}

// applyFlags copies flags the user actually set over the environment settings
func applyFlags(cmd *cli.Command, settings *config.Settings) {
	settings.ConfigDir = cmd.String("config-dir")
	settings.ConfigName = cmd.String("config")
	settings.LogLevel = cmd.String("log-level")
	settings.LogFile = cmd.String("log-file")
	if cmd.IsSet("seed") {
		settings.Seed = uint64(cmd.Uint("seed"))
	}
	if cmd.IsSet("sprites") {
		settings.SpriteSheet = cmd.String("sprites")
	}
	if cmd.IsSet("sprite-size") {
		settings.SpriteSize = int(cmd.Int("sprite-size"))
	}
	if cmd.IsSet("no-sound") {
		settings.Sound = !cmd.Bool("no-sound")
	}
}

// newService wires the config manager and the game service
func newService(settings *config.Settings) (service.GameService, error) {
	configs, err := config.NewManager(settings.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return service.NewGameService(configs, service.Options{Seed: settings.Seed}), nil
}

func runDesktop(ctx context.Context, settings *config.Settings) error {
	out, closeLog, err := logging.Open(settings.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(settings.LogLevel, out); err != nil {
		return err
	}

	svc, err := newService(settings)
	if err != nil {
		return err
	}
	driver, err := frontend.NewDriver(ctx, svc, settings.ConfigName)
	if err != nil {
		return err
	}

	log.Info().Str("config", settings.ConfigName).Str("version", Version).Msg("starting desktop game")
	game := desktop.New(ctx, driver, desktop.Options{
		SpriteSheet: settings.SpriteSheet,
		SpriteSize:  settings.SpriteSize,
	})
	return desktop.Run(game)
}

func runTerminal(ctx context.Context, settings *config.Settings) error {
	// The screen owns stdout, so logs go to a file or nowhere
	out, closeLog, err := logging.Open(settings.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(settings.LogLevel, out); err != nil {
		return err
	}

	svc, err := newService(settings)
	if err != nil {
		return err
	}
	driver, err := frontend.NewDriver(ctx, svc, settings.ConfigName)
	if err != nil {
		return err
	}

	var sounds terminal.MergeSounder
	if settings.Sound {
		player, err := sound.NewPlayer()
		if err != nil {
			log.Warn().Err(err).Msg("sound disabled")
		} else {
			defer player.Close()
			sounds = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	log.Info().Str("config", settings.ConfigName).Str("version", Version).Msg("starting terminal game")
	return terminal.New(screen, driver, sounds).Run(ctx)
}

func runMCP(ctx context.Context, settings *config.Settings) error {
	// stdout carries the protocol, so logs stay on stderr or in the log file
	out, closeLog, err := logging.Open(settings.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(settings.LogLevel, out); err != nil {
		return err
	}

	svc, err := newService(settings)
	if err != nil {
		return err
	}
	if _, err := svc.NewGame(ctx, settings.ConfigName); err != nil {
		return err
	}

	log.Info().Str("config", settings.ConfigName).Str("version", Version).Msg("starting MCP stdio server")
	return mcp.NewServer(svc, Version).ServeStdio()
}

func listConfigs(settings *config.Settings, out io.Writer) error {
	if err := logging.Setup(settings.LogLevel, os.Stderr); err != nil {
		return err
	}

	configs, err := config.NewManager(settings.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}
	infos, err := configs.ListConfigs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tWIN\tUNDO\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\t%s\n",
			info.ConfigID, info.Name, info.Width, info.Height, info.WinValue, info.UndoMode, info.Description)
	}
	return w.Flush()
}

// validateFiles reports every file and fails when any of them is invalid
func validateFiles(files []string, out io.Writer) error {
	if len(files) == 0 {
		return errors.New("validate: no files given")
	}

	failed := 0
	for _, file := range files {
		cfg, err := engine.LoadGameConfig(file)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s, %dx%d, win %d)\n", file, cfg.Name, cfg.Width, cfg.Height, cfg.Win())
	}

	if failed > 0 {
		return fmt.Errorf("validate: %d of %d files invalid", failed, len(files))
	}
	return nil
}
