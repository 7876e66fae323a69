package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/llehouerou/cadence/internal/app"
	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/icons"
	"github.com/llehouerou/cadence/internal/keymap"
	"github.com/llehouerou/cadence/internal/library"
	"github.com/llehouerou/cadence/internal/mpris"
	"github.com/llehouerou/cadence/internal/notify"
	"github.com/llehouerou/cadence/internal/playback"
	"github.com/llehouerou/cadence/internal/player"
	"github.com/llehouerou/cadence/internal/playlist"
	"github.com/llehouerou/cadence/internal/state"
	"github.com/llehouerou/cadence/internal/stderr"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cliApp := &cli.App{
		Name:    "cadence",
		Usage:   "Play the audio files of a folder",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: $XDG_CONFIG_HOME/cadence/config.toml, then ./config.toml)",
			},
			&cli.StringFlag{
				Name:  "session",
				Usage: "session file (default: $XDG_STATE_HOME/cadence/session.toml)",
			},
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "ignore the saved session and start on the setup screen",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cadence")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	icons.Init(cfg.Icons)
	colours, err := cfg.Theme.Colours()
	if err != nil {
		return err
	}
	images := icons.Transport(colours.Palette.Active)
	if cfg.IconsDir != "" {
		if images, err = icons.LoadImages(cfg.IconsDir, images); err != nil {
			log.Print(errmsg.FormatWith(errmsg.OpIconsLoad, cfg.IconsDir, err))
		}
	}

	sessionPath, err := resolveSessionPath(c.String("session"), cfg)
	if err != nil {
		return err
	}
	session, err := state.Load(sessionPath)
	if err != nil {
		return errmsg.Wrap(errmsg.OpSessionLoad, err)
	}
	if c.Bool("reset") {
		session = state.Default()
	}

	var cache playlist.MetadataCache
	if cachePath, err := cfg.CachePath(); err != nil {
		log.Print(errmsg.Format(errmsg.OpCacheOpen, err))
	} else if lib, err := library.Open(cachePath); err != nil {
		log.Print(errmsg.Format(errmsg.OpCacheOpen, err))
	} else {
		defer lib.Close()
		cache = lib
	}

	// Capture before the speaker is initialised by the first Play.
	if err := stderr.Start(); err != nil {
		log.Printf("stderr capture: %v", err)
	}
	defer stderr.Stop()

	p := player.New()
	defer p.Stop()
	ctrl := playback.New(p, playlist.NewLoader(cache))

	var setupErr string
	if err := session.Apply(ctrl); err != nil {
		log.Printf("restore session: %v", err)
		setupErr = errmsg.FormatWith(errmsg.OpPlaylistLoad, session.PlaylistPath, err)
	}

	opts := app.Options{
		Version:       "cadence " + version,
		Colours:       colours,
		Images:        images,
		ButtonDelay:   cfg.ButtonDelay(),
		FrameInterval: cfg.FrameInterval(),
		Session:       session,
		SetupError:    setupErr,
	}
	if cfg.Notifications {
		opts.Notifier = notify.New()
	}
	sink := &programSink{}
	if cfg.MediaControl {
		adapter := mpris.New(sink)
		defer func() {
			if err := adapter.Close(); err != nil {
				log.Printf("mpris: close: %v", err)
			}
		}()
		opts.Remote = adapter
	}

	program := tea.NewProgram(app.New(ctrl, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	sink.program.Store(program)
	if _, err := program.Run(); err != nil {
		return err
	}

	if err := state.Save(sessionPath, state.FromController(ctrl, session)); err != nil {
		return errmsg.Wrap(errmsg.OpSessionSave, err)
	}
	return nil
}

// programSink forwards media-control commands into the program loop.
// Commands that arrive before the program exists are dropped.
type programSink struct {
	program atomic.Pointer[tea.Program]
}

func (s *programSink) Action(a keymap.Action) {
	if p := s.program.Load(); p != nil {
		p.Send(app.ActionMsg(a))
	}
}

func (s *programSink) SetVolume(pct int) {
	if p := s.program.Load(); p != nil {
		p.Send(app.VolumeMsg(pct))
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

func resolveSessionPath(flag string, cfg *config.Config) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case cfg.SessionFile != "":
		return cfg.SessionFile, nil
	}
	return state.DefaultPath()
}
