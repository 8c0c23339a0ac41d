package status

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/byte4ever/songstatus/host"
	"github.com/byte4ever/songstatus/keyword"
)

// Plugin identity.
const (
	Name    = "Song Status"
	Version = "v1.4.2"
)

// DefaultMenuScene is the scene in which the player picks
// a song.
const DefaultMenuScene = "Menu"

// Options configures a Plugin.
type Options struct {
	StatusPath   string
	TemplatePath string

	// MenuScenes lists non-gameplay scenes. Every other
	// scene is treated as gameplay. Defaults to
	// DefaultMenuScene.
	MenuScenes []string

	Engine keyword.Engine
}

// Session is the state carried between host events.
type Session struct {
	Mode   GameMode
	Scene  string
	InGame bool
}

// Plugin renders the status file from host events. Its
// methods must be called from a single goroutine, the one
// the host publishes events on.
type Plugin struct {
	status    Writer
	templates TemplateStore
	menus     map[string]struct{}
	engine    keyword.Engine

	host    host.Host
	session Session

	unsubScene func()
	unsubChar  func()
}

// New creates a stopped Plugin.
func New(opts Options) *Plugin {
	menus := opts.MenuScenes
	if len(menus) == 0 {
		menus = []string{DefaultMenuScene}
	}

	set := make(map[string]struct{}, len(menus))
	for _, ms := range menus {
		set[ms] = struct{}{}
	}

	return &Plugin{
		status: Writer{Path: opts.StatusPath},
		templates: TemplateStore{
			Path:    opts.TemplatePath,
			Default: DefaultTemplate,
		},
		menus:  set,
		engine: opts.Engine,
	}
}

// Session returns a copy of the current session state.
func (pl *Plugin) Session() Session {
	return pl.session
}

// Start creates the template if needed and subscribes to
// scene loads. Starting a running plugin does nothing.
func (pl *Plugin) Start(hs host.Host) error {
	const errCtx = "starting plugin"

	if pl.unsubScene != nil {
		return nil
	}

	if err := pl.templates.Ensure(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	pl.host = hs
	pl.unsubScene = hs.OnSceneLoaded(func(sc host.Scene) {
		if err := pl.OnSceneLoaded(sc); err != nil {
			slog.Error(
				"updating status",
				"scene", sc.Name,
				"error", err,
			)
		}
	})

	slog.Info(
		"plugin started",
		"name", Name,
		"version", Version,
		"status", pl.status.Path,
		"template", pl.templates.Path,
	)

	return nil
}

// Stop detaches from the host and empties the status
// file.
func (pl *Plugin) Stop() error {
	const errCtx = "stopping plugin"

	if pl.unsubScene != nil {
		pl.unsubScene()
		pl.unsubScene = nil
	}

	if pl.unsubChar != nil {
		pl.unsubChar()
		pl.unsubChar = nil
	}

	pl.host = nil
	pl.session.InGame = false

	if err := pl.status.Clear(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Info("plugin stopped", "name", Name)

	return nil
}

// OnSceneLoaded handles a scene load. Menu scenes empty
// the status file; other scenes render the template for
// the current level.
func (pl *Plugin) OnSceneLoaded(sc host.Scene) error {
	const errCtx = "handling scene load"

	tpl, err := pl.templates.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	pl.session.Scene = sc.Name

	if _, menu := pl.menus[sc.Name]; menu {
		pl.session.InGame = false

		if err := pl.status.Clear(); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		pl.watchCharacteristics()

		return nil
	}

	pl.session.InGame = true

	if err := pl.render(tpl); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// OnCharacteristicSelected records the play mode for the
// next gameplay scene.
func (pl *Plugin) OnCharacteristicSelected(name string) {
	pl.session.Mode = ModeFromCharacteristic(name)

	slog.Debug(
		"play mode selected",
		"characteristic", name,
		"mode", pl.session.Mode,
	)
}

// Refresh renders the status again when a gameplay scene
// is active, picking up template edits. It does nothing
// in menus.
func (pl *Plugin) Refresh() error {
	const errCtx = "refreshing status"

	if !pl.session.InGame || pl.host == nil {
		return nil
	}

	tpl, err := pl.templates.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := pl.render(tpl); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// watchCharacteristics replaces the play mode listener,
// dropping any earlier one.
func (pl *Plugin) watchCharacteristics() {
	if pl.host == nil {
		return
	}

	if pl.unsubChar != nil {
		pl.unsubChar()
	}

	pl.unsubChar = pl.host.OnCharacteristicSelected(
		pl.OnCharacteristicSelected,
	)
}

func (pl *Plugin) render(tpl string) error {
	if pl.host == nil {
		return errors.New("plugin not started")
	}

	lv, err := pl.host.CurrentLevel()
	if errors.Is(err, host.ErrLevelUnavailable) {
		slog.Warn(
			"level data not found, status not updated",
			"scene", pl.session.Scene,
		)

		return nil
	}

	if err != nil {
		return err
	}

	text := pl.engine.Substitute(
		tpl, Bindings(lv, pl.session.Mode),
	)

	if err := pl.status.Write(text); err != nil {
		return err
	}

	slog.Info(
		"status updated",
		"song", lv.SongName,
		"difficulty", lv.Difficulty.Name(),
		"mode", pl.session.Mode,
	)

	return nil
}
