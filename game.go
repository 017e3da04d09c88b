package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/config"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/ecs/entity"
	"github.com/milk9111/gravityshift/ecs/system"
	"github.com/milk9111/gravityshift/gamestate"
	"github.com/milk9111/gravityshift/prefabs"
	"github.com/milk9111/gravityshift/sfx"
	"github.com/rs/zerolog/log"
)

const audioSampleRate = 44100

// scene is everything rebuilt on a restart or a prefab reload.
type scene struct {
	world   *ecs.World
	clock   *system.GameClock
	physics *system.PhysicsSystem
	fixed   *ecs.Scheduler
	frame   *ecs.Scheduler
	render  *system.RenderSystem
	manager *gamestate.Manager
	player  ecs.Entity
}

type Game struct {
	cfg *config.Config

	gameSpec  *prefabs.GameSpec
	levelSpec *prefabs.LevelSpec

	session *gamestate.Session
	mixer   *sfx.Mixer
	input   *system.InputSystem
	watcher *prefabs.Watcher

	scene       *scene
	accumulator float64
	frames      int

	menus          map[gamestate.Phase]*ebitenui.UI
	restartPending bool
	quit           bool
	debug          bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load rules: %w", err)
	}
	levelSpec, err := loadLevel(cfg, gameSpec)
	if err != nil {
		return nil, err
	}

	volume := gameSpec.Volume
	if cfg.Audio.Volume >= 0 {
		volume = cfg.Audio.Volume
	}
	mixer, err := sfx.NewMixer(audio.NewContext(audioSampleRate), volume)
	if err != nil {
		return nil, fmt.Errorf("game: audio: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		gameSpec:  gameSpec,
		levelSpec: levelSpec,
		session:   &gamestate.Session{SkipMainMenu: cfg.SkipMainMenu},
		mixer:     mixer,
		input:     system.NewInputSystem(system.NewKeyboardInput()),
		debug:     cfg.Debug,
	}
	g.menus = NewMenus(g)

	if cfg.HotReload {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warn().Err(err).Msg("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	s, err := g.buildScene()
	if err != nil {
		return nil, err
	}
	g.scene = s
	return g, nil
}

func loadLevel(cfg *config.Config, gameSpec *prefabs.GameSpec) (*prefabs.LevelSpec, error) {
	name := gameSpec.Level
	if cfg.Level != "" {
		name = cfg.Level
	}
	lvl, err := prefabs.LoadLevelSpec(name)
	if err != nil {
		return nil, fmt.Errorf("game: load level %s: %w", name, err)
	}
	return lvl, nil
}

// buildScene creates a fresh world from the current prefab data. The running
// scene is left untouched if anything fails.
func (g *Game) buildScene() (*scene, error) {
	w := ecs.NewWorld()

	cubes, err := entity.LoadLevelToWorld(w, g.levelSpec)
	if err != nil {
		return nil, fmt.Errorf("game: build level: %w", err)
	}
	player, err := entity.NewPlayerAt(w, g.levelSpec.Spawn.Vec3())
	if err != nil {
		return nil, fmt.Errorf("game: build player: %w", err)
	}
	if _, err := entity.NewCamera(w); err != nil {
		return nil, fmt.Errorf("game: build camera: %w", err)
	}

	rules := gamestate.Rules{Duration: g.gameSpec.Duration, TotalCubes: g.gameSpec.TotalCubes}
	if rules.TotalCubes <= 0 || rules.TotalCubes > cubes {
		log.Warn().Int("rules", rules.TotalCubes).Int("level", cubes).Msg("cube total does not match level, using level count")
		rules.TotalCubes = cubes
	}

	clock := system.NewGameClock(g.cfg.Physics.FixedDeltaTime)
	phys := system.NewPhysicsSystem(clock)
	phys.Sync(w)

	manager := gamestate.NewManager(rules, g.session, g.mixer)
	manager.OnPlayerDeactivated = func() {
		if err := ecs.Add(w, player, component.DisabledComponent.Kind(), &component.Disabled{}); err != nil {
			log.Error().Err(err).Msg("deactivate player")
		}
		g.input.Stop()
	}

	s := &scene{
		world:   w,
		clock:   clock,
		physics: phys,
		fixed: ecs.NewScheduler(
			system.NewPlayerPhysicsSystem(clock, phys),
			phys,
			system.NewPickupCollectSystem(phys, manager),
		),
		frame: ecs.NewScheduler(
			g.input,
			system.NewPlayerControllerSystem(clock, manager, g.mixer),
			system.NewHologramSystem(clock),
			system.NewAnimationSystem(),
			system.NewPickupHoverSystem(clock),
			system.NewCameraSystem(),
		),
		render:  system.NewRenderSystem(),
		manager: manager,
		player:  player,
	}

	g.input.Start()
	g.accumulator = 0
	manager.Begin()
	log.Info().Str("level", g.levelSpec.Name).Int("cubes", rules.TotalCubes).Stringer("phase", manager.Phase()).Msg("scene loaded")
	return s, nil
}

// Restart reloads the scene. The session keeps the main menu skipped.
func (g *Game) Restart() {
	g.restartPending = true
}

func (g *Game) StartGame() {
	g.scene.manager.StartGame()
}

func (g *Game) Exit() {
	g.quit = true
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	g.pollPrefabChanges()
	if g.restartPending {
		g.restartPending = false
		g.reloadScene()
	}

	s := g.scene
	if s.manager.Running() {
		dt := 1 / float64(ebiten.TPS())
		s.clock.Tick(dt)

		g.accumulator += dt
		fixed := s.clock.FixedDeltaTime()
		steps := 0
		for g.accumulator >= fixed && steps < g.cfg.Physics.MaxFixedSteps {
			s.fixed.Update(s.world)
			g.accumulator -= fixed
			steps++
		}
		if steps == g.cfg.Physics.MaxFixedSteps && g.accumulator >= fixed {
			log.Debug().Float64("dropped", g.accumulator).Msg("fixed step backlog dropped")
			g.accumulator = 0
		}

		s.frame.Update(s.world)
		s.manager.Update(dt)
	}

	for _, evt := range s.world.Events().Drain() {
		log.Debug().Str("type", string(evt.Type)).Stringer("entity", evt.Entity).Msg("event")
	}

	if ui, ok := g.menus[s.manager.Phase()]; ok {
		ui.Update()
	}
	return nil
}

func (g *Game) reloadScene() {
	s, err := g.buildScene()
	if err != nil {
		log.Error().Err(err).Msg("scene reload failed, keeping current scene")
		return
	}
	g.scene = s
}

// pollPrefabChanges reloads rules and level data after an edit on disk and
// rebuilds the scene. Invalid edits are logged and the old data is kept.
func (g *Game) pollPrefabChanges() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Info().Strs("files", changed).Msg("prefabs changed")

	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Error().Err(err).Msg("reload rules")
		return
	}
	levelSpec, err := loadLevel(g.cfg, gameSpec)
	if err != nil {
		log.Error().Err(err).Msg("reload level")
		return
	}

	oldGame, oldLevel := g.gameSpec, g.levelSpec
	g.gameSpec, g.levelSpec = gameSpec, levelSpec
	s, err := g.buildScene()
	if err != nil {
		log.Error().Err(err).Msg("rebuild scene")
		g.gameSpec, g.levelSpec = oldGame, oldLevel
		return
	}
	g.scene = s
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.scene
	s.render.Draw(s.world, screen)
	drawHUD(screen, s.manager)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
		system.DrawPhysicsDebug(s.physics.World(), screen)
		system.DrawPlayerStateDebug(s.world, screen)
	}

	if ui, ok := g.menus[s.manager.Phase()]; ok {
		ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
