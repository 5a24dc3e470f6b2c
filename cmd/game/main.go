// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-till-dawn/internal/app"
	"go-till-dawn/internal/assets"
	"go-till-dawn/internal/config"
	"go-till-dawn/internal/defs"
	"go-till-dawn/internal/observability"
	"go-till-dawn/internal/state"
	"go-till-dawn/internal/storage"
	"go-till-dawn/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "config/tuning.yaml", "gameplay tuning file")
	enemiesPath := flag.String("enemies", "config/enemies.yaml", "enemy definitions file")
	assetsDir := flag.String("assets", "assets/textures", "texture directory")
	dbPath := flag.String("db", "scores.db", "scoreboard database, empty to disable")
	seed := flag.Int64("seed", 0, "random seed, 0 for clock")
	hero := flag.String("hero", string(defs.HeroShana), "hero id")
	weapon := flag.String("weapon", string(defs.WeaponRevolver), "weapon id")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := observability.NewLogger("game", tuning.Log.Level)
	slog.SetDefault(logger)

	library, err := loadEnemies(*enemiesPath, logger)
	if err != nil {
		log.Fatal(err)
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	var store *storage.MatchStore
	if *dbPath != "" {
		store, err = storage.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	manager := assets.NewManager(render.NewImageLoader(*assetsDir), observability.NewLogger("assets", tuning.Log.Level))
	defer manager.Cleanup()

	opts := app.Options{
		Tuning:  tuning,
		Enemies: library,
		Hero:    defs.HeroID(strings.ToUpper(*hero)),
		Weapon:  defs.WeaponID(strings.ToUpper(*weapon)),
		Seed:    *seed,
		Assets:  manager,
		Logger:  logger,
	}
	session := &state.Session{Logger: logger}
	if store != nil {
		opts.Recorder = store
		session.Scores = store
	}
	session.NewMatch = func() (*app.Game, error) { return app.NewGame(opts) }

	g, err := session.NewMatch()
	if err != nil {
		log.Fatal(err)
	}
	sm := state.NewStateMachine() // state machine with the match as its first state
	sm.SetState(state.NewGameState(sm, session, g))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

// loadTuning falls back to defaults when the file does not exist.
func loadTuning(path string) (config.Tuning, error) {
	t, err := config.LoadTuning(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("tuning file %s not found, using defaults", path)
		return config.DefaultTuning(), nil
	}
	return t, err
}

func loadEnemies(path string, logger *slog.Logger) (*defs.Library, error) {
	library, err := defs.NewLibrary(defs.DefaultEnemies())
	if err != nil {
		return nil, err
	}
	overrides, err := defs.LoadEnemyDefinitions(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("enemy definitions not found, using built-in roster", "path", path)
		return library, nil
	}
	if err != nil {
		return nil, err
	}
	if err := library.Merge(overrides); err != nil {
		return nil, err
	}
	return library, nil
}
