package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/healthbars/assets"
	"github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/scenes"
	"github.com/automoto/healthbars/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config file, watched for changes")
	fontPath := flag.String("font", "", "TTF font for health labels (default: the config's font_path, else the built-in Go font)")
	levelPath := flag.String("level", "levels/demo.tmx", "embedded level to load")
	listLevels := flag.Bool("list-levels", false, "print the embedded levels and exit")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.BoolVar(&config.Debug.SkipPersistence, "no-save", false, "don't load or save settings")
	flag.Parse()

	if *listLevels {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("Unknown profile mode %q", *profileMode)
	}

	var reloads <-chan *config.File
	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			reloads = watcher.Events
			go func() {
				for err := range watcher.Errors {
					log.Printf("Warning: Config watcher: %v", err)
				}
			}()
		}
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("health bars")

	game := &Game{
		scene: scenes.NewDemoScene(scenes.DemoOptions{
			LevelPath: *levelPath,
			FontPath:  *fontPath,
			Saved:     saved,
			Reloads:   reloads,
		}),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
