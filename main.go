package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxygenerator/config"
	"galaxygenerator/galaxy"
)

func main() {
	runtime.LockOSThread()

	// Parse command line flags
	var (
		width      = flag.Int("width", 0, "Window width (0 = settings file)")
		height     = flag.Int("height", 0, "Window height (0 = settings file)")
		seed       = flag.Int64("seed", 0, "RNG seed override (0 = settings file)")
		serve      = flag.Bool("serve", true, "Start the websocket parameter server")
		configPath = flag.String("config", config.SettingsFile, "Settings file path")
	)
	flag.Parse()

	fmt.Println("=== Procedural Galaxy Sandbox ===")

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}
	if *seed != 0 {
		settings.Generation.Seed = *seed
	}

	fmt.Printf("Galaxy radius: %.0f pc (core %.0f pc)\n",
		settings.Generation.GalaxyRadius, settings.Generation.CoreRadius)
	fmt.Printf("Stars: %d, Dust: %d, Filaments: %d, Systems: %d\n",
		settings.Generation.StarCount, settings.Generation.DustCount,
		settings.Generation.FilamentCount, settings.Generation.SystemCount)
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)

	store := config.NewStore(settings.Generation)
	pipeline := galaxy.NewPipeline()

	if *serve {
		server := NewParameterServer(store, pipeline)
		go server.Start(settings.Server.Port, settings.Server.UpdateIntervalMs)
	}

	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height),
		"galaxygenerator")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.TargetFPS))

	viewer := NewViewer(settings.Window.Width, settings.Window.Height)
	picker := NewPicker(150) // marker radius, pc

	fmt.Println("\nControls:")
	fmt.Println("  Left click: select a system")
	fmt.Println("  Right drag: pan | Scroll: zoom")
	fmt.Println("  S/D/F: toggle stars/dust/filaments")
	fmt.Println("  L: toggle hyperlanes | R: reseed")
	fmt.Println("  B: toggle spatial index overlay")
	fmt.Println("  Space: pause time")
	fmt.Println("\nStarting generation...")

	simTime := 0.0
	paused := false

	for !rl.WindowShouldClose() {
		// One tick: consume the dirty flag, regenerate if set.
		stats, regenerated, err := pipeline.Tick(store)
		if err != nil {
			log.Printf("Generation failed: %v", err)
		}
		if regenerated {
			fmt.Printf("Generated %d stars, %d dust, %d filament particles, %d lanes in %v\n",
				stats.Stars, stats.Dust, stats.Filaments, stats.Lanes, stats.Elapsed)
			simTime = 0
		}

		handleKeys(store, viewer, &paused)

		if !paused {
			simTime += store.Peek().TimeStep
		}
		viewer.Frame(pipeline, picker, simTime)
	}
}

// handleKeys maps the toggle keys onto parameter mutations. Every
// mutation goes through the store so the pipeline regenerates on the
// next tick.
func handleKeys(store *config.Store, viewer *Viewer, paused *bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyS):
		store.Mutate(func(p *config.GenerationParameters) { p.ShowStars = !p.ShowStars })
	case rl.IsKeyPressed(rl.KeyD):
		store.Mutate(func(p *config.GenerationParameters) { p.ShowDust = !p.ShowDust })
	case rl.IsKeyPressed(rl.KeyF):
		store.Mutate(func(p *config.GenerationParameters) { p.ShowFilaments = !p.ShowFilaments })
	case rl.IsKeyPressed(rl.KeyR):
		store.Mutate(func(p *config.GenerationParameters) { p.Seed++ })
	case rl.IsKeyPressed(rl.KeyL):
		viewer.showLanes = !viewer.showLanes
	case rl.IsKeyPressed(rl.KeyB):
		viewer.showIndex = !viewer.showIndex
	case rl.IsKeyPressed(rl.KeySpace):
		*paused = !*paused
	}
}
