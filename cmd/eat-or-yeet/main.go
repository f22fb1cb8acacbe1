// Command eat-or-yeet is a terminal sandbox for the scoring engine
// Letters eat the food on screen, shifted letters yeet it, hotkeys request bonuses
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/adrian-miasik/eat-or-yeet/core"
	"github.com/adrian-miasik/eat-or-yeet/engine"
	"github.com/adrian-miasik/eat-or-yeet/systems"
)

func main() {
	// Panic Recovery: restore the terminal even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "eat-or-yeet: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eat-or-yeet: %v\n", err)
		os.Exit(1)
	}
	log.Printf("eat-or-yeet: %d foods, win at %d", cat.Len(), cfg.ScoreToWin)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Engine goroutines report panics through core; give it a way to restore the screen
	core.SetCrashHandler(func(any) {
		screen.Fini()
	})

	ctx := engine.NewGameContext(engine.NewPausableClock())
	state := systems.NewGameStateSystem(ctx, cfg.ScoreToWin)
	score := systems.NewScoreSystem(ctx, state)

	scheduler, _ := engine.NewClockScheduler(ctx, cfg.Tick)
	scheduler.RegisterEventHandler(score)
	scheduler.RegisterEventHandler(state)
	scheduler.SetSystems(score)

	if cfg.Sound {
		if player, err := newSoundPlayer(cfg.Volume); err == nil {
			scheduler.RegisterEventHandler(player)
			defer player.Close()
		} else {
			// Non-fatal, the sandbox runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	newSandbox(screen, ctx, cat, cfg.Spawn).run()
}
