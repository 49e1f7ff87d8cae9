package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"wumpus/pkg/engine/cave"
	"wumpus/pkg/engine/logger"
	"wumpus/pkg/engine/terminal"
	"wumpus/pkg/game/config"
	"wumpus/pkg/game/devtools"
	"wumpus/pkg/game/gameplay"
	"wumpus/pkg/game/narrator"
	"wumpus/pkg/game/renderer"
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "seed for the cave (for reproducing a game)")
	dumpPath := flag.String("dump", "", "write a YAML dump of the cave to this file and exit")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	initGettext(cfg)
	renderer.InitColors(cfg.Color && terminal.IsTerminal(os.Stdout))

	log, err := logger.New(cfg.LogFile)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	n := narrator.New(os.Stdin, os.Stdout, terminal.Width(os.Stdout))

	s, err := gameplay.BuildGame(cfg, cave.NewRandom(cfg.Seed), cfg.Seed, n, log)
	if err != nil {
		fmt.Printf("Error building cave: %v\n", err)
		os.Exit(1)
	}

	if *dumpPath != "" {
		if err := devtools.DumpCaveToFile(*dumpPath, s.Game.Cave, cfg.Seed); err != nil {
			fmt.Printf("Error dumping cave: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := s.Run(); err != nil && !errors.Is(err, io.EOF) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
