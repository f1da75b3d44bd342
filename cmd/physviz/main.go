package main

import (
	"flag"
	"log"
	"runtime"

	physviz "github.com/TK-A369/physsim-viz"
	"github.com/TK-A369/physsim-viz/glhost"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "scene.json", "Path to the scene config file")
	flag.Parse()

	cfg := physviz.LoadConfig(*configPath)

	host, err := glhost.New(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle)
	if err != nil {
		log.Fatal("Failed to initialize host:", err)
	}
	defer host.Close()

	runner, err := physviz.NewRunner(host.Adapter(), cfg.NewBody(), cfg.NewCamera())
	if err != nil {
		log.Fatal("Failed to start runner:", err)
	}
	defer runner.Stop()

	host.Run()
}
