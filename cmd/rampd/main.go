package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/rampctl/internal/config"
	"github.com/danmuck/rampctl/internal/logging"
	"github.com/danmuck/rampctl/internal/ramp/registry"
	"github.com/danmuck/rampctl/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to rampd TOML config")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := config.DefaultDaemonConfig()
	if *cfgPath != "" {
		loaded, err := config.LoadDaemonConfig(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rampd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	reg, err := buildRegistry(cfg.RegistryExtensions)
	if err != nil {
		// Registry integrity defects make every later lookup ambiguous, so
		// startup halts instead of serving per-call errors.
		fmt.Fprintf(os.Stderr, "rampd: %v\n", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{Addr: cfg.Addr, CorsOrigins: cfg.CorsOrigins}, reg)
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rampd: %v\n", err)
		os.Exit(1)
	}
}

func buildRegistry(extPath string) (*registry.Registry, error) {
	reg := registry.Builtin()
	if extPath == "" {
		return reg, nil
	}
	ext, err := registry.LoadExtensions(extPath)
	if err != nil {
		return nil, err
	}
	return reg.WithExtensions(ext)
}
