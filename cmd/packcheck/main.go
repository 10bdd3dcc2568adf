package main

import (
	"flag"
	"os"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/config"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/tools/packcheck"
)

func main() {
	cfg, err := packcheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := packcheck.Run(cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
