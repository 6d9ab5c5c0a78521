package main

import (
	"flag"
	"fmt"
	"os"

	"fitbook/internal/di"
	"fitbook/internal/structures"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "log to console as well as files")
	flag.Parse()

	// load .env if present; secrets come from the environment
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found; using system environment")
	}

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitbook: %s\n", err)
		os.Exit(1)
	}
}
