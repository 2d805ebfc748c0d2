package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"aggregat4/jwttoken/internal/config"
	"aggregat4/jwttoken/internal/logging"
	"aggregat4/jwttoken/internal/repository"
	"aggregat4/jwttoken/internal/server"
)

var logger = logging.ForComponent("cmd.server")

func main() {
	var configFileLocation string
	flag.StringVar(&configFileLocation, "config", "", "The location of the configuration file if you do not want to default to the standard location")
	flag.Parse()

	configPath := configFileLocation
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logging.Fatal(logger, "Error reading configuration from {ConfigPath}: {Error}", configPath, err)
	}
	logging.Configure(cfg.LogLevel)

	controller, err := server.NewController(cfg, repository.NewStaticStore())
	if err != nil {
		logging.Fatal(logger, "Error initializing token service: {Error}", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info(logger, "Starting server on port {Port}", cfg.ServerPort)
	if err := server.RunServer(ctx, controller); err != nil {
		logging.Fatal(logger, "Server stopped with error: {Error}", err)
	}
}
