package main

import (
	"serenity/config"
	"serenity/di"
	"serenity/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	if file := logger.AttachFile(cfg); file != nil {
		defer file.Close()
	}

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
