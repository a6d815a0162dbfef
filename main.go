package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopress-cms/gopress/config"
	"github.com/gopress-cms/gopress/database"
	"github.com/gopress-cms/gopress/logger"
	"github.com/gopress-cms/gopress/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

func main() {
	_ = godotenv.Load()

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG, config.GetLogFolder())
	case config.Info:
		logger.InitLogger(logging.INFO, config.GetLogFolder())
	case config.Warn:
		logger.InitLogger(logging.WARNING, config.GetLogFolder())
	case config.Error:
		logger.InitLogger(logging.ERROR, config.GetLogFolder())
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
	defer logger.CloseLogger()

	db, err := database.Open(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warning("close database err:", err)
		}
	}()

	server := web.NewServer(db)
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		logger.Warning("stop server err:", err)
	}
}
