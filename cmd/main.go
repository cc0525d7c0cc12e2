package main

import (
	"github.com/AntonioTonhao/Node-02-Desafio/config"
	"github.com/AntonioTonhao/Node-02-Desafio/logger"
	"github.com/AntonioTonhao/Node-02-Desafio/routes"

	"go.uber.org/zap"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	cfg := config.Load(log)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	r := routes.SetupRouter(db, cfg, log)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
