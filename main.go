package main

import (
	"os"

	"github.com/valyala/fasthttp"

	"contractor-engine/internal/config"
	"contractor-engine/internal/engine"
	"contractor-engine/internal/handler"
	"contractor-engine/internal/rates"
)

func main() {
	cfg := config.Load()
	log := config.InitLogger(cfg.LogLevel)

	schedule := rates.Statutory()
	switch {
	case cfg.RatesFile != "":
		var err error
		schedule, err = rates.LoadFile(cfg.RatesFile)
		if err != nil {
			log.Error("load rate schedule", "file", cfg.RatesFile, "err", err)
			os.Exit(1)
		}
		log.Info("rate schedule loaded", "file", cfg.RatesFile)
	case cfg.RegistryURL != "" && cfg.Jurisdiction != "":
		schedule = rates.NewRegistry(cfg.RegistryURL).Schedule(cfg.Jurisdiction)
		log.Info("rate schedule fetched", "jurisdiction", cfg.Jurisdiction)
	}

	h := handler.New(engine.New(schedule), log)

	srv := &fasthttp.Server{
		Handler:     h.Route,
		ReadTimeout: cfg.ReadTimeout,
	}

	log.Info("contractor engine starting", "port", cfg.Port)
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
