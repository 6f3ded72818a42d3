package main

import (
	"cgpa-calculator/calculator"
	"cgpa-calculator/config"
	"cgpa-calculator/controllers"
	"cgpa-calculator/driver"
	"cgpa-calculator/store"
	"cgpa-calculator/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const purgeInterval = 10 * time.Minute

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file: ", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Invalid LOG_LEVEL: ", err)
	}

	scale, err := config.LoadGradeScale(cfg.GradeScaleFile)
	if err != nil {
		logger.WithError(err).Fatal("load grade scale")
	}
	formula, err := calculator.NewPercentageFormula(cfg.PercentageFormula)
	if err != nil {
		logger.WithError(err).Fatal("parse PERCENTAGE_FORMULA")
	}

	db, err := driver.ConnectDB(cfg.DSN, logger)
	if err != nil {
		logger.WithError(err).Fatal("connect session database")
	}
	defer driver.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workspaces := store.NewWorkspaces(db)
	hub := controllers.NewHub(logger)
	go hub.Run(ctx)

	interval := purgeInterval
	if cfg.SessionIdle < interval {
		interval = cfg.SessionIdle
	}
	go workspaces.RunPurger(ctx, cfg.SessionIdle, interval, logger)

	controller := controllers.Controller{
		Store:    workspaces,
		Hub:      hub,
		Scale:    scale,
		Formula:  formula,
		Secret:   cfg.Secret,
		TokenTTL: cfg.TokenTTL,
		Log:      logger,
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           controller.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("server shutdown")
		}
	}()

	logger.WithField("port", cfg.Port).Info("Server started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("Server stopped")
}
