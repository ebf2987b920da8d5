package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database"
	"workspace-simulator/internal/generator"
	"workspace-simulator/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Name and template catalogs, built-ins plus overrides from DATA_DIR
	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		logrus.Fatal("Failed to load catalog:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DSN(), nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	store := database.NewStore(db, cfg.BatchSize)

	logrus.WithFields(logrus.Fields{
		"driver":   cfg.DatabaseDriver,
		"seed":     cfg.RandomSeed,
		"users":    cfg.NumUsers,
		"teams":    cfg.NumTeams,
		"projects": cfg.NumProjects,
		"tasks":    cfg.NumTasks,
		"window":   cfg.SimulationStart.Format("2006-01-02") + ".." + cfg.SimulationEndTime.Format("2006-01-02"),
	}).Info("Starting dataset generation")

	start := time.Now()
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	dataset, err := generator.NewPipeline(cfg, cat, store, logger.New()).Run(rng)
	if err != nil {
		logrus.Fatal("Generation failed:", err)
	}

	stats, err := store.Stats()
	if err != nil {
		logrus.Fatal("Failed to read row counts:", err)
	}
	for _, row := range stats {
		logrus.WithField("rows", row.Count).Infof("wrote %s", row.Table)
	}

	issues, err := store.Verify()
	if err != nil {
		logrus.Fatal("Verification failed:", err)
	}
	for _, issue := range issues {
		logrus.Warn(issue)
	}
	if len(issues) > 0 {
		logrus.Fatalf("Dataset failed %d integrity checks", len(issues))
	}

	logrus.WithFields(logrus.Fields{
		"tasks":   len(dataset.AllTasks()),
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}).Info("Dataset generation complete")
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
