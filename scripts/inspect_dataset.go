package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := printReport(db, database.NewStore(db, cfg.BatchSize)); err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Inspection never migrates and suppresses GORM query logging
	opts := &database.Options{
		LogLevel:        logger.Silent,
		SkipAutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func printReport(db *gorm.DB, store *database.Store) error {
	banner("WORKSPACE DATASET REPORT")

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	section("Table Row Counts")
	for _, row := range stats {
		fmt.Printf("  %-26s %d\n", row.Table, row.Count)
	}

	total, err := count(db, "SELECT COUNT(*) FROM tasks")
	if err != nil {
		return err
	}

	section("Task Distribution")
	splits := []struct {
		label string
		query string
		args  []any
	}{
		{"Completed", "SELECT COUNT(*) FROM tasks WHERE completed = ?", []any{true}},
		{"Incomplete", "SELECT COUNT(*) FROM tasks WHERE completed = ?", []any{false}},
		{"Assigned", "SELECT COUNT(*) FROM tasks WHERE assignee_id IS NOT NULL", nil},
		{"Unassigned", "SELECT COUNT(*) FROM tasks WHERE assignee_id IS NULL", nil},
		{"With description", "SELECT COUNT(*) FROM tasks WHERE description IS NOT NULL", nil},
		{"Without description", "SELECT COUNT(*) FROM tasks WHERE description IS NULL", nil},
		{"Parent tasks", "SELECT COUNT(*) FROM tasks WHERE parent_task_id IS NULL", nil},
		{"Subtasks", "SELECT COUNT(*) FROM tasks WHERE parent_task_id IS NOT NULL", nil},
	}
	for _, split := range splits {
		n, err := count(db, split.query, split.args...)
		if err != nil {
			return err
		}
		fmt.Printf("  %-20s %d (%.1f%%)\n", split.label, n, pct(n, total))
	}

	section("Sample Task Names")
	taskNames, err := sample(db, "SELECT name FROM tasks WHERE parent_task_id IS NULL ORDER BY RANDOM() LIMIT 15")
	if err != nil {
		return err
	}
	for _, name := range taskNames {
		fmt.Printf("  - %s\n", name)
	}

	section("Sample Project Names")
	projectNames, err := sample(db, "SELECT name FROM projects ORDER BY RANDOM() LIMIT 8")
	if err != nil {
		return err
	}
	for _, name := range projectNames {
		fmt.Printf("  - %s\n", name)
	}

	section("Users per Department")
	type deptRow struct {
		Department string
		Cnt        int64
	}
	var departments []deptRow
	if err := db.Raw(
		"SELECT department, COUNT(*) AS cnt FROM users GROUP BY department ORDER BY cnt DESC",
	).Scan(&departments).Error; err != nil {
		return err
	}
	for _, row := range departments {
		fmt.Printf("  %-14s %d users\n", row.Department, row.Cnt)
	}

	section("Integrity Checks")
	issues, err := store.Verify()
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Println("  all checks passed")
	}
	for _, issue := range issues {
		fmt.Printf("  FAIL: %s\n", issue)
	}

	banner("REPORT COMPLETE")
	if len(issues) > 0 {
		return fmt.Errorf("%d integrity checks failed", len(issues))
	}
	return nil
}

func count(db *gorm.DB, query string, args ...any) (int64, error) {
	var n int64
	if err := db.Raw(query, args...).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func sample(db *gorm.DB, query string) ([]string, error) {
	var names []string
	if err := db.Raw(query).Scan(&names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func pct(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", 40))
}
