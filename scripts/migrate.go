//go:build ignore

package main

import (
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/johnquangdev/summaro/internal/infrastructure/database"
	"github.com/johnquangdev/summaro/pkg/config"
)

func main() {
	dir := flag.String("dir", database.MigrationsDir, "migrations directory")
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if !*down {
		n, err := database.AutoMigrate(db, *dir)
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Printf("Applied %d migration(s)", n)
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}
	n, err := migrate.ExecMax(sqlDB, "postgres", &migrate.FileMigrationSource{Dir: *dir}, migrate.Down, 1)
	if err != nil {
		log.Fatalf("Failed to roll back migration: %v", err)
	}
	log.Printf("Rolled back %d migration(s)", n)
}
