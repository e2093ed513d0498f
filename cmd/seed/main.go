package main

import (
	"context"
	"flag"
	"log"
	"os"

	"scoreboard/internal/config"
	"scoreboard/internal/db"
	"scoreboard/internal/migrator"
	"scoreboard/internal/seed"
)

func main() {
	filePath := flag.String("file", "", "path to a .yaml or .csv dataset (default: built-in games)")
	applyMigrations := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if *applyMigrations {
		if err := migrator.Apply(cfg.DatabaseURL); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	data := seed.Default()
	path := *filePath
	if path == "" {
		path = cfg.SeedFile
	}
	if path != "" {
		data, err = seed.Load(path)
		if err != nil {
			log.Fatalf("failed to read dataset: %v", err)
		}
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close(conn)

	if _, err := seed.New(conn, os.Stdout).Run(context.Background(), data); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
