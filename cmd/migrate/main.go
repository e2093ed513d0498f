package main

import (
	"flag"
	"log"

	"scoreboard/internal/config"
	"scoreboard/internal/migrator"
)

func main() {
	down := flag.Bool("down", false, "revert every applied migration")
	steps := flag.Int("steps", 0, "apply (n>0) or revert (n<0) n migrations")
	force := flag.Int("force", 0, "mark a version as applied without running it (-1 clears it)")
	showVersion := flag.Bool("version", false, "print the applied version and exit")
	flag.Parse()

	forceSet := isFlagSet(flag.CommandLine, "force")

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

	m, err := migrator.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("migration setup failed: %v", err)
	}
	defer m.Close()

	switch {
	case *showVersion:
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("read version: %v", err)
		}
		log.Printf("database version %d (dirty=%v)", version, dirty)
		return
	case forceSet:
		err = m.Force(*force)
	case *down:
		err = m.Down()
	case *steps != 0:
		err = m.Steps(*steps)
	default:
		err = m.Up()
	}
	if err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migrations applied")
}

// isFlagSet reports whether name was given on the command line, so that any
// value, -1 included, can be passed to -force.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
