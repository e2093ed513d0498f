package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"scoreboard/internal/migrations"
)

func main() {
	name := flag.String("name", "", "migration name")
	dir := flag.String("dir", filepath.Join("internal", "migrations"), "migrations root")
	flag.Parse()

	base, err := migrations.FileBase(time.Now(), *name)
	if err != nil {
		log.Fatal(err)
	}

	for _, dialect := range migrations.Dialects {
		upPath := filepath.Join(*dir, dialect, base+".up.sql")
		downPath := filepath.Join(*dir, dialect, base+".down.sql")

		if err := os.MkdirAll(filepath.Dir(upPath), 0o755); err != nil {
			log.Fatalf("create migrations dir: %v", err)
		}
		if err := writeFile(upPath, "-- up migration\n"); err != nil {
			log.Fatalf("create up migration: %v", err)
		}
		if err := writeFile(downPath, "-- down migration\n"); err != nil {
			log.Fatalf("create down migration: %v", err)
		}
		log.Printf("created %s and %s", upPath, downPath)
	}
}

func writeFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
