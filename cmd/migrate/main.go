package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"

	"github.com/yourusername/millionaire-api/internal/config"
	"github.com/yourusername/millionaire-api/pkg/database"
)

// Использование:
//
//	migrate up
//	migrate down
//	migrate force 1
//	migrate version
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	migrationsPath := flag.String("path", database.DefaultMigrationsPath, "папка с миграциями")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: migrate [-config path] [-path dir] up|down|force N|version")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	m, err := database.NewMigrator(db, *migrationsPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(m, flag.Args()); err != nil {
		log.Printf("Migration failed: %v", err)
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		return ignoreNoChange(m.Steps(-1))
	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		var version int
		if _, err := fmt.Sscanf(args[1], "%d", &version); err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		// Снимает флаг dirty после упавшей миграции
		fmt.Printf("Forcing migration version to %d...\n", version)
		return m.Force(version)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("No change")
		return nil
	}
	if err == nil {
		log.Println("Success")
	}
	return err
}
