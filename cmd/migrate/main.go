// Утилита обслуживания миграций: применение "вверх" и принудительная
// установка версии после сбойной миграции (очистка dirty-состояния).
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-game-api/internal/config"
)

func main() {
	var (
		action  = flag.String("action", "up", "действие: up | force")
		version = flag.Int("version", -1, "версия для action=force")
		source  = flag.String("source", "file://migrations", "источник миграций")
	)
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	switch *action {
	case "up":
		fmt.Println("Применяем миграции 'up'...")
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Готово.")

	case "force":
		if *version < 0 {
			log.Fatal("action=force требует -version")
		}
		fmt.Printf("Принудительно устанавливаем версию %d (очистка dirty-состояния)...\n", *version)
		if err := m.Force(*version); err != nil {
			log.Fatalf("Failed to force version: %v", err)
		}
		fmt.Println("Готово. Dirty-состояние очищено.")

	default:
		log.Fatalf("Неизвестное действие: %s", *action)
	}
}
