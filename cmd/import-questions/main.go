package main

import (
	"flag"
	"log"
	"os"

	"github.com/yourusername/millionaire-api/internal/config"
	pgRepo "github.com/yourusername/millionaire-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/millionaire-api/internal/repository/redis"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/pkg/database"
)

// Загружает вопросы из XLSX в базу без запуска сервера:
//
//	import-questions -file questions.xlsx
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	filePath := flag.String("file", "", "XLSX с вопросами: уровень, текст, правильный ответ, три неправильных")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: import-questions [-config path] -file questions.xlsx")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Без Redis импорт всё равно проходит, кеш уровней просто истечёт сам
	var invalidator service.QuestionCacheInvalidator
	if redisClient, err := database.NewUniversalRedisClient(cfg.Redis); err != nil {
		log.Printf("Redis unavailable, question cache will not be invalidated: %v", err)
	} else {
		defer redisClient.Close()
		cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Fatalf("Failed to initialize CacheRepo: %v", err)
		}
		invalidator = service.NewCachedQuestionSource(questionRepo, cacheRepo)
	}

	prizes := len(cfg.Game.Prizes)
	if prizes == 0 {
		log.Fatal("game.prizes must not be empty")
	}
	importer := service.NewQuestionImporter(questionRepo, invalidator, prizes-1)

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *filePath, err)
	}
	defer file.Close()

	report, err := importer.ImportXLSX(file)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Imported: %d", report.Imported)
	for _, skipped := range report.Skipped {
		log.Printf("Row %d skipped: %s", skipped.Row, skipped.Reason)
	}
}
