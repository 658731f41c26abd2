// Утилита массовой загрузки вопросов из CSV или XLSX файла.
// Ожидаемые колонки: question, answer, category, difficulty (первая строка —
// заголовок). Пустые category/difficulty сохраняются как NULL.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	pgRepo "github.com/yourusername/trivia-game-api/internal/repository/postgres"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

func main() {
	file := flag.String("file", "", "путь к CSV или XLSX файлу с вопросами")
	flag.Parse()

	if *file == "" {
		log.Fatal("не указан файл: -file questions.csv")
	}

	rows, err := readRows(*file)
	if err != nil {
		log.Fatalf("Не удалось прочитать %s: %v", *file, err)
	}

	questions, err := parseQuestions(rows)
	if err != nil {
		log.Fatalf("Некорректные данные в %s: %v", *file, err)
	}
	if len(questions) == 0 {
		log.Fatal("Файл не содержит ни одного вопроса")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	questionRepo := pgRepo.NewQuestionRepo(db)
	if err := questionRepo.CreateBatch(questions); err != nil {
		log.Fatalf("Не удалось сохранить вопросы: %v", err)
	}

	fmt.Printf("Загружено вопросов: %d\n", len(questions))
}

// readRows читает строки из CSV или XLSX в зависимости от расширения
func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(f.GetSheetName(0))
}

// parseQuestions преобразует табличные строки в сущности, пропуская заголовок
func parseQuestions(rows [][]string) ([]entity.Question, error) {
	var questions []entity.Question

	for i, row := range rows {
		if i == 0 {
			// Строка заголовка
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		question := entity.Question{Text: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			question.Answer = strings.TrimSpace(row[1])
		}
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			category := strings.TrimSpace(row[2])
			question.Category = &category
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return nil, fmt.Errorf("строка %d: нечисловая сложность %q", i+1, row[3])
			}
			question.Difficulty = &difficulty
		}

		questions = append(questions, question)
	}

	return questions, nil
}
