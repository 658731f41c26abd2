package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	"github.com/yourusername/trivia-game-api/internal/pkg/pagination"
)

// QuestionPage содержит текущую страницу вопросов и полное количество
// вопросов в выборке (до разбиения на страницы).
type QuestionPage struct {
	Questions []entity.Question
	Total     int64
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// ListPage возвращает запрошенную страницу из полного списка вопросов.
// Пустая страница при непустой выборке означает выход за пределы списка;
// как на это реагировать, решает обработчик.
func (s *QuestionService) ListPage(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	return &QuestionPage{
		Questions: pagination.Page(questions, page),
		Total:     int64(len(questions)),
	}, nil
}

// Search возвращает страницу вопросов, содержащих подстроку term без учета
// регистра. Total всегда равен размеру полного множества совпадений,
// независимо от запрошенной страницы.
func (s *QuestionService) Search(term string, page int) (*QuestionPage, error) {
	matches, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	return &QuestionPage{
		Questions: pagination.Page(matches, page),
		Total:     int64(len(matches)),
	}, nil
}

// Create сохраняет новый вопрос и возвращает страницу обновленного полного
// списка. Категория и сложность опциональны и сохраняются как NULL, если не
// переданы. Последовательность "создать, затем перечитать" не атомарна:
// при конкурирующих записях возвращенный total может быть уже устаревшим.
func (s *QuestionService) Create(text, answer string, category *string, difficulty *int, page int) (*QuestionPage, error) {
	question := &entity.Question{
		Text:       text,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return s.ListPage(page)
}

// DeleteByID удаляет вопрос и возвращает страницу оставшегося списка.
// Возвращает apperrors.ErrNotFound, если вопрос не существует; любая другая
// ошибка означает сбой персистентности. Как и Create, не атомарна
// относительно конкурирующих мутаций.
func (s *QuestionService) DeleteByID(id uint, page int) (*QuestionPage, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.Delete(question.ID); err != nil {
		return nil, fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	return s.ListPage(page)
}

// ListByCategory возвращает страницу вопросов указанной категории.
// Пустая категория и несуществующая категория неразличимы: обе дают
// успешный результат с пустым списком и нулевым total.
func (s *QuestionService) ListByCategory(categoryID uint, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for category %d: %w", categoryID, err)
	}

	return &QuestionPage{
		Questions: pagination.Page(questions, page),
		Total:     int64(len(questions)),
	}, nil
}

// ExportAll возвращает полный список вопросов без пагинации для выгрузки
func (s *QuestionService) ExportAll() ([]entity.Question, error) {
	return s.questionRepo.GetAll()
}
