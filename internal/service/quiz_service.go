package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// NextQuestionResult содержит итог выбора следующего вопроса викторины.
// Done=true означает, что все вопросы категории уже были показаны;
// Question в этом случае равен nil.
type NextQuestionResult struct {
	Question *entity.Question
	Done     bool
}

// QuizService реализует выбор следующего вопроса викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion выбирает следующий вопрос категории, не входящий в previousIDs.
// Если количество показанных вопросов равно общему количеству вопросов
// категории, возвращается признак исчерпания. Если множество кандидатов
// оказалось пустым в обход проверки на исчерпание (дубликаты в previousIDs
// или ids чужой категории), возвращается apperrors.ErrNotFound.
// Выбор кандидата равномерно случайный.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*NextQuestionResult, error) {
	total, err := s.questionRepo.CountByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for category %d: %w", categoryID, err)
	}

	if int64(len(previousIDs)) == total {
		return &NextQuestionResult{Done: true}, nil
	}

	candidates, err := s.questionRepo.GetAvailableByCategory(categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate questions for category %d: %w", categoryID, err)
	}

	if len(candidates) == 0 {
		return nil, apperrors.ErrNotFound
	}

	next := candidates[rand.IntN(len(candidates))]
	return &NextQuestionResult{Question: &next}, nil
}
