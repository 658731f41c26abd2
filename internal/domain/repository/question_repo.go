package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	GetAll() ([]entity.Question, error)
	// Update присутствует как примитив хранилища, но не используется
	// ни одним эндпоинтом.
	Update(question *entity.Question) error
	Delete(id uint) error

	// SearchByText возвращает вопросы, текст которых содержит подстроку term
	// без учета регистра, упорядоченные по id.
	SearchByText(term string) ([]entity.Question, error)

	// GetByCategory возвращает вопросы указанной категории, упорядоченные по id.
	GetByCategory(categoryID uint) ([]entity.Question, error)

	// GetAvailableByCategory возвращает вопросы категории, исключая уже
	// показанные (excludeIDs). Кандидаты для выбора следующего вопроса викторины.
	GetAvailableByCategory(categoryID uint, excludeIDs []uint) ([]entity.Question, error)

	// CountByCategory возвращает общее количество вопросов в категории.
	CountByCategory(categoryID uint) (int64, error)
}
