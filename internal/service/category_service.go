package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/repository"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryMap возвращает отображение id категории -> название.
// Пустое отображение означает, что категорий в базе нет; политику
// "пусто = ошибка" определяет вызывающий обработчик.
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result, nil
}
