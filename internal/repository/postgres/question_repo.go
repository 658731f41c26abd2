package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetAll возвращает все вопросы, упорядоченные по ID
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Update обновляет информацию о вопросе
func (r *QuestionRepo) Update(question *entity.Question) error {
	return r.db.Save(question).Error
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Question{}, id).Error
}

// SearchByText возвращает вопросы, содержащие подстроку term без учета регистра
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы указанной категории
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", entity.CategoryKey(categoryID)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetAvailableByCategory возвращает вопросы категории, исключая уже показанные
func (r *QuestionRepo) GetAvailableByCategory(categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	query := r.db.Where("category = ?", entity.CategoryKey(categoryID))

	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []entity.Question
	err := query.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByCategory возвращает количество вопросов в категории
func (r *QuestionRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("category = ?", entity.CategoryKey(categoryID)).
		Count(&count).Error
	return count, err
}
