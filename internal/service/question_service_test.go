package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев. Используются также в quiz_service_test.go и
// category_service_test.go (один пакет — одно определение).
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) SearchByText(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(categoryID uint) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetAvailableByCategory(categoryID uint, excludeIDs []uint) ([]entity.Question, error) {
	args := m.Called(categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountByCategory(categoryID uint) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// helpers для опциональных полей
func strPtrForQS(s string) *string { return &s }
func intPtrForQS(v int) *int       { return &v }

func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		questions[i] = entity.Question{
			ID:       uint(i + 1),
			Text:     "Вопрос",
			Answer:   "Ответ",
			Category: strPtrForQS("1"),
		}
	}
	return questions
}

// ============================================================================
// Тесты QuestionService
// ============================================================================

func TestQuestionService_ListPage_ReturnsPageAndFullTotal(t *testing.T) {
	// Arrange: 23 вопроса, запрашиваем вторую страницу
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetAll").Return(makeQuestions(23), nil)

	svc := NewQuestionService(mockRepo)

	// Act
	page, err := svc.ListPage(2)

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10, "вторая страница должна содержать 10 вопросов")
	assert.Equal(t, uint(11), page.Questions[0].ID, "вторая страница должна начинаться с 11-го вопроса")
	assert.Equal(t, int64(23), page.Total, "total должен считаться по полной выборке")
}

func TestQuestionService_ListPage_OutOfRangePageIsEmpty(t *testing.T) {
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetAll").Return(makeQuestions(23), nil)

	svc := NewQuestionService(mockRepo)

	page, err := svc.ListPage(1000)

	require.NoError(t, err)
	assert.Empty(t, page.Questions, "страница за пределами выборки должна быть пустой")
	assert.Equal(t, int64(23), page.Total)
}

func TestQuestionService_Search_TotalIsFullMatchSet(t *testing.T) {
	// Arrange: поиск находит 12 совпадений, запрашиваем вторую страницу
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("SearchByText", "луна").Return(makeQuestions(12), nil)

	svc := NewQuestionService(mockRepo)

	// Act
	page, err := svc.Search("луна", 2)

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Questions, 2)
	assert.Equal(t, int64(12), page.Total, "total должен равняться полному числу совпадений, а не размеру страницы")
}

func TestQuestionService_Create_PersistsAndReturnsUpdatedList(t *testing.T) {
	// Arrange
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	mockRepo.On("GetAll").Return(makeQuestions(5), nil)

	svc := NewQuestionService(mockRepo)

	// Act
	page, err := svc.Create("Столица Казахстана?", "Астана", strPtrForQS("3"), intPtrForQS(2), 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	mockRepo.AssertCalled(t, "Create", mock.MatchedBy(func(q *entity.Question) bool {
		return q.Text == "Столица Казахстана?" && q.Answer == "Астана" &&
			q.Category != nil && *q.Category == "3" &&
			q.Difficulty != nil && *q.Difficulty == 2
	}))
}

func TestQuestionService_Create_NilCategoryAndDifficulty(t *testing.T) {
	// Категория и сложность опциональны и сохраняются как NULL
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	mockRepo.On("GetAll").Return(makeQuestions(1), nil)

	svc := NewQuestionService(mockRepo)

	_, err := svc.Create("Вопрос без категории?", "Ответ", nil, nil, 1)

	require.NoError(t, err)
	mockRepo.AssertCalled(t, "Create", mock.MatchedBy(func(q *entity.Question) bool {
		return q.Category == nil && q.Difficulty == nil
	}))
}

func TestQuestionService_DeleteByID_MissingQuestion(t *testing.T) {
	// Arrange: вопроса нет в базе
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetByID", uint(999)).Return(nil, apperrors.ErrNotFound)

	svc := NewQuestionService(mockRepo)

	// Act
	page, err := svc.DeleteByID(999, 1)

	// Assert: типизированная ошибка, Delete не вызывался
	assert.Nil(t, page)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestQuestionService_DeleteByID_Success(t *testing.T) {
	// Arrange
	questions := makeQuestions(5)
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetByID", uint(3)).Return(&questions[2], nil)
	mockRepo.On("Delete", uint(3)).Return(nil)
	mockRepo.On("GetAll").Return(questions[:4], nil)

	svc := NewQuestionService(mockRepo)

	// Act
	page, err := svc.DeleteByID(3, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total, "total должен отражать список после удаления")
	mockRepo.AssertCalled(t, "Delete", uint(3))
}

func TestQuestionService_DeleteByID_PersistenceError(t *testing.T) {
	// Сбой удаления не должен подменяться ошибкой not found
	questions := makeQuestions(1)
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetByID", uint(1)).Return(&questions[0], nil)
	mockRepo.On("Delete", uint(1)).Return(errors.New("connection reset"))

	svc := NewQuestionService(mockRepo)

	_, err := svc.DeleteByID(1, 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuestionService_ListByCategory_EmptyCategoryIsSuccess(t *testing.T) {
	// Пустая и несуществующая категория дают одинаковый успешный результат
	mockRepo := new(MockQuestionRepository)
	mockRepo.On("GetByCategory", uint(7)).Return([]entity.Question{}, nil)

	svc := NewQuestionService(mockRepo)

	page, err := svc.ListByCategory(7, 1)

	require.NoError(t, err)
	assert.Empty(t, page.Questions)
	assert.Equal(t, int64(0), page.Total)
}

// ============================================================================
// Тесты CategoryService
// ============================================================================

func TestCategoryService_CategoryMap(t *testing.T) {
	// Arrange
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 4, Type: "History"},
	}, nil)

	svc := NewCategoryService(mockRepo)

	// Act
	categories, err := svc.CategoryMap()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art", 4: "History"}, categories)
}

func TestCategoryService_CategoryMap_Empty(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("GetAll").Return([]entity.Category{}, nil)

	svc := NewCategoryService(mockRepo)

	categories, err := svc.CategoryMap()

	require.NoError(t, err)
	assert.Empty(t, categories, "пустая база категорий дает пустое отображение; политику 404 решает обработчик")
}
