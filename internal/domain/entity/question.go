package entity

import "strconv"

// Question представляет вопрос викторины
type Question struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Text       string  `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string  `gorm:"column:answer;type:text" json:"answer"`
	Category   *string `gorm:"column:category;size:50" json:"category"`
	Difficulty *int    `gorm:"column:difficulty" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CategoryKey преобразует числовой идентификатор категории в текстовое
// значение, хранимое в колонке category. Все фильтры по категории обязаны
// использовать эту функцию, чтобы семантика сравнения не расходилась.
func CategoryKey(categoryID uint) string {
	return strconv.FormatUint(uint64(categoryID), 10)
}

// InCategory проверяет, принадлежит ли вопрос указанной категории
func (q *Question) InCategory(categoryID uint) bool {
	return q.Category != nil && *q.Category == CategoryKey(categoryID)
}

// SeenIn проверяет, встречается ли идентификатор вопроса в списке уже
// показанных вопросов текущей сессии викторины
func (q *Question) SeenIn(previousIDs []uint) bool {
	for _, id := range previousIDs {
		if id == q.ID {
			return true
		}
	}
	return false
}
