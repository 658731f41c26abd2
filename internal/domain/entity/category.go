package entity

// Category представляет категорию вопросов.
// Категории доступны только для чтения: эндпоинтов создания или удаления нет,
// набор категорий задается миграцией.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
