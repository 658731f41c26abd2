package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "1", CategoryKey(1))
	assert.Equal(t, "42", CategoryKey(42))
}

func TestQuestion_InCategory(t *testing.T) {
	// Arrange
	question := &Question{
		ID:       101,
		Text:     "В каком году человек впервые высадился на Луну?",
		Answer:   "1969",
		Category: strPtr("4"),
	}

	// Act & Assert
	assert.True(t, question.InCategory(4), "вопрос с category=\"4\" должен принадлежать категории 4")
	assert.False(t, question.InCategory(1), "вопрос не должен принадлежать чужой категории")
}

func TestQuestion_InCategory_NilCategory(t *testing.T) {
	// Категория может отсутствовать (хранится как NULL)
	question := &Question{ID: 7, Text: "Вопрос без категории"}

	assert.False(t, question.InCategory(1), "вопрос без категории не принадлежит ни одной категории")
}

func TestQuestion_SeenIn(t *testing.T) {
	question := &Question{ID: 103}

	assert.True(t, question.SeenIn([]uint{101, 102, 103}), "вопрос из списка должен считаться показанным")
	assert.False(t, question.SeenIn([]uint{101, 102}), "вопрос вне списка не должен считаться показанным")
	assert.False(t, question.SeenIn(nil), "пустой список означает, что вопрос еще не показывался")
}
