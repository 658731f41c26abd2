package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// PostQuestionRequest представляет тело POST /questions. Два взаимно
// исключающих режима: поиск (searchTerm) либо создание (question).
type PostQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   *string `json:"category"`
	Difficulty *int    `json:"difficulty"`
	SearchTerm string  `json:"searchTerm"`
}

// ListQuestions возвращает страницу из полного списка вопросов.
// GET /api/questions?page=N
// Пустая страница (в том числе запрос за пределами списка) — 404.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.questionService.ListPage(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if len(page.Questions) == 0 {
		respondStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(page.Questions, page.Total, categories))
}

// DeleteQuestion удаляет вопрос и возвращает страницу оставшегося списка.
// DELETE /api/questions/:id?page=N
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	page, err := h.questionService.DeleteByID(questionID, pageFromQuery(c))
	if err != nil {
		// Отсутствующая запись и сбой персистентности различаются
		// типизированно внутри сервиса, но наружу обе отображаются как
		// 422 — наблюдаемый контракт этой операции.
		respondStatus(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page.Questions, page.Total))
}

// PostQuestion обрабатывает POST /api/questions: поиск по подстроке при
// непустом searchTerm, иначе создание вопроса при непустом question.
// Тело без обоих полей — 400.
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
	var req PostQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondStatus(c, http.StatusBadRequest)
		return
	}

	page := pageFromQuery(c)

	switch {
	case req.SearchTerm != "":
		result, err := h.questionService.Search(req.SearchTerm, page)
		if err != nil {
			respondStatus(c, http.StatusUnprocessableEntity)
			return
		}
		c.JSON(http.StatusOK, dto.NewQuestionPageResponse(result.Questions, result.Total))

	case req.Question != "":
		result, err := h.questionService.Create(req.Question, req.Answer, req.Category, req.Difficulty, page)
		if err != nil {
			respondStatus(c, http.StatusUnprocessableEntity)
			return
		}
		c.JSON(http.StatusOK, dto.NewQuestionPageResponse(result.Questions, result.Total))

	default:
		respondStatus(c, http.StatusBadRequest)
	}
}

// ExportQuestions экспортирует полный список вопросов в CSV или Excel.
// GET /api/questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.ExportAll()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV с корректным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Вопрос", "Ответ", "Категория", "Сложность"})

	for i := range questions {
		writer.Write(questionRow(&questions[i]))
	}
}

// exportXLSX выгружает вопросы в Excel
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Questions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Вопрос", "Ответ", "Категория", "Сложность"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row := range questions {
		for col, value := range questionRow(&questions[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи xlsx: %v", err)
	}
}

// questionRow преобразует вопрос в строку выгрузки
func questionRow(q *entity.Question) []string {
	category := ""
	if q.Category != nil {
		category = *q.Category
	}
	difficulty := ""
	if q.Difficulty != nil {
		difficulty = strconv.Itoa(*q.Difficulty)
	}
	return []string{strconv.FormatUint(uint64(q.ID), 10), q.Text, q.Answer, category, difficulty}
}
