package pagination

// QuestionsPerPage определяет фиксированный размер страницы для всех списков.
const QuestionsPerPage = 10

// Page возвращает срез items, соответствующий запрошенной странице.
// Нумерация страниц начинается с 1; page <= 0 трактуется как первая страница.
// Для страницы за пределами списка возвращается пустой срез — по этому
// признаку вызывающий код определяет ситуацию "страница не найдена".
func Page[T any](items []T, page int) []T {
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}

	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages возвращает количество страниц для заданного числа элементов.
func TotalPages(total int) int {
	return (total + QuestionsPerPage - 1) / QuestionsPerPage
}
