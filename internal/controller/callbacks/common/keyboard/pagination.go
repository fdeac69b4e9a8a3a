package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// Page границы страницы списка
type Page struct {
	Number int // 0-based, уже ограничен диапазоном
	Total  int
	Start  int
	End    int
}

// Paginate считает границы страницы; неверный номер приводится к ближайшему допустимому
func Paginate(items, page, perPage int) Page {
	if perPage <= 0 {
		perPage = 1
	}

	total := (items + perPage - 1) / perPage
	if total == 0 {
		total = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= total {
		page = total - 1
	}

	start := page * perPage
	end := start + perPage
	if end > items {
		end = items
	}

	return Page{Number: page, Total: total, Start: start, End: end}
}

// PaginationButtons создаёт ряд кнопок пагинации
// prefix - префикс для callback (например "students_page:")
// currentPage - текущая страница (0-based)
// totalPages - всего страниц
func PaginationButtons(prefix string, currentPage, totalPages int) []models.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var buttons []models.InlineKeyboardButton

	if currentPage > 0 {
		buttons = append(buttons, Button("⬅️", fmt.Sprintf("%s%d", prefix, currentPage-1)))
	}

	buttons = append(buttons, Button(
		fmt.Sprintf("📄 %d/%d", currentPage+1, totalPages),
		"noop",
	))

	if currentPage < totalPages-1 {
		buttons = append(buttons, Button("➡️", fmt.Sprintf("%s%d", prefix, currentPage+1)))
	}

	return buttons
}

// AddPagination добавляет пагинацию к builder
func (b *Builder) AddPagination(prefix string, page Page) *Builder {
	buttons := PaginationButtons(prefix, page.Number, page.Total)
	if len(buttons) > 0 {
		b.Row(buttons...)
	}
	return b
}
