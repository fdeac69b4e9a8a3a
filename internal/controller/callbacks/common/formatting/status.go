package formatting

import "github.com/Freeeeeet/mathtutor_bot/internal/model"

// StatusDisplay представляет отображение статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

func (d StatusDisplay) String() string {
	return d.Emoji + " " + d.Text
}

// GetLessonStatusDisplay возвращает emoji и текст для статуса занятия
func GetLessonStatusDisplay(status model.LessonStatus) StatusDisplay {
	displays := map[model.LessonStatus]StatusDisplay{
		model.LessonStatusScheduled: {"🗓", string(model.LessonStatusScheduled)},
		model.LessonStatusCompleted: {"✅", string(model.LessonStatusCompleted)},
		model.LessonStatusCancelled: {"❌", string(model.LessonStatusCancelled)},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", string(status)}
}

// GetPaymentStatusDisplay возвращает emoji и текст для статуса оплаты
func GetPaymentStatusDisplay(status model.PaymentStatus) StatusDisplay {
	displays := map[model.PaymentStatus]StatusDisplay{
		model.PaymentStatusPending: {"⏳", string(model.PaymentStatusPending)},
		model.PaymentStatusPaid:    {"💰", string(model.PaymentStatusPaid)},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", string(status)}
}
