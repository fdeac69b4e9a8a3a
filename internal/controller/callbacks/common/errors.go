package common

import (
	"errors"

	"github.com/Freeeeeet/mathtutor_bot/internal/ai"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrSessionLost   = errors.New("dialog data lost")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return "❌ Öğrenci bulunamadı"
	case errors.Is(err, service.ErrLessonNotFound):
		return "❌ Ders bulunamadı"
	case errors.Is(err, service.ErrTodoNotFound):
		return "❌ Not bulunamadı"
	case errors.Is(err, service.ErrEmptyTodo):
		return "❌ Not boş olamaz"
	case errors.Is(err, service.ErrInvalidImport):
		return "❌ Geçersiz dosya formatı."
	case errors.Is(err, service.ErrValidation):
		return "❌ Girilen bilgiler geçersiz"
	case errors.Is(err, service.ErrPassphraseTooShort):
		return "❌ Şifre en az 4 karakter olmalıdır."
	case errors.Is(err, ai.ErrNotConfigured):
		return "❌ API Anahtarı bulunamadı! Lütfen 'API_KEY' değişkenini ayarlayın."
	case errors.Is(err, ai.ErrInvalidKey):
		return "❌ API Key geçersiz! Lütfen https://console.groq.com adresinden yeni bir key alın."
	case errors.Is(err, ai.ErrRateLimited):
		return "⏳ İstek limiti aşıldı. Lütfen birkaç saniye bekleyin."
	case errors.Is(err, ai.ErrService):
		return "❌ Yapay zeka servisi yanıt veremedi. Lütfen tekrar deneyin."
	case errors.Is(err, ErrSessionLost):
		return "⌛ İşlem zaman aşımına uğradı, lütfen baştan başlayın"
	case errors.Is(err, ErrNoMessage):
		return "❌ Mesaj işlenemedi"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Geçersiz veri"
	default:
		return "❌ Bir hata oluştu"
	}
}
