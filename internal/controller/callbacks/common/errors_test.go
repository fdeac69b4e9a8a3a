package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/ai"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"student", fmt.Errorf("load: %w", service.ErrStudentNotFound), "❌ Öğrenci bulunamadı"},
		{"import", service.ErrInvalidImport, "❌ Geçersiz dosya formatı."},
		{"short pin", service.ErrPassphraseTooShort, "❌ Şifre en az 4 karakter olmalıdır."},
		{"no key", ai.ErrNotConfigured, "❌ API Anahtarı bulunamadı! Lütfen 'API_KEY' değişkenini ayarlayın."},
		{"rate limit", fmt.Errorf("%w: %w", ai.ErrService, ai.ErrRateLimited), "⏳ İstek limiti aşıldı. Lütfen birkaç saniye bekleyin."},
		{"unknown", errors.New("boom"), "❌ Bir hata oluştu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestParseArg(t *testing.T) {
	arg, err := ParseArg("lesson:abc", "lesson:")
	assert.NoError(t, err)
	assert.Equal(t, "abc", arg)

	_, err = ParseArg("lesson:", "lesson:")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseArg("student:abc", "lesson:")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	n, err := ParseIntArg("quiz_count:10", "quiz_count:")
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = ParseIntArg("quiz_count:x", "quiz_count:")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIsMessageNotModifiedError(t *testing.T) {
	assert.True(t, IsMessageNotModifiedError(errors.New("bad request, Bad Request: message is not modified: specified new message content")))
	assert.False(t, IsMessageNotModifiedError(errors.New("forbidden")))
	assert.False(t, IsMessageNotModifiedError(nil))
}
