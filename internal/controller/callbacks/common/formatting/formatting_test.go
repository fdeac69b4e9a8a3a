package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 ₺"},
		{500, "500 ₺"},
		{1250, "1.250 ₺"},
		{1234567, "1.234.567 ₺"},
		{99.5, "99,50 ₺"},
		{10.05, "10,05 ₺"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in))
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"500", 500, true},
		{"1.250", 1250, true},
		{"99,5", 99.5, true},
		{"1.250,75", 1250.75, true},
		{"450 ₺", 450, true},
		{"450TL", 450, true},
		{"12.5", 12.5, true},
		{"-5", 0, false},
		{"beş yüz", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	got, ok := ParseDate("Bugün", now)
	assert.True(t, ok)
	assert.Equal(t, "2024-05-02", got)

	got, ok = ParseDate("yarın", now)
	assert.True(t, ok)
	assert.Equal(t, "2024-05-03", got)

	got, ok = ParseDate("15.06.2024", now)
	assert.True(t, ok)
	assert.Equal(t, "2024-06-15", got)

	got, ok = ParseDate("2024-06-15", now)
	assert.True(t, ok)
	assert.Equal(t, "2024-06-15", got)

	_, ok = ParseDate("31.02.2024", now)
	assert.False(t, ok)
}

func TestParseClock(t *testing.T) {
	for in, want := range map[string]string{"16:00": "16:00", "9:30": "09:30", "16.15": "16:15"} {
		got, ok := ParseClock(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseClock("25:00")
	assert.False(t, ok)
}

func TestFormatLessonDate(t *testing.T) {
	assert.Equal(t, "2 Mayıs 2024, Perşembe", FormatLessonDate("2024-05-02"))
	assert.Equal(t, "02.05.2024", FormatShortDate("2024-05-02"))
	assert.Equal(t, "garbage", FormatLessonDate("garbage"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 dk", FormatDuration(45))
	assert.Equal(t, "1 sa", FormatDuration(60))
	assert.Equal(t, "1 sa 30 dk", FormatDuration(90))
}

func TestStatusDisplays(t *testing.T) {
	assert.Equal(t, "✅ Tamamlandı", GetLessonStatusDisplay(model.LessonStatusCompleted).String())
	assert.Equal(t, "💰 Ödendi", GetPaymentStatusDisplay(model.PaymentStatusPaid).String())
	assert.Equal(t, "❓", GetLessonStatusDisplay("x").Emoji)
}

func TestEscapeAndTruncate(t *testing.T) {
	assert.Equal(t, "a &lt; b", Escape("a < b"))
	assert.Equal(t, "Türev…", Truncate("Türev kuralları", 6))
	assert.Equal(t, "kısa", Truncate("kısa", 10))
}
