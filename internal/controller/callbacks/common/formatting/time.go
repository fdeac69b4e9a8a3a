package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
)

var weekdayNames = [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"}

var monthNames = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// GetWeekdayName возвращает название дня недели по-турецки
func GetWeekdayName(weekday time.Weekday) string {
	return weekdayNames[weekday]
}

// GetMonthName возвращает название месяца по-турецки
func GetMonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNames[month-1]
}

// FormatLessonDate "2024-05-02" -> "2 Mayıs 2024, Perşembe".
// Неразборчивая дата возвращается как есть.
func FormatLessonDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %d, %s", t.Day(), GetMonthName(t.Month()), t.Year(), GetWeekdayName(t.Weekday()))
}

// FormatShortDate "2024-05-02" -> "02.05.2024"
func FormatShortDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006")
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d dk", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d sa", hours)
	}
	return fmt.Sprintf("%d sa %d dk", hours, mins)
}

// ParseDate принимает "2024-05-02", "02.05.2024" или "bugün"/"yarın"
func ParseDate(input string, now time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "bugün", "bugun":
		return now.Format(model.DateLayout), true
	case "yarın", "yarin":
		return now.AddDate(0, 0, 1).Format(model.DateLayout), true
	}

	for _, layout := range []string{model.DateLayout, "02.01.2006", "2.1.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.DateLayout), true
		}
	}
	return "", false
}

// ParseClock принимает "16:00", "9:30" или "16.00"
func ParseClock(input string) (string, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ".", ":")
	for _, layout := range []string{model.TimeLayout, "15:4", "3:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.TimeLayout), true
		}
	}
	return "", false
}
