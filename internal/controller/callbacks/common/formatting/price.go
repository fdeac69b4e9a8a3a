package formatting

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice форматирует сумму в лирах: разделитель тысяч точка, дробной части запятая.
// 1250 -> "1.250 ₺", 99.5 -> "99,50 ₺"
func FormatPrice(amount float64) string {
	return FormatAmount(amount) + " ₺"
}

// FormatAmount то же без знака валюты
func FormatAmount(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	if frac != 0 {
		sb.WriteByte(',')
		if frac < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.FormatInt(frac, 10))
	}

	return sb.String()
}

// ParsePrice разбирает ввод пользователя: "500", "1.250", "99,5", "450 ₺"
func ParsePrice(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, "₺")
	s = strings.TrimSuffix(strings.TrimSpace(s), "TL")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 || (strings.Contains(s, ".") && len(s)-strings.LastIndex(s, ".") == 4) {
		// "1.250" это тысячи, а не дробь
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
