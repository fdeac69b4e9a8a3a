package model

import "time"

type LessonStatus string

const (
	LessonStatusScheduled LessonStatus = "Planlandı"
	LessonStatusCompleted LessonStatus = "Tamamlandı"
	LessonStatusCancelled LessonStatus = "İptal"
)

// Next возвращает следующий статус цикла Planlandı -> Tamamlandı -> İptal -> Planlandı.
// Неизвестный статус возвращается в Planlandı.
func (s LessonStatus) Next() LessonStatus {
	switch s {
	case LessonStatusScheduled:
		return LessonStatusCompleted
	case LessonStatusCompleted:
		return LessonStatusCancelled
	default:
		return LessonStatusScheduled
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Bekliyor"
	PaymentStatusPaid    PaymentStatus = "Ödendi"
)

// Toggle переключает Bekliyor <-> Ödendi
func (p PaymentStatus) Toggle() PaymentStatus {
	if p == PaymentStatusPaid {
		return PaymentStatusPending
	}
	return PaymentStatusPaid
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Lesson struct {
	ID              string        `json:"id" validate:"required"`
	StudentID       string        `json:"studentId" validate:"required"`
	Date            string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string        `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes int           `json:"durationMinutes" validate:"gt=0,lte=600"`
	Topic           string        `json:"topic" validate:"required,max=200"`
	Price           float64       `json:"price" validate:"gte=0"`
	Status          LessonStatus  `json:"status" validate:"oneof=Planlandı Tamamlandı İptal"`
	PaymentStatus   PaymentStatus `json:"paymentStatus" validate:"oneof=Bekliyor Ödendi"`
	Notes           string        `json:"notes,omitempty"`
	AIGeneratedPlan *AILessonPlan `json:"aiGeneratedPlan,omitempty"`
}

// StartsAt возвращает дату и время начала занятия (нулевое время если формат неверный)
func (l *Lesson) StartsAt() time.Time {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, l.Date+" "+l.Time, time.Local)
	if err != nil {
		d, _ := time.ParseInLocation(DateLayout, l.Date, time.Local)
		return d
	}
	return t
}
