package service

import (
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
)

// turkishWeekdays короткие названия дней, индекс = time.Weekday
var turkishWeekdays = [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}

// DashboardStats сводка для панели
type DashboardStats struct {
	TotalStudents    int
	UpcomingLessons  int
	CompletedLessons int
	UnpaidAmount     float64
}

// DayIncome доход за один день
type DayIncome struct {
	Date    time.Time
	DayName string
	Income  float64
	Lessons int
}

// DashboardService считает показатели панели
type DashboardService struct{}

// NewDashboardService создает новый сервис
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Stats считает учеников, занятия по статусам и неоплаченную сумму
// (проведённые, но не оплаченные занятия)
func (s *DashboardService) Stats(data model.AppData) DashboardStats {
	stats := DashboardStats{TotalStudents: len(data.Students)}

	for _, l := range data.Lessons {
		switch l.Status {
		case model.LessonStatusScheduled:
			stats.UpcomingLessons++
		case model.LessonStatusCompleted:
			stats.CompletedLessons++
			if l.PaymentStatus == model.PaymentStatusPending {
				stats.UnpaidAmount += l.Price
			}
		}
	}

	return stats
}

// WeeklyIncome возвращает доход от проведённых занятий за последние 7 дней, включая сегодня
func (s *DashboardService) WeeklyIncome(data model.AppData, now time.Time) []DayIncome {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]DayIncome, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i-6)
		days[i] = DayIncome{Date: d, DayName: turkishWeekdays[d.Weekday()]}
		index[d.Format(model.DateLayout)] = i
	}

	for _, l := range data.Lessons {
		if l.Status != model.LessonStatusCompleted {
			continue
		}
		if i, ok := index[l.Date]; ok {
			days[i].Income += l.Price
			days[i].Lessons++
		}
	}

	return days
}

// TotalIncome сумма дохода за период
func TotalIncome(days []DayIncome) float64 {
	var total float64
	for _, d := range days {
		total += d.Income
	}
	return total
}
