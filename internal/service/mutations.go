package service

import (
	"sort"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
)

// Мутации агрегата: каждая функция возвращает новое значение AppData
// и не изменяет переданное.

// AddStudent добавляет ученика в конец списка
func AddStudent(data model.AppData, student model.Student) model.AppData {
	out := data.Clone()
	out.Students = append(out.Students, student)
	return out
}

// DeleteStudent удаляет ученика и все его занятия (каскадно)
func DeleteStudent(data model.AppData, studentID string) model.AppData {
	out := data.Clone()

	students := out.Students[:0]
	for _, s := range out.Students {
		if s.ID != studentID {
			students = append(students, s)
		}
	}
	out.Students = students

	lessons := out.Lessons[:0]
	for _, l := range out.Lessons {
		if l.StudentID != studentID {
			lessons = append(lessons, l)
		}
	}
	out.Lessons = lessons

	return out
}

// AddLesson добавляет занятие в конец списка
func AddLesson(data model.AppData, lesson model.Lesson) model.AppData {
	out := data.Clone()
	out.Lessons = append(out.Lessons, lesson)
	return out
}

// UpdateLesson заменяет занятие с тем же ID целиком.
// Занятие с неизвестным ID игнорируется.
func UpdateLesson(data model.AppData, lesson model.Lesson) model.AppData {
	out := data.Clone()
	for i := range out.Lessons {
		if out.Lessons[i].ID == lesson.ID {
			out.Lessons[i] = lesson
		}
	}
	return out
}

// ReplaceAll заменяет агрегат целиком (импорт, правки с панели)
func ReplaceAll(_ model.AppData, next model.AppData) model.AppData {
	out := next.Clone()
	out.Normalize()
	return out
}

// ToggleLessonStatus переводит статус занятия на следующий шаг цикла
func ToggleLessonStatus(data model.AppData, lessonID string) (model.AppData, bool) {
	return modifyLesson(data, lessonID, func(l *model.Lesson) {
		l.Status = l.Status.Next()
	})
}

// ToggleLessonPayment переключает статус оплаты занятия
func ToggleLessonPayment(data model.AppData, lessonID string) (model.AppData, bool) {
	return modifyLesson(data, lessonID, func(l *model.Lesson) {
		l.PaymentStatus = l.PaymentStatus.Toggle()
	})
}

// AttachPlan сохраняет AI-план в занятии, заменяя предыдущий
func AttachPlan(data model.AppData, lessonID string, plan model.AILessonPlan) (model.AppData, bool) {
	return modifyLesson(data, lessonID, func(l *model.Lesson) {
		p := plan
		l.AIGeneratedPlan = &p
	})
}

func modifyLesson(data model.AppData, lessonID string, fn func(*model.Lesson)) (model.AppData, bool) {
	for _, l := range data.Lessons {
		if l.ID != lessonID {
			continue
		}
		fn(&l)
		return UpdateLesson(data, l), true
	}
	return data, false
}

// AddTodo добавляет заметку
func AddTodo(data model.AppData, todo model.TodoItem) model.AppData {
	out := data.Clone()
	out.Todos = append(out.Todos, todo)
	return out
}

// ToggleTodo переключает отметку выполнения
func ToggleTodo(data model.AppData, todoID string) (model.AppData, bool) {
	out := data.Clone()
	for i := range out.Todos {
		if out.Todos[i].ID == todoID {
			out.Todos[i].Completed = !out.Todos[i].Completed
			return out, true
		}
	}
	return data, false
}

// DeleteTodo удаляет заметку
func DeleteTodo(data model.AppData, todoID string) (model.AppData, bool) {
	out := data.Clone()
	for i := range out.Todos {
		if out.Todos[i].ID == todoID {
			out.Todos = append(out.Todos[:i], out.Todos[i+1:]...)
			return out, true
		}
	}
	return data, false
}

// SortLessonsNewestFirst возвращает копию списка, отсортированную по дате и времени (новые сверху)
func SortLessonsNewestFirst(lessons []model.Lesson) []model.Lesson {
	sorted := make([]model.Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt().After(sorted[j].StartsAt())
	})
	return sorted
}
