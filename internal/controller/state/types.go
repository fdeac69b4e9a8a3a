package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Вход
	StateCreatePassphrase UserState = "create_passphrase"
	StateEnterPassphrase  UserState = "enter_passphrase"

	// Добавление ученика
	StateAddStudentName  UserState = "add_student_name"
	StateAddStudentLevel UserState = "add_student_level"
	StateAddStudentEmail UserState = "add_student_email"
	StateAddStudentPhone UserState = "add_student_phone"

	// Планирование занятия
	StateAddLessonStudent  UserState = "add_lesson_student"
	StateAddLessonTopic    UserState = "add_lesson_topic"
	StateAddLessonDate     UserState = "add_lesson_date"
	StateAddLessonTime     UserState = "add_lesson_time"
	StateAddLessonDuration UserState = "add_lesson_duration"
	StateAddLessonPrice    UserState = "add_lesson_price"

	StateEditLessonNotes UserState = "edit_lesson_notes"

	// Заметки на панели
	StateAddTodo UserState = "add_todo"

	// Генерация теста
	StateQuizTopic UserState = "quiz_topic"

	// Восстановление из резервной копии
	StateAwaitImportFile UserState = "await_import_file"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
