package handlers

// Ограничения ввода
const (
	// Максимальный размер файла резервной копии
	MaxImportFileSize = 5 << 20

	// Длина текста заметки и заметки к занятию
	TodoMaxLength  = 500
	NotesMaxLength = 1000

	// Длительность занятия, минуты
	LessonMinDuration = 15
	LessonMaxDuration = 600

	QuizTopicMaxLength = 200
)
