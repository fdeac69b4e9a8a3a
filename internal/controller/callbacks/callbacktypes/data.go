package callbacktypes

// Форматы callback data. Константы с двоеточием на конце принимают аргумент.

const (
	Noop       = "noop"
	BackToMain = "back_to_main"
	Cancel     = "cancel_dialog"
	Logout     = "logout"
)

// Разделы
const (
	NavDashboard = "nav_dashboard"
	NavStudents  = "nav_students"
	NavLessons   = "nav_lessons"
	NavPlanner   = "nav_planner"
	NavQuiz      = "nav_quiz"
	NavBackup    = "nav_backup"
	NavTodos     = "nav_todos"
)

// Панель: график, заметки
const (
	DashboardChart = "dashboard_chart"

	TodoAdd    = "todo_add"
	TodoToggle = "todo_toggle:" // todo_toggle:todo_id
	TodoDelete = "todo_delete:" // todo_delete:todo_id
)

// Резервные копии
const (
	BackupExport        = "backup_export"
	BackupExportXLSX    = "backup_xlsx"
	BackupImport        = "backup_import"
	BackupImportConfirm = "backup_import_yes"
	BackupImportCancel  = "backup_import_no"
)

// Ученики
const (
	StudentsPage         = "students_page:"      // students_page:0
	StudentView          = "student:"            // student:student_id
	StudentAdd           = "student_add"
	StudentLevel         = "student_level:"      // student_level:2, индекс в model.StudentLevels
	StudentSkip          = "student_skip"        // пропустить необязательное поле
	StudentDelete        = "student_delete:"     // student_delete:student_id
	StudentDeleteConfirm = "student_delete_yes:" // student_delete_yes:student_id
	StudentNewLesson     = "student_new_lesson:" // student_new_lesson:student_id
)

// Занятия
const (
	LessonsPage        = "lessons_page:"   // lessons_page:0
	LessonView         = "lesson:"         // lesson:lesson_id
	LessonAdd          = "lesson_add"
	LessonPickStudent  = "lesson_student:" // lesson_student:student_id
	LessonDateToday    = "lesson_date_today"
	LessonTimeDefault  = "lesson_time_default"
	LessonDuration     = "lesson_duration:" // lesson_duration:60
	LessonPriceDefault = "lesson_price_default"
	LessonStatus       = "lesson_status:"  // lesson_status:lesson_id
	LessonPayment      = "lesson_payment:" // lesson_payment:lesson_id
	LessonNotes        = "lesson_notes:"   // lesson_notes:lesson_id
	LessonPlan         = "lesson_plan:"    // lesson_plan:lesson_id
)

// AI-планировщик
const (
	PlannerPage     = "planner_page:"  // planner_page:0
	PlannerGenerate = "plan_generate:" // plan_generate:lesson_id
	PlannerSave     = "plan_save:"     // plan_save:lesson_id
)

// Генератор тестов
const (
	QuizLevel = "quiz_level:" // quiz_level:2
	QuizCount = "quiz_count:" // quiz_count:5
	QuizCopy  = "quiz_copy"
	QuizAgain = "quiz_again"
)

// Ключи временных данных диалогов
const (
	DataStudentName  = "student_name"
	DataStudentLevel = "student_level"
	DataStudentEmail = "student_email"

	DataLessonStudent  = "lesson_student"
	DataLessonTopic    = "lesson_topic"
	DataLessonDate     = "lesson_date"
	DataLessonTime     = "lesson_time"
	DataLessonDuration = "lesson_duration"
	DataLessonID       = "lesson_id"

	DataQuizTopic = "quiz_topic"
	DataQuizLevel = "quiz_level"
	DataQuiz      = "quiz"

	// DataQuizRequest токен текущей генерации теста
	DataQuizRequest = "quiz_request"

	DataPlanPrefix = "plan:" // plan:lesson_id -> *model.AILessonPlan

	DataImport = "import_data"
)
