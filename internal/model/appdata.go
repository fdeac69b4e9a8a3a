package model

// AppData корневой агрегат: единица сохранения и импорта/экспорта
type AppData struct {
	Students []Student  `json:"students"`
	Lessons  []Lesson   `json:"lessons"`
	Todos    []TodoItem `json:"todos"`
}

// Clone возвращает глубокую копию агрегата
func (d AppData) Clone() AppData {
	out := AppData{
		Students: make([]Student, len(d.Students)),
		Lessons:  make([]Lesson, len(d.Lessons)),
		Todos:    make([]TodoItem, len(d.Todos)),
	}
	copy(out.Students, d.Students)
	copy(out.Todos, d.Todos)
	for i, lesson := range d.Lessons {
		if lesson.AIGeneratedPlan != nil {
			lesson.AIGeneratedPlan = lesson.AIGeneratedPlan.clone()
		}
		out.Lessons[i] = lesson
	}
	return out
}

// Normalize заменяет nil-списки пустыми, чтобы JSON всегда содержал массивы
func (d *AppData) Normalize() {
	if d.Students == nil {
		d.Students = []Student{}
	}
	if d.Lessons == nil {
		d.Lessons = []Lesson{}
	}
	if d.Todos == nil {
		d.Todos = []TodoItem{}
	}
}

func (p *AILessonPlan) clone() *AILessonPlan {
	c := &AILessonPlan{Objective: p.Objective}
	c.KeyConcepts = append([]string(nil), p.KeyConcepts...)
	c.PracticeProblems = append([]PracticeProblem(nil), p.PracticeProblems...)
	c.HomeworkIdeas = append([]string(nil), p.HomeworkIdeas...)
	return c
}
