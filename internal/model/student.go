package model

// StudentLevel уровень обучения ученика (значения совпадают с сохранёнными данными)
type StudentLevel string

const (
	LevelElementary   StudentLevel = "İlkokul"
	LevelMiddleSchool StudentLevel = "Ortaokul"
	LevelHighSchool   StudentLevel = "Lise"
	LevelCollege      StudentLevel = "Üniversite"
)

// StudentLevels возвращает все уровни в порядке отображения
func StudentLevels() []StudentLevel {
	return []StudentLevel{LevelElementary, LevelMiddleSchool, LevelHighSchool, LevelCollege}
}

// Valid проверяет что уровень входит в перечисление
func (l StudentLevel) Valid() bool {
	for _, level := range StudentLevels() {
		if l == level {
			return true
		}
	}
	return false
}

type Student struct {
	ID    string       `json:"id" validate:"required"`
	Name  string       `json:"name" validate:"required,max=100"`
	Email string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone string       `json:"phone,omitempty" validate:"omitempty,max=32"`
	Level StudentLevel `json:"level" validate:"student_level"`
	Notes string       `json:"notes,omitempty"`
}
