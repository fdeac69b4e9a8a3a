package model

import (
	"fmt"
	"strings"
)

type PracticeProblem struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

// AILessonPlan план урока, созданный AI. Сохраняется внутри Lesson.
type AILessonPlan struct {
	Objective        string            `json:"objective"`
	KeyConcepts      []string          `json:"keyConcepts"`
	PracticeProblems []PracticeProblem `json:"practiceProblems"`
	HomeworkIdeas    []string          `json:"homeworkIdeas"`
}

type QuizQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedQuiz не сохраняется, живёт только в экране который его создал
type GeneratedQuiz struct {
	Topic     string         `json:"topic"`
	Level     string         `json:"level"`
	Questions []QuizQuestion `json:"questions"`
}

// Text возвращает текст для копирования: вопросы и ключ ответов
func (q *GeneratedQuiz) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "KONU: %s (%s)\n\nSORULAR:\n", q.Topic, q.Level)
	for i, question := range q.Questions {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, question.Question)
	}
	sb.WriteString("\n-------------------\nCEVAP ANAHTARI:\n")
	for i, question := range q.Questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, question.Answer)
	}
	return sb.String()
}
