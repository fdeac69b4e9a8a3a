package ai

import (
	"fmt"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
)

const systemPrompt = "Sen bir uzman matematik öğretmenisin. Her zaman Türkçe konuşursun ve JSON formatında yanıt verirsin."

func lessonPlanPrompt(topic string, level model.StudentLevel, durationMinutes int) string {
	return fmt.Sprintf(`Sen bir uzman matematik öğretmenisin. Aşağıdaki kriterlere göre detaylı bir matematik ders planı oluştur:

Öğrenci Seviyesi: %s
Konu: %s
Süre: %d dakika

Lütfen SADECE JSON formatında yanıt ver (başka açıklama ekleme):

{
  "objective": "Dersin ana öğrenme hedefi",
  "keyConcepts": ["Kavram 1", "Kavram 2", "Kavram 3"],
  "practiceProblems": [
    {
      "problem": "Soru metni",
      "solution": "Detaylı çözüm"
    }
  ],
  "homeworkIdeas": ["Ödev 1", "Ödev 2", "Ödev 3"]
}

Tüm yanıt Türkçe olmalı.`, level, topic, durationMinutes)
}

func quizPrompt(topic string, level model.StudentLevel, count int) string {
	return fmt.Sprintf(`Sen bir uzman matematik öğretmenisin. Aşağıdaki kriterlere göre %[3]d adet matematik sınavı sorusu oluştur:

Konu: %[1]s
Seviye: %[2]s
Soru Sayısı: %[3]d

Lütfen SADECE JSON formatında yanıt ver (başka açıklama ekleme):

{
  "topic": %[4]q,
  "level": %[5]q,
  "questions": [
    {
      "question": "Soru metni",
      "answer": "Doğru cevap ve kısa çözüm"
    }
  ]
}

Tüm sorular ve cevaplar Türkçe olmalı. Sorular açık uçlu veya çoktan seçmeli olabilir.`, topic, level, count, topic, string(level))
}
