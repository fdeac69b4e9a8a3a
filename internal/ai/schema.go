package ai

import (
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema описание формы JSON-ответа; провайдеры переводят его в свой формат
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

func stringSchema(desc string) *Schema {
	return &Schema{Type: TypeString, Description: desc}
}

func arrayOf(item *Schema, desc string) *Schema {
	return &Schema{Type: TypeArray, Items: item, Description: desc}
}

var lessonPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"objective":   stringSchema("Dersin ana öğrenme hedefi"),
		"keyConcepts": arrayOf(stringSchema(""), "Anahtar kavramlar"),
		"practiceProblems": arrayOf(&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"problem":  stringSchema("Soru metni"),
				"solution": stringSchema("Detaylı çözüm"),
			},
			Required: []string{"problem", "solution"},
		}, "Alıştırma soruları"),
		"homeworkIdeas": arrayOf(stringSchema(""), "Ödev önerileri"),
	},
	Required: []string{"objective", "keyConcepts", "practiceProblems", "homeworkIdeas"},
}

var quizSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"topic": stringSchema("Konu"),
		"level": stringSchema("Seviye"),
		"questions": arrayOf(&Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"question": stringSchema("Soru metni"),
				"answer":   stringSchema("Doğru cevap ve kısa çözüm"),
			},
			Required: []string{"question", "answer"},
		}, "Sorular"),
	},
	Required: []string{"topic", "level", "questions"},
}

// toJSONSchema формат для OpenAI-совместимых API
func (s *Schema) toJSONSchema() jsonschema.Definition {
	def := jsonschema.Definition{
		Description: s.Description,
		Required:    s.Required,
	}

	switch s.Type {
	case TypeObject:
		def.Type = jsonschema.Object
		def.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			def.Properties[name] = prop.toJSONSchema()
		}
		def.AdditionalProperties = false
	case TypeArray:
		def.Type = jsonschema.Array
		if s.Items != nil {
			item := s.Items.toJSONSchema()
			def.Items = &item
		}
	default:
		def.Type = jsonschema.String
	}

	return def
}

// toGenaiSchema формат для Gemini
func (s *Schema) toGenaiSchema() *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}

	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenaiSchema()
		}
		out.PropertyOrdering = append([]string(nil), s.Required...)
	case TypeArray:
		out.Type = genai.TypeArray
		if s.Items != nil {
			out.Items = s.Items.toGenaiSchema()
		}
	default:
		out.Type = genai.TypeString
	}

	return out
}
