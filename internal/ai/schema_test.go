package ai

import (
	"testing"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestSchemaToJSONSchema(t *testing.T) {
	def := lessonPlanSchema.toJSONSchema()

	assert.Equal(t, jsonschema.Object, def.Type)
	assert.ElementsMatch(t, []string{"objective", "keyConcepts", "practiceProblems", "homeworkIdeas"}, def.Required)

	problems := def.Properties["practiceProblems"]
	assert.Equal(t, jsonschema.Array, problems.Type)
	require.NotNil(t, problems.Items)
	assert.Equal(t, jsonschema.Object, problems.Items.Type)
	assert.Equal(t, jsonschema.String, problems.Items.Properties["solution"].Type)
}

func TestSchemaToGenaiSchema(t *testing.T) {
	s := quizSchema.toGenaiSchema()

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"topic", "level", "questions"}, s.PropertyOrdering)

	questions := s.Properties["questions"]
	require.NotNil(t, questions)
	assert.Equal(t, genai.TypeArray, questions.Type)
	require.NotNil(t, questions.Items)
	assert.Equal(t, genai.TypeString, questions.Items.Properties["answer"].Type)
}

func TestGeminiGenerateConfig(t *testing.T) {
	cfg := generateConfig(Request{SystemPrompt: "sys", Schema: quizSchema, Temperature: 0.8, MaxTokens: 2048})

	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.Equal(t, int32(2048), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.8, *cfg.Temperature, 1e-6)
	require.NotNil(t, cfg.ResponseSchema)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "sys", cfg.SystemInstruction.Parts[0].Text)
}
