package quiz

import (
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/state"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestQuizRequestTracking(t *testing.T) {
	const user = int64(42)

	t.Run("current request", func(t *testing.T) {
		sm := state.NewAdapter(state.NewManager())
		token := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		assert.True(t, isCurrentRequest(sm, user, token))
	})

	t.Run("cancelled dialog", func(t *testing.T) {
		sm := state.NewAdapter(state.NewManager())
		token := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		sm.ClearState(user)
		assert.False(t, isCurrentRequest(sm, user, token))
	})

	t.Run("same topic, other settings", func(t *testing.T) {
		sm := state.NewAdapter(state.NewManager())
		first := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		second := beginRequest(sm, user, "Kesirler", model.LevelHighSchool, 10)
		assert.False(t, isCurrentRequest(sm, user, first))
		assert.True(t, isCurrentRequest(sm, user, second))
	})

	t.Run("identical repeat", func(t *testing.T) {
		sm := state.NewAdapter(state.NewManager())
		first := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		second := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		assert.NotEqual(t, first, second)
		assert.False(t, isCurrentRequest(sm, user, first))
	})

	t.Run("other user", func(t *testing.T) {
		sm := state.NewAdapter(state.NewManager())
		token := beginRequest(sm, user, "Kesirler", model.LevelMiddleSchool, 5)
		beginRequest(sm, 7, "Kesirler", model.LevelMiddleSchool, 5)
		assert.True(t, isCurrentRequest(sm, user, token))
	})
}
