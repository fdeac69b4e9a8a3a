package state

import (
	"sync"
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/callbacktypes"
	"github.com/stretchr/testify/assert"
)

func TestManagerStateAndData(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Nil(t, sm.GetAllData(1))

	sm.SetState(1, StateAddStudentName)
	sm.SetData(1, "name", "Ali")
	sm.SetState(1, StateAddStudentLevel)

	assert.Equal(t, StateAddStudentLevel, sm.GetState(1))
	assert.Equal(t, "Ali", sm.GetString(1, "name"))

	// данные переживают переход в StateNone, пока их не очистили
	sm.SetState(1, StateNone)
	assert.Equal(t, "Ali", sm.GetString(1, "name"))

	sm.SetData(1, "count", 5)
	assert.Equal(t, "", sm.GetString(1, "count"))

	sm.DeleteData(1, "name")
	_, ok := sm.GetData(1, "name")
	assert.False(t, ok)

	sm.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Nil(t, sm.GetAllData(1))
}

func TestManagerIsolatesUsers(t *testing.T) {
	sm := NewManager()
	sm.SetState(1, StateQuizTopic)
	sm.SetData(2, "k", "v")

	assert.Equal(t, StateQuizTopic, sm.GetState(1))
	assert.Equal(t, StateNone, sm.GetState(2))
	assert.Equal(t, "", sm.GetString(1, "k"))
}

func TestGetAllDataReturnsCopy(t *testing.T) {
	sm := NewManager()
	sm.SetData(1, "k", "v")

	data := sm.GetAllData(1)
	data["k"] = "changed"

	assert.Equal(t, "v", sm.GetString(1, "k"))
}

func TestAdapterSatisfiesStateManager(t *testing.T) {
	var sm callbacktypes.StateManager = NewAdapter(NewManager())

	sm.SetState(7, callbacktypes.UserState(StateAddTodo))
	assert.Equal(t, callbacktypes.UserState(StateAddTodo), sm.GetState(7))
}

func TestManagerConcurrentAccess(t *testing.T) {
	sm := NewManager()
	var wg sync.WaitGroup
	for i := int64(0); i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.SetState(id, StateAddLessonTopic)
			sm.SetData(id, "topic", "Limit")
			_ = sm.GetAllData(id)
			sm.ClearState(id)
		}(i)
	}
	wg.Wait()
}
