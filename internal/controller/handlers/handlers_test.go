package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  model.StudentLevel
		ok    bool
	}{
		{"Lise", model.LevelHighSchool, true},
		{"lise", model.LevelHighSchool, true},
		{"1", model.LevelElementary, true},
		{"4", model.LevelCollege, true},
		{"5", "", false},
		{"Anaokulu", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseLevel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateMatchers(t *testing.T) {
	text := &models.Update{Message: &models.Message{Text: "Cebir"}}
	command := &models.Update{Message: &models.Message{Text: "/panel"}}
	doc := &models.Update{Message: &models.Message{Document: &models.Document{FileName: "yedek.json"}}}

	assert.True(t, IsDialogText(text))
	assert.False(t, IsDialogText(command))
	assert.False(t, IsDialogText(doc))

	assert.True(t, IsDocument(doc))
	assert.False(t, IsDocument(text))
	assert.False(t, IsDocument(&models.Update{}))
}

func TestSenderID(t *testing.T) {
	id, ok := senderID(&models.Update{Message: &models.Message{From: &models.User{ID: 7}}})
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	id, ok = senderID(&models.Update{CallbackQuery: &models.CallbackQuery{From: models.User{ID: 9}}})
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok = senderID(&models.Update{})
	assert.False(t, ok)
}

func TestHTTPDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"students":[],"lessons":[]}`))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := NewHandlers(nil, nil, 0, zap.NewNop())
	ctx := context.Background()

	body, err := h.httpDownload(ctx, srv.URL+"/ok", 1024)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lessons"`)

	_, err = h.httpDownload(ctx, srv.URL+"/big", 16)
	assert.Error(t, err)

	_, err = h.httpDownload(ctx, srv.URL+"/missing", 1024)
	assert.Error(t, err)
}
