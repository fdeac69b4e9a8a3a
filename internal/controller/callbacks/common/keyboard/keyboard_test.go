package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                 string
		items, page, perPage int
		want                 Page
	}{
		{"empty", 0, 0, 5, Page{Number: 0, Total: 1, Start: 0, End: 0}},
		{"first", 12, 0, 5, Page{Number: 0, Total: 3, Start: 0, End: 5}},
		{"last partial", 12, 2, 5, Page{Number: 2, Total: 3, Start: 10, End: 12}},
		{"past end", 12, 9, 5, Page{Number: 2, Total: 3, Start: 10, End: 12}},
		{"negative", 12, -1, 5, Page{Number: 0, Total: 3, Start: 0, End: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.items, tt.page, tt.perPage))
		})
	}
}

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("p:", 0, 1))

	middle := PaginationButtons("p:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "p:0", middle[0].CallbackData)
	assert.Equal(t, "📄 2/3", middle[1].Text)
	assert.Equal(t, "p:2", middle[2].CallbackData)

	first := PaginationButtons("p:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, "noop", first[0].CallbackData)
}

func TestBuilderGrid(t *testing.T) {
	kb := NewBuilder().Grid(2,
		Button("a", "1"), Button("b", "2"), Button("c", "3"),
	).Build()

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
}
