package tahfeez

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/align"
	"github.com/mushafapp/ghareeb/internal/glossary"
)

func sequenceOf(keys ...string) []align.SequenceItem {
	items := make([]align.SequenceItem, 0, len(keys))
	for i, key := range keys {
		items = append(items, align.SequenceItem{
			Entry: glossary.Entry{UniqueKey: key},
			Line:  i,
			Token: 0,
		})
	}
	return items
}

func TestPlayer_Stepping(t *testing.T) {
	player := NewPlayer(sequenceOf("a", "b", "c"))

	_, ok := player.Current()
	assert.False(t, ok, "no selection before Play")

	player.Play()
	assert.True(t, player.Playing())
	current, ok := player.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current.Entry.UniqueKey)

	item, moved := player.Next()
	assert.True(t, moved)
	assert.Equal(t, "b", item.Entry.UniqueKey)

	item, moved = player.Next()
	assert.True(t, moved)
	assert.Equal(t, "c", item.Entry.UniqueKey)

	// At the end the cursor holds and playback pauses.
	item, moved = player.Next()
	assert.False(t, moved)
	assert.Equal(t, "c", item.Entry.UniqueKey)
	assert.False(t, player.Playing())

	item, moved = player.Prev()
	assert.True(t, moved)
	assert.Equal(t, "b", item.Entry.UniqueKey)

	item, moved = player.Prev()
	assert.True(t, moved)
	assert.Equal(t, "a", item.Entry.UniqueKey)

	item, moved = player.Prev()
	assert.False(t, moved)
	assert.Equal(t, "a", item.Entry.UniqueKey)
}

func TestPlayer_JumpTo(t *testing.T) {
	player := NewPlayer(sequenceOf("a", "b", "c"))

	item, ok := player.JumpTo(2)
	require.True(t, ok)
	assert.Equal(t, "c", item.Entry.UniqueKey)

	_, ok = player.JumpTo(3)
	assert.False(t, ok)
	current, ok := player.Current()
	require.True(t, ok)
	assert.Equal(t, "c", current.Entry.UniqueKey, "failed jump leaves the cursor alone")

	_, ok = player.JumpTo(-1)
	assert.False(t, ok)
}

func TestPlayer_EmptySequence(t *testing.T) {
	player := NewPlayer(nil)

	player.Play()
	_, ok := player.Current()
	assert.False(t, ok)
	_, moved := player.Next()
	assert.False(t, moved)
	_, moved = player.Prev()
	assert.False(t, moved)
	assert.Equal(t, 0, player.Len())
}

func TestPlayer_HideMask(t *testing.T) {
	player := NewPlayer(sequenceOf("a", "b", "c"))

	player.HideAll()
	assert.True(t, player.Hidden(0))
	assert.True(t, player.Hidden(2))

	player.Reveal(1)
	assert.False(t, player.Hidden(1))
	assert.True(t, player.Hidden(0))

	player.Hide(1)
	assert.True(t, player.Hidden(1))

	player.Hide(99)
	assert.False(t, player.Hidden(99))
}

func TestPlayer_Reset(t *testing.T) {
	player := NewPlayer(sequenceOf("a", "b"))
	player.Play()
	player.HideAll()
	_, _ = player.Next()

	player.Reset(sequenceOf("x", "y", "z"))
	assert.Equal(t, 3, player.Len())
	assert.False(t, player.Playing())
	_, ok := player.Current()
	assert.False(t, ok)
	assert.False(t, player.Hidden(0))
}
