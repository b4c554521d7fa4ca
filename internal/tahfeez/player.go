// Package tahfeez drives memorization drills over a page's meaning
// sequence. The player is a deterministic stepper: the same inputs always
// produce the same cursor movements, so drill sessions can be replayed.
package tahfeez

import (
	"github.com/mushafapp/ghareeb/internal/align"
)

// Player steps through a page's meaning sequence one word at a time. The
// cursor starts before the first item and never moves past either end.
type Player struct {
	items   []align.SequenceItem
	index   int
	playing bool
	hidden  map[int]bool
}

// NewPlayer creates a Player over a page's final meaning sequence. The
// cursor starts at no selection.
func NewPlayer(items []align.SequenceItem) *Player {
	return &Player{
		items:  items,
		index:  -1,
		hidden: map[int]bool{},
	}
}

// Len returns the number of items in the sequence.
func (p *Player) Len() int {
	return len(p.items)
}

// Playing reports whether the player is advancing.
func (p *Player) Playing() bool {
	return p.playing
}

// Play starts advancing. With no selection yet it moves to the first item.
func (p *Player) Play() {
	p.playing = true
	if p.index < 0 && len(p.items) > 0 {
		p.index = 0
	}
}

// Pause stops advancing without moving the cursor.
func (p *Player) Pause() {
	p.playing = false
}

// Next moves the cursor one item forward and returns the selected item.
// At the last item it stays put and pauses.
func (p *Player) Next() (align.SequenceItem, bool) {
	if len(p.items) == 0 {
		return align.SequenceItem{}, false
	}
	if p.index+1 >= len(p.items) {
		p.playing = false
		return p.items[p.index], false
	}
	p.index++
	return p.items[p.index], true
}

// Prev moves the cursor one item back. At the first item it stays put.
func (p *Player) Prev() (align.SequenceItem, bool) {
	if len(p.items) == 0 || p.index < 0 {
		return align.SequenceItem{}, false
	}
	if p.index == 0 {
		return p.items[0], false
	}
	p.index--
	return p.items[p.index], true
}

// JumpTo selects an item directly. Out-of-range indexes are ignored.
func (p *Player) JumpTo(index int) (align.SequenceItem, bool) {
	if index < 0 || index >= len(p.items) {
		return align.SequenceItem{}, false
	}
	p.index = index
	return p.items[p.index], true
}

// Index returns the cursor position, -1 when nothing is selected.
func (p *Player) Index() int {
	if p.index < 0 || p.index >= len(p.items) {
		return -1
	}
	return p.index
}

// Current returns the selected item, or false when nothing is selected.
func (p *Player) Current() (align.SequenceItem, bool) {
	if p.index < 0 || p.index >= len(p.items) {
		return align.SequenceItem{}, false
	}
	return p.items[p.index], true
}

// Reset returns the player to its initial state with no selection and every
// meaning visible. Used when the reader moves to another page.
func (p *Player) Reset(items []align.SequenceItem) {
	p.items = items
	p.index = -1
	p.playing = false
	p.hidden = map[int]bool{}
}

// Hide masks an item's meaning for drill mode.
func (p *Player) Hide(index int) {
	if index >= 0 && index < len(p.items) {
		p.hidden[index] = true
	}
}

// Reveal unmasks an item's meaning.
func (p *Player) Reveal(index int) {
	delete(p.hidden, index)
}

// Hidden reports whether an item's meaning is masked.
func (p *Player) Hidden(index int) bool {
	return p.hidden[index]
}

// HideAll masks every meaning, the usual starting point of a drill.
func (p *Player) HideAll() {
	for i := range p.items {
		p.hidden[i] = true
	}
}
