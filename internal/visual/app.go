// Package visual provides an interactive terminal visualizer for the
// list container. It renders the live chain with its head, tail and
// size, keeps a cursor (an iterator into the chain), and maps keys to
// every mutator, including the failure paths: popping an empty list or
// inserting after the end sentinel shows the returned error in the
// status line instead of crashing.
package visual

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/slink/slist"
)

// App is the visualizer state: one list, one cursor into it, and the
// screen it renders to.
type App struct {
	screen  tcell.Screen
	list    *slist.List[int64]
	cursor  slist.Iterator[int64]
	status  string
	next    int64  // auto-incrementing push value
	pending string // digit-typed value, overrides next
}

// New creates an App on a real terminal screen.
func New() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates an App on the given screen. Tests pass a tcell
// simulation screen.
func NewWithScreen(screen tcell.Screen) *App {
	l := slist.New[int64]()
	return &App{
		screen: screen,
		list:   l,
		cursor: l.End(),
		status: "empty list; press f or b to push",
		next:   1,
	}
}

// Run initializes the screen and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	for {
		a.render()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}

// value consumes the pending typed value, falling back to the
// auto-incrementing counter.
func (a *App) value() int64 {
	if a.pending != "" {
		v, err := strconv.ParseInt(a.pending, 10, 64)
		a.pending = ""
		if err == nil {
			return v
		}
	}
	v := a.next
	a.next++
	return v
}

// cursorAtFront reports whether the cursor references the head node.
func (a *App) cursorAtFront() bool {
	return a.cursor.Valid() && a.cursor == a.list.Begin()
}

// cursorAtBack reports whether the cursor references the tail node.
func (a *App) cursorAtBack() bool {
	return a.cursor.Valid() && a.cursor.Next() == a.list.End()
}

// handleKey applies one key press. Returns false to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		a.advanceCursor()
		return true
	case tcell.KeyHome:
		a.cursor = a.list.Begin()
		a.status = "cursor at front"
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		a.pending += string(r)
		a.status = "pending value: " + a.pending
		return true
	}

	switch r {
	case 'q':
		return false
	case 'l':
		a.advanceCursor()
	case 'g':
		a.cursor = a.list.Begin()
		a.status = "cursor at front"

	case 'f':
		v := a.value()
		a.list.PushFront(v)
		a.status = fmt.Sprintf("PushFront(%d)", v)
	case 'b':
		v := a.value()
		a.list.PushBack(v)
		a.status = fmt.Sprintf("PushBack(%d)", v)

	case 'F':
		wasCursor := a.cursorAtFront()
		v, err := a.list.PopFront()
		if err != nil {
			a.status = "PopFront: " + err.Error()
			break
		}
		if wasCursor {
			a.cursor = a.list.Begin() // old node is gone
		}
		a.status = fmt.Sprintf("PopFront() = %d", v)
	case 'B':
		wasCursor := a.cursorAtBack()
		v, err := a.list.PopBack()
		if err != nil {
			a.status = "PopBack: " + err.Error()
			break
		}
		if wasCursor {
			a.cursor = a.list.Begin()
		}
		a.status = fmt.Sprintf("PopBack() = %d", v)

	case 'i':
		v := a.value()
		it, err := a.list.InsertAfter(a.cursor, v)
		if err != nil {
			a.status = fmt.Sprintf("InsertAfter(%d): %v", v, err)
			break
		}
		a.cursor = it // follow the returned iterator
		a.status = fmt.Sprintf("InsertAfter(%d)", v)
	case 'e':
		if _, err := a.list.EraseAfter(a.cursor); err != nil {
			a.status = "EraseAfter: " + err.Error()
			break
		}
		a.status = "EraseAfter()"

	case 'r':
		a.list.Reverse()
		a.status = "Reverse()"
	case 'c':
		a.list.Clear()
		a.cursor = a.list.End()
		a.status = "Clear()"
	}
	return true
}

// advanceCursor steps the cursor forward, wrapping from the end
// sentinel back to the front.
func (a *App) advanceCursor() {
	if !a.cursor.Valid() {
		a.cursor = a.list.Begin()
	} else {
		a.cursor = a.cursor.Next()
	}
	if a.cursor.Valid() {
		a.status = fmt.Sprintf("cursor at %d", a.cursor.Value())
	} else {
		a.status = "cursor at end sentinel"
	}
}

func (a *App) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// render redraws the whole screen: title, chain, status and key help.
func (a *App) render() {
	a.screen.Clear()

	base := tcell.StyleDefault
	bold := base.Bold(true)
	hot := base.Reverse(true)

	title := "slink list visualizer"
	a.drawText(0, 0, bold, title)

	info := fmt.Sprintf("size=%d", a.list.Len())
	if front, err := a.list.Front(); err == nil {
		back, _ := a.list.Back()
		info += fmt.Sprintf("  front=%d  back=%d", *front, *back)
	}
	a.drawText(len(title)+4, 0, base, info)

	// The chain itself: head -> [v] -> ... -> nil, cursor cell
	// highlighted, with a marker underneath.
	x := a.drawText(0, 2, base, "head -> ")
	cursorX := -1
	for it := a.list.Begin(); it != a.list.End(); it = it.Next() {
		style := base
		if it == a.cursor {
			style = hot
			cursorX = x
		}
		x = a.drawText(x, 2, style, fmt.Sprintf("[%d]", it.Value()))
		x = a.drawText(x, 2, base, " -> ")
	}
	a.drawText(x, 2, base, "nil")
	if cursorX >= 0 {
		a.drawText(cursorX, 3, base, "^cursor")
	} else {
		a.drawText(x, 3, base, "^cursor (end sentinel)")
	}

	a.drawText(0, 5, base, "status: "+a.status)
	if a.pending != "" {
		a.drawText(0, 6, base, "pending value: "+a.pending)
	}

	a.drawText(0, 8, base,
		"keys: f/b push front/back  F/B pop  i insert-after  e erase-after")
	a.drawText(0, 9, base,
		"      r reverse  c clear  l/right cursor  g front  0-9 value  q quit")

	a.screen.Show()
}
