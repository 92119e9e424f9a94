// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

package roomui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typetome/teletype/lib/room"
	"github.com/typetome/teletype/lib/wire"
)

// errorDwell is how long a fatal error stays on screen before the
// program exits, so the user can read it before the alternate screen
// is torn down.
const errorDwell = 2 * time.Second

// Sender is the outbound half of the session: a non-blocking enqueue
// of one wire event. Send reports false when the event was dropped
// because the queue is full.
type Sender interface {
	Send(event wire.Event) bool
}

// eventMsg wraps an inbound wire event for delivery through the
// bubbletea message loop.
type eventMsg struct {
	event wire.Event
}

// errorDwellMsg fires when a fatal error has been on screen long
// enough and the program should quit.
type errorDwellMsg struct{}

// Model is the bubbletea model for a Teletype room. It exclusively
// owns the room state and the local cursor; the session goroutine
// only ever touches the two channels.
type Model struct {
	state  *room.State
	cursor int // rune offset into the self buffer's current line

	events <-chan wire.Event
	sender Sender
	logger *slog.Logger

	theme Theme
	keys  KeyMap

	width  int
	height int
	ready  bool

	errorMessage string
	quitting     bool
}

// NewModel creates a room model consuming inbound events from events
// and enqueueing local keystrokes on sender. logger may be nil.
func NewModel(events <-chan wire.Event, sender Sender, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		state:  room.NewState(),
		events: events,
		sender: sender,
		logger: logger,
		theme:  DefaultTheme,
		keys:   DefaultKeyMap,
	}
}

func (model Model) Init() tea.Cmd {
	return listenForEvent(model.events)
}

// listenForEvent returns a tea.Cmd that blocks until the session
// delivers an event, then re-arms from Update. A closed channel
// delivers nothing; the error event that precedes the close has
// already put the model on its exit path.
func listenForEvent(events <-chan wire.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: event}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			model.quitting = true
			return model, tea.Quit
		}
		if model.errorMessage != "" || !model.state.Ready() {
			// Nothing to type into yet (or anymore).
			return model, nil
		}
		model.handleTyping(message)
		return model, nil

	case eventMsg:
		return model.handleEvent(message.event)

	case errorDwellMsg:
		model.quitting = true
		return model, tea.Quit

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
	}
	return model, nil
}

// handleEvent applies one inbound event. Fatal events switch to the
// error view and schedule the quit; everything else mutates room
// state and re-arms the listener.
func (model Model) handleEvent(event wire.Event) (tea.Model, tea.Cmd) {
	switch event.Type {
	case wire.TypeError:
		model.errorMessage = "Network error: " + event.Message
		return model, tea.Tick(errorDwell, func(time.Time) tea.Msg {
			return errorDwellMsg{}
		})

	case wire.TypeRoomCrowded:
		message := event.Message
		if message == "" {
			message = "Room is full."
		}
		model.errorMessage = message
		return model, tea.Tick(errorDwell, func(time.Time) tea.Msg {
			return errorDwellMsg{}
		})
	}

	model.state.Apply(event)

	// A snapshot can replace the line under the local cursor (the
	// server re-sends the full room when participants join or leave).
	// Clamp rather than chase the exact offset.
	if limit := room.RuneLen(model.state.Self().Current()); model.cursor > limit {
		model.cursor = limit
	}

	return model, listenForEvent(model.events)
}

// handleTyping translates a local key event, sends one keyPress per
// keystroke carrying the pre-mutation cursor, and applies the same
// mutation locally so echo never waits on the network.
func (model *Model) handleTyping(message tea.KeyMsg) {
	for _, pressed := range translateKey(message) {
		before := model.cursor
		model.sender.Send(wire.KeyPress(pressed, before))
		model.applyLocal(pressed, before)
	}
}

// applyLocal mirrors one keystroke into the self buffer and moves the
// local cursor. Content mutation goes through room.ApplyKey — the
// identical transition remote peers will replay.
func (model *Model) applyLocal(pressed wire.Key, before int) {
	buffer := model.state.Self()

	switch pressed {
	case wire.KeyEnter:
		// Commit immediately; the server broadcasts the committed
		// line to the other participants on its own.
		buffer.Commit(buffer.Current())
		model.cursor = 0
		return

	case wire.KeyCtrlA:
		model.cursor = 0
		return
	case wire.KeyCtrlE:
		model.cursor = room.RuneLen(buffer.Current())
		return
	case wire.KeyArrowLeft, wire.KeyCtrlB:
		if model.cursor > 0 {
			model.cursor--
		}
		return
	case wire.KeyArrowRight, wire.KeyCtrlF:
		if model.cursor < room.RuneLen(buffer.Current()) {
			model.cursor++
		}
		return
	case wire.KeyArrowUp, wire.KeyArrowDown, wire.KeyTab:
		return
	}

	buffer.SetCurrent(room.ApplyKey(buffer.Current(), pressed, &before))

	switch pressed {
	case wire.KeyBackspace:
		if before > 0 {
			model.cursor = before - 1
		}
	case wire.KeyDelete, wire.KeyDeleteAt, wire.KeyCtrlK:
		// Cursor stays put.
	default:
		model.cursor = before + 1
	}
}
