package widget

import tea "github.com/charmbracelet/bubbletea"

// FromTea translates a bubbletea input message into an Event. Messages that
// widgets don't consume (wheel, right button, window size...) return false.
func FromTea(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := Event{Kind: EventKey, Key: msg.String(), Paste: msg.Paste}
		switch msg.Type {
		case tea.KeyRunes:
			ev.Runes = msg.Runes
		case tea.KeySpace:
			ev.Runes = []rune{' '}
		}
		return ev, true

	case tea.MouseMsg:
		ev := Event{X: msg.X, Y: msg.Y}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				return Event{}, false
			}
			ev.Kind = EventMouseDown
		case tea.MouseActionRelease:
			ev.Kind = EventMouseUp
		case tea.MouseActionMotion:
			ev.Kind = EventMouseMotion
		default:
			return Event{}, false
		}
		return ev, true
	}
	return Event{}, false
}

// Track returns the pointer state after ev.
func (p Pointer) Track(ev Event) Pointer {
	switch ev.Kind {
	case EventMouseDown:
		return Pointer{X: ev.X, Y: ev.Y, Held: true}
	case EventMouseUp:
		return Pointer{X: ev.X, Y: ev.Y}
	case EventMouseMotion:
		p.X, p.Y = ev.X, ev.Y
	}
	return p
}
