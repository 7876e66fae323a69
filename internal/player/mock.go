package player

import (
	"errors"
	"time"
)

// Mock is an in-memory Interface for tests. Position only moves through
// SetPosition.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	durations  map[string]time.Duration
	volume     int
	failPaths  map[string]bool
	playCalls  []string
	finishedCh chan struct{}
}

// ErrMockPlay is returned by Play for paths registered with FailPath.
var ErrMockPlay = errors.New("mock: play failed")

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     100,
		durations:  make(map[string]time.Duration),
		failPaths:  make(map[string]bool),
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.failPaths[path] {
		return ErrMockPlay
	}
	m.state = Playing
	m.position = 0
	if d, ok := m.durations[path]; ok {
		m.duration = d
	}
	return nil
}

func (m *Mock) Stop() { m.state = Stopped }

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(pct int) { m.volume = max(0, min(pct, 100)) }

// Volume returns the last volume set, in percent.
func (m *Mock) Volume() int { return m.volume }

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

// FailPath makes Play fail for path only.
func (m *Mock) FailPath(path string) { m.failPaths[path] = true }

func (m *Mock) PlayCalls() []string { return m.playCalls }

// SetTrackDuration sets the duration reported after path is played.
func (m *Mock) SetTrackDuration(path string, d time.Duration) { m.durations[path] = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished signals FinishedChan as the end of a stream would.
func (m *Mock) SimulateFinished() {
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}
