// internal/app/view.go
package app

import "github.com/llehouerou/cadence/internal/ui/canvas"

// View draws the active screen onto a fresh canvas.
func (m Model) View() string {
	if m.Quitting || m.Width == 0 || m.Height == 0 {
		return ""
	}

	c := canvas.New(m.Width, m.Height)
	if m.Screen == ScreenPlayer {
		c.Fill(m.opts.Colours.Background)
	} else {
		c.Fill(m.opts.Colours.SetupBackground)
	}
	m.activeWidgets().Draw(c)
	return c.Render()
}
