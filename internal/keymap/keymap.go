package keymap

// Contexts a binding applies in.
const (
	ContextGlobal = "global"
	ContextPlayer = "player"
	ContextSetup  = "setup" // only global bindings, other keys go to the text box
)

// Binding ties keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "player"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit application", ContextGlobal},

	// Player screen; the setup screen feeds these keys to its text box
	{ActionQuit, []string{"q", "esc"}, "Quit application", ContextPlayer},
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", ContextPlayer},
	{ActionNextTrack, []string{"right"}, "Next track", ContextPlayer},
	{ActionPrevTrack, []string{"left"}, "Previous track", ContextPlayer},
	{ActionToggleShuffle, []string{"f1"}, "Toggle shuffle", ContextPlayer},
	{ActionToggleLoop, []string{"f2"}, "Toggle loop", ContextPlayer},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayer},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayer},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForScreen returns the global bindings plus those of context.
func ForScreen(context string) []Binding {
	return append(ByContext(ContextGlobal), ByContext(context)...)
}
