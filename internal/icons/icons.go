package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs used in status labels for the current style.
type Icons struct {
	Shuffle string
	Loop    string
	Music   string
}

var (
	nerdIcons = Icons{
		Shuffle: "󰒟", // nf-md-shuffle
		Loop:    "󰑖", // nf-md-repeat
		Music:   "\uf001", // nf-fa-music
	}

	unicodeIcons = Icons{
		Shuffle: "🔀",
		Loop:    "🔁",
		Music:   "🎵",
	}

	noneIcons = Icons{
		Shuffle: "[S]",
		Loop:    "[L]",
		Music:   "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// Loop returns the loop icon.
func Loop() string {
	return current.Loop
}

// FormatTitle prefixes a track title with the music icon, if any.
func FormatTitle(name string) string {
	if current.Music == "" {
		return name
	}
	return current.Music + " " + name
}
