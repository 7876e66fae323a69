// Package notify sends desktop notifications over D-Bus.
package notify

// Urgency is the notification priority defined by the freedesktop
// notification protocol.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// DefaultTimeout lets the notification server pick the expiry.
const DefaultTimeout int32 = -1

// Notification is one desktop popup. Only Title is required.
type Notification struct {
	Title string
	Body  string
	// Icon is an image path or a themed icon name.
	Icon string
	// Timeout is in milliseconds; DefaultTimeout defers to the server and
	// 0 keeps the popup until dismissed.
	Timeout int32
	// ReplacesID updates an existing popup in place when non-zero.
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier shows and withdraws desktop notifications.
type Notifier interface {
	// Notify shows n and returns the id the server assigned to it.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Discard is a Notifier that shows nothing. Notify returns id 0.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }
func (discard) Close(uint32) error                  { return nil }

// NowPlaying builds the notification shown when a track starts. The cover
// image next to the track, if any, becomes the icon.
func NowPlaying(title, artist, trackPath string) Notification {
	return Notification{
		Title:   title,
		Body:    artist,
		Icon:    FindAlbumArt(trackPath),
		Timeout: DefaultTimeout,
		Urgency: UrgencyLow,
	}
}
