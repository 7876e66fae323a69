//go:build linux

package notify

import "github.com/godbus/dbus/v5"

const (
	appName      = "Cadence"
	desktopEntry = "cadence"
	service      = "org.freedesktop.Notifications"
	objectPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
)

// busNotifier talks to the notification daemon on the session bus.
type busNotifier struct {
	daemon dbus.BusObject
}

// New returns a Notifier on the session bus, or one that drops everything
// when the bus is unreachable.
func New() Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Discard
	}
	return &busNotifier{daemon: conn.Object(service, objectPath)}
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	var id uint32
	err := b.daemon.Call(service+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout,
	).Store(&id)
	return id, err
}

func (b *busNotifier) Close(id uint32) error {
	return b.daemon.Call(service+".CloseNotification", 0, id).Err
}
