// Package errmsg turns operation failures into the one-line messages shown
// in error labels and printed on fatal exit.
package errmsg

import "fmt"

// Op names an operation that can fail, phrased to follow "Failed to".
type Op string

const (
	OpPlaylistLoad  Op = "load playlist"
	OpPlaybackStart Op = "start playback"
	OpTrackChange   Op = "change track"

	OpConfigLoad  Op = "load config"
	OpSessionLoad Op = "load session"
	OpSessionSave Op = "save session"
	OpCacheOpen   Op = "open library cache"
	OpIconsLoad   Op = "load icons"
)

// Error is a failed operation. Context names the file or folder involved
// and may be empty.
type Error struct {
	Op      Op
	Context string
	Err     error
}

func (e *Error) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err as an *Error for op, or nil when err is nil.
func Wrap(op Op, err error) error {
	return WrapWith(op, "", err)
}

// WrapWith is Wrap with a context.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Context: context, Err: err}
}

// Format returns the message for err, or "" when err is nil.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with a context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	return WrapWith(op, context, err).Error()
}
