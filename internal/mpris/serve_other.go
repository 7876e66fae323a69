//go:build !linux

package mpris

func serve(Sink) backend { return nil }
