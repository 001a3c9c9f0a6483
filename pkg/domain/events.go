package domain

import (
	"context"
	"time"
)

// TriggerKind tags entries of a reaction trigger chain.
type TriggerKind int

const (
	// TriggerUndefined entries carry data for other consumers and are skipped
	// during playback.
	TriggerUndefined TriggerKind = iota
	// TriggerRelease entries request a release from Site.
	TriggerRelease
)

// Trigger is one record of the chain that caused a delayed release.
type Trigger struct {
	Kind TriggerKind
	Site *ReleaseSite
}

// ReleaseEvent is a snapshot of a pending release request.
type ReleaseEvent struct {
	EventTime     float64
	TrainTime     float64
	TrainHighTime float64
	// Site is the release site to fire; playback overwrites it for every
	// release-tagged trigger.
	Site *ReleaseSite
}

// TransportEvent describes one particle materialised in a destination partition.
type TransportEvent struct {
	Molecule *Molecule
	Target   *Subvolume
	From     int
	To       int
}

// PlaybackEvent summarises one end-of-step queue playback.
type PlaybackEvent struct {
	Partition   string
	Releases    int
	Transported int
	Pages       int
	Duration    time.Duration
}

// LifecycleHooks defines callbacks for playback observability.
type LifecycleHooks struct {
	OnRelease        func(context.Context, *ReleaseEvent)
	OnReleaseFailure func(context.Context, *ReleaseEvent, error)
	OnTransport      func(context.Context, *TransportEvent)
	OnPlayback       func(context.Context, *PlaybackEvent)
}
