// Package audio plays the game's music and sound effects.
//
// A Device is a fallible backend: every call may fail, for example when no
// sound card is present or a track is not in the bank. The Jukebox sits in
// front of a Device, applies the fallback chain and swallows failures, so the
// simulation can fire sounds without ever checking a result.
package audio

import (
	"errors"
	"sync"
)

// Sound and track names known to the built-in bank.
const (
	SoundHit      = "hit"
	SoundEnemyDie = "enemy_die"
	SoundUIToggle = "ui_toggle"
	TrackBGM      = "bgm"
)

var (
	// ErrUnavailable means no playback backend could be opened.
	ErrUnavailable = errors.New("audio: device unavailable")
	// ErrUnknownTrack means the music bank has no track with that name.
	ErrUnknownTrack = errors.New("audio: unknown music track")
	// ErrUnknownSound means the sound bank has no effect with that name.
	ErrUnknownSound = errors.New("audio: unknown sound")
)

// Device is a playback backend.
type Device interface {
	// PlayMusic replaces the current background track.
	PlayMusic(track string, volume float64) error
	StopMusic() error
	// PlaySound starts a one-shot effect. Looked up in the sound bank,
	// which is separate from the music bank.
	PlaySound(name string) error
	StopSound(name string) error
}

// NullDevice is a Device that cannot play anything.
type NullDevice struct{}

func (NullDevice) PlayMusic(string, float64) error { return ErrUnavailable }
func (NullDevice) StopMusic() error                { return ErrUnavailable }
func (NullDevice) PlaySound(string) error          { return ErrUnavailable }
func (NullDevice) StopSound(string) error          { return ErrUnavailable }

// Call is one request recorded by a MemoryDevice.
type Call struct {
	Op     string // "music", "stop_music", "sound", "stop_sound"
	Name   string
	Volume float64
}

// MemoryDevice records requests instead of playing them. Only names listed
// in Tracks and Sounds succeed, which makes it useful for exercising the
// fallback chain.
type MemoryDevice struct {
	mu     sync.Mutex
	Tracks map[string]bool
	Sounds map[string]bool
	calls  []Call
}

// NewMemoryDevice creates a recorder that accepts the given tracks and sounds.
func NewMemoryDevice(tracks, sounds []string) *MemoryDevice {
	d := &MemoryDevice{
		Tracks: make(map[string]bool),
		Sounds: make(map[string]bool),
	}
	for _, t := range tracks {
		d.Tracks[t] = true
	}
	for _, s := range sounds {
		d.Sounds[s] = true
	}
	return d
}

// PlayMusic records a successful music request or fails for unknown tracks.
func (d *MemoryDevice) PlayMusic(track string, volume float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.Tracks[track] {
		return ErrUnknownTrack
	}
	d.calls = append(d.calls, Call{Op: "music", Name: track, Volume: volume})
	return nil
}

// StopMusic records a stop request.
func (d *MemoryDevice) StopMusic() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Op: "stop_music"})
	return nil
}

// PlaySound records a successful effect or fails for unknown sounds.
func (d *MemoryDevice) PlaySound(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.Sounds[name] {
		return ErrUnknownSound
	}
	d.calls = append(d.calls, Call{Op: "sound", Name: name})
	return nil
}

// StopSound records a stop request for an effect.
func (d *MemoryDevice) StopSound(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.Sounds[name] {
		return ErrUnknownSound
	}
	d.calls = append(d.calls, Call{Op: "stop_sound", Name: name})
	return nil
}

// Calls returns a copy of the recorded requests.
func (d *MemoryDevice) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// Played returns the names of successfully started effects, in order.
func (d *MemoryDevice) Played() []string {
	var names []string
	for _, c := range d.Calls() {
		if c.Op == "sound" {
			names = append(names, c.Name)
		}
	}
	return names
}

// Reset forgets all recorded requests.
func (d *MemoryDevice) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}
