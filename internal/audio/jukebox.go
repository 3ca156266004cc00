package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Jukebox is the game-facing audio API. All methods are fire-and-forget:
// device failures are logged at debug level and otherwise ignored.
//
// Background music follows the chain: music track -> a sound of the same
// name -> the ui_toggle sound -> silence. When a sound stood in for the
// track, it is remembered so StopMusic can silence it too.
type Jukebox struct {
	dev          Device
	logger       *log.Logger
	muted        bool
	lastFallback string
}

// Option configures a Jukebox.
type Option func(*Jukebox)

// WithLogger sets the logger used for swallowed device errors.
func WithLogger(l *log.Logger) Option {
	return func(j *Jukebox) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(j *Jukebox) {
		j.muted = muted
	}
}

// NewJukebox wraps a device. A nil device behaves like NullDevice.
func NewJukebox(dev Device, opts ...Option) *Jukebox {
	if dev == nil {
		dev = NullDevice{}
	}
	j := &Jukebox{
		dev:    dev,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Muted reports whether playback is suppressed.
func (j *Jukebox) Muted() bool {
	return j.muted
}

// SetMuted changes the mute flag. It does not start or stop anything.
func (j *Jukebox) SetMuted(muted bool) {
	j.muted = muted
}

// LastFallback returns the sound currently standing in for the music track,
// or "" if the real track played or nothing is playing.
func (j *Jukebox) LastFallback() string {
	return j.lastFallback
}

// Play fires a one-shot sound effect.
func (j *Jukebox) Play(name string) {
	if j.muted {
		return
	}
	if err := j.dev.PlaySound(name); err != nil {
		j.logger.Debug("sound failed", "sound", name, "error", err)
	}
}

// PlayOr fires name, or fallback when name cannot be played.
func (j *Jukebox) PlayOr(name, fallback string) {
	if j.muted {
		return
	}
	err := j.dev.PlaySound(name)
	if err == nil {
		return
	}
	j.logger.Debug("sound failed, trying fallback", "sound", name, "fallback", fallback, "error", err)
	if err := j.dev.PlaySound(fallback); err != nil {
		j.logger.Debug("fallback sound failed", "sound", fallback, "error", err)
	}
}

// PlayMusic starts a background track, walking the fallback chain.
func (j *Jukebox) PlayMusic(track string, volume float64) {
	if j.muted {
		return
	}

	err := j.dev.PlayMusic(track, volume)
	if err == nil {
		j.lastFallback = ""
		return
	}
	j.logger.Debug("music failed", "track", track, "error", err)

	for _, name := range []string{track, SoundUIToggle} {
		if err := j.dev.PlaySound(name); err != nil {
			j.logger.Debug("music fallback failed", "sound", name, "error", err)
			continue
		}
		j.lastFallback = name
		return
	}
}

// StopMusic stops the background track and any sound that stood in for it.
func (j *Jukebox) StopMusic() {
	if err := j.dev.StopMusic(); err != nil {
		j.logger.Debug("stop music failed", "error", err)
	}
	if j.lastFallback != "" {
		if err := j.dev.StopSound(j.lastFallback); err != nil {
			j.logger.Debug("stop fallback failed", "sound", j.lastFallback, "error", err)
		}
	}
	j.lastFallback = ""
}
