package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SpeakerDevice plays the synthesized banks through the system speaker.
type SpeakerDevice struct {
	mu     sync.Mutex
	music  Bank
	sounds Bank
	track  *beep.Ctrl
	active map[string]*beep.Ctrl
	closed bool
}

// OpenSpeaker initializes the speaker and returns a device backed by the
// default banks. It fails with ErrUnavailable when no backend can be opened.
func OpenSpeaker() (*SpeakerDevice, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &SpeakerDevice{
		music:  DefaultMusic(),
		sounds: DefaultSounds(),
		active: make(map[string]*beep.Ctrl),
	}, nil
}

// PlayMusic replaces the current track.
func (d *SpeakerDevice) PlayMusic(track string, volume float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrUnavailable
	}
	factory, ok := d.music[track]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTrack, track)
	}

	d.stopLocked(d.track)
	d.track = &beep.Ctrl{Streamer: withVolume(factory(), volume)}
	speaker.Play(d.track)
	return nil
}

// StopMusic stops the current track, if any.
func (d *SpeakerDevice) StopMusic() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrUnavailable
	}
	d.stopLocked(d.track)
	d.track = nil
	return nil
}

// PlaySound starts a one-shot effect.
func (d *SpeakerDevice) PlaySound(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrUnavailable
	}
	factory, ok := d.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}

	ctrl := &beep.Ctrl{Streamer: factory()}
	d.active[name] = ctrl
	speaker.Play(ctrl)
	return nil
}

// StopSound silences the most recent instance of an effect.
func (d *SpeakerDevice) StopSound(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrUnavailable
	}
	if _, ok := d.sounds[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	d.stopLocked(d.active[name])
	delete(d.active, name)
	return nil
}

// Close stops everything and releases the speaker.
func (d *SpeakerDevice) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	speaker.Clear()
	speaker.Close()
}

// stopLocked detaches a streamer from the mixer. Ctrl with a nil streamer
// reports drained, so the speaker drops it on the next buffer.
func (d *SpeakerDevice) stopLocked(ctrl *beep.Ctrl) {
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// withVolume scales a streamer linearly; volume <= 0 is silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
