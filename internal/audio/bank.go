package audio

import (
	"math"
	"slices"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Bank maps names to streamer factories. Each call to a factory returns a
// fresh streamer positioned at its start.
type Bank map[string]func() beep.Streamer

// Names returns the bank's entries in sorted order.
func (b Bank) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultSounds returns the synthesized sound effects.
func DefaultSounds() Bank {
	return Bank{
		SoundHit:      hitSound,
		SoundEnemyDie: enemyDieSound,
		SoundUIToggle: uiToggleSound,
	}
}

// DefaultMusic returns the synthesized music tracks.
func DefaultMusic() Bank {
	return Bank{
		TrackBGM: func() beep.Streamer { return newGroove(sampleRate) },
	}
}

// tone returns a sine tone of the given length, or silence if the generator
// rejects the frequency.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

func hitSound() beep.Streamer {
	return decay(tone(220, 70*time.Millisecond), 30)
}

func uiToggleSound() beep.Streamer {
	return beep.Seq(
		decay(tone(660, 40*time.Millisecond), 20),
		decay(tone(990, 50*time.Millisecond), 20),
	)
}

// enemyDieSound is a falling sweep from 400 Hz to 80 Hz.
func enemyDieSound() beep.Streamer {
	total := sampleRate.N(350 * time.Millisecond)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			progress := float64(pos) / float64(total)
			freq := 400 - 320*progress
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)
			v := 0.3 * (1 - progress) * math.Sin(2*math.Pi*phase)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// decay applies an exponential fade with the given rate per second.
func decay(s beep.Streamer, rate float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range n {
			gain := math.Exp(-rate * float64(pos) / float64(sampleRate))
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// groove is an endless kick-and-bass loop at 100 BPM.
type groove struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

func newGroove(sr beep.SampleRate) *groove {
	return &groove{sr: sr, beat: sr.N(600 * time.Millisecond)}
}

func (g *groove) Stream(samples [][2]float64) (int, bool) {
	kickLen := g.sr.N(100 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		// Bass walks between A and E every four beats
		bassFreq := 55.0
		if (g.pos/g.beat)%8 >= 4 {
			bassFreq = 82.4
		}
		bass := 0.12 * math.Sin(2*math.Pi*bassFreq*float64(g.pos)/float64(g.sr))

		v := kick + bass
		samples[i][0], samples[i][1] = v, v
		g.pos++
	}
	return len(samples), true
}

func (g *groove) Err() error { return nil }
