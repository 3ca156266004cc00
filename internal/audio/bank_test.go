package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion, giving up after limit samples.
func drain(s interface {
	Stream([][2]float64) (int, bool)
}, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestDefaultSoundsAreFiniteAndAudible(t *testing.T) {
	limit := sampleRate.N(2 * time.Second)

	for _, name := range []string{SoundHit, SoundEnemyDie, SoundUIToggle} {
		t.Run(name, func(t *testing.T) {
			factory, ok := DefaultSounds()[name]
			require.True(t, ok)

			n, peak := drain(factory(), limit)
			assert.Greater(t, n, 0)
			assert.Less(t, n, limit, "one-shot sounds must end")
			assert.Greater(t, peak, 0.01)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestFactoriesReturnFreshStreamers(t *testing.T) {
	factory := DefaultSounds()[SoundHit]
	first, _ := drain(factory(), sampleRate.N(time.Second))
	second, _ := drain(factory(), sampleRate.N(time.Second))
	assert.Equal(t, first, second)
}

func TestMusicLoopsForever(t *testing.T) {
	factory, ok := DefaultMusic()[TrackBGM]
	require.True(t, ok)

	limit := sampleRate.N(3 * time.Second)
	n, peak := drain(factory(), limit)
	assert.GreaterOrEqual(t, n, limit)
	assert.Greater(t, peak, 0.01)
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(DefaultSounds()[SoundHit](), 0)
	_, peak := drain(s, sampleRate.N(time.Second))
	assert.Zero(t, peak)
}

func TestBankNamesSorted(t *testing.T) {
	assert.Equal(t, []string{SoundEnemyDie, SoundHit, SoundUIToggle}, DefaultSounds().Names())
	assert.Equal(t, []string{TrackBGM}, DefaultMusic().Names())
	assert.Empty(t, Bank{}.Names())
}
