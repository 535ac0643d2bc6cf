package audio

import (
	"testing"
	"time"

	"go-zombie-survival/internal/types"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, buf[i][0], 1.0)
			require.GreaterOrEqual(t, buf[i][0], -1.0)
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never drained")
	return total
}

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 0, 100*time.Millisecond, WaveSine, rate)
	assert.Equal(t, rate.N(100*time.Millisecond), drain(t, osc))
	assert.NoError(t, osc.Err())
}

func TestOscillator_Square(t *testing.T) {
	osc := NewOscillator(220, 0, 10*time.Millisecond, WaveSquare, 44100)
	buf := make([][2]float64, 50)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{-1, 1}, buf[i][0])
	}
}

func TestEnvelope_FadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 0, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	require.Equal(t, 1000, n)
	assert.Equal(t, 1.0, buf[0][0])
	assert.InDelta(t, 0.01, buf[999][0], 1e-9)
}

func TestCreateSound_AllSoundsDrain(t *testing.T) {
	sounds := []types.Sound{
		types.SoundPistolShot, types.SoundM4Shot, types.SoundAWPShot, types.SoundEmptyClick,
		types.SoundReload, types.SoundSwitch, types.SoundFootstep, types.SoundPlayerHurt,
		types.SoundZombieHit, types.SoundZombieDeath, types.SoundPickup, types.SoundGameOver,
	}
	for _, s := range sounds {
		t.Run(string(s), func(t *testing.T) {
			st := CreateSound(s, 0.5, sampleRate)
			require.NotNil(t, st)
			assert.Greater(t, drain(t, st), 0)
		})
	}
	assert.Nil(t, CreateSound("nope", 1, sampleRate))
}

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5, zerolog.Nop())

	assert.NotPanics(t, func() {
		sm.Play(types.ChannelWeapon, types.SoundPistolShot)
		sm.PlayIfIdle(types.ChannelPlayer, types.SoundFootstep)
		sm.Stop(types.ChannelWeapon)
		sm.Play(types.ChannelCount, types.SoundPickup)
		sm.Cleanup()
	})
	assert.True(t, sm.Idle(types.ChannelWeapon))
}
