// Package audio plays the game's procedurally generated sound effects
// through the system speaker.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"go-zombie-survival/internal/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// voice is what currently plays on a channel.
type voice struct {
	ctrl    *beep.Ctrl
	playing *atomic.Bool
}

// SoundManager implements interfaces.SoundPlayer on top of beep. Until
// Initialize succeeds every call is a no-op, so the game runs without an
// audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	channels    [types.ChannelCount]voice
	volume      float64
	initialized bool
	logger      zerolog.Logger
}

func NewSoundManager(volume float64, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info().Int("sample_rate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// Cleanup silences every channel and detaches the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	for ch := range sm.channels {
		sm.stopLocked(types.Channel(ch))
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts sound on channel, cutting off the channel's previous sound.
func (sm *SoundManager) Play(channel types.Channel, sound types.Sound) {
	sm.play(channel, sound, false)
}

// PlayIfIdle starts sound only if nothing plays on channel.
func (sm *SoundManager) PlayIfIdle(channel types.Channel, sound types.Sound) {
	sm.play(channel, sound, true)
}

func (sm *SoundManager) Stop(channel types.Channel) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !validChannel(channel) {
		return
	}
	speaker.Lock()
	sm.stopLocked(channel)
	speaker.Unlock()
}

// Idle reports whether channel is silent.
func (sm *SoundManager) Idle(channel types.Channel) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !validChannel(channel) {
		return true
	}
	v := sm.channels[channel]
	return v.playing == nil || !v.playing.Load()
}

func (sm *SoundManager) play(channel types.Channel, sound types.Sound, onlyIfIdle bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !validChannel(channel) {
		return
	}
	v := sm.channels[channel]
	if onlyIfIdle && v.playing != nil && v.playing.Load() {
		return
	}
	streamer := CreateSound(sound, sm.volume, sampleRate)
	if streamer == nil {
		sm.logger.Warn().Str("sound", string(sound)).Msg("unknown sound")
		return
	}

	// Callback runs on the speaker goroutine and only touches the flag.
	playing := &atomic.Bool{}
	playing.Store(true)
	ctrl := &beep.Ctrl{Streamer: beep.Seq(streamer, beep.Callback(func() { playing.Store(false) }))}

	speaker.Lock()
	sm.stopLocked(channel)
	sm.channels[channel] = voice{ctrl: ctrl, playing: playing}
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// stopLocked requires sm.mu and the speaker lock.
func (sm *SoundManager) stopLocked(channel types.Channel) {
	v := sm.channels[channel]
	if v.ctrl == nil {
		return
	}
	v.ctrl.Streamer = nil
	v.playing.Store(false)
	sm.channels[channel] = voice{}
}

func validChannel(ch types.Channel) bool {
	return ch >= 0 && ch < types.ChannelCount
}
