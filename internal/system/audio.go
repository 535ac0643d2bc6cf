// internal/system/audio.go
package system

import (
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/types"
)

// AudioSystem озвучивает игровые события.
type AudioSystem struct {
	sound interfaces.SoundPlayer
}

// NewAudioSystem subscribes the audio system to every event it voices.
func NewAudioSystem(sound interfaces.SoundPlayer, eventDispatcher *event.Dispatcher) *AudioSystem {
	s := &AudioSystem{sound: sound}
	eventDispatcher.SubscribeAll(s,
		event.WeaponFired,
		event.EmptyClick,
		event.ReloadStarted,
		event.WeaponSwitched,
		event.PlayerMoved,
		event.PlayerDamaged,
		event.EnemyHit,
		event.EnemyKilled,
		event.PickupCollected,
		event.GameOver,
	)
	return s
}

func (s *AudioSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WeaponFired:
		if data, ok := e.Data.(event.WeaponFiredData); ok {
			s.sound.Play(types.ChannelWeapon, types.ShotSound(data.Weapon))
		}
	case event.EmptyClick:
		s.sound.Play(types.ChannelWeapon, types.SoundEmptyClick)
	case event.ReloadStarted:
		s.sound.Play(types.ChannelReload, types.SoundReload)
	case event.WeaponSwitched:
		s.sound.Play(types.ChannelWeapon, types.SoundSwitch)
	case event.PlayerMoved:
		// Шаги не перебивают сами себя
		s.sound.PlayIfIdle(types.ChannelPlayer, types.SoundFootstep)
	case event.PlayerDamaged:
		s.sound.Play(types.ChannelEnemy, types.SoundPlayerHurt)
	case event.EnemyHit:
		s.sound.Play(types.ChannelEnemy, types.SoundZombieHit)
	case event.EnemyKilled:
		s.sound.Play(types.ChannelEnemy, types.SoundZombieDeath)
	case event.PickupCollected:
		s.sound.Play(types.ChannelPickup, types.SoundPickup)
	case event.GameOver:
		for ch := types.Channel(0); ch < types.ChannelCount; ch++ {
			s.sound.Stop(ch)
		}
		s.sound.Play(types.ChannelPlayer, types.SoundGameOver)
	}
}
