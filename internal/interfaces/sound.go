package interfaces

import "go-zombie-survival/internal/types"

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer plays sound effects. Calls never block and report nothing.
type SoundPlayer interface {
	// Play starts sound on channel, cutting off whatever the channel played.
	Play(channel types.Channel, sound types.Sound)
	// PlayIfIdle starts sound only when channel is silent.
	PlayIfIdle(channel types.Channel, sound types.Sound)
	Stop(channel types.Channel)
}
