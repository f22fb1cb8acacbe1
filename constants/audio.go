package constants

import "time"

// Sandbox Tones
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// EatToneHz is played when food is eaten
	EatToneHz = 880

	// YeetToneHz is played when food is yeeted
	YeetToneHz = 220

	// WinToneHz is played when the game ends
	WinToneHz = 1320

	// ToneDuration is the length of a collection tone
	ToneDuration = 50 * time.Millisecond

	// WinToneDuration is the length of the end-of-game tone
	WinToneDuration = 400 * time.Millisecond
)
