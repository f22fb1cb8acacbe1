package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/adrian-miasik/eat-or-yeet/constants"
	"github.com/adrian-miasik/eat-or-yeet/engine"
	"github.com/adrian-miasik/eat-or-yeet/events"
)

// soundPlayer plays a short tone for every eat and yeet, and a chime on win
// It only listens to notifications; scoring never calls it
type soundPlayer struct {
	sampleRate beep.SampleRate
	volume     float64
}

func newSoundPlayer(volume float64) (*soundPlayer, error) {
	sr := beep.SampleRate(constants.SampleRate)
	if err := speaker.Init(sr, sr.N(constants.SpeakerBuffer)); err != nil {
		return nil, err
	}
	return &soundPlayer{sampleRate: sr, volume: volume}, nil
}

// EventTypes implements events.Handler
func (p *soundPlayer) EventTypes() []events.EventType {
	return []events.EventType{events.EventScoreChanged, events.EventGameEnded}
}

// HandleEvent implements events.Handler
func (p *soundPlayer) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	if s := p.streamerFor(ev); s != nil {
		speaker.Play(s)
	}
}

// streamerFor builds the sound for a notification, nil when it has none
func (p *soundPlayer) streamerFor(ev events.GameEvent) beep.Streamer {
	switch ev.Type {
	case events.EventScoreChanged:
		payload, ok := ev.Payload.(*events.ScoreChangedPayload)
		if !ok {
			return nil
		}
		if payload.Delta < 0 {
			return newVolume(p.tone(constants.YeetToneHz, constants.ToneDuration), p.volume)
		}
		return newVolume(p.tone(constants.EatToneHz, constants.ToneDuration), p.volume)

	case events.EventGameEnded:
		half := constants.WinToneDuration / 2
		chime := beep.Seq(p.tone(constants.WinToneHz, half), p.tone(constants.WinToneHz*1.5, half))
		return newVolume(chime, p.volume)
	}
	return nil
}

func (p *soundPlayer) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(p.sampleRate, freq)
	if err != nil {
		log.Printf("sound: tone %.0fHz: %v", freq, err)
		return beep.Silence(p.sampleRate.N(d))
	}
	return beep.Take(p.sampleRate.N(d), sine)
}

func (p *soundPlayer) Close() {
	speaker.Close()
}

// newVolume scales a streamer linearly; zero or less is silent
// math.Log2(0) is -Inf, so silence is explicit
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
