package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/logastroids/internal/loop"
)

// Cue is one synthesized sound.
type Cue int

const (
	CueFire Cue = iota
	CueRocket
	CueHit
	CueExplosion
	CueShield
	CueShipExplode
	CuePowerUp
	CueLevelUp
	CueBoss
	CueGameOver
	cueCount
)

// CueFor maps a core event to its sound, if it has one.
func CueFor(kind loop.EventKind) (Cue, bool) {
	switch kind {
	case loop.EventFire:
		return CueFire, true
	case loop.EventRocket:
		return CueRocket, true
	case loop.EventAsteroidHit, loop.EventBossHit:
		return CueHit, true
	case loop.EventAsteroidDestroyed:
		return CueExplosion, true
	case loop.EventShieldHit:
		return CueShield, true
	case loop.EventShipExploding, loop.EventBossDefeated:
		return CueShipExplode, true
	case loop.EventPowerUp:
		return CuePowerUp, true
	case loop.EventLevelUp, loop.EventHighScore:
		return CueLevelUp, true
	case loop.EventBossSpawned:
		return CueBoss, true
	case loop.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Build synthesizes a cue at the given volume.
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	ms := time.Millisecond
	var s beep.Streamer
	switch c {
	case CueFire:
		s = gain(tone(1400, 500, 60*ms, WaveSquare, rate), 0.25)
	case CueRocket:
		s = beep.Take(rate.N(220*ms), beep.Mix(
			gain(tone(300, 900, 220*ms, WaveSaw, rate), 0.4),
			gain(tone(0, 0, 220*ms, WaveNoise, rate), 0.15),
		))
	case CueHit:
		s = gain(tone(220, 160, 50*ms, WaveSquare, rate), 0.3)
	case CueExplosion:
		s = gain(tone(0, 0, 300*ms, WaveNoise, rate), 0.5)
	case CueShield:
		s = gain(tone(600, 1200, 120*ms, WaveSine, rate), 0.5)
	case CueShipExplode:
		s = beep.Take(rate.N(700*ms), beep.Mix(
			gain(tone(0, 0, 700*ms, WaveNoise, rate), 0.6),
			gain(tone(160, 40, 700*ms, WaveSaw, rate), 0.4),
		))
	case CuePowerUp:
		s = beep.Seq(
			gain(tone(659.25, 659.25, 80*ms, WaveSine, rate), 0.5),
			gain(tone(987.77, 987.77, 80*ms, WaveSine, rate), 0.5),
			gain(tone(1318.51, 1318.51, 120*ms, WaveSine, rate), 0.5),
		)
	case CueLevelUp:
		s = beep.Seq(
			gain(tone(523.25, 523.25, 100*ms, WaveSquare, rate), 0.3),
			gain(tone(659.25, 659.25, 100*ms, WaveSquare, rate), 0.3),
			gain(tone(783.99, 783.99, 100*ms, WaveSquare, rate), 0.3),
			gain(tone(1046.5, 1046.5, 200*ms, WaveSquare, rate), 0.3),
		)
	case CueBoss:
		s = gain(tone(110, 55, 900*ms, WaveSaw, rate), 0.5)
	case CueGameOver:
		s = beep.Seq(
			gain(tone(392, 392, 200*ms, WaveSine, rate), 0.5),
			gain(tone(329.63, 329.63, 200*ms, WaveSine, rate), 0.5),
			gain(tone(261.63, 196, 500*ms, WaveSine, rate), 0.5),
		)
	default:
		return nil
	}
	return gain(s, volume)
}

// cuesFor keeps the first event of each cue in a frame, in event order.
func cuesFor(events []loop.Event) []Cue {
	var seen [cueCount]bool
	var out []Cue
	for _, e := range events {
		c, ok := CueFor(e.Kind)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
