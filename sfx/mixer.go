package sfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/gravityshift/assets"
	"github.com/rs/zerolog/log"
)

// Cue names a one-shot sound effect.
type Cue string

const (
	CueButtonClick   Cue = "button_click"
	CueCubeCollected Cue = "cube_collected"
	CueGameWin       Cue = "game_win"
	CueGameOver      Cue = "game_over"
	CueJump          Cue = "jump"
	CueGravitySwitch Cue = "gravity_switch"
)

// Cues lists every cue the game plays.
var Cues = []Cue{CueButtonClick, CueCubeCollected, CueGameWin, CueGameOver, CueJump, CueGravitySwitch}

// Player is what the gameplay code needs from an audio backend.
type Player interface {
	PlayAudioCue(cue Cue)
}

type clip interface {
	IsPlaying() bool
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Mixer plays one clip per cue on the shared ebiten audio context.
type Mixer struct {
	clips  map[Cue]clip
	volume float64
}

// NewMixer loads assets/audio/<cue>.wav for every cue and falls back to a
// synthesised tone when the file is not bundled.
func NewMixer(ctx *audio.Context, volume float64) (*Mixer, error) {
	m := &Mixer{clips: make(map[Cue]clip, len(Cues)), volume: volume}
	for _, cue := range Cues {
		path := fmt.Sprintf("audio/%s.wav", cue)
		if assets.Exists(path) {
			p, err := assets.LoadAudioPlayer(ctx, path)
			if err != nil {
				return nil, fmt.Errorf("sfx: load %s: %w", path, err)
			}
			m.clips[cue] = p
			continue
		}
		tone, ok := tones[cue]
		if !ok {
			continue
		}
		m.clips[cue] = ctx.NewPlayerFromBytes(tone.pcm(ctx.SampleRate()))
	}
	return m, nil
}

// PlayAudioCue restarts the cue's clip. Cues without a clip are skipped.
func (m *Mixer) PlayAudioCue(cue Cue) {
	if m == nil {
		return
	}
	c, ok := m.clips[cue]
	if !ok || c == nil {
		log.Debug().Str("cue", string(cue)).Msg("sfx: no clip for cue")
		return
	}
	c.SetVolume(m.volume)
	if err := c.Rewind(); err != nil {
		log.Warn().Err(err).Str("cue", string(cue)).Msg("sfx: rewind failed")
		return
	}
	c.Play()
}

// SetVolume changes the volume used by subsequent cues.
func (m *Mixer) SetVolume(volume float64) {
	if m == nil {
		return
	}
	m.volume = volume
}
