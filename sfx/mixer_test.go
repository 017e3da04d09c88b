package sfx

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeClip struct {
	plays     int
	rewinds   int
	volume    float64
	rewindErr error
}

func (f *fakeClip) IsPlaying() bool     { return false }
func (f *fakeClip) Play()               { f.plays++ }
func (f *fakeClip) SetVolume(v float64) { f.volume = v }
func (f *fakeClip) Rewind() error {
	f.rewinds++
	return f.rewindErr
}

func TestPlayAudioCue(t *testing.T) {
	click := &fakeClip{}
	broken := &fakeClip{rewindErr: errors.New("closed")}
	m := &Mixer{clips: map[Cue]clip{CueButtonClick: click, CueGameOver: broken}, volume: 0.5}

	m.PlayAudioCue(CueButtonClick)
	m.PlayAudioCue(CueButtonClick)
	m.PlayAudioCue(CueGameOver)
	m.PlayAudioCue(CueJump)

	assert.Equal(t, 2, click.plays)
	assert.Equal(t, 2, click.rewinds)
	assert.Equal(t, 0.5, click.volume)
	assert.Equal(t, 0, broken.plays)

	var nilMixer *Mixer
	assert.NotPanics(t, func() { nilMixer.PlayAudioCue(CueJump) })
}

func TestEveryCueHasATone(t *testing.T) {
	for _, cue := range Cues {
		_, ok := tones[cue]
		assert.True(t, ok, "cue %s", cue)
	}
}

func TestTonePCM(t *testing.T) {
	pcm := tone{freqs: []float64{440}, duration: 0.1}.pcm(44100)
	assert.Len(t, pcm, 4410*4)

	left := int16(binary.LittleEndian.Uint16(pcm[400:]))
	right := int16(binary.LittleEndian.Uint16(pcm[402:]))
	assert.Equal(t, left, right)

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.InDelta(t, 0, float64(last), 50, "envelope fades out")

	assert.Nil(t, tone{}.pcm(44100))
}
