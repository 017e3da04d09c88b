package sfx

import (
	"encoding/binary"
	"math"
)

// tone is a short enveloped square-ish beep used when no wav is bundled.
type tone struct {
	freqs    []float64
	duration float64
}

var tones = map[Cue]tone{
	CueButtonClick:   {freqs: []float64{880}, duration: 0.05},
	CueCubeCollected: {freqs: []float64{660, 990}, duration: 0.18},
	CueGameWin:       {freqs: []float64{523, 659, 784, 1047}, duration: 0.6},
	CueGameOver:      {freqs: []float64{392, 330, 262}, duration: 0.7},
	CueJump:          {freqs: []float64{440, 550}, duration: 0.1},
	CueGravitySwitch: {freqs: []float64{300, 600, 300}, duration: 0.25},
}

// pcm renders the tone as 16-bit little endian stereo, the format
// audio.Context.NewPlayerFromBytes expects.
func (t tone) pcm(sampleRate int) []byte {
	samples := int(t.duration * float64(sampleRate))
	if samples <= 0 || len(t.freqs) == 0 {
		return nil
	}
	out := make([]byte, samples*4)
	step := samples / len(t.freqs)
	if step == 0 {
		step = 1
	}
	phase := 0.0
	for i := 0; i < samples; i++ {
		idx := i / step
		if idx >= len(t.freqs) {
			idx = len(t.freqs) - 1
		}
		phase += 2 * math.Pi * t.freqs[idx] / float64(sampleRate)
		env := 1 - float64(i)/float64(samples)
		v := int16(math.Sin(phase) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
