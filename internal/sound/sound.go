// Package sound plays the short click heard when the picker lands on a
// new row.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes

	// minGap keeps a fast flick from turning into a buzz.
	minGap = 35 * time.Millisecond
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Clicker plays a PCM click. A nil *Clicker is valid and silent.
type Clicker struct {
	ctx    *oto.Context
	pcm    []byte
	volume float64

	mu      sync.Mutex
	last    time.Time
	players []*oto.Player
}

// New opens the audio device and prepares the click. An empty path uses
// the synthesized click; otherwise the WAV file at path is used.
func New(path string, volume float64) (*Clicker, error) {
	pcm := Synth()
	if path != "" {
		var err error
		pcm, err = LoadWAV(path)
		if err != nil {
			return nil, err
		}
	}

	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return &Clicker{ctx: ctx, pcm: pcm, volume: volume}, nil
}

// Play starts one click without blocking. Clicks closer together than
// minGap are dropped.
func (c *Clicker) Play() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Sub(c.last) < minGap {
		return
	}
	c.last = now

	// Keep players referenced until they finish.
	live := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	p := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	p.SetVolume(c.volume)
	p.Play()
	c.players = append(live, p)
}

// Close stops all clicks in flight.
func (c *Clicker) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.players {
		p.Pause()
	}
	slog.Debug("Clicker closed", "players", len(c.players))
	c.players = nil
}

// Synth returns a 12ms decaying 2.2kHz click as 16-bit stereo PCM.
func Synth() []byte {
	const (
		freq     = 2200.0
		duration = 0.012
		decay    = 420.0
		amp      = 0.6
	)
	frames := int(sampleRate * duration)
	out := make([]byte, frames*channelCount*bitDepth)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		v := amp * math.Exp(-decay*t) * math.Sin(2*math.Pi*freq*t)
		s := uint16(int16(v * math.MaxInt16))
		off := i * channelCount * bitDepth
		binary.LittleEndian.PutUint16(out[off:], s)
		binary.LittleEndian.PutUint16(out[off+2:], s)
	}
	return out
}
