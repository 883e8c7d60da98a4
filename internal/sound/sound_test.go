package sound

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func sample(pcm []byte, frame, ch int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[(frame*channelCount+ch)*bitDepth:]))
}

func TestSynthShape(t *testing.T) {
	pcm := Synth()
	frames := len(pcm) / (channelCount * bitDepth)
	if frames != int(sampleRate*0.012) {
		t.Fatalf("click has %d frames", frames)
	}

	peak := func(from, to int) float64 {
		p := 0.0
		for i := from; i < to; i++ {
			p = math.Max(p, math.Abs(float64(sample(pcm, i, 0))))
			if sample(pcm, i, 0) != sample(pcm, i, 1) {
				t.Fatalf("frame %d: channels differ", i)
			}
		}
		return p
	}
	head, tail := peak(0, frames/4), peak(3*frames/4, frames)
	if head < 1000 {
		t.Fatalf("click is too quiet: peak %v", head)
	}
	if tail >= head/4 {
		t.Fatalf("click does not decay: head %v tail %v", head, tail)
	}
}

func TestNilClickerIsSilent(t *testing.T) {
	var c *Clicker
	c.Play()
	c.Close()
}

func writeWAV(t *testing.T, rate, depth, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tick.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	enc := wav.NewEncoder(f, rate, depth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	f.Close()
	return path
}

func TestLoadWAVMonoUpsampled(t *testing.T) {
	data := make([]int, 22050/100) // 10ms at half rate
	for i := range data {
		data[i] = 1000
	}
	pcm, err := LoadWAV(writeWAV(t, 22050, 16, 1, data))
	if err != nil {
		t.Fatalf("LoadWAV() error = %v", err)
	}
	frames := len(pcm) / (channelCount * bitDepth)
	if frames != 2*len(data) {
		t.Fatalf("got %d frames, want %d", frames, 2*len(data))
	}
	if sample(pcm, 5, 0) != 1000 || sample(pcm, 5, 1) != 1000 {
		t.Fatalf("frame 5 = %d/%d", sample(pcm, 5, 0), sample(pcm, 5, 1))
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("RIFF nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWAV(path); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := LoadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestToStereo16Depths(t *testing.T) {
	pcm := toStereo16([]int{1 << 20, -(1 << 20)}, 2, sampleRate, 24)
	if got := sample(pcm, 0, 0); got != 1<<12 {
		t.Fatalf("24-bit left = %d", got)
	}
	if got := sample(pcm, 0, 1); got != -(1 << 12) {
		t.Fatalf("24-bit right = %d", got)
	}

	pcm = toStereo16([]int{255}, 1, sampleRate, 8)
	if got := sample(pcm, 0, 0); got != 127<<8 {
		t.Fatalf("8-bit = %d", got)
	}
}
