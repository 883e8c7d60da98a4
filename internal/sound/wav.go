package sound

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// LoadWAV decodes a WAV file into 16-bit stereo PCM at the output rate.
func LoadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tick sound: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("WAV file %s has no usable format", path)
	}
	return toStereo16(buf.Data, buf.Format.NumChannels, buf.Format.SampleRate, buf.SourceBitDepth), nil
}

// toStereo16 converts interleaved integer samples to 16-bit stereo at
// sampleRate. Rate conversion is nearest-neighbor, which is plenty for a
// click. Extra channels beyond the second are dropped.
func toStereo16(data []int, channels, rate, depth int) []byte {
	frames := len(data) / channels
	outFrames := int(int64(frames) * sampleRate / int64(rate))
	out := make([]byte, outFrames*channelCount*bitDepth)

	shift := depth - 16
	scale := func(v int) uint16 {
		switch {
		case depth == 8:
			v = (v - 128) << 8
		case shift > 0:
			v >>= shift
		case shift < 0:
			v <<= -shift
		}
		v = min(max(v, -32768), 32767)
		return uint16(int16(v))
	}

	for i := 0; i < outFrames; i++ {
		src := int(int64(i) * int64(rate) / sampleRate)
		if src >= frames {
			src = frames - 1
		}
		l := data[src*channels]
		r := l
		if channels > 1 {
			r = data[src*channels+1]
		}
		off := i * channelCount * bitDepth
		binary.LittleEndian.PutUint16(out[off:], scale(l))
		binary.LittleEndian.PutUint16(out[off+2:], scale(r))
	}
	return out
}
