package raster

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// ASCII brightness ramp from darkest to brightest.
const asciiRamp = " .:-=+*#%@"

// Mode describes how colors are written to the terminal.
type Mode uint8

const (
	ModeOff     Mode = iota // NO_COLOR or dumb terminal
	ModeANSI16              // basic 16-color
	ModeANSI256             // 256-color
	ModeTrue                // 24-bit truecolor
)

func (m Mode) String() string {
	switch m {
	case ModeANSI16:
		return "ansi16"
	case ModeANSI256:
		return "ansi256"
	case ModeTrue:
		return "truecolor"
	default:
		return "off"
	}
}

var (
	detectOnce sync.Once
	termMode   Mode
)

// DetectMode checks terminal capabilities once.
func DetectMode() Mode {
	detectOnce.Do(func() {
		termMode = modeFromEnv(os.LookupEnv)
	})
	return termMode
}

func modeFromEnv(lookup func(string) (string, bool)) Mode {
	if _, ok := lookup("NO_COLOR"); ok {
		return ModeOff
	}
	term, _ := lookup("TERM")
	ct, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	ct = strings.ToLower(ct)
	switch {
	case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"):
		return ModeTrue
	case strings.Contains(term, "256color"):
		return ModeANSI256
	case term == "dumb":
		return ModeOff
	case term == "" && runtime.GOOS == "windows":
		return ModeANSI16
	case term == "":
		return ModeOff
	default:
		return ModeANSI16
	}
}

// brightnessChar maps a 0-255 luminance to an ASCII character.
func brightnessChar(lum uint8) byte {
	idx := int(lum) * (len(asciiRamp) - 1) / 255
	return asciiRamp[idx]
}

// luminance computes perceived brightness (ITU-R BT.601).
func luminance(c RGB) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

const ansiReset = "\x1b[0m"

// colorSeq returns the escape selecting c as foreground (bg false) or
// background. Empty when colors are disabled.
func colorSeq(mode Mode, c RGB, bg bool) string {
	switch mode {
	case ModeTrue:
		if bg {
			return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
		}
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case ModeANSI256:
		idx := 16 + 36*(int(c.R)*5/255) + 6*(int(c.G)*5/255) + int(c.B)*5/255
		if bg {
			return fmt.Sprintf("\x1b[48;5;%dm", idx)
		}
		return fmt.Sprintf("\x1b[38;5;%dm", idx)
	case ModeANSI16:
		best := nearest16(c)
		base := 30
		if bg {
			base = 40
		}
		if best >= 8 {
			base += 60
			best -= 8
		}
		return fmt.Sprintf("\x1b[%dm", base+best)
	default:
		return ""
	}
}

func nearest16(c RGB) int {
	best := 0
	bestDist := 1<<31 - 1
	for i, p := range ansi16Palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

var ansi16Palette = [16]RGB{
	{0, 0, 0},       // black
	{205, 49, 49},   // red
	{13, 188, 121},  // green
	{229, 229, 16},  // yellow
	{36, 114, 200},  // blue
	{188, 63, 188},  // magenta
	{17, 168, 205},  // cyan
	{229, 229, 229}, // white
	{102, 102, 102}, // bright black
	{241, 76, 76},   // bright red
	{35, 209, 139},  // bright green
	{245, 245, 67},  // bright yellow
	{59, 142, 234},  // bright blue
	{214, 112, 214}, // bright magenta
	{41, 184, 219},  // bright cyan
	{255, 255, 255}, // bright white
}
