package raster

import (
	"errors"
	"image"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// drainOne waits until l has handled one finished load.
func drainOne(t *testing.T, l *Loader) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for l.Drain() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("load never finished")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoaderStoresLoadedImages(t *testing.T) {
	c := NewCache()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	l := NewLoader(c, func(Key) (*image.RGBA, error) { return img, nil })
	defer l.Close()

	if c.Thumb(3, 4, 4) != nil {
		t.Fatal("expected a miss")
	}
	l.Start()
	drainOne(t, l)
	if c.Thumb(3, 4, 4) != img {
		t.Fatal("expected the loaded image")
	}
}

func TestLoaderRetriesFailuresUpToLimit(t *testing.T) {
	c := NewCache()
	var calls atomic.Int32
	l := NewLoader(c, func(Key) (*image.RGBA, error) {
		calls.Add(1)
		return nil, errors.New("corrupt")
	})
	defer l.Close()

	for i := 0; i < maxAttempts; i++ {
		if c.Thumb(5, 4, 4) != nil {
			t.Fatal("expected a miss")
		}
		l.Start()
		drainOne(t, l)
	}
	if got := calls.Load(); got != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, got)
	}

	c.Thumb(5, 4, 4)
	if got := c.Requests(); len(got) != 0 {
		t.Fatalf("expected the image to be given up on, got %v", got)
	}
}

func TestLoaderCloseReleasesPendingLoads(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	c := NewCache()
	l := NewLoader(c, func(Key) (*image.RGBA, error) {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	})
	// More loads than the result buffer holds, and nobody drains them.
	for i := range 64 {
		c.Thumb(i, 1, 1)
	}
	l.Start()
	time.Sleep(50 * time.Millisecond)
	l.Close()
	l.Close()

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d", baseline, final)
	}
}
