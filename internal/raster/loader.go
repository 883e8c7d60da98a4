package raster

import (
	"image"
	"log/slog"
	"sync"
)

type loadResult struct {
	key Key
	img *image.RGBA
	err error
}

// Loader runs a Cache's queued requests on background goroutines, for hosts
// that poll once per frame instead of receiving messages. Start, Drain and
// the Cache itself stay on the host's update loop.
type Loader struct {
	cache   *Cache
	load    func(Key) (*image.RGBA, error)
	results chan loadResult
	done    chan struct{}
	once    sync.Once
}

// NewLoader returns a loader that fills c using load.
func NewLoader(c *Cache, load func(Key) (*image.RGBA, error)) *Loader {
	return &Loader{
		cache:   c,
		load:    load,
		results: make(chan loadResult, 16),
		done:    make(chan struct{}),
	}
}

// Start launches one goroutine per queued request.
func (l *Loader) Start() {
	for _, k := range l.cache.Requests() {
		go l.run(k)
	}
}

func (l *Loader) run(k Key) {
	img, err := l.load(k)
	select {
	case l.results <- loadResult{key: k, img: img, err: err}:
	case <-l.done:
	}
}

// Drain hands finished loads to the cache without blocking and returns how
// many it handled. Failures go back to the cache, which asks for them again
// until its attempt limit.
func (l *Loader) Drain() int {
	n := 0
	for {
		select {
		case r := <-l.results:
			n++
			if r.err != nil || r.img == nil {
				slog.Warn("Image load failed", "index", r.key.Index, "error", r.err)
				l.cache.Fail(r.key)
				continue
			}
			l.cache.Put(r.key, r.img)
		default:
			return n
		}
	}
}

// Close releases goroutines still waiting to deliver a result. It is safe to
// call more than once.
func (l *Loader) Close() {
	l.once.Do(func() { close(l.done) })
}
