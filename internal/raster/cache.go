package raster

import "image"

// maxAttempts bounds how often a failing image is asked for again.
const maxAttempts = 3

// Key identifies one thumbnail: an image index at a pixel size.
type Key struct {
	Index int
	W, H  int
}

type entry struct {
	img      *image.RGBA
	inflight bool
	failures int
}

// Cache holds decoded thumbnails. A miss queues a request and the caller
// draws a placeholder for that frame; the loaded image shows up on a later
// frame. It is only touched from the host's update loop.
type Cache struct {
	entries map[Key]*entry
	pending []Key
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Thumb returns the thumbnail for index at w×h, or nil after queueing a
// load for it.
func (c *Cache) Thumb(index, w, h int) *image.RGBA {
	k := Key{Index: index, W: w, H: h}
	e, ok := c.entries[k]
	if !ok {
		e = &entry{}
		c.entries[k] = e
	}
	if e.img != nil {
		return e.img
	}
	if !e.inflight && e.failures < maxAttempts {
		e.inflight = true
		c.pending = append(c.pending, k)
	}
	return nil
}

// Requests drains the queued loads.
func (c *Cache) Requests() []Key {
	out := c.pending
	c.pending = nil
	return out
}

// Put stores a loaded thumbnail.
func (c *Cache) Put(k Key, img *image.RGBA) {
	c.entries[k] = &entry{img: img}
}

// Fail records a failed load; the key is requested again on its next miss
// until it has failed maxAttempts times.
func (c *Cache) Fail(k Key) {
	e, ok := c.entries[k]
	if !ok {
		e = &entry{}
		c.entries[k] = e
	}
	e.inflight = false
	e.failures++
}

// Len returns the number of loaded thumbnails.
func (c *Cache) Len() int {
	n := 0
	for _, e := range c.entries {
		if e.img != nil {
			n++
		}
	}
	return n
}

// Clear drops everything, e.g. after a resize changes thumbnail sizes.
func (c *Cache) Clear() {
	clear(c.entries)
	c.pending = nil
}
