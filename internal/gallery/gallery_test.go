package gallery

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/olivier-w/folio/internal/media"
)

func TestAtWrapsBothDirections(t *testing.T) {
	g := New([]Item{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	cases := map[int]string{0: "a", 2: "c", 3: "a", -1: "c", -4: "c", 7: "b"}
	for i, want := range cases {
		if got := g.At(i).Title; got != want {
			t.Fatalf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestAtOnEmptyGallery(t *testing.T) {
	g := New(nil)
	if got := g.At(5); got != (Item{}) {
		t.Fatalf("At on empty gallery = %#v", got)
	}
	if g.Len() != 0 {
		t.Fatalf("Len() = %d", g.Len())
	}
}

func TestShuffleKeepsFirstAndPermutes(t *testing.T) {
	g := Default()
	first := g.At(0)
	g.Shuffle(rand.New(rand.NewSource(7)))

	if !g.IsShuffled() {
		t.Fatal("expected shuffled state")
	}
	if g.At(0) != first {
		t.Fatalf("position 0 moved: %#v", g.At(0))
	}

	titles := func(items []Item) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.Title
		}
		sort.Strings(out)
		return out
	}
	got, want := titles(g.Items()), titles(builtin)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shuffle lost or duplicated items: %v", got)
		}
	}

	g.Unshuffle()
	if g.IsShuffled() || g.At(1) != builtin[1] {
		t.Fatal("Unshuffle did not restore the order")
	}
}

func TestShuffleSmallPoolIsNoop(t *testing.T) {
	g := New([]Item{{Title: "a"}, {Title: "b"}})
	g.Shuffle(rand.New(rand.NewSource(1)))
	if g.IsShuffled() {
		t.Fatal("a two-item pool should not shuffle")
	}
}

func TestFromLibraryPairsImagesAndProjects(t *testing.T) {
	g := FromLibrary(media.Library{
		Images:   []string{"/img/01_night-market.jpg", "/img/b.png", "/img/c.png"},
		Projects: []media.Project{{Title: "One", Subtitle: "First"}},
	})
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	if got := g.At(2); got.Title != "One" || got.Path != "/img/c.png" {
		t.Fatalf("At(2) = %#v", got)
	}
	if g.Images() != 3 {
		t.Fatalf("Images() = %d", g.Images())
	}
}

func TestFromLibraryTitlesFromFileNames(t *testing.T) {
	g := FromLibrary(media.Library{Images: []string{"/img/01_night-market.jpg"}})
	if got := g.At(0).Title; got != "Night Market" {
		t.Fatalf("title = %q", got)
	}
}

func TestFromLibraryWithoutImages(t *testing.T) {
	g := FromLibrary(media.Library{Projects: []media.Project{{Title: "A"}, {Title: "B"}}})
	if g.Len() != 2 || g.At(1).HasImage() || g.Images() != 0 {
		t.Fatalf("unexpected gallery %#v", g.Items())
	}

	if FromLibrary(media.Library{}).Len() != len(builtin) {
		t.Fatal("an empty library should fall back to the built-in list")
	}
}
