package transition

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Key correlates renderings of the same element across layouts.
type Key string

const (
	containerPrefix = "container:"
	imagePrefix     = "image:"
)

// ContainerKey is the correlation key for an artwork's outer frame.
func ContainerKey(id int) Key { return Key(containerPrefix + strconv.Itoa(id)) }

// ImageKey is the correlation key for an artwork's picture.
func ImageKey(id int) Key { return Key(imagePrefix + strconv.Itoa(id)) }

// ArtworkID extracts the artwork id encoded in k.
func (k Key) ArtworkID() (int, bool) {
	s := string(k)
	switch {
	case strings.HasPrefix(s, containerPrefix):
		s = s[len(containerPrefix):]
	case strings.HasPrefix(s, imagePrefix):
		s = s[len(imagePrefix):]
	default:
		return 0, false
	}
	id, err := strconv.Atoi(s)
	return id, err == nil
}

// IsImage reports whether k is an image key.
func (k Key) IsImage() bool { return strings.HasPrefix(string(k), imagePrefix) }

// Bounds is an element's on-screen rectangle in cells. Fractional values only
// appear mid-animation.
type Bounds struct {
	X, Y, W, H float64
}

// Round snaps b to whole cells.
func (b Bounds) Round() (x, y, w, h int) {
	return int(math.Round(b.X)), int(math.Round(b.Y)), int(math.Round(b.W)), int(math.Round(b.H))
}

func lerpBounds(a, b Bounds, t float64) Bounds {
	return Bounds{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		W: lerp(a.W, b.W, t),
		H: lerp(a.H, b.H, t),
	}
}

// Element is the visual state of one keyed element.
type Element struct {
	Bounds  Bounds
	Radius  float64
	Opacity float64
}

// Snapshot is the set of keyed elements visible in one rendered layout.
type Snapshot map[Key]Element

// Put records an element at full opacity.
func (s Snapshot) Put(k Key, b Bounds, radius float64) {
	s[k] = Element{Bounds: b, Radius: radius, Opacity: 1}
}

// Keys returns the snapshot's keys in sorted order.
func (s Snapshot) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
