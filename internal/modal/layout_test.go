package modal

import (
	"testing"

	"github.com/marcus/artside/internal/transition"
	"github.com/marcus/artside/internal/viewport"
)

func inside(inner, outer Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.Right() <= outer.Right() && inner.Bottom() <= outer.Bottom()
}

func TestCompactLayoutStacksImageOverInfo(t *testing.T) {
	l := LayoutFor(viewport.ModeCompact, 80, 40)

	if l.Mode != viewport.ModeCompact {
		t.Fatalf("Mode = %v, want compact", l.Mode)
	}
	if l.Info.Y != l.Image.Bottom() {
		t.Errorf("info should start below image: image=%+v info=%+v", l.Image, l.Info)
	}
	if l.Image.W != l.Info.W {
		t.Errorf("stacked regions should share a width: %d vs %d", l.Image.W, l.Info.W)
	}
	if !inside(l.Previous, l.Image) || !inside(l.Next, l.Image) {
		t.Errorf("arrows should overlay the image: prev=%+v next=%+v image=%+v", l.Previous, l.Next, l.Image)
	}
	if l.Close.X != 80-buttonW-1 || l.Close.Y != 1 {
		t.Errorf("close should be pinned to the screen corner, got %+v", l.Close)
	}
}

func TestExpandedLayoutSideBySide(t *testing.T) {
	l := LayoutFor(viewport.ModeExpanded, 200, 50)

	if l.Image.W <= l.Panel.W/2 {
		t.Errorf("image column should take most of the panel: image=%d panel=%d", l.Image.W, l.Panel.W)
	}
	if l.Info.X >= l.Image.Right() {
		t.Errorf("info card should overlap the image: info.X=%d image.Right=%d", l.Info.X, l.Image.Right())
	}
	if l.Info.Y <= l.Image.Y {
		t.Errorf("info card should be dropped below the image top: %d vs %d", l.Info.Y, l.Image.Y)
	}
	if l.Previous.X != 1 || l.Next.Right() != 200-1 {
		t.Errorf("arrows should sit at the screen edges: prev=%+v next=%+v", l.Previous, l.Next)
	}
	if !inside(l.Close, l.Panel) {
		t.Errorf("close should be pinned inside the panel: close=%+v panel=%+v", l.Close, l.Panel)
	}
	if inside(l.Previous, l.Panel) || inside(l.Next, l.Panel) {
		t.Error("arrows should be outside the panel")
	}
	if l.Panel.W > expandedMaxPanelW {
		t.Errorf("panel width %d exceeds max %d", l.Panel.W, expandedMaxPanelW)
	}
}

func TestLayoutRegionsOrder(t *testing.T) {
	l := LayoutFor(viewport.ModeExpanded, 160, 40)

	regions := l.Regions(true)
	want := []string{RegionBackdrop, RegionPanel, RegionClose, RegionPrevious, RegionNext}
	if len(regions) != len(want) {
		t.Fatalf("regions = %v", regions)
	}
	for i := range want {
		if regions[i].ID != want[i] {
			t.Errorf("region %d = %s, want %s", i, regions[i].ID, want[i])
		}
	}

	if got := len(l.Regions(false)); got != 3 {
		t.Errorf("without navigation got %d regions, want 3", got)
	}
}

func TestLayoutTinyScreenDoesNotPanic(t *testing.T) {
	for _, mode := range []viewport.Mode{viewport.ModeCompact, viewport.ModeExpanded} {
		l := LayoutFor(mode, 1, 1)
		if l.Panel.W <= 0 || l.Panel.H <= 0 {
			t.Errorf("%v: degenerate panel %+v", mode, l.Panel)
		}
	}
}

func TestLayoutSnapshotKeys(t *testing.T) {
	s := LayoutFor(viewport.ModeExpanded, 160, 40).Snapshot(4)
	if _, ok := s[transition.ContainerKey(4)]; !ok {
		t.Error("snapshot missing container key")
	}
	if _, ok := s[transition.ImageKey(4)]; !ok {
		t.Error("snapshot missing image key")
	}
	if len(s) != 2 {
		t.Errorf("snapshot has %d keys, want 2", len(s))
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		from    State
		trigger Trigger
		want    State
		ok      bool
	}{
		{StateClosed, TriggerOpen, StateOpening, true},
		{StateOpening, TriggerEntered, StateOpen, true},
		{StateOpen, TriggerClose, StateClosing, true},
		{StateClosing, TriggerFinalize, StateClosed, true},
		{StateClosing, TriggerOpen, StateOpening, true},
		{StateClosed, TriggerClose, StateClosed, false},
		{StateOpen, TriggerFinalize, StateOpen, false},
	}
	for _, tt := range tests {
		got, ok := Next(tt.from, tt.trigger)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Next(%s, %s) = %s, %v; want %s, %v", tt.from, tt.trigger, got, ok, tt.want, tt.ok)
		}
	}
}
