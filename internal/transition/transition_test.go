package transition

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func gridSnapshot(ids ...int) Snapshot {
	s := Snapshot{}
	for i, id := range ids {
		x := float64(i * 20)
		s.Put(ContainerKey(id), Bounds{X: x, Y: 4, W: 18, H: 10}, 1)
		s.Put(ImageKey(id), Bounds{X: x + 1, Y: 5, W: 16, H: 8}, 0)
	}
	return s
}

func modalSnapshot(id int) Snapshot {
	s := Snapshot{}
	s.Put(ContainerKey(id), Bounds{X: 10, Y: 2, W: 80, H: 30}, 2)
	s.Put(ImageKey(id), Bounds{X: 11, Y: 3, W: 50, H: 28}, 2)
	return s
}

func TestKeys(t *testing.T) {
	if ContainerKey(3) != "container:3" {
		t.Errorf("ContainerKey(3) = %q", ContainerKey(3))
	}
	if ImageKey(12) != "image:12" {
		t.Errorf("ImageKey(12) = %q", ImageKey(12))
	}
	id, ok := ImageKey(12).ArtworkID()
	if !ok || id != 12 {
		t.Errorf("ArtworkID() = %d, %v", id, ok)
	}
	if _, ok := Key("backdrop").ArtworkID(); ok {
		t.Error("backdrop should not carry an artwork id")
	}
	if !ImageKey(1).IsImage() || ContainerKey(1).IsImage() {
		t.Error("IsImage misclassified keys")
	}
}

func TestDiffOpenMorphsSharedKeys(t *testing.T) {
	plan := Diff(gridSnapshot(1, 2, 3), modalSnapshot(2))

	if !plan.HasMorph(ContainerKey(2)) || !plan.HasMorph(ImageKey(2)) {
		t.Errorf("expected container:2 and image:2 to morph, got %v", plan.Morphs)
	}
	if len(plan.Enters) != 0 {
		t.Errorf("Enters = %v, want none", plan.Enters)
	}
	if len(plan.Exits) != 4 {
		t.Errorf("Exits = %v, want the four unrelated card keys", plan.Exits)
	}
}

func TestDiffNavigationNeverCrossMorphs(t *testing.T) {
	before := modalSnapshot(1)
	after := modalSnapshot(2)
	plan := Diff(before, after)

	if len(plan.Morphs) != 0 {
		t.Fatalf("Morphs = %v, want none between different artworks", plan.Morphs)
	}
	if ImageKey(1) == ImageKey(2) {
		t.Fatal("image keys of different artworks must differ")
	}
	wantEnters := []Key{ContainerKey(2), ImageKey(2)}
	wantExits := []Key{ContainerKey(1), ImageKey(1)}
	for i := range wantEnters {
		if plan.Enters[i] != wantEnters[i] {
			t.Errorf("Enters[%d] = %s, want %s", i, plan.Enters[i], wantEnters[i])
		}
		if plan.Exits[i] != wantExits[i] {
			t.Errorf("Exits[%d] = %s, want %s", i, plan.Exits[i], wantExits[i])
		}
	}
}

func TestFrameInterpolatesMorph(t *testing.T) {
	e := NewEngine(400*time.Millisecond, EaseLinear)
	e.Reset(gridSnapshot(1))
	tr := e.Commit(modalSnapshot(1), t0)
	if tr == nil {
		t.Fatal("Commit returned nil for a changed layout")
	}

	mid := e.Frame(t0.Add(200 * time.Millisecond))
	got := mid[ContainerKey(1)]
	// grid X=0,W=18 -> modal X=10,W=80 at half way
	if got.Bounds.X != 5 || got.Bounds.W != 49 {
		t.Errorf("mid-frame bounds = %+v, want X=5 W=49", got.Bounds)
	}
	if got.Radius != 1.5 {
		t.Errorf("mid-frame radius = %v, want 1.5", got.Radius)
	}

	end := e.Frame(t0.Add(400 * time.Millisecond))
	if end[ContainerKey(1)].Bounds != (Bounds{X: 10, Y: 2, W: 80, H: 30}) {
		t.Errorf("end bounds = %+v", end[ContainerKey(1)].Bounds)
	}
	if e.Animating(t0.Add(400 * time.Millisecond)) {
		t.Error("engine should be idle after the duration")
	}
}

func TestFrameCrossFadesOnNavigation(t *testing.T) {
	e := NewEngine(400*time.Millisecond, EaseLinear)
	e.Reset(modalSnapshot(1))
	e.Commit(modalSnapshot(2), t0)

	f := e.Frame(t0.Add(100 * time.Millisecond))
	out, ok := f[ImageKey(1)]
	if !ok {
		t.Fatal("outgoing image should still be visible early in the fade")
	}
	in := f[ImageKey(2)]
	if out.Bounds != modalSnapshot(1)[ImageKey(1)].Bounds {
		t.Errorf("outgoing image moved: %+v", out.Bounds)
	}
	if out.Opacity != 0.75 || in.Opacity != 0.25 {
		t.Errorf("opacities out=%v in=%v, want 0.75/0.25", out.Opacity, in.Opacity)
	}
	if in.Bounds.W != 50 || in.Bounds.X != 11 {
		t.Errorf("incoming image should keep its own geometry, got %+v", in.Bounds)
	}

	f = e.Frame(t0.Add(400 * time.Millisecond))
	if _, ok := f[ImageKey(1)]; ok {
		t.Error("outgoing image should be gone when the fade ends")
	}
}

func TestCommitSameLayoutIsNoop(t *testing.T) {
	e := NewEngine(DefaultDuration, nil)
	e.Reset(modalSnapshot(3))
	if tr := e.Commit(modalSnapshot(3), t0); tr != nil {
		t.Error("committing an identical layout should not start a transition")
	}
	if e.Animating(t0) {
		t.Error("engine should be idle")
	}
}

func TestCommitInterruptsFromCurrentFrame(t *testing.T) {
	e := NewEngine(400*time.Millisecond, EaseLinear)
	e.Reset(gridSnapshot(1))
	e.Commit(modalSnapshot(1), t0)

	// Reverse half way through: the return trip must start from the mid frame.
	at := t0.Add(200 * time.Millisecond)
	tr := e.Commit(gridSnapshot(1), at)
	if tr == nil {
		t.Fatal("reverse commit should start a transition")
	}
	start := tr.Frame(at)[ContainerKey(1)]
	if start.Bounds.X != 5 {
		t.Errorf("reverse transition starts at X=%v, want 5", start.Bounds.X)
	}
}

func TestCommitSameTargetKeepsRunningTransition(t *testing.T) {
	e := NewEngine(400*time.Millisecond, EaseLinear)
	e.Reset(gridSnapshot(1))
	first := e.Commit(modalSnapshot(1), t0)
	if first == nil {
		t.Fatal("first commit should start a transition")
	}

	again := e.Commit(modalSnapshot(1), t0.Add(200*time.Millisecond))
	if again != first {
		t.Errorf("re-committing the target restarted the transition: got %p, want %p", again, first)
	}
	if e.Animating(t0.Add(400 * time.Millisecond)) {
		t.Error("transition should end at its original deadline")
	}
	f := e.Frame(t0.Add(200 * time.Millisecond))
	if got := f[ContainerKey(1)].Bounds.X; got != 5 {
		t.Errorf("mid frame X = %v, want 5", got)
	}
}

func TestSeedMorphsInsteadOfEntering(t *testing.T) {
	e := NewEngine(400*time.Millisecond, EaseLinear)
	e.Reset(modalSnapshot(1))
	e.Commit(gridSnapshot(1), t0) // closing artwork 1

	at := t0.Add(100 * time.Millisecond)
	e.Seed(gridSnapshot(2))
	tr := e.Commit(modalSnapshot(2), at)
	if tr == nil {
		t.Fatal("seeded commit should start a transition")
	}
	plan := tr.Plan()
	for _, k := range []Key{ContainerKey(2), ImageKey(2)} {
		if !plan.HasMorph(k) {
			t.Errorf("%s should morph from its seeded bounds, plan = %+v", k, plan)
		}
	}
	if len(plan.Exits) != 2 {
		t.Errorf("exits = %v, want the closing artwork's two keys", plan.Exits)
	}
	start := tr.Frame(at)[ContainerKey(2)]
	if start.Bounds != gridSnapshot(2)[ContainerKey(2)].Bounds {
		t.Errorf("seeded start = %+v, want the grid bounds", start.Bounds)
	}

	if len(e.seed) != 0 {
		t.Error("seed should be consumed by the commit")
	}
	if again := e.Commit(modalSnapshot(2), at.Add(50*time.Millisecond)); again != tr {
		t.Error("re-committing after a seeded commit restarted the transition")
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range map[string]EasingFunc{
		"linear":     EaseLinear,
		"outQuad":    EaseOutQuad,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
	} {
		if fn(0) != 0 || fn(1) != 1 {
			t.Errorf("%s: f(0)=%v f(1)=%v, want 0 and 1", name, fn(0), fn(1))
		}
	}
}

func TestBoundsRound(t *testing.T) {
	x, y, w, h := Bounds{X: 1.4, Y: 2.6, W: 9.5, H: 3.49}.Round()
	if x != 1 || y != 3 || w != 10 || h != 3 {
		t.Errorf("Round() = %d,%d,%d,%d", x, y, w, h)
	}
}
