package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right corner
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapLaterRegionsWin(t *testing.T) {
	hm := NewHitMap()

	// Overlay stacking: backdrop, then panel, then a button on the panel.
	hm.AddRect("modal:backdrop", 0, 0, 100, 40, nil)
	hm.AddRect("modal:panel", 10, 5, 80, 30, nil)
	hm.AddRect("modal:close", 85, 6, 3, 1, nil)

	tests := []struct {
		x, y int
		want string
	}{
		{86, 6, "modal:close"},
		{50, 20, "modal:panel"},
		{2, 2, "modal:backdrop"},
	}
	for _, tt := range tests {
		r := hm.Test(tt.x, tt.y)
		if r == nil || r.ID != tt.want {
			t.Errorf("Test(%d, %d) = %v, want %s", tt.x, tt.y, r, tt.want)
		}
	}

	if r := hm.Test(200, 200); r != nil {
		t.Errorf("expected no hit outside all regions, got %v", r)
	}
}

func TestHitMapData(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("card:3", 0, 0, 10, 10, 3)
	r := hm.Test(5, 5)
	if r == nil || r.Data.(int) != 3 {
		t.Errorf("expected card payload 3, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 50, 50, nil)
	hm.AddRect("b", 60, 0, 50, 50, nil)
	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("card:1", 10, 10, 30, 10, 1)

	if a := h.HandleMouse(press(20, 15)); a.Type != ActionNone {
		t.Errorf("press alone should not click, got %v", a.Type)
	}
	a := h.HandleMouse(release(20, 15))
	if a.Type != ActionClick {
		t.Fatalf("expected ActionClick, got %v", a.Type)
	}
	if a.Region == nil || a.Region.ID != "card:1" {
		t.Errorf("expected region card:1, got %v", a.Region)
	}
	if h.IsDragging() {
		t.Error("release should end the gesture")
	}
}

func TestHandleMouseClickOnEmptySpace(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("card:1", 10, 10, 30, 10, nil)

	h.HandleMouse(press(1, 1))
	a := h.HandleMouse(release(1, 1))
	if a.Type != ActionClick || a.Region != nil {
		t.Errorf("click on nothing = %v %v, want click with no region", a.Type, a.Region)
	}
}

func TestHandleMouseSwipe(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("modal:panel", 0, 0, 100, 30, nil)

	h.HandleMouse(press(50, 10))
	if !h.IsDragging() || h.DragRegion() != "modal:panel" {
		t.Fatalf("press should start a drag on the panel, got %q", h.DragRegion())
	}

	a := h.HandleMouse(tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionMotion})
	if a.Type != ActionDrag || a.DragDX != -10 || a.DragDY != 1 {
		t.Errorf("motion = %v (%d,%d), want drag (-10,1)", a.Type, a.DragDX, a.DragDY)
	}

	a = h.HandleMouse(release(30, 11))
	if a.Type != ActionDragEnd {
		t.Fatalf("expected ActionDragEnd, got %v", a.Type)
	}
	if a.DragDX != -20 || a.Region == nil || a.Region.ID != "modal:panel" {
		t.Errorf("drag end = dx %d region %v", a.DragDX, a.Region)
	}
}

func TestHandleMouseClickSlop(t *testing.T) {
	tests := []struct {
		name   string
		slop   int
		dx, dy int
		want   ActionType
	}{
		{"exact click", 0, 0, 0, ActionClick},
		{"jitter without slop drags", 0, 1, 0, ActionDragEnd},
		{"jitter within slop clicks", 3, 1, -1, ActionClick},
		{"edge of slop clicks", 3, -3, 0, ActionClick},
		{"past slop drags", 3, 4, 0, ActionDragEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			h.ClickSlop = tt.slop
			h.HitMap.AddRect("modal:backdrop", 0, 0, 100, 30, nil)

			h.HandleMouse(press(50, 10))
			a := h.HandleMouse(release(50+tt.dx, 10+tt.dy))
			if a.Type != tt.want {
				t.Fatalf("got %v, want %v", a.Type, tt.want)
			}
			if a.Type == ActionClick && (a.Region == nil || a.Region.ID != "modal:backdrop") {
				t.Errorf("click region = %v, want modal:backdrop", a.Region)
			}
		})
	}
}

func TestHandlerCancel(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("modal:panel", 0, 0, 100, 30, nil)

	h.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	h.HandleMouse(press(50, 10))
	h.Cancel()
	if h.IsDragging() || h.HoverRegion() != "" {
		t.Errorf("after cancel: dragging %v, hover %q", h.IsDragging(), h.HoverRegion())
	}
	if a := h.HandleMouse(release(20, 10)); a.Type != ActionNone {
		t.Errorf("release after cancel = %v, want none", a.Type)
	}
}

func TestHandleMouseWheelAndHover(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("card:2", 0, 0, 10, 10, nil)

	a := h.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if a.Type != ActionScrollDown {
		t.Errorf("expected ActionScrollDown, got %v", a.Type)
	}
	a = h.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if a.Type != ActionScrollUp {
		t.Errorf("expected ActionScrollUp, got %v", a.Type)
	}
	a = h.HandleMouse(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionMotion})
	if a.Type != ActionHover || h.HoverRegion() != "card:2" {
		t.Errorf("hover = %v on %q", a.Type, h.HoverRegion())
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)
	h.Clear()
	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
