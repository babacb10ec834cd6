// Package mouse maps terminal mouse events onto named screen regions.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangle in terminal cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last rendered frame. Regions added later
// are on top and win hit tests.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from its coordinates.
func (h *HitMap) AddRect(id string, x, y, w, hgt int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: hgt}, data)
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the registered regions, bottom first.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// ActionType classifies a mouse event after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionDrag
	ActionDragEnd
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	default:
		return "none"
	}
}

// Action is the result of handling one mouse message.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
	DragDX int
	DragDY int
}

// Handler tracks hit regions plus an in-progress drag gesture.
type Handler struct {
	HitMap *HitMap
	// ClickSlop is how many cells the pointer may move between press and
	// release while still counting as a click.
	ClickSlop int

	dragging    bool
	dragRegion  string
	dragStartX  int
	dragStartY  int
	hoverRegion string
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// StartDrag begins a drag gesture at (x, y) on region.
func (h *Handler) StartDrag(x, y int, region string) {
	h.dragging = true
	h.dragRegion = region
	h.dragStartX = x
	h.dragStartY = y
}

// IsDragging reports whether a drag is in progress.
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion returns the region the current drag started on.
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragDelta returns the offset of (x, y) from the drag origin.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag finishes the current drag.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// HoverRegion returns the id of the region under the pointer, if any.
func (h *Handler) HoverRegion() string { return h.hoverRegion }

// Cancel abandons any drag in progress and forgets the hovered region.
func (h *Handler) Cancel() {
	h.EndDrag()
	h.hoverRegion = ""
}

// Clear drops all regions; call it before registering a new frame.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse hit-tests msg and classifies it. A left press starts a drag on
// the pressed region so that release can tell a click from a swipe.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)
	action := Action{Region: region, X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
		case tea.MouseButtonLeft:
			id := ""
			if region != nil {
				id = region.ID
			}
			h.StartDrag(msg.X, msg.Y, id)
			action.Type = ActionNone
		}

	case tea.MouseActionMotion:
		if h.dragging {
			action.Type = ActionDrag
			action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
			return action
		}
		h.hoverRegion = ""
		if region != nil {
			h.hoverRegion = region.ID
		}
		action.Type = ActionHover

	case tea.MouseActionRelease:
		if !h.dragging {
			return action
		}
		dx, dy := h.DragDelta(msg.X, msg.Y)
		started := h.dragRegion
		h.EndDrag()
		if abs(dx) <= h.ClickSlop && abs(dy) <= h.ClickSlop {
			action.Type = ActionClick
			if region == nil || region.ID != started {
				action.Region = nil
			}
			return action
		}
		action.Type = ActionDragEnd
		action.DragDX, action.DragDY = dx, dy
		action.Region = &Region{ID: started}
	}
	return action
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
