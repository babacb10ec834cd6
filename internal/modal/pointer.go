package modal

// Hit region ids the overlay registers each frame. Later registrations win,
// so buttons sit above the panel and the panel above the backdrop.
const (
	RegionBackdrop = "modal:backdrop"
	RegionPanel    = "modal:panel"
	RegionClose    = "modal:close"
	RegionPrevious = "modal:previous"
	RegionNext     = "modal:next"
)

// HandleClick applies a click on region. Clicks on the panel are absorbed so
// they never reach the backdrop. It reports whether the overlay consumed the
// click.
func (c *Controller) HandleClick(region string) bool {
	scope := c.keys
	if scope == nil {
		return false
	}
	switch region {
	case RegionBackdrop, RegionClose:
		_ = scope.close()
		return true
	case RegionPanel:
		return true
	case RegionNext:
		if scope.next != nil {
			_ = scope.next()
		}
		return true
	case RegionPrevious:
		if scope.previous != nil {
			_ = scope.previous()
		}
		return true
	}
	return false
}
