package chat

// DefaultScrollThreshold is the distance, in lines, within which the view counts as being at the bottom.
const DefaultScrollThreshold = 3

// Position describes a scrollable region in lines.
type Position struct {
	Total  int // Lines of content
	Offset int // First visible line
	Height int // Visible lines
}

// Distance is the number of content lines below the visible area.
func (p Position) Distance() int {
	return max(0, p.Total-(p.Offset+p.Height))
}

// Scroll tracks whether the "scroll to latest" affordance is shown.
type Scroll struct {
	threshold  int
	showLatest bool
}

func NewScroll(threshold int) *Scroll {
	if threshold < 0 {
		threshold = DefaultScrollThreshold
	}
	return &Scroll{threshold: threshold}
}

func (s *Scroll) Threshold() int { return s.threshold }

// ContentChanged is called when messages or the waiting indicator change, with the position measured
// before the new content was laid out. It reports whether the view should jump to the bottom.
func (s *Scroll) ContentChanged(before Position) bool {
	if before.Distance() <= s.threshold {
		s.showLatest = false
		return true
	}
	s.showLatest = true
	return false
}

// Scrolled recomputes the affordance after a manual scroll.
func (s *Scroll) Scrolled(now Position) {
	s.showLatest = now.Distance() > s.threshold
}

// JumpToLatest hides the affordance once the view has been moved to the bottom.
func (s *Scroll) JumpToLatest() { s.showLatest = false }

// ShowLatest reports whether the "scroll to latest" affordance is visible.
func (s *Scroll) ShowLatest() bool { return s.showLatest }
