package console

// minThumb keeps the scrollbar grabbable on long transcripts.
const minThumb = 8

// ScrollState tracks how many visual lines are held back below the bottom
// of the viewport. Off 0 pins the newest line to the bottom edge.
type ScrollState struct {
	Off  int
	Page int
}

// View is one render pass worth of derived scroll geometry.
type View struct {
	First  int // index of the first visible line
	Count  int // visible line count
	Before int // lines hidden above
	After  int // lines hidden below
	ThumbY int
	ThumbH int
	TrackH int
}

// Layout clamps Off into [0, lines], derives the visible window and page
// size, and positions the scrollbar thumb. When the whole transcript fits
// the viewport it resets Off so the first line is fully visible instead of
// preserving an out-of-range scroll.
func (s *ScrollState) Layout(heights []int, viewH int) View {
	n := len(heights)
	if s.Off < 0 {
		s.Off = 0
	}
	if s.Off > n {
		s.Off = n
	}

	total := 0
	for _, h := range heights {
		total += h
	}
	if total <= viewH {
		s.Off = 0
		s.Page = maxInt(1, n)
		return View{First: 0, Count: n, ThumbY: 0, ThumbH: viewH, TrackH: viewH}
	}

	end := n - s.Off
	if end < 1 {
		end = 1
	}
	first := end
	used := 0
	for first > 0 && used+heights[first-1] <= viewH {
		used += heights[first-1]
		first--
	}
	// Scrolled past the top with room to spare: pull lines back in from
	// below so the viewport stays full.
	for end < n && used+heights[end] <= viewH {
		used += heights[end]
		end++
	}
	s.Off = n - end
	s.Page = maxInt(1, end-first)

	thumbH := viewH * viewH / total
	if thumbH < minThumb {
		thumbH = minThumb
	}
	if thumbH > viewH {
		thumbH = viewH
	}
	beforeH := 0
	for _, h := range heights[:first] {
		beforeH += h
	}
	thumbY := 0
	// Scale by the scrollable extent so the min-height floor cannot push
	// the thumb off the track.
	if denom := total - viewH; denom > 0 {
		thumbY = (viewH - thumbH) * beforeH / denom
	}
	thumbY = clamp(thumbY, 0, viewH-thumbH)

	return View{
		First:  first,
		Count:  end - first,
		Before: first,
		After:  n - end,
		ThumbY: thumbY,
		ThumbH: thumbH,
		TrackH: viewH,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
