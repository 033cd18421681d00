package exists

import "fmt"

// RangeIndex is a bounds expression accepted by the range forms of the slice
// handle indexing methods. The set of implementations is closed: Span, SpanTo,
// SpanFrom, SpanInclusive, and Full. Each resolves to a half-open [start, end)
// window over a slice of a given length.
type RangeIndex interface {
	// bounds resolves the window against length. ok is false exactly when an
	// endpoint falls outside [0, length] or the window is inverted.
	bounds(length int) (start, end int, ok bool)
	// mustBounds resolves the window against length, panicking with the fixed
	// out-of-range diagnostics on an invalid window.
	mustBounds(length int) (start, end int)
	// rawBounds resolves the window with no validation at all.
	rawBounds(length int) (start, end int)
}

// Span selects the half-open window [Start, End).
type Span struct {
	Start int
	End   int
}

// SpanTo selects the window [0, End).
type SpanTo struct {
	End int
}

// SpanFrom selects the window [Start, len).
type SpanFrom struct {
	Start int
}

// SpanInclusive selects the closed window [Start, End], both endpoints
// included. It resolves as Span{Start, End + 1}; an End at the top of the int
// range cannot be represented and is always out of bounds.
type SpanInclusive struct {
	Start int
	End   int
}

// Full selects the whole slice. It can never be out of bounds.
type Full struct{}

func (s Span) bounds(length int) (int, int, bool) {
	if s.Start < 0 || s.Start > s.End || s.End > length {
		return 0, 0, false
	}
	return s.Start, s.End, true
}

func (s Span) mustBounds(length int) (int, int) {
	if s.Start > s.End {
		rangeOrderFail(s.Start, s.End)
	}
	if s.Start < 0 {
		rangeStartOutOfRange(s.Start, length)
	}
	if s.End > length {
		rangeEndOutOfRange(s.End, length)
	}
	return s.Start, s.End
}

func (s Span) rawBounds(int) (int, int) {
	return s.Start, s.End
}

func (s SpanTo) bounds(length int) (int, int, bool) {
	return Span{Start: 0, End: s.End}.bounds(length)
}

func (s SpanTo) mustBounds(length int) (int, int) {
	return Span{Start: 0, End: s.End}.mustBounds(length)
}

func (s SpanTo) rawBounds(int) (int, int) {
	return 0, s.End
}

func (s SpanFrom) bounds(length int) (int, int, bool) {
	return Span{Start: s.Start, End: length}.bounds(length)
}

func (s SpanFrom) mustBounds(length int) (int, int) {
	if s.Start < 0 || s.Start > length {
		rangeStartOutOfRange(s.Start, length)
	}
	return s.Start, length
}

func (s SpanFrom) rawBounds(length int) (int, int) {
	return s.Start, length
}

func (s SpanInclusive) bounds(length int) (int, int, bool) {
	if s.End == maxInt {
		return 0, 0, false
	}
	return Span{Start: s.Start, End: s.End + 1}.bounds(length)
}

func (s SpanInclusive) mustBounds(length int) (int, int) {
	if s.End == maxInt {
		panic("inclusive range end exceeds the maximum representable index")
	}
	return Span{Start: s.Start, End: s.End + 1}.mustBounds(length)
}

func (s SpanInclusive) rawBounds(length int) (int, int) {
	return s.Start, s.End + 1
}

func (Full) bounds(length int) (int, int, bool) {
	return 0, length, true
}

func (Full) mustBounds(length int) (int, int) {
	return 0, length
}

func (Full) rawBounds(length int) (int, int) {
	return 0, length
}

const maxInt = int(^uint(0) >> 1)

// The diagnostic text below is a compatibility surface: callers inspect it
// when recovering from indexing panics. Do not reword.

func indexOutOfRange(index, length int) {
	panic(fmt.Sprintf("index %d out of range for slice of length %d", index, length))
}

func rangeOrderFail(start, end int) {
	panic(fmt.Sprintf("slice index starts at %d but ends at %d", start, end))
}

func rangeStartOutOfRange(start, length int) {
	panic(fmt.Sprintf("range start index %d out of range for slice of length %d", start, length))
}

func rangeEndOutOfRange(end, length int) {
	panic(fmt.Sprintf("range end index %d out of range for slice of length %d", end, length))
}
