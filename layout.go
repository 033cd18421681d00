package exists

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// This file is the diagnostic surface of the package: structured-log values
// for attaching handles to slog records, and JSON layout dumps for inspecting
// how a slice handle tiles memory. Nothing here reads element values; only
// addresses and layout are reported.

// LogValue implements slog.LogValuer.
func (r Ref[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", fmt.Sprintf("%p", r.data)),
		slog.Int("elementSize", int(sizeOf[T]())),
	)
}

// LogValue implements slog.LogValuer.
func (m Mut[T]) LogValue() slog.Value {
	return m.Ref().LogValue()
}

// LogValue implements slog.LogValuer.
func (s Slice[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", fmt.Sprintf("%p", s.data)),
		slog.Int("length", s.length),
		slog.Int("elementSize", int(sizeOf[T]())),
	)
}

// LogValue implements slog.LogValuer.
func (m MutSlice[T]) LogValue() slog.Value {
	return m.Slice().LogValue()
}

// LayoutJSON writes the handle's memory layout into an in-progress JSON
// object: start address, element count, element size and alignment, and total
// bytes covered.
func (s Slice[T]) LayoutJSON(json *jwriter.ObjectState) {
	json.Name("Address").String(fmt.Sprintf("%p", s.data))
	json.Name("Length").Int(s.length)
	json.Name("ElementSize").Int(int(sizeOf[T]()))
	json.Name("ElementAlignment").Int(int(alignOf[T]()))
	json.Name("TotalBytes").Int(s.length * int(sizeOf[T]()))
}

// BuildLayoutString returns the handle's memory layout as a JSON document.
// When chunkSize is positive, the document additionally includes one entry
// per chunk the handle splits into at that size, with each chunk's offset in
// elements and length.
func BuildLayoutString[T any](s Slice[T], chunkSize int) string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	s.LayoutJSON(&obj)

	if chunkSize > 0 {
		chunkArray := obj.Name("Chunks").Array()

		offset := 0
		chunks := s.Chunks(chunkSize)
		for chunk, ok := chunks.Next(); ok; chunk, ok = chunks.Next() {
			chunkObj := chunkArray.Object()
			chunkObj.Name("Offset").Int(offset)
			chunkObj.Name("Length").Int(chunk.Len())
			chunkObj.End()

			offset += chunk.Len()
		}

		chunkArray.End()
	}

	obj.End()
	return string(writer.Bytes())
}
