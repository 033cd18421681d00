package exists_test

import (
	"encoding/json"
	"testing"

	"github.com/ptrkit/exists"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestBuildLayoutString(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7}
	str := exists.BuildLayoutString(exists.NewSlice(data), 3)

	var layout struct {
		Address          string
		Length           int
		ElementSize      int
		ElementAlignment int
		TotalBytes       int
		Chunks           []struct {
			Offset int
			Length int
		}
	}
	require.NoError(t, json.Unmarshal([]byte(str), &layout))

	require.NotEmpty(t, layout.Address)
	require.Equal(t, 7, layout.Length)
	require.Equal(t, 4, layout.ElementSize)
	require.Equal(t, 4, layout.ElementAlignment)
	require.Equal(t, 28, layout.TotalBytes)

	require.Len(t, layout.Chunks, 3)
	require.Equal(t, 0, layout.Chunks[0].Offset)
	require.Equal(t, 3, layout.Chunks[0].Length)
	require.Equal(t, 3, layout.Chunks[1].Offset)
	require.Equal(t, 3, layout.Chunks[1].Length)
	require.Equal(t, 6, layout.Chunks[2].Offset)
	require.Equal(t, 1, layout.Chunks[2].Length)
}

func TestBuildLayoutStringWithoutChunks(t *testing.T) {
	data := []uint64{1, 2, 3}
	str := exists.BuildLayoutString(exists.NewSlice(data), 0)

	var layout map[string]any
	require.NoError(t, json.Unmarshal([]byte(str), &layout))
	require.NotContains(t, layout, "Chunks")
	require.Equal(t, float64(3), layout["Length"])
	require.Equal(t, float64(24), layout["TotalBytes"])
}

func TestHandleLogValues(t *testing.T) {
	x := uint32(7)
	data := []uint32{1, 2, 3}

	scalar := exists.NewRef(&x).LogValue()
	require.Equal(t, slog.KindGroup, scalar.Kind())

	group := exists.NewSlice(data).LogValue()
	require.Equal(t, slog.KindGroup, group.Kind())

	attrs := make(map[string]slog.Value)
	for _, attr := range group.Group() {
		attrs[attr.Key] = attr.Value
	}
	require.Equal(t, int64(3), attrs["length"].Int64())
	require.Equal(t, int64(4), attrs["elementSize"].Int64())
	require.NotEmpty(t, attrs["address"].String())
}
