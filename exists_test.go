package exists_test

import (
	"testing"
	"unsafe"

	"github.com/ptrkit/exists"
	"github.com/stretchr/testify/require"
)

func TestScalarRead(t *testing.T) {
	x := 10
	r := exists.NewRef(&x)
	require.Equal(t, 10, r.Get())
	require.Equal(t, unsafe.Pointer(&x), r.Addr())
}

func TestScalarRoundTrip(t *testing.T) {
	x := uint64(10)
	m := exists.NewMut(&x)

	m.Set(20)
	require.Equal(t, uint64(20), m.Get())
	require.Equal(t, uint64(20), x)

	m.Set(30)
	require.Equal(t, uint64(30), x)
}

func TestReplaceReturnsPriorValue(t *testing.T) {
	x := 10
	m := exists.NewMut(&x)

	require.Equal(t, 10, m.Replace(20))
	require.Equal(t, 20, m.Get())
	require.Equal(t, 20, x)
}

func TestTakeLeavesZeroValue(t *testing.T) {
	x := "occupied"
	m := exists.NewMut(&x)

	require.Equal(t, "occupied", m.Take())
	require.Equal(t, "", m.Get())
}

func TestSelfSwapIsIdentity(t *testing.T) {
	x := 42
	m := exists.NewMut(&x)

	m.Swap(m)
	require.Equal(t, 42, x)
}

func TestDisjointSwap(t *testing.T) {
	a, b := 1, 2
	ma := exists.NewMut(&a)
	mb := exists.NewMut(&b)

	ma.Swap(mb)
	require.Equal(t, 2, a)
	require.Equal(t, 1, b)
}

func TestCopyMutAliasingVisibility(t *testing.T) {
	x := uint32(10)
	copies := exists.NewMut(&x).CopyMut(2)
	require.Len(t, copies, 2)

	copies[0].Set(20)
	require.Equal(t, uint32(20), copies[1].Get())

	copies[1].Set(30)
	require.Equal(t, uint32(30), copies[0].Get())
	require.Equal(t, uint32(30), x)
}

func TestAssumeMutRoundTrip(t *testing.T) {
	x := uint64(10)

	// Downgrade to a read handle, then reclaim write capability. The address
	// originated from a writable variable, so the upgrade is justified.
	r := exists.NewMut(&x).Ref()
	m := r.AssumeMut()

	m.Set(20)
	require.Equal(t, uint64(20), r.Get())
	require.Equal(t, uint64(20), m.Replace(10))
	require.Equal(t, uint64(10), x)
}

func TestCellHandlesMayAlias(t *testing.T) {
	c := exists.NewCell(int32(10))

	m1 := exists.NewMutFromCell(&c)
	m2 := exists.NewMutFromCell(&c)

	m1.Set(20)
	require.Equal(t, int32(20), m2.Get())
	require.Equal(t, int32(20), c.Get())

	c.Set(30)
	require.Equal(t, int32(30), m1.Get())
}

func TestCellUncheckedRoundTrip(t *testing.T) {
	c := exists.NewCell(uint64(10))
	m := exists.NewMutFromCell(&c)
	require.Equal(t, uint64(10), m.Get())

	back := m.CellUnchecked()
	require.Equal(t, uint64(10), back.Replace(20))
	require.Equal(t, uint64(20), c.Get())

	back.Set(30)
	require.Equal(t, uint64(30), m.Get())
}

func TestEscapeHatches(t *testing.T) {
	x := 10

	r := exists.NewRef(&x)
	require.Equal(t, 10, *r.RefUnchecked())

	m := exists.NewMut(&x)
	p := m.MutUnchecked()
	*p = 30
	require.Equal(t, 30, m.Get())
}

func TestRawPointerConstruction(t *testing.T) {
	x := [2]uint64{10, 20}

	second := exists.NewRefUnsafe[uint64](unsafe.Add(unsafe.Pointer(&x[0]), unsafe.Sizeof(x[0])))
	require.Equal(t, uint64(20), second.Get())

	mut := exists.NewMutUnsafe[uint64](unsafe.Pointer(&x[1]))
	mut.Set(30)
	require.Equal(t, [2]uint64{10, 30}, x)
}
