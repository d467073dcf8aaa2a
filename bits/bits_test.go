package bits_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/blobpack/bits"
)

func TestGetSet(t *testing.T) {
	buf := []byte{0b_1010_0000, 0b_0000_0001}

	require.Equal(t, byte(1), bits.Get(buf, 0))
	require.Equal(t, byte(0), bits.Get(buf, 1))
	require.Equal(t, byte(1), bits.Get(buf, 2))
	require.Equal(t, byte(0), bits.Get(buf, 8))
	require.Equal(t, byte(1), bits.Get(buf, 15))

	bits.Set(buf, 1, 1)
	require.Equal(t, []byte{0b_1110_0000, 0b_0000_0001}, buf)

	bits.Set(buf, 0, 0)
	require.Equal(t, []byte{0b_0110_0000, 0b_0000_0001}, buf)

	bits.Set(buf, 15, 0)
	require.Equal(t, []byte{0b_0110_0000, 0b_0000_0000}, buf)
}

func TestCopy(t *testing.T) {
	type TC struct {
		Dst    []byte
		DstOff int
		Src    []byte
		SrcOff int
		N      int
		Want   []byte
	}

	tcs := []TC{
		// Aligned whole bytes.
		{
			Dst:  []byte{0b_0000_0000, 0b_0000_0000},
			Src:  []byte{0b_1010_1010, 0b_1111_0000},
			N:    16,
			Want: []byte{0b_1010_1010, 0b_1111_0000},
		},
		// Aligned with a bit tail; trailing destination bits keep
		// their value.
		{
			Dst:  []byte{0b_0000_0000, 0b_0000_0001},
			Src:  []byte{0b_1010_1010, 0b_1111_1111},
			N:    12,
			Want: []byte{0b_1010_1010, 0b_1111_0001},
		},
		// Unaligned source straddling a byte boundary.
		{
			Dst:    []byte{0b_0000_0000},
			Src:    []byte{0b_0001_1111, 0b_1000_0000},
			SrcOff: 3,
			N:      6,
			Want:   []byte{0b_1111_1100},
		},
		// Unaligned destination; surrounding bits are preserved.
		{
			Dst:    []byte{0b_1000_0001},
			DstOff: 2,
			Src:    []byte{0b_1110_0000},
			N:      3,
			Want:   []byte{0b_1011_1001},
		},
		// Unaligned on both sides, spanning bytes on both sides.
		{
			Dst:    []byte{0b_1111_1111, 0b_1111_1111, 0b_1111_1111},
			DstOff: 6,
			Src:    []byte{0b_0000_0000, 0b_0000_0000, 0b_0000_0000},
			SrcOff: 5,
			N:      13,
			Want:   []byte{0b_1111_1100, 0b_0000_0000, 0b_0001_1111},
		},
		// Zero length copies touch nothing.
		{
			Dst:    []byte{0b_1111_1111},
			DstOff: 4,
			Src:    []byte{0b_0000_0000},
			SrcOff: 2,
			N:      0,
			Want:   []byte{0b_1111_1111},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%d dst=%d src=%d n=%d", i, tc.DstOff, tc.SrcOff, tc.N), func(t *testing.T) {
			bits.Copy(tc.Dst, tc.DstOff, tc.Src, tc.SrcOff, tc.N)
			require.Equal(t, tc.Want, tc.Dst)
		})
	}
}

// TestCopyOffsets sweeps offset combinations and verifies every copied bit
// against Get, along with the untouched bits on both sides of the
// destination run.
func TestCopyOffsets(t *testing.T) {
	type TC struct {
		DstOff int
		SrcOff int
		N      int
	}

	tcs := []TC{
		{0, 0, 64},
		{0, 3, 40},
		{3, 0, 40},
		{5, 7, 13},
		{7, 1, 9},
		{1, 1, 1},
		{1, 7, 7},
		{6, 2, 254},
		{2, 6, 254},
		{4, 4, 250},
		{0, 254, 254},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("dst=%d src=%d n=%d", tc.DstOff, tc.SrcOff, tc.N), func(t *testing.T) {
			src := make([]byte, 64)
			for i := range src {
				src[i] = byte(i*37 + 11)
			}

			for _, fill := range []byte{0x00, 0xff} {
				dst := make([]byte, 64)
				for i := range dst {
					dst[i] = fill
				}

				bits.Copy(dst, tc.DstOff, src, tc.SrcOff, tc.N)

				for k := 0; k < tc.N; k++ {
					if bits.Get(dst, tc.DstOff+k) != bits.Get(src, tc.SrcOff+k) {
						t.Fatalf("fill=%#02x bit %d differs", fill, k)
					}
				}

				expect := byte(0)
				if fill == 0xff {
					expect = 1
				}

				for k := 0; k < tc.DstOff; k++ {
					if bits.Get(dst, k) != expect {
						t.Fatalf("fill=%#02x leading bit %d modified", fill, k)
					}
				}
				for k := tc.DstOff + tc.N; k < len(dst)*8; k++ {
					if bits.Get(dst, k) != expect {
						t.Fatalf("fill=%#02x trailing bit %d modified", fill, k)
					}
				}
			}
		})
	}
}
