//go:build !amd64

package lane

func interleaveBytes(padded [][]byte, w, l int) [][]byte {
	return interleaveGeneric(padded, w, l)
}
