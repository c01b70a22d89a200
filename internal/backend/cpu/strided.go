package cpu

// walk visits every multi-index of dims in row-major order and passes the
// linear position together with one offset per stride vector.
func walk(dims []int, strides [][]int, fn func(i int, offs []int)) {
	n := 1
	for _, d := range dims {
		n *= d
	}
	idx := make([]int, len(dims))
	offs := make([]int, len(strides))
	for i := 0; i < n; i++ {
		fn(i, offs)
		for ax := len(dims) - 1; ax >= 0; ax-- {
			idx[ax]++
			for k := range strides {
				offs[k] += strides[k][ax]
			}
			if idx[ax] < dims[ax] {
				break
			}
			for k := range strides {
				offs[k] -= strides[k][ax] * dims[ax]
			}
			idx[ax] = 0
		}
	}
}

// isRowMajor reports whether strides address dims contiguously.
// Size-1 axes may carry any stride.
func isRowMajor(dims, strides []int) bool {
	want := 1
	for ax := len(dims) - 1; ax >= 0; ax-- {
		if dims[ax] != 1 && strides[ax] != want {
			return false
		}
		want *= dims[ax]
	}
	return true
}
