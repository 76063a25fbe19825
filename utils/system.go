package utils

import (
	"fmt"
	"math"
	"runtime"
)

// GetMemUsage summarises the heap for run logs
func GetMemUsage() string {
	const MiB = 1 << 20
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf("heap = %d MiB, total allocated = %d MiB, sys = %d MiB, GC cycles = %d",
		ms.HeapAlloc/MiB, ms.TotalAlloc/MiB, ms.Sys/MiB, ms.NumGC)
}

// IsNan is true when A holds a NaN, A is a float64, []float64, Matrix or Vector
func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case Matrix:
		return IsNan(v.DataP)
	case Vector:
		return IsNan(v.DataP)
	}
	return false
}
