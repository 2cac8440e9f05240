package performance

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
)

// GoMemoryStats holds Go runtime memory statistics in bytes
type GoMemoryStats struct {
	Alloc      uint64 // Currently allocated heap memory
	TotalAlloc uint64 // Cumulative allocated memory
	Sys        uint64 // Memory obtained from the OS
	NumGC      uint32
}

// GetGoMemory reads the Go runtime memory statistics
func GetGoMemory() GoMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return GoMemoryStats{
		Alloc:      m.Alloc,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// HeapString formats the heap in use against the memory taken from the OS,
// e.g. "3.1 MB / 12 MB".
func (s GoMemoryStats) HeapString() string {
	return fmt.Sprintf("%s / %s", humanize.Bytes(s.Alloc), humanize.Bytes(s.Sys))
}
