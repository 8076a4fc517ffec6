package debug

// Periodic heap logger enabled when config.Debug is true. Frame decodes and
// composite redraws churn large RGBA buffers; this helps correlate redraw
// rate with heap growth.

import (
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger launches a goroutine that logs heap stats every interval.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for range t.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("memstats",
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("heap_objects", ms.HeapObjects),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
