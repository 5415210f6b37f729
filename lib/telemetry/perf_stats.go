package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

const perfSampleInterval = time.Second * 30

var perfMeter = otel.Meter("go.perf_stats")
var cpuUsageGauge, _ = perfMeter.Float64Gauge("cpu_usage")
var allocatedMbGauge, _ = perfMeter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = perfMeter.Int64Gauge("live_objects")
var goroutineCountGauge, _ = perfMeter.Int64Gauge("goroutine_count")

// InstrumentPerfStats samples process cpu, heap and goroutine gauges
// on a fixed interval until ctx is cancelled.
func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(perfSampleInterval)
		defer ticker.Stop()

		var memStats runtime.MemStats
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				recordPerfSample(ctx, &memStats)
			}
		}
	}()
}

func recordPerfSample(ctx context.Context, memStats *runtime.MemStats) {
	// blocks for a minute while the cpu usage is measured
	usage, err := cpu.Percent(time.Minute, false)
	if err == nil && len(usage) > 0 {
		cpuUsageGauge.Record(ctx, usage[0])
	} else {
		slog.WarnContext(ctx, "failed to read cpu usage", "err", err)
	}

	runtime.ReadMemStats(memStats)
	allocatedMbGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
	liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	goroutineCountGauge.Record(ctx, int64(runtime.NumGoroutine()))
}
