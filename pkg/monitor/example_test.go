package monitor_test

import (
	"context"
	"fmt"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/config"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/healthkit"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/logger"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/monitor"
)

type healthStoreBridge struct{}

func (healthStoreBridge) FetchSamples(ctx context.Context) ([]healthkit.Sample, []healthkit.Sample, error) {
	// A real source reads a HealthKit export or a sync endpoint here.
	return nil, nil, nil
}

// Example shows how an embedding application wires the full stack:
// configuration, logging, model loading, and scheduled monitoring.
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx := context.Background()
	mon, cleanup, err := monitor.NewFromConfig(ctx, cfg, healthStoreBridge{}, log)
	if err != nil {
		fmt.Println("setup:", err)
		return
	}
	defer cleanup()

	scheduler := monitor.NewScheduler(log)
	if err := scheduler.AddJob(cfg.MonitorSchedule, mon); err != nil {
		fmt.Println("schedule:", err)
		return
	}
	scheduler.Start(ctx)
}
