package jobs

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultCapacityReportSchedule runs the report every five minutes.
const DefaultCapacityReportSchedule = "0 */5 * * * *"

// UtilizationReader reports the usage of every configured location.
type UtilizationReader interface {
	HandleAll(ctx context.Context) ([]queries.LocationUtilizationResponse, error)
}

// CapacityReportJob periodically logs how much of each location's warehouse quota and
// capacity is in use. It only reads.
type CapacityReportJob struct {
	reader   UtilizationReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCapacityReportJob creates the report job. schedule is a cron spec with a seconds
// field; an empty schedule falls back to DefaultCapacityReportSchedule.
func NewCapacityReportJob(reader UtilizationReader, schedule string, logger *slog.Logger) *CapacityReportJob {
	if schedule == "" {
		schedule = DefaultCapacityReportSchedule
	}

	return &CapacityReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "capacity_report_job"),
	}
}

func (j *CapacityReportJob) Name() string {
	return "capacity report job"
}

// Start registers the report on its schedule and starts the scheduler.
func (j *CapacityReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *CapacityReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity report job stopped")
}

func (j *CapacityReportJob) report(ctx context.Context) {
	utilizations, err := j.reader.HandleAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity report failed", "error", err)
		return
	}

	full := 0
	for _, u := range utilizations {
		attrs := []any{
			"location", u.Identification,
			"active_warehouses", u.ActiveWarehouses,
			"max_warehouses", u.MaxNumberOfWarehouses,
			"used_capacity", u.UsedCapacity,
			"max_capacity", u.MaxCapacity,
		}
		if u.IsFull() {
			full++
			j.logger.WarnContext(ctx, "Location is full", attrs...)
			continue
		}
		j.logger.DebugContext(ctx, "Location utilization", attrs...)
	}

	j.logger.InfoContext(ctx, "Capacity report done", "locations", len(utilizations), "full", full)
}
