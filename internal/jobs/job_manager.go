package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs of the service as one unit.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager wires the service's jobs.
func NewJobManager(
	utilizationReader UtilizationReader,
	capacityReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerFor(NewCapacityReportJob(utilizationReader, capacityReportSchedule, logger))
}

// NewJobManagerFor manages an explicit set of jobs, started in the given order.
func NewJobManagerFor(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts every job. When one fails, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	return nil
}

// StopAll stops the started jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
