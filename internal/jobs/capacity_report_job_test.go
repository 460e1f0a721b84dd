package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"fulfilment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUtilizationReader struct{ mock.Mock }

func (m *MockUtilizationReader) HandleAll(ctx context.Context) ([]queries.LocationUtilizationResponse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]queries.LocationUtilizationResponse)
	return list, args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestCapacityReportJob_WarnsAboutFullLocations(t *testing.T) {
	reader := &MockUtilizationReader{}
	reader.On("HandleAll", mock.Anything).Return([]queries.LocationUtilizationResponse{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40, ActiveWarehouses: 1, UsedCapacity: 40},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100, ActiveWarehouses: 1, UsedCapacity: 50},
	}, nil).Once()
	logger, buf := newBufferLogger()
	job := NewCapacityReportJob(reader, "", logger)

	job.report(t.Context())

	out := buf.String()
	assert.Contains(t, out, `"msg":"Location is full","component":"capacity_report_job","location":"ZWOLLE-001"`)
	assert.Contains(t, out, `"location":"AMSTERDAM-001"`)
	assert.Contains(t, out, `"locations":2,"full":1`)
	reader.AssertExpectations(t)
}

func TestCapacityReportJob_LogsReadErrors(t *testing.T) {
	reader := &MockUtilizationReader{}
	reader.On("HandleAll", mock.Anything).Return(nil, errors.New("db down")).Once()
	logger, buf := newBufferLogger()
	job := NewCapacityReportJob(reader, "", logger)

	job.report(t.Context())

	assert.Contains(t, buf.String(), `"level":"ERROR","msg":"Capacity report failed"`)
	assert.Contains(t, buf.String(), "db down")
}

func TestCapacityReportJob_DefaultSchedule(t *testing.T) {
	logger, _ := newBufferLogger()

	job := NewCapacityReportJob(&MockUtilizationReader{}, "", logger)

	assert.Equal(t, DefaultCapacityReportSchedule, job.schedule)
}

func TestJobManager_InvalidScheduleFailsStart(t *testing.T) {
	logger, _ := newBufferLogger()
	manager := NewJobManager(&MockUtilizationReader{}, "not a schedule", logger)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity report job")
}

func TestJobManager_StartStop(t *testing.T) {
	logger, buf := newBufferLogger()
	manager := NewJobManager(&MockUtilizationReader{}, "0 0 0 1 1 *", logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Capacity report job started")
	assert.Contains(t, buf.String(), "Capacity report job stopped")
}

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (f fakeJob) Name() string { return f.name }

func (f fakeJob) Start() error {
	*f.events = append(*f.events, "start "+f.name)
	return f.startErr
}

func (f fakeJob) Stop() {
	*f.events = append(*f.events, "stop "+f.name)
}

func TestJobManager_StopsStartedJobsWhenOneFails(t *testing.T) {
	var events []string
	manager := NewJobManagerFor(
		fakeJob{name: "a", events: &events},
		fakeJob{name: "b", events: &events},
		fakeJob{name: "c", startErr: errors.New("bad spec"), events: &events},
	)

	err := manager.StartAll()

	require.EqualError(t, err, "failed to start c: bad spec")
	assert.Equal(t, []string{"start a", "start b", "start c", "stop b", "stop a"}, events)
}
