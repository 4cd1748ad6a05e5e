package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestRecordResolution(t *testing.T) {
	resolutionsTotal.Reset()

	RecordResolution(OutcomeGranted, 0.001)
	RecordResolution(OutcomeGranted, 0.002)
	RecordResolution(OutcomeError, 0.003)

	require.Equal(t, 2.0, counterValue(t, resolutionsTotal.WithLabelValues(OutcomeGranted)))
	require.Equal(t, 1.0, counterValue(t, resolutionsTotal.WithLabelValues(OutcomeError)))

	m := &dto.Metric{}
	require.NoError(t, resolutionDuration.Write(m))
	require.GreaterOrEqual(t, m.GetHistogram().GetSampleCount(), uint64(3))
}

func TestRecordCacheEvent(t *testing.T) {
	cacheEventsTotal.Reset()

	RecordCacheEvent(CacheMiss)
	RecordCacheEvent(CacheHit)
	RecordCacheEvent(CacheHit)

	require.Equal(t, 2.0, counterValue(t, cacheEventsTotal.WithLabelValues(CacheHit)))
	require.Equal(t, 1.0, counterValue(t, cacheEventsTotal.WithLabelValues(CacheMiss)))
}

func TestRecordSnapshotBuild(t *testing.T) {
	snapshotBuildsTotal.Reset()

	RecordSnapshotBuild(SnapshotFailed)
	require.Equal(t, 1.0, counterValue(t, snapshotBuildsTotal.WithLabelValues(SnapshotFailed)))
	require.Zero(t, counterValue(t, snapshotBuildsTotal.WithLabelValues(SnapshotOK)))
}
