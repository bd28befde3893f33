package health

import (
	"testing"

	"github.com/jonathan/talentbridge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		hours    float64
		expected Severity
	}{
		{0, SeverityNone},
		{71.9, SeverityNone},
		{72, SeverityMedium},
		{119, SeverityMedium},
		{120, SeverityHigh},
		{167, SeverityHigh},
		{168, SeverityCritical},
		{1000, SeverityCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SeverityFor(tt.hours), "hours=%v", tt.hours)
	}
}

func TestDeal(t *testing.T) {
	onTrack := Deal(DealInput{Stage: "interview", HoursInStage: 30})
	assert.Equal(t, SeverityNone, onTrack.Severity)
	assert.Equal(t, 1.3, onTrack.DaysInStage)
	assert.Equal(t, "Im Zeitplan", onTrack.Message)

	stuck := Deal(DealInput{Stage: "offer", HoursInStage: 200})
	assert.Equal(t, SeverityCritical, stuck.Severity)
	assert.Equal(t, "Seit 8 Tagen in offer", stuck.Message)
}

func TestBottlenecks(t *testing.T) {
	dwells := []types.StageDwell{
		{CandidateID: "a", Stage: "screening", HoursInStage: 100},
		{CandidateID: "b", Stage: "screening", HoursInStage: 140},
		{CandidateID: "c", Stage: "interview", HoursInStage: 200},
		{CandidateID: "d", Stage: "submitted", HoursInStage: 10},
		{CandidateID: "e", Stage: "offer", HoursInStage: 130},
	}

	bottlenecks := Bottlenecks(dwells)
	require.Len(t, bottlenecks, 3)

	assert.Equal(t, Bottleneck{Stage: "interview", Count: 1, AvgHours: 200, AvgDays: 8.3, Severity: SeverityCritical}, bottlenecks[0])
	assert.Equal(t, Bottleneck{Stage: "offer", Count: 1, AvgHours: 130, AvgDays: 5.4, Severity: SeverityHigh}, bottlenecks[1])
	assert.Equal(t, Bottleneck{Stage: "screening", Count: 2, AvgHours: 120, AvgDays: 5, Severity: SeverityHigh}, bottlenecks[2])
}

func TestBottlenecks_TiesKeepPipelineOrder(t *testing.T) {
	dwells := []types.StageDwell{
		{Stage: "offer", HoursInStage: 80},
		{Stage: "custom_stage", HoursInStage: 80},
		{Stage: "screening", HoursInStage: 80},
	}

	bottlenecks := Bottlenecks(dwells)
	require.Len(t, bottlenecks, 3)
	assert.Equal(t, "screening", bottlenecks[0].Stage)
	assert.Equal(t, "offer", bottlenecks[1].Stage)
	assert.Equal(t, "custom_stage", bottlenecks[2].Stage)
}

func TestBottlenecks_NoneBelowThreshold(t *testing.T) {
	assert.Empty(t, Bottlenecks([]types.StageDwell{{Stage: "screening", HoursInStage: 71}}))
	assert.Empty(t, Bottlenecks(nil))
}
