package billings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gencareclinic/gencare-api/api/handlers/billings"
)

func day(date, observation, feeling string) billings.DayObservation {
	return billings.DayObservation{Date: date, Observation: observation, Feeling: feeling}
}

func TestAnalyze_EmptySequence(t *testing.T) {
	res := billings.Analyze(nil)

	assert.Equal(t, billings.PhaseWaitingForMenstruation, res.Phase)
	assert.Equal(t, billings.PatternUnknown, res.Pattern)
	assert.Equal(t, -1, res.PeakIndex)
	assert.False(t, res.IsComplete)
}

func TestAnalyze_NoBleedingYet(t *testing.T) {
	days := []billings.DayObservation{
		day("2026-03-01", billings.ObservationDry, billings.FeelingDry),
		day("2026-03-02", billings.ObservationDry, billings.FeelingDry),
	}

	res := billings.Analyze(days)

	assert.Equal(t, billings.PhaseWaitingForMenstruation, res.Phase)
}

func TestAnalyze_CompleteCycle(t *testing.T) {
	days := []billings.DayObservation{
		day("2026-03-01", billings.ObservationBlood, ""),
		day("2026-03-02", billings.ObservationBlood, ""),
		day("2026-03-03", billings.ObservationDry, billings.FeelingDry),
		day("2026-03-04", billings.ObservationCloudy, billings.FeelingMoist),
		day("2026-03-05", billings.ObservationClearTaut, billings.FeelingSlippery),
		day("2026-03-06", billings.ObservationLowMucus, ""),
		day("2026-03-07", billings.ObservationLowMucus, ""),
		day("2026-03-08", billings.ObservationDry, ""),
	}

	res := billings.Analyze(days)

	assert.True(t, res.IsComplete)
	assert.Equal(t, billings.PhaseCompleted, res.Phase)
	assert.Equal(t, billings.PatternNormal, res.Pattern)
	assert.Equal(t, 4, res.PeakIndex)
	assert.Equal(t, "2026-03-05", res.PeakDate)
	assert.Equal(t, 3, res.DryingDays)
}

func TestAnalyze_PeakOnlyKnownInHindsight(t *testing.T) {
	// the fertile day is the last recorded day, so it may still get more
	// fertile tomorrow
	days := []billings.DayObservation{
		day("2026-03-01", billings.ObservationBlood, ""),
		day("2026-03-04", billings.ObservationCloudy, billings.FeelingMoist),
		day("2026-03-05", billings.ObservationClearTaut, billings.FeelingSlippery),
	}

	res := billings.Analyze(days)

	assert.False(t, res.IsComplete)
	assert.Equal(t, billings.PhasePrePeakTracking, res.Phase)
	assert.Equal(t, -1, res.PeakIndex)
	assert.Empty(t, res.PeakDate)
}

func TestAnalyze_PostPeakStillDrying(t *testing.T) {
	days := []billings.DayObservation{
		day("2026-03-01", billings.ObservationBlood, ""),
		day("2026-03-05", billings.ObservationClearTaut, billings.FeelingSlippery),
		day("2026-03-06", billings.ObservationLowMucus, ""),
	}

	res := billings.Analyze(days)

	assert.False(t, res.IsComplete)
	assert.Equal(t, billings.PhasePostPeakTracking, res.Phase)
	assert.Equal(t, 1, res.DryingDays)
	assert.Equal(t, "2026-03-05", res.PeakDate)
}

func TestAnalyze_CrossMonthDrying(t *testing.T) {
	days := []billings.DayObservation{
		day("2026-03-27", billings.ObservationBlood, ""),
		day("2026-03-30", billings.ObservationClearTaut, billings.FeelingSlippery),
		day("2026-03-31", billings.ObservationLowMucus, ""),
		day("2026-04-01", billings.ObservationLowMucus, ""),
	}

	res := billings.Analyze(days)

	assert.False(t, res.IsComplete)
	assert.Equal(t, billings.PhaseCrossMonthDrying, res.Phase)
	assert.Equal(t, 2, res.DryingDays)
}

func TestAnalyze_IrregularWhenFertileResumesAfterDrying(t *testing.T) {
	days := []billings.DayObservation{
		day("2026-03-01", billings.ObservationBlood, ""),
		day("2026-03-05", billings.ObservationClearTaut, billings.FeelingSlippery),
		day("2026-03-06", billings.ObservationLowMucus, ""),
		day("2026-03-07", billings.ObservationClearTaut, billings.FeelingSlippery),
		day("2026-03-08", billings.ObservationLowMucus, ""),
	}

	res := billings.Analyze(days)

	assert.Equal(t, billings.PatternIrregular, res.Pattern)
	// the later fertile day becomes the peak candidate
	assert.Equal(t, 3, res.PeakIndex)
}

func TestFindPeakIndex(t *testing.T) {
	tests := []struct {
		name string
		days []billings.DayObservation
		want int
	}{
		{
			name: "no fertile days",
			days: []billings.DayObservation{
				day("2026-03-01", billings.ObservationBlood, ""),
				day("2026-03-02", billings.ObservationDry, ""),
			},
			want: -1,
		},
		{
			name: "fertile day followed by dry day",
			days: []billings.DayObservation{
				day("2026-03-01", billings.ObservationClearTaut, ""),
				day("2026-03-02", billings.ObservationDry, ""),
			},
			want: 0,
		},
		{
			name: "fertile day is last recorded",
			days: []billings.DayObservation{
				day("2026-03-01", billings.ObservationDry, ""),
				day("2026-03-02", billings.ObservationClearTaut, ""),
			},
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billings.FindPeakIndex(tt.days))
		})
	}
}

func TestFertilityProbability(t *testing.T) {
	assert.Equal(t, 0.95, billings.FertilityProbability(billings.ObservationClearTaut, ""))
	assert.Equal(t, 0.95, billings.FertilityProbability("", billings.FeelingSlippery))
	assert.Equal(t, 0.7, billings.FertilityProbability("", billings.FeelingMoist))
	assert.Equal(t, 0.5, billings.FertilityProbability(billings.ObservationThick, ""))
	assert.Equal(t, 0.2, billings.FertilityProbability(billings.ObservationBlood, ""))
	assert.Equal(t, 0.05, billings.FertilityProbability(billings.ObservationDry, billings.FeelingDry))
}

func TestGeneratePostPeakDays(t *testing.T) {
	days := billings.GeneratePostPeakDays("2026-03-05")

	assert.Len(t, days, 3)
	assert.Equal(t, "2026-03-06", days[0].Date)
	assert.Equal(t, "2026-03-08", days[2].Date)
	for _, d := range days {
		assert.Equal(t, billings.ObservationLowMucus, d.Observation)
	}
	assert.Equal(t, 0.5, days[0].FertilityProbability)
	assert.Equal(t, 0.1, days[2].FertilityProbability)

	assert.Nil(t, billings.GeneratePostPeakDays("not-a-date"))
}

func TestPredictGender(t *testing.T) {
	tests := []struct {
		daysFromPeak int
		want         string
	}{
		{-4, "unknown"},
		{-3, "girl_leaning"},
		{-2, "girl_leaning"},
		{-1, "boy_leaning"},
		{0, "boy_leaning"},
		{1, "boy_leaning"},
		{2, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, billings.PredictGender(tt.daysFromPeak), "daysFromPeak=%d", tt.daysFromPeak)
	}
}
