// Package billings classifies menstrual cycle observations following the
// Billings ovulation method. Classification is intentionally table driven,
// fixed substring and membership checks over the recorded observation and
// sensation vocabulary plus date arithmetic, nothing more.
package billings

import (
	"strings"
	"time"
)

// Observation vocabulary recorded by the mobile client (Vietnamese)
const (
	ObservationBlood     = "có máu"
	ObservationSpotting  = "lấm tấm máu"
	ObservationDry       = "khô"
	ObservationLowMucus  = "ít chất tiết"
	ObservationThick     = "đặc, dính"
	ObservationCloudy    = "đục"
	ObservationClearTaut = "trong và âm hộ căng"

	FeelingDry      = "khô"
	FeelingMoist    = "ẩm ướt"
	FeelingSlippery = "trơn"
)

// Cycle phases reported by the analyzer
const (
	PhaseWaitingForMenstruation = "waiting_for_menstruation"
	PhasePrePeakTracking        = "pre_peak_tracking"
	PhasePostPeakTracking       = "post_peak_tracking"
	PhaseCrossMonthDrying       = "cross_month_drying"
	PhaseCompleted              = "completed"
)

// Cycle patterns
const (
	PatternNormal    = "normal"
	PatternIrregular = "irregular"
	PatternUnknown   = "unknown"
)

// dryingDaysRequired is how many consecutive dry or low secretion days must
// follow the peak before the cycle counts as complete
const dryingDaysRequired = 3

var guidance = map[string]string{
	PhaseWaitingForMenstruation: "Chưa ghi nhận ngày hành kinh, hãy bắt đầu chu kỳ khi thấy máu.",
	PhasePrePeakTracking:        "Đang theo dõi trước ngày đỉnh, tiếp tục ghi nhận quan sát mỗi tối.",
	PhasePostPeakTracking:       "Đã qua ngày đỉnh, theo dõi thêm các ngày khô để khép chu kỳ.",
	PhaseCrossMonthDrying:       "Các ngày khô sau đỉnh kéo dài sang tháng mới, tiếp tục theo dõi.",
	PhaseCompleted:              "Chu kỳ đã đủ dữ liệu: có ngày đỉnh và ba ngày khô sau đỉnh.",
}

// DayObservation is one recorded day, ordered by date ascending
type DayObservation struct {
	Date        string // YYYY-MM-DD
	Observation string
	Feeling     string
}

// Result is the outcome of analyzing one cycle's day sequence
type Result struct {
	Pattern    string  `json:"pattern"`
	Phase      string  `json:"phase"`
	Guidance   string  `json:"guidance"`
	PeakDate   string  `json:"peakDate,omitempty"`
	PeakIndex  int     `json:"peakIndex"`
	IsComplete bool    `json:"isComplete"`
	DryingDays int     `json:"dryingDays"`
	Confidence float64 `json:"confidence"`
}

// IsBleeding reports whether the observation records menstrual blood
func IsBleeding(observation string) bool {
	return strings.Contains(observation, "máu")
}

// IsFertile reports whether the day shows the fertile mucus or sensation
// pattern
func IsFertile(observation, feeling string) bool {
	if strings.Contains(observation, "trong") || strings.Contains(observation, "căng") {
		return true
	}
	switch feeling {
	case FeelingSlippery, FeelingMoist:
		return true
	}
	return false
}

// IsDryOrLow reports whether the day is a dry or low secretion day
func IsDryOrLow(observation string) bool {
	return strings.Contains(observation, ObservationDry) ||
		strings.Contains(observation, ObservationLowMucus) ||
		observation == ""
}

// FertilityProbability maps a day's observation to a fixed likelihood used
// for display only
func FertilityProbability(observation, feeling string) float64 {
	switch {
	case strings.Contains(observation, "trong") || feeling == FeelingSlippery:
		return 0.95
	case feeling == FeelingMoist:
		return 0.7
	case strings.Contains(observation, ObservationThick) || strings.Contains(observation, ObservationCloudy):
		return 0.5
	case IsBleeding(observation):
		return 0.2
	case IsDryOrLow(observation):
		return 0.05
	}
	return 0.3
}

// FindPeakIndex returns the index of the peak day, the last fertile day of
// the sequence that is followed by at least one non fertile day, or -1 when
// no peak can be identified yet
func FindPeakIndex(days []DayObservation) int {
	peak := -1
	for i, day := range days {
		if IsFertile(day.Observation, day.Feeling) {
			peak = i
		}
	}
	if peak == -1 || peak == len(days)-1 {
		// a fertile day with nothing after it may still get more fertile,
		// the peak is only known in hindsight
		return -1
	}
	if IsFertile(days[peak+1].Observation, days[peak+1].Feeling) {
		return -1
	}
	return peak
}

// Analyze classifies an ordered day sequence of one cycle
func Analyze(days []DayObservation) Result {
	res := Result{Pattern: PatternUnknown, PeakIndex: -1}

	bleedingSeen := false
	for _, day := range days {
		if IsBleeding(day.Observation) {
			bleedingSeen = true
			break
		}
	}
	if len(days) == 0 || !bleedingSeen {
		res.Phase = PhaseWaitingForMenstruation
		res.Guidance = guidance[res.Phase]
		return res
	}

	peak := FindPeakIndex(days)
	if peak == -1 {
		res.Pattern = classifyPattern(days, peak)
		res.Phase = PhasePrePeakTracking
		res.Guidance = guidance[res.Phase]
		return res
	}

	res.PeakIndex = peak
	res.PeakDate = days[peak].Date

	drying := 0
	for _, day := range days[peak+1:] {
		if !IsDryOrLow(day.Observation) {
			break
		}
		drying++
	}
	res.DryingDays = drying
	res.Pattern = classifyPattern(days, peak)
	res.Confidence = FertilityProbability(days[peak].Observation, days[peak].Feeling)

	if drying >= dryingDaysRequired {
		res.IsComplete = true
		res.Phase = PhaseCompleted
		res.Guidance = guidance[res.Phase]
		return res
	}

	res.Phase = PhasePostPeakTracking
	if crossesMonth(days[peak].Date, days[len(days)-1].Date) {
		res.Phase = PhaseCrossMonthDrying
	}
	res.Guidance = guidance[res.Phase]
	return res
}

// classifyPattern labels the cycle shape. Normal means bleeding first then a
// single fertile build up; irregular means fertile signs resume after the
// post peak drying started.
func classifyPattern(days []DayObservation, peak int) string {
	if len(days) < 3 {
		return PatternUnknown
	}
	if !IsBleeding(days[0].Observation) {
		return PatternIrregular
	}
	if peak == -1 {
		return PatternUnknown
	}
	drying := false
	for _, day := range days[peak+1:] {
		if IsDryOrLow(day.Observation) {
			drying = true
			continue
		}
		if drying && IsFertile(day.Observation, day.Feeling) {
			return PatternIrregular
		}
	}
	return PatternNormal
}

func crossesMonth(peakDate, lastDate string) bool {
	p, err1 := time.Parse("2006-01-02", peakDate)
	l, err2 := time.Parse("2006-01-02", lastDate)
	if err1 != nil || err2 != nil {
		return false
	}
	return p.Month() != l.Month() || p.Year() != l.Year()
}

// GeneratedDay is one auto generated post peak drying day
type GeneratedDay struct {
	Date                 string
	Observation          string
	FertilityProbability float64
}

// GeneratePostPeakDays returns the three drying days that follow a confirmed
// peak, used to prefill the calendar once the peak is marked
func GeneratePostPeakDays(peakDate string) []GeneratedDay {
	p, err := time.Parse("2006-01-02", peakDate)
	if err != nil {
		return nil
	}
	probs := []float64{0.5, 0.3, 0.1}
	days := make([]GeneratedDay, 0, dryingDaysRequired)
	for i := 1; i <= dryingDaysRequired; i++ {
		days = append(days, GeneratedDay{
			Date:                 p.AddDate(0, 0, i).Format("2006-01-02"),
			Observation:          ObservationLowMucus,
			FertilityProbability: probs[i-1],
		})
	}
	return days
}

// PredictGender maps the offset between conception day and peak day to a
// leaning, following the fixed Billings folk table. Negative offsets are days
// before the peak.
func PredictGender(daysFromPeak int) string {
	switch {
	case daysFromPeak >= -1 && daysFromPeak <= 1:
		return "boy_leaning"
	case daysFromPeak >= -3 && daysFromPeak < -1:
		return "girl_leaning"
	}
	return "unknown"
}
