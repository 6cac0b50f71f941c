package engine

import "github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"

// ModulesPerMonth is the assumed pace the stipend schedule is derived
// from: program months elapse by completed-module count, not calendar time.
const ModulesPerMonth = 2.5

// stipendStartMonth is the first program month that accrues a payout.
const stipendStartMonth = 4

// DefaultMonthlyRate is the payout per accruing month, in currency units.
const DefaultMonthlyRate int64 = 10000

// Stipend is the payout schedule derived from module completion.
type Stipend struct {
	MonthsCompleted int
	TotalStipend    int64
}

// ComputeStipend derives the stipend from the completed-module count. It is
// a pure function of the record: safe to call repeatedly, no memory of
// prior results. A monthlyRate of 0 uses DefaultMonthlyRate.
func ComputeStipend(rec *progress.Record, monthlyRate int64) Stipend {
	if monthlyRate == 0 {
		monthlyRate = DefaultMonthlyRate
	}
	months := int(float64(rec.CompletedModuleCount()) / ModulesPerMonth)

	st := Stipend{MonthsCompleted: months}
	if months >= stipendStartMonth {
		st.TotalStipend = int64(months-(stipendStartMonth-1)) * monthlyRate
	}
	return st
}
