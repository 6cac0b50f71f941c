package engine

import (
	"testing"
	"time"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/progress"
)

func recordWithModules(n int) *progress.Record {
	rec := progress.New("alice", "c1", time.Now())
	for i := 0; i < n; i++ {
		rec.CompletedModuleIDs["m"+string(rune('a'+i))] = true
	}
	return rec
}

func TestComputeStipend(t *testing.T) {
	tests := []struct {
		modules     int
		wantMonths  int
		wantStipend int64
	}{
		{0, 0, 0},
		{2, 0, 0},
		{3, 1, 0},
		{7, 2, 0},
		{9, 3, 0},      // below the month-4 threshold
		{10, 4, 10000}, // first accruing month
		{12, 4, 10000},
		{13, 5, 20000},
		{20, 8, 50000},
	}

	for _, tt := range tests {
		st := ComputeStipend(recordWithModules(tt.modules), 0)
		if st.MonthsCompleted != tt.wantMonths {
			t.Errorf("ComputeStipend(%d modules).MonthsCompleted = %d, want %d",
				tt.modules, st.MonthsCompleted, tt.wantMonths)
		}
		if st.TotalStipend != tt.wantStipend {
			t.Errorf("ComputeStipend(%d modules).TotalStipend = %d, want %d",
				tt.modules, st.TotalStipend, tt.wantStipend)
		}
	}
}

func TestComputeStipendCustomRate(t *testing.T) {
	st := ComputeStipend(recordWithModules(13), 500)
	if st.TotalStipend != 1000 {
		t.Errorf("TotalStipend = %d, want 1000", st.TotalStipend)
	}
}

func TestComputeStipendIsIdempotent(t *testing.T) {
	rec := recordWithModules(13)
	first := ComputeStipend(rec, 0)
	second := ComputeStipend(rec, 0)
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
