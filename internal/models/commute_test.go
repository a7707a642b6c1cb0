package models

import "testing"

func TestCommuteProfileDerived(t *testing.T) {
	tests := []struct {
		name        string
		profile     CommuteProfile
		wantMinutes int
		wantWeekly  float64
	}{
		{
			name:        "fifteen minutes five days",
			profile:     CommuteProfile{CommuteHours: 0, CommuteMinutes: 15, DaysPerWeek: 5},
			wantMinutes: 15,
			wantWeekly:  2.5,
		},
		{
			name:        "ninety minutes five days",
			profile:     CommuteProfile{CommuteHours: 1, CommuteMinutes: 30, DaysPerWeek: 5},
			wantMinutes: 90,
			wantWeekly:  15,
		},
		{
			name:        "two and a half hours three days",
			profile:     CommuteProfile{CommuteHours: 2, CommuteMinutes: 30, DaysPerWeek: 3},
			wantMinutes: 150,
			wantWeekly:  15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.TotalCommuteMinutes(); got != tt.wantMinutes {
				t.Errorf("TotalCommuteMinutes() = %d, want %d", got, tt.wantMinutes)
			}
			if got := tt.profile.WeeklyCommuteHours(); got != tt.wantWeekly {
				t.Errorf("WeeklyCommuteHours() = %v, want %v", got, tt.wantWeekly)
			}
		})
	}
}
