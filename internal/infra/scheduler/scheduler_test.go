package scheduler

import (
	"testing"
)

func TestCronSpecForTime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		checkTime string
		want      string
		wantErr   bool
	}{
		{checkTime: "08:00", want: "0 8 * * *"},
		{checkTime: "09:00", want: "0 9 * * *"},
		{checkTime: "21:35", want: "35 21 * * *"},
		{checkTime: "00:00", want: "0 0 * * *"},
		{checkTime: "9am", wantErr: true},
		{checkTime: "24:00", wantErr: true},
		{checkTime: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.checkTime, func(t *testing.T) {
			t.Parallel()
			got, err := cronSpecForTime(tt.checkTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("cronSpecForTime(%q) expected error, got %q", tt.checkTime, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("cronSpecForTime(%q) error: %v", tt.checkTime, err)
			}
			if got != tt.want {
				t.Fatalf("cronSpecForTime(%q) = %q, want %q", tt.checkTime, got, tt.want)
			}
		})
	}
}
