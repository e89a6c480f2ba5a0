package gamify

import "testing"

func TestSeverityXP(t *testing.T) {
	cases := []struct {
		severity string
		want     int
	}{
		{"INFO", 25},
		{"WARNING", 50},
		{"CRITICAL", 75},
		{"", 25},
		{"UNKNOWN", 25},
	}
	for _, tc := range cases {
		if got := SeverityXP(tc.severity); got != tc.want {
			t.Fatalf("SeverityXP(%q) = %d, want %d", tc.severity, got, tc.want)
		}
	}
}
