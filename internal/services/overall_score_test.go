package services

import "testing"

func TestCombineScores(t *testing.T) {
	tests := []struct {
		name      string
		nutrition *float64
		activity  *float64
		want      float64
	}{
		{name: "no data", want: 50},
		{name: "nutrition only", nutrition: scorePtr(80), want: 80},
		{name: "activity only keeps fraction", activity: scorePtr(65.5), want: 65.5},
		{name: "weighted blend", nutrition: scorePtr(80), activity: scorePtr(60), want: 72},
		{name: "blend rounds", nutrition: scorePtr(75), activity: scorePtr(52), want: 66},
		{name: "out of range inputs clamp", nutrition: scorePtr(130), activity: scorePtr(-20), want: 60},
		{name: "zero scores are data", nutrition: scorePtr(0), activity: scorePtr(0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineScores(tt.nutrition, tt.activity); got != tt.want {
				t.Fatalf("CombineScores() = %v, want %v", got, tt.want)
			}
		})
	}
}
