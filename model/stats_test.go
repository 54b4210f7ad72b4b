package model

import "testing"

func TestParseResult(t *testing.T) {
	tests := []struct {
		in   string
		want Result
	}{
		{in: "W", want: ResultWin},
		{in: "w", want: ResultWin},
		{in: "L", want: ResultLoss},
		{in: "l", want: ResultLoss},
		{in: "T", want: ResultTie},
		{in: "t", want: ResultTie},
		{in: "", want: ResultUnknown},
		{in: "win", want: ResultUnknown},
		{in: "X", want: ResultUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseResult(tc.in); got != tc.want {
				t.Errorf("ParseResult(%q) - expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestIsPlatformSupported(t *testing.T) {
	for _, p := range []string{PlatformESPN, PlatformYahoo, PlatformSleeper} {
		if !IsPlatformSupported(p) {
			t.Errorf("expected %s to be supported", p)
		}
	}
	for _, p := range []string{"", "MFL", "espn", "NFL"} {
		if IsPlatformSupported(p) {
			t.Errorf("expected %s to not be supported", p)
		}
	}
}
