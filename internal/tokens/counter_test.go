package tokens

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "a", want: 1},
		{in: "abcd", want: 1},
		{in: "abcde", want: 2},
		{in: "źdźbło", want: 2},
	}

	for _, tt := range tests {
		if got := Estimate(tt.in); got != tt.want {
			t.Errorf("Estimate(%q): %d, want: %d", tt.in, got, tt.want)
		}
	}
}

func TestCounter_Count(t *testing.T) {
	c := &Counter{encode: Estimate}

	if got := c.Count(""); got != 0 {
		t.Errorf("empty string: %d", got)
	}
	if got := c.Count("Bidon stalowy"); got != 4 {
		t.Errorf("Count: %d, want: 4", got)
	}
}
