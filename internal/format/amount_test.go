package format

import "testing"

func TestAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{999.9, "999"},
		{1000, "1.00K"},
		{1500, "1.50K"},
		{999999, "1000.00K"},
		{2500000, "2.50M"},
		{3000000000, "3.00B"},
		{4200000000000, "4.20T"},
		{-1500, "-1.50K"},
	}
	for _, tc := range cases {
		if got := Amount(tc.in); got != tc.want {
			t.Fatalf("Amount(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
