package normalize

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		ok   bool
	}{
		{"6013.10", 601310, true},
		{"6013,10", 601310, true},
		{"6.013,10", 601310, true},
		{"1,234.56", 123456, true},
		{"1234", 123400, true},
		{"0.01", 1, true},
		{"-12.50", -1250, true},
		{"€ 99,95", 9995, true},
		{"EUR 21.00", 2100, true},
		{float64(12.5), 1250, true},
		{float64(0.1), 10, true},
		{"", 0, false},
		{"n/a", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseCents(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseCents(%v): ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseCents(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{601310, "6013.10"},
		{1, "0.01"},
		{-1250, "-12.50"},
		{0, "0.00"},
		{2100, "21.00"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalAmountRoundTrip(t *testing.T) {
	got := CanonicalAmount("6013,10")
	if got == nil || *got != "6013.10" {
		t.Fatalf("CanonicalAmount(6013,10) = %v, want 6013.10", got)
	}
	if CanonicalAmount("not a number") != nil {
		t.Fatal("expected nil for unparseable amount")
	}
	if CanonicalAmount(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
}
