package band

import "testing"

func TestLimitThresholds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, Limit1M},
		{500_000, Limit1M},
		{1_000_000, Limit1M}, // inclusive upper bound
		{1_000_001, Limit2M},
		{2_000_000, Limit2M},
		{2_000_001, Limit3M},
		{3_000_000, Limit3M},
		{3_000_001, Limit5M},
		{5_000_000, Limit5M},
		{5_000_001, Limit10Mp},
		{25_000_000, Limit10Mp},
	}
	for _, tc := range tests {
		if got := Limit(tc.in); got != tc.want {
			t.Fatalf("Limit(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLimitIsMonotonic(t *testing.T) {
	order := map[string]int{Limit1M: 0, Limit2M: 1, Limit3M: 2, Limit5M: 3, Limit10Mp: 4}
	prev := -1
	for x := float64(0); x <= 6_000_000; x += 100_000 {
		b := Limit(x)
		rank, ok := order[b]
		if !ok {
			t.Fatalf("Limit(%v) produced unknown band %q", x, b)
		}
		if rank < prev {
			t.Fatalf("band rank decreased at %v: %q", x, b)
		}
		prev = rank
	}
}

func TestAttachmentThresholds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, AttachPrimary},
		{1, Limit1M},
		{1_000_000, Limit1M},
		{1_000_001, Limit2M},
		{2_000_000, Limit2M},
		{2_000_001, Limit5M},
		{5_000_000, Limit5M},
		{5_000_001, Limit10Mp},
	}
	for _, tc := range tests {
		if got := Attachment(tc.in); got != tc.want {
			t.Fatalf("Attachment(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
