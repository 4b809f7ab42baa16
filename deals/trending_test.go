package deals

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTrending(t *testing.T) {
	f := &Formatter{
		Now:  func() time.Time { return time.Date(2025, time.September, 1, 14, 5, 0, 0, time.UTC) },
		Intn: func(n int) int { return 0 },
	}

	got := f.FormatTrending()
	if !strings.HasPrefix(got, "🔥 **Today's Hottest Deals** 🔥") {
		t.Fatalf("missing header:\n%s", got)
	}
	if !strings.Contains(got, `1. 🛒 **Mi 32" HD Smart TV** - 25% OFF on Flipkart`) {
		t.Errorf("first entry wrong:\n%s", got)
	}
	if !strings.Contains(got, "3. 👗 **Peter England Formal Shirt** - 45% OFF on Myntra") {
		t.Errorf("myntra entry wrong:\n%s", got)
	}
	if !strings.Contains(got, "📅 Updated: 01 September 2025, 02:05 PM") {
		t.Errorf("updated stamp wrong:\n%s", got)
	}
}

func TestFormatFestivalsCountsDaysLeft(t *testing.T) {
	f := &Formatter{
		Now:  func() time.Time { return time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC) },
		Intn: func(n int) int { return 0 },
	}

	got := f.FormatFestivals()
	if !strings.Contains(got, "📅 **Big Billion Days**") {
		t.Fatalf("missing event:\n%s", got)
	}
	if !strings.Contains(got, "🗓️ 15 October 2025 (5 days left)") {
		t.Errorf("days-left countdown wrong:\n%s", got)
	}
	if !strings.Contains(got, "🏪 Platforms: Flipkart, Amazon, Myntra, Meesho") {
		t.Errorf("diwali platform list wrong:\n%s", got)
	}
}

func TestFormatFestivalsDropsPastEvents(t *testing.T) {
	f := &Formatter{
		Now:  func() time.Time { return time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC) },
		Intn: func(n int) int { return 0 },
	}

	got := f.FormatFestivals()
	if strings.Contains(got, "Big Billion Days") || strings.Contains(got, "Diwali Sale") {
		t.Fatalf("past events must be dropped:\n%s", got)
	}
	if !strings.Contains(got, "End of Reason Sale") {
		t.Fatalf("future event missing:\n%s", got)
	}
}

func TestFormatFestivalsNothingUpcoming(t *testing.T) {
	f := &Formatter{
		Now:  func() time.Time { return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) },
		Intn: func(n int) int { return 0 },
	}

	if got := f.FormatFestivals(); got != "No upcoming sales found." {
		t.Fatalf("unexpected message: %q", got)
	}
}
