package catalog

import (
	"context"
	"testing"
)

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestSearchCapsResults(t *testing.T) {
	c := Builtin()

	got := c.Search("mobile", PlatformAll, false)
	if len(got) != MaxResults {
		t.Fatalf("got %d results, want %d", len(got), MaxResults)
	}
	want := []string{"iPhone 15 Pro", "Samsung Galaxy S24", "OnePlus 12", "Xiaomi 14 Pro", "Vivo V30 Pro"}
	for i, n := range names(got) {
		if n != want[i] {
			t.Errorf("result %d = %q, want %q", i, n, want[i])
		}
	}
}

func TestSearchNeverExceedsCap(t *testing.T) {
	c := Builtin()
	queries := []string{"mobile", "shirt", "tv", "s", "a", ""}
	for _, q := range queries {
		for _, p := range []Platform{PlatformAll, PlatformFlipkart, PlatformAmazon, PlatformMyntra, PlatformMeesho} {
			if got := c.Search(q, p, false); len(got) > MaxResults {
				t.Errorf("Search(%q, %q) returned %d results", q, p, len(got))
			}
		}
	}
}

func TestSearchPlatformFilter(t *testing.T) {
	c := Builtin()

	got := c.Search("mobile", PlatformMyntra, false)
	if len(got) != 0 {
		t.Fatalf("no mobile has a myntra offer, got %v", names(got))
	}

	got = c.Search("shirt", PlatformMyntra, false)
	if len(got) == 0 {
		t.Fatal("expected shirt results for myntra")
	}
	for _, p := range got {
		if p.Deals.Get(PlatformMyntra) == nil {
			t.Errorf("%q has no myntra offer but passed the filter", p.Name)
		}
	}
}

func TestSearchAliasedBucketsRepeatProducts(t *testing.T) {
	c := Builtin()

	got := names(c.Search("phone", PlatformAll, false))
	want := []string{"iPhone 15 Pro", "iPhone 15 Pro", "Samsung Galaxy S24", "Sony WH-1000XM5 Headphones"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSearchDedupeFoldsAliases(t *testing.T) {
	c := Builtin()

	got := names(c.Search("phone", PlatformAll, true))
	want := []string{"iPhone 15 Pro", "Samsung Galaxy S24", "Sony WH-1000XM5 Headphones"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSearchNormalizesQuery(t *testing.T) {
	c := Builtin()

	if got := c.Search("  MoBiLe  ", PlatformAll, false); len(got) != MaxResults {
		t.Fatalf("case/space normalization failed, got %d results", len(got))
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	c := Builtin()

	if got := c.Search("quantum flux capacitor", PlatformAll, false); len(got) != 0 {
		t.Fatalf("expected no results, got %v", names(got))
	}
}

func TestServiceSearch(t *testing.T) {
	svc := NewService(Builtin(), false)

	got := svc.Search(context.Background(), "tv", PlatformAmazon)
	if len(got) != 4 {
		t.Fatalf("got %d tv results, want 4", len(got))
	}
	for _, p := range got {
		if p.Deals.Get(PlatformAmazon) == nil {
			t.Errorf("%q missing amazon offer", p.Name)
		}
	}
	if svc.Size() == 0 {
		t.Fatal("catalog size must be non-zero")
	}
}
