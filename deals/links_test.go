package deals

import (
	"testing"

	"github.com/shopsavvy/dealbot/catalog"
)

func TestBuildLinkPerPlatform(t *testing.T) {
	cases := []struct {
		platform catalog.Platform
		want     string
	}{
		{catalog.PlatformFlipkart, "https://www.flipkart.com/search?q=OnePlus+12"},
		{catalog.PlatformAmazon, "https://www.amazon.in/s?k=OnePlus+12"},
		{catalog.PlatformMyntra, "https://www.myntra.com/search?q=OnePlus+12"},
		{catalog.PlatformMeesho, "https://www.meesho.com/s/p/OnePlus+12"},
	}
	for _, tc := range cases {
		if got := BuildLink("OnePlus 12", tc.platform); got != tc.want {
			t.Errorf("BuildLink(%q) = %q, want %q", tc.platform, got, tc.want)
		}
	}
}

func TestBuildLinkSanitizesName(t *testing.T) {
	got := BuildLink(`Samsung 55" 4K QLED Smart TV`, catalog.PlatformFlipkart)
	want := "https://www.flipkart.com/search?q=Samsung+55+4K+QLED+Smart+TV"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = BuildLink("Levi's Denim Shirt", catalog.PlatformMyntra)
	want = "https://www.myntra.com/search?q=Levis+Denim+Shirt"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildLinkUnknownPlatformFallsBack(t *testing.T) {
	got := BuildLink("OnePlus 12", catalog.Platform("ebay"))
	want := "https://www.google.com/search?q=OnePlus+12"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildLinkIsPure(t *testing.T) {
	first := BuildLink("OnePlus 12", catalog.PlatformFlipkart)
	for i := 0; i < 10; i++ {
		if got := BuildLink("OnePlus 12", catalog.PlatformFlipkart); got != first {
			t.Fatalf("call %d returned %q, first was %q", i, got, first)
		}
	}
}
