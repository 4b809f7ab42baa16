package deals

import (
	"strings"
	"testing"
	"time"

	"github.com/shopsavvy/dealbot/catalog"
)

func fixedFormatter() *Formatter {
	return &Formatter{
		Now:  func() time.Time { return time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC) },
		Intn: func(n int) int { return 4 },
	}
}

func sampleProduct() catalog.Product {
	return catalog.Product{
		Name:  "iPhone 15 Pro",
		Glyph: "📱",
		Deals: catalog.Deals{
			Flipkart: &catalog.Offer{
				OriginalPrice:   134900,
				DiscountPrice:   119900,
				DiscountPercent: 11,
				CouponCode:      "FLIP10",
				Cashback:        2000,
			},
			Amazon: &catalog.Offer{
				OriginalPrice:   134900,
				DiscountPrice:   122900,
				DiscountPercent: 9,
				CouponCode:      "PRIME5",
				Cashback:        1500,
			},
		},
	}
}

func TestFormatSinglePlatform(t *testing.T) {
	f := fixedFormatter()
	got := f.Format(sampleProduct(), catalog.PlatformFlipkart)

	for _, want := range []string{
		"📱 **iPhone 15 Pro**",
		"🛒 **Flipkart**",
		"💰 **Price:** ~~₹134,900~~ → **₹119,900**",
		"📊 **Discount:** 11% OFF",
		"💸 **You Save:** ₹15,000",
		"🎟️ **Coupon:** FLIP10",
		"💳 **Cashback:** ₹2,000",
		"🚚 **Free Delivery:** Yes",
		"🔗 **[Buy Now](https://www.flipkart.com/search?q=iPhone+15+Pro)**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatValidityUsesInjectedClock(t *testing.T) {
	f := fixedFormatter()
	// 2025-09-01 plus 5+4 days.
	got := f.Format(sampleProduct(), catalog.PlatformFlipkart)
	if !strings.Contains(got, "⏰ **Valid till:** 10 September 2025") {
		t.Fatalf("validity date not derived from injected clock:\n%s", got)
	}
}

func TestFormatMissingPlatformOffer(t *testing.T) {
	f := fixedFormatter()
	got := f.Format(sampleProduct(), catalog.PlatformMyntra)
	if got != "❌ No deals found for iPhone 15 Pro on Myntra" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFormatComparisonRanksByDiscount(t *testing.T) {
	f := fixedFormatter()
	// flipkart 13% vs amazon 10%: flipkart renders first and wins.
	p := catalog.Product{
		Name:  "Samsung Galaxy S24",
		Glyph: "📱",
		Deals: catalog.Deals{
			Flipkart: &catalog.Offer{OriginalPrice: 79999, DiscountPrice: 69999, DiscountPercent: 13, CouponCode: "SAMSUNG15", Cashback: 1000},
			Amazon:   &catalog.Offer{OriginalPrice: 79999, DiscountPrice: 71999, DiscountPercent: 10, CouponCode: "GALAXY10", Cashback: 800},
		},
	}

	got := f.Format(p, catalog.PlatformAll)
	flip := strings.Index(got, "**Flipkart**")
	amz := strings.Index(got, "**Amazon**")
	if flip < 0 || amz < 0 || flip > amz {
		t.Fatalf("flipkart must render before amazon:\n%s", got)
	}
	if !strings.Contains(got, "🏆 **Best Deal:** Flipkart with 13% OFF") {
		t.Fatalf("best deal trailer wrong:\n%s", got)
	}
	if !strings.Contains(got, "🎟️ GALAXY10 | 💳 ₹800 cashback") {
		t.Fatalf("comparison coupon line wrong:\n%s", got)
	}
}

func TestFormatComparisonTieKeepsPlatformOrder(t *testing.T) {
	f := fixedFormatter()
	p := catalog.Product{
		Name: "Tie Product",
		Deals: catalog.Deals{
			Flipkart: &catalog.Offer{OriginalPrice: 100, DiscountPrice: 90, DiscountPercent: 10},
			Amazon:   &catalog.Offer{OriginalPrice: 100, DiscountPrice: 90, DiscountPercent: 10},
		},
	}

	got := f.Format(p, catalog.PlatformAll)
	if !strings.Contains(got, "🏆 **Best Deal:** Flipkart with 10% OFF") {
		t.Fatalf("tie must keep declared platform order:\n%s", got)
	}
}

func TestFormatNoOffersAtAll(t *testing.T) {
	f := fixedFormatter()
	p := catalog.Product{Name: "Ghost Product"}
	if got := f.Format(p, catalog.PlatformAll); got != "❌ No deals found for Ghost Product" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{15000, "₹15,000"},
		{134900, "₹134,900"},
		{-2500, "-₹2,500"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
