package deals

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopsavvy/dealbot/catalog"
)

// TrendingDeal is one entry of the curated hot-deals list.
type TrendingDeal struct {
	Product         string
	Platform        catalog.Platform
	DiscountPercent int
}

// FestivalSale is an upcoming marketplace sale event.
type FestivalSale struct {
	Name        string
	Date        time.Time
	Platforms   []catalog.Platform
	Description string
}

var trendingDeals = []TrendingDeal{
	{Product: `Mi 32" HD Smart TV`, Platform: catalog.PlatformFlipkart, DiscountPercent: 25},
	{Product: "iPhone 15 Pro", Platform: catalog.PlatformFlipkart, DiscountPercent: 11},
	{Product: "Peter England Formal Shirt", Platform: catalog.PlatformMyntra, DiscountPercent: 45},
	{Product: `Samsung 55" 4K QLED Smart TV`, Platform: catalog.PlatformFlipkart, DiscountPercent: 17},
	{Product: "Xiaomi 14 Pro", Platform: catalog.PlatformFlipkart, DiscountPercent: 9},
	{Product: "Arrow Sports Polo Shirt", Platform: catalog.PlatformMyntra, DiscountPercent: 33},
	{Product: `Sony Bravia 65" OLED TV`, Platform: catalog.PlatformFlipkart, DiscountPercent: 18},
}

var festivalSales = []FestivalSale{
	{
		Name:        "Big Billion Days",
		Date:        time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		Platforms:   []catalog.Platform{catalog.PlatformFlipkart},
		Description: "Flipkart's biggest sale of the year",
	},
	{
		Name:        "Great Indian Festival",
		Date:        time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		Platforms:   []catalog.Platform{catalog.PlatformAmazon},
		Description: "Amazon's mega sale event",
	},
	{
		Name:        "Diwali Sale",
		Date:        time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		Platforms:   []catalog.Platform{catalog.PlatformFlipkart, catalog.PlatformAmazon, catalog.PlatformMyntra, catalog.PlatformMeesho},
		Description: "Festival of lights special offers",
	},
	{
		Name:        "End of Reason Sale",
		Date:        time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC),
		Platforms:   []catalog.Platform{catalog.PlatformMyntra},
		Description: "Myntra's year-end fashion sale",
	},
}

// Trending returns the curated hot-deals list in display order.
func Trending() []TrendingDeal {
	out := make([]TrendingDeal, len(trendingDeals))
	copy(out, trendingDeals)
	return out
}

// Festivals returns the known sale events, earliest first.
func Festivals() []FestivalSale {
	out := make([]FestivalSale, len(festivalSales))
	copy(out, festivalSales)
	return out
}

// FormatTrending renders the numbered hot-deals listing with an
// updated-at stamp from the Formatter clock.
func (f *Formatter) FormatTrending() string {
	var b strings.Builder
	b.WriteString("🔥 **Today's Hottest Deals** 🔥\n\n")
	for i, deal := range trendingDeals {
		fmt.Fprintf(&b, "%d. %s **%s** - %d%% OFF on %s\n",
			i+1, PlatformEmoji(deal.Platform), deal.Product, deal.DiscountPercent, deal.Platform.Title())
	}
	fmt.Fprintf(&b, "\n📅 Updated: %s", f.Now().Format("02 January 2006, 03:04 PM"))
	return b.String()
}

// FormatFestivals renders upcoming sale events with a days-left
// countdown. Events already past the Formatter clock are dropped; with
// nothing upcoming a plain fallback line is returned.
func (f *Formatter) FormatFestivals() string {
	now := f.Now()

	var b strings.Builder
	var upcoming int
	b.WriteString("🎉 **Upcoming Sale Events** 🎉\n\n")
	for _, sale := range festivalSales {
		daysLeft := int(sale.Date.Sub(now).Hours() / 24)
		if daysLeft <= 0 {
			continue
		}
		upcoming++

		names := make([]string, len(sale.Platforms))
		for i, p := range sale.Platforms {
			names[i] = p.Title()
		}
		fmt.Fprintf(&b, "📅 **%s**\n", sale.Name)
		fmt.Fprintf(&b, "🗓️ %s (%d days left)\n", sale.Date.Format("02 January 2006"), daysLeft)
		fmt.Fprintf(&b, "🏪 Platforms: %s\n", strings.Join(names, ", "))
		fmt.Fprintf(&b, "📝 %s\n\n", sale.Description)
	}

	if upcoming == 0 {
		return "No upcoming sales found."
	}
	return strings.TrimSpace(b.String())
}
