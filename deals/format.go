// Package deals renders product offers into chat-ready deal messages:
// single-platform cards, cross-platform comparisons, and the
// trending/festival listings.
package deals

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/shopsavvy/dealbot/catalog"
)

var platformEmojis = map[catalog.Platform]string{
	catalog.PlatformFlipkart: "🛒",
	catalog.PlatformAmazon:   "📦",
	catalog.PlatformMeesho:   "🛍️",
	catalog.PlatformMyntra:   "👗",
	catalog.PlatformAll:      "🔍",
}

// PlatformEmoji returns the marketplace emoji, with a generic cart for
// unknown platforms.
func PlatformEmoji(p catalog.Platform) string {
	if e, ok := platformEmojis[p]; ok {
		return e
	}
	return "🛒"
}

// Formatter renders deal messages. Now and Intn are injectable so the
// synthetic validity date pins down in tests; both must be safe for
// concurrent use (the defaults are).
type Formatter struct {
	Now  func() time.Time
	Intn func(n int) int
}

// NewFormatter returns a Formatter on the real clock and RNG.
func NewFormatter() *Formatter {
	return &Formatter{Now: time.Now, Intn: rand.Intn}
}

// validUntil produces the cosmetic offer expiry: a date 5-30 days out.
func (f *Formatter) validUntil() string {
	days := 5 + f.Intn(26)
	return f.Now().AddDate(0, 0, days).Format("02 January 2006")
}

// Format renders the deal message for a product. A concrete platform
// selects single-platform mode; PlatformAll or the empty value selects
// the comparison across every available offer. Missing offers yield the
// informational not-found messages, never an error.
func (f *Formatter) Format(p catalog.Product, platform catalog.Platform) string {
	if platform != "" && platform != catalog.PlatformAll {
		return f.formatSingle(p, platform)
	}
	return f.formatComparison(p)
}

func (f *Formatter) formatSingle(p catalog.Product, platform catalog.Platform) string {
	deal := p.Deals.Get(platform)
	if deal == nil {
		return fmt.Sprintf("❌ No deals found for %s on %s", p.Name, platform.Title())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s**\n", p.Glyph, p.Name)
	fmt.Fprintf(&b, "%s **%s**\n\n", PlatformEmoji(platform), platform.Title())
	fmt.Fprintf(&b, "💰 **Price:** ~~%s~~ → **%s**\n", FormatPrice(deal.OriginalPrice), FormatPrice(deal.DiscountPrice))
	fmt.Fprintf(&b, "📊 **Discount:** %d%% OFF\n", deal.DiscountPercent)
	fmt.Fprintf(&b, "💸 **You Save:** %s\n", FormatPrice(deal.Savings()))
	fmt.Fprintf(&b, "🎟️ **Coupon:** %s\n", deal.CouponCode)
	fmt.Fprintf(&b, "💳 **Cashback:** %s\n", FormatPrice(deal.Cashback))
	fmt.Fprintf(&b, "⏰ **Valid till:** %s\n", f.validUntil())
	b.WriteString("🚚 **Free Delivery:** Yes\n")
	fmt.Fprintf(&b, "🔗 **[Buy Now](%s)**", BuildLink(p.Name, platform))
	return b.String()
}

func (f *Formatter) formatComparison(p catalog.Product) string {
	available := p.Deals.Available()
	if len(available) == 0 {
		return fmt.Sprintf("❌ No deals found for %s", p.Name)
	}

	// Stable sort: ties keep the declared platform order.
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Offer.DiscountPercent > available[j].Offer.DiscountPercent
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s**\n", p.Glyph, p.Name)
	for _, po := range available {
		deal := po.Offer
		fmt.Fprintf(&b, "\n%s **%s**\n", PlatformEmoji(po.Platform), po.Platform.Title())
		fmt.Fprintf(&b, "💰 ~~%s~~ → **%s**\n", FormatPrice(deal.OriginalPrice), FormatPrice(deal.DiscountPrice))
		fmt.Fprintf(&b, "📊 %d%% OFF | 💸 Save %s\n", deal.DiscountPercent, FormatPrice(deal.Savings()))
		fmt.Fprintf(&b, "🎟️ %s | 💳 ₹%d cashback\n", deal.CouponCode, deal.Cashback)
	}

	best := available[0]
	fmt.Fprintf(&b, "\n🏆 **Best Deal:** %s with %d%% OFF", best.Platform.Title(), best.Offer.DiscountPercent)
	return b.String()
}
