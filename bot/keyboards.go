package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/shopsavvy/dealbot/catalog"
	"github.com/shopsavvy/dealbot/core/telegram/keyboard"
	"github.com/shopsavvy/dealbot/deals"
)

// Callback uniques understood by the bot. Parameterized actions carry
// their argument in the payload part of the callback data.
const (
	cbSearchProducts   = "search_products"
	cbBrowseCategories = "browse_categories"
	cbTrendingDeals    = "trending_deals"
	cbFestivalDeals    = "festival_deals"
	cbHelp             = "help"
	cbPlatform         = "platform"
	cbCategory         = "category"
	cbDealType         = "dealtype"
)

// categories offered in the browse grid.
var categories = []string{
	"Mobile", "Television", "Shirt", "Electronics", "Fashion",
	"Home & Kitchen", "Books", "Sports & Fitness",
	"Beauty & Personal Care", "Automotive",
}

// dealTypes offered in the deal-type list.
var dealTypes = []string{
	"Percentage Discounts", "BOGO Offers", "Bank Discounts",
	"Clearance Sales", "Cashback Offers",
}

func slugify(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

func unslug(slug string) string {
	return strings.ReplaceAll(slug, "_", " ")
}

// mainMenuKeyboard is the five-action main menu: two paired rows plus
// a lone help row.
func mainMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "🔍 Search Products", Unique: cbSearchProducts},
			{Text: "📂 Browse Categories", Unique: cbBrowseCategories},
		},
		[]keyboard.InlineBtn{
			{Text: "🔥 Trending Deals", Unique: cbTrendingDeals},
			{Text: "🎉 Festival Sales", Unique: cbFestivalDeals},
		},
		[]keyboard.InlineBtn{
			{Text: "❓ Help", Unique: cbHelp},
		},
	)
}

// platformKeyboard pairs the four marketplaces and puts the
// all-platforms option on its own row.
func platformKeyboard() *tele.ReplyMarkup {
	btn := func(p catalog.Platform, label string) keyboard.InlineBtn {
		return keyboard.InlineBtn{
			Text:   fmt.Sprintf("%s %s", deals.PlatformEmoji(p), label),
			Unique: cbPlatform,
			Data:   string(p),
		}
	}
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{btn(catalog.PlatformFlipkart, "Flipkart"), btn(catalog.PlatformAmazon, "Amazon")},
		[]keyboard.InlineBtn{btn(catalog.PlatformMeesho, "Meesho"), btn(catalog.PlatformMyntra, "Myntra")},
		[]keyboard.InlineBtn{btn(catalog.PlatformAll, "All Platforms")},
	)
}

// categoryKeyboard lays out the category grid two per row.
func categoryKeyboard() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, len(categories))
	for i, c := range categories {
		buttons[i] = keyboard.InlineBtn{Text: c, Unique: cbCategory, Data: slugify(c)}
	}
	return keyboard.InlineButtonsNPerRow(buttons, 2)
}

// dealTypeKeyboard lists deal types one per row.
func dealTypeKeyboard() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, len(dealTypes))
	for i, d := range dealTypes {
		buttons[i] = keyboard.InlineBtn{Text: d, Unique: cbDealType, Data: slugify(d)}
	}
	return keyboard.InlineButtons(buttons)
}

// productLinkKeyboard builds the shopping-link buttons for a deal card.
// A concrete platform yields a single direct link; the comparison view
// gets one URL button per available offer, two per row.
func productLinkKeyboard(p catalog.Product, platform catalog.Platform) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	if platform != "" && platform != catalog.PlatformAll {
		if p.Deals.Get(platform) == nil {
			return nil
		}
		btn := markup.URL(fmt.Sprintf("🛒 Shop on %s", platform.Title()), deals.BuildLink(p.Name, platform))
		markup.InlineKeyboard = [][]tele.InlineButton{{*btn.Inline()}}
		return markup
	}

	available := p.Deals.Available()
	if len(available) == 0 {
		return nil
	}
	buttons := make([]tele.Btn, 0, len(available))
	for _, po := range available {
		buttons = append(buttons, markup.URL(fmt.Sprintf("🛒 %s", po.Platform.Title()), deals.BuildLink(p.Name, po.Platform)))
	}
	markup.InlineKeyboard = keyboard.ToInlineKeyboard(keyboard.ChunkButtons(buttons, 2))
	return markup
}
