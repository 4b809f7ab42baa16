package bot

import (
	"fmt"

	"github.com/shopsavvy/dealbot/core/telegram/format"
)

// escapeQuery neutralizes markdown control characters in user-typed
// text before it is echoed back inside a Markdown reply.
func escapeQuery(q string) string {
	escaped, err := format.EscapeMarkdown(q, format.MarkdownV1, "")
	if err != nil {
		return q
	}
	return escaped
}

const welcomeText = `🛍️ **Welcome to ShopSavvy!** 🛍️

I can help you find the best deals on:
🛒 Flipkart
📦 Amazon
🛍️ Meesho
👗 Myntra

What would you like to do today?`

const helpText = `🤖 **ShopSavvy Help** 🤖

**Commands:**
/start - Start the bot
/help - Show this help message
/deals - Browse trending deals

**How to use:**
1️⃣ Choose a platform or search all platforms
2️⃣ Search for products by name or browse categories
3️⃣ View deals with prices, discounts, and coupons
4️⃣ Get direct purchase links

**Features:**
🔍 Product search across platforms
📊 Price comparison
🎟️ Coupon codes and cashback info
🔥 Trending deals
🎉 Festival sale alerts

Need help? Just type your product name!`

const choosePlatformText = "🏪 **Choose Platform** 🏪\n\n" +
	"Would you like to search one platform or compare deals across all?"

const browseCategoriesText = "📂 **Browse by Category** 📂\n\n" +
	"Select a category to explore:"

const chooseDealTypeText = "💸 **Deal Types** 💸\n\n" +
	"What kind of offer are you after?"

const searchingText = "🔍 Searching for deals... Please wait!"

const directSearchingText = "🔍 Let me search for deals on that..."

const allDealsShownText = "✅ **All deals shown!** What would you like to do next?"

const cancelledText = "✅ **Operation cancelled**\n\nWhat would you like to do next?"

const didntUnderstandText = "❓ I didn't understand that. Please try again or use the menu buttons below."

const searchFailedText = "❌ **Oops! Something went wrong** ❌\n\n" +
	"Our deal-finding robots are taking a quick break. " +
	"Please try again in a moment!\n\n" +
	"💡 You can also try:\n" +
	"• Different search terms\n" +
	"• Browsing categories\n" +
	"• Checking trending deals"

func platformSelectedText(title string) string {
	return fmt.Sprintf("✅ Selected: %s\n\n"+
		"Now, what product are you looking for?\n"+
		"💡 Try: smartphones, shirts, home appliances, electronics", title)
}

func categorySelectedText(category string) string {
	return fmt.Sprintf("📂 **Category:** %s\n\n🏪 **Choose Platform:**", category)
}

func dealTypeComingSoonText(dealType string) string {
	return fmt.Sprintf("✅ Looking for: %s\n\n"+
		"This feature will be available in the next update! 🚀\n\n"+
		"For now, try searching for specific products.", dealType)
}

func notFoundText(query string) string {
	return fmt.Sprintf("❌ Sorry, I couldn't find any offers matching '%s'. "+
		"Try different keywords or check back later.\n\n"+
		"💡 **Suggestions:**\n"+
		"• Try broader terms like 'phone' instead of specific models\n"+
		"• Check spelling\n"+
		"• Browse categories instead", escapeQuery(query))
}

func directNotFoundText(query string) string {
	return fmt.Sprintf("❌ No deals found for '%s'\n\n"+
		"💡 **Try:**\n"+
		"• More general terms (e.g., 'phone' instead of 'iPhone 15 Pro')\n"+
		"• Browse categories using the menu\n"+
		"• Check trending deals", escapeQuery(query))
}

func foundDealsText(count int, query string) string {
	return fmt.Sprintf("🎯 **Found %d deals for '%s'**\n\nLet me show you the best deals:", count, escapeQuery(query))
}
