package deals

import (
	"strings"

	"github.com/shopsavvy/dealbot/catalog"
)

var platformSearchURLs = map[catalog.Platform]string{
	catalog.PlatformFlipkart: "https://www.flipkart.com/search?q=",
	catalog.PlatformAmazon:   "https://www.amazon.in/s?k=",
	catalog.PlatformMyntra:   "https://www.myntra.com/search?q=",
	catalog.PlatformMeesho:   "https://www.meesho.com/s/p/",
}

const fallbackSearchURL = "https://www.google.com/search?q="

// BuildLink derives the marketplace search link for a product. Pure
// string construction: quote characters are stripped and spaces become
// "+". Unknown platforms fall back to a generic web search.
func BuildLink(productName string, platform catalog.Platform) string {
	term := strings.NewReplacer(" ", "+", "\"", "", "'", "").Replace(productName)
	base, ok := platformSearchURLs[platform]
	if !ok {
		base = fallbackSearchURL
	}
	return base + term
}
