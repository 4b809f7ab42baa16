// Package catalog holds the product table the bot searches: buckets of
// products keyed by search/category aliases, each product carrying at
// most one offer per marketplace platform.
package catalog

import "strings"

// Platform identifies a marketplace. The set is closed; "all" is the
// pseudo-value meaning no filter.
type Platform string

const (
	PlatformFlipkart Platform = "flipkart"
	PlatformAmazon   Platform = "amazon"
	PlatformMyntra   Platform = "myntra"
	PlatformMeesho   Platform = "meesho"
	PlatformAll      Platform = "all"
)

// Platforms returns the concrete marketplaces in their declared order.
// This order breaks ties when offers are ranked.
func Platforms() []Platform {
	return []Platform{PlatformFlipkart, PlatformAmazon, PlatformMyntra, PlatformMeesho}
}

// ParsePlatform maps a token to a Platform, accepting "all".
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformFlipkart:
		return PlatformFlipkart, true
	case PlatformAmazon:
		return PlatformAmazon, true
	case PlatformMyntra:
		return PlatformMyntra, true
	case PlatformMeesho:
		return PlatformMeesho, true
	case PlatformAll:
		return PlatformAll, true
	}
	return "", false
}

// Title returns the platform name capitalized for display.
func (p Platform) Title() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Offer is an immutable per-platform pricing snapshot. DiscountPercent
// is authoritative fixture data and is never recomputed from prices.
type Offer struct {
	OriginalPrice   int    `yaml:"original_price" db:"original_price"`
	DiscountPrice   int    `yaml:"discount_price" db:"discount_price"`
	DiscountPercent int    `yaml:"discount" db:"discount_percent"`
	CouponCode      string `yaml:"coupon" db:"coupon_code"`
	Cashback        int    `yaml:"cashback" db:"cashback"`
}

// Savings returns the absolute rupee difference between the original
// and discounted price.
func (o Offer) Savings() int {
	return o.OriginalPrice - o.DiscountPrice
}

// Deals maps the closed platform set to optional offers. A nil field
// means the product is not sold on that platform.
type Deals struct {
	Flipkart *Offer `yaml:"flipkart"`
	Amazon   *Offer `yaml:"amazon"`
	Myntra   *Offer `yaml:"myntra"`
	Meesho   *Offer `yaml:"meesho"`
}

// Get returns the offer for a concrete platform, or nil.
func (d Deals) Get(p Platform) *Offer {
	switch p {
	case PlatformFlipkart:
		return d.Flipkart
	case PlatformAmazon:
		return d.Amazon
	case PlatformMyntra:
		return d.Myntra
	case PlatformMeesho:
		return d.Meesho
	}
	return nil
}

// PlatformOffer pairs a platform with its offer for ranked listings.
type PlatformOffer struct {
	Platform Platform
	Offer    Offer
}

// Available returns the non-nil offers in declared platform order.
func (d Deals) Available() []PlatformOffer {
	var out []PlatformOffer
	for _, p := range Platforms() {
		if o := d.Get(p); o != nil {
			out = append(out, PlatformOffer{Platform: p, Offer: *o})
		}
	}
	return out
}

// Product is one sellable item. Name doubles as the search key.
type Product struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Glyph    string `yaml:"glyph"`
	ImageURL string `yaml:"image_url"`
	Deals    Deals  `yaml:"deals"`
}

// Bucket groups products under a search/category alias. Aliased buckets
// may repeat the same logical product.
type Bucket struct {
	Key      string    `yaml:"key"`
	Products []Product `yaml:"products"`
}

// Catalog is the read-only, ordered product table.
type Catalog struct {
	Buckets []Bucket `yaml:"buckets"`
}

// MaxResults caps the number of products a single search returns.
const MaxResults = 5

// Search returns up to MaxResults products matching the query,
// preserving bucket declaration order and in-bucket order. A bucket
// matches when the query is a substring of its key or of any contained
// product name; a product is included when its own name or the bucket
// key contains the query. A concrete platform filter drops products
// without an offer on that platform. When dedupe is set, repeats of the
// same product name across aliased buckets collapse to the first hit.
func (c *Catalog) Search(query string, platform Platform, dedupe bool) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Product
	var seen map[string]struct{}
	if dedupe {
		seen = make(map[string]struct{})
	}

	for _, b := range c.Buckets {
		keyMatch := strings.Contains(b.Key, q)
		bucketMatch := keyMatch
		if !bucketMatch {
			for _, p := range b.Products {
				if strings.Contains(strings.ToLower(p.Name), q) {
					bucketMatch = true
					break
				}
			}
		}
		if !bucketMatch {
			continue
		}

		for _, p := range b.Products {
			if !keyMatch && !strings.Contains(strings.ToLower(p.Name), q) {
				continue
			}
			if platform != PlatformAll && platform != "" && p.Deals.Get(platform) == nil {
				continue
			}
			if dedupe {
				if _, ok := seen[p.Name]; ok {
					continue
				}
				seen[p.Name] = struct{}{}
			}
			out = append(out, p)
			if len(out) == MaxResults {
				return out
			}
		}
	}
	return out
}

// Size reports the total number of product entries across all buckets.
func (c *Catalog) Size() int {
	n := 0
	for _, b := range c.Buckets {
		n += len(b.Products)
	}
	return n
}
