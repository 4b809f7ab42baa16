package catalog

func offer(original, discounted, percent int, coupon string, cashback int) *Offer {
	return &Offer{
		OriginalPrice:   original,
		DiscountPrice:   discounted,
		DiscountPercent: percent,
		CouponCode:      coupon,
		Cashback:        cashback,
	}
}

// Builtin returns the static demo catalog. Bucket order is significant:
// search results keep it. The "mobile"/"smartphones" and
// "shirt"/"shirts" buckets intentionally alias overlapping products.
func Builtin() *Catalog {
	iphone := Product{
		Name:     "iPhone 15 Pro",
		Category: "Electronics",
		Glyph:    "📱",
		ImageURL: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400&h=400&fit=crop",
		Deals: Deals{
			Flipkart: offer(134900, 119900, 11, "FLIP10", 2000),
			Amazon:   offer(134900, 122900, 9, "PRIME5", 1500),
		},
	}
	galaxy := Product{
		Name:     "Samsung Galaxy S24",
		Category: "Electronics",
		Glyph:    "📱",
		ImageURL: "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=400&fit=crop",
		Deals: Deals{
			Flipkart: offer(79999, 69999, 13, "SAMSUNG15", 1000),
			Amazon:   offer(79999, 71999, 10, "GALAXY10", 800),
		},
	}
	tommy := Product{
		Name:     "Tommy Hilfiger Cotton Shirt",
		Category: "Fashion",
		Glyph:    "👔",
		ImageURL: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=400&fit=crop",
		Deals: Deals{
			Flipkart: offer(2999, 1799, 40, "FASHION50", 100),
			Amazon:   offer(2999, 1899, 37, "STYLE30", 80),
			Myntra:   offer(2999, 1699, 43, "MYNTRA40", 120),
			Meesho:   offer(2999, 1999, 33, "SHIRT25", 60),
		},
	}
	levis := Product{
		Name:     "Levi's Denim Shirt",
		Category: "Fashion",
		Glyph:    "👔",
		ImageURL: "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=400&h=400&fit=crop",
		Deals: Deals{
			Flipkart: offer(3499, 2099, 40, "DENIM50", 150),
			Amazon:   offer(3499, 2199, 37, "LEVIS30", 100),
			Myntra:   offer(3499, 1999, 43, "MYNTRA45", 180),
		},
	}

	return &Catalog{Buckets: []Bucket{
		{Key: "mobile", Products: []Product{
			iphone,
			galaxy,
			{
				Name:     "OnePlus 12",
				Category: "Electronics",
				Glyph:    "📱",
				ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(64999, 58999, 9, "ONEPLUS10", 500),
					Amazon:   offer(64999, 57999, 11, "NEVER10", 700),
					Meesho:   offer(64999, 59999, 8, "MEESHO5", 300),
				},
			},
			{
				Name:     "Xiaomi 14 Pro",
				Category: "Electronics",
				Glyph:    "📱",
				ImageURL: "https://images.unsplash.com/photo-1592286286633-d9baacccb064?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(52999, 47999, 9, "XIAOMI10", 1500),
					Amazon:   offer(52999, 48999, 8, "MI15", 1200),
					Meesho:   offer(52999, 49999, 6, "PHONE5", 800),
				},
			},
			{
				Name:     "Vivo V30 Pro",
				Category: "Electronics",
				Glyph:    "📱",
				ImageURL: "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(41999, 37999, 10, "VIVO12", 1000),
					Amazon:   offer(41999, 38999, 7, "CAMERA10", 800),
					Meesho:   offer(41999, 39999, 5, "SELFIE5", 500),
				},
			},
		}},
		{Key: "smartphones", Products: []Product{iphone, galaxy}},
		{Key: "television", Products: []Product{
			{
				Name:     "Samsung 55\" 4K QLED Smart TV",
				Category: "Electronics",
				Glyph:    "📺",
				ImageURL: "https://images.unsplash.com/photo-1567690187548-f07b1d7bf5a9?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(89999, 74999, 17, "TV20", 3000),
					Amazon:   offer(89999, 76999, 14, "SMART15", 2500),
				},
			},
			{
				Name:     "LG 43\" 4K UHD Smart TV",
				Category: "Electronics",
				Glyph:    "📺",
				ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(49999, 39999, 20, "LG25", 2000),
					Amazon:   offer(49999, 41999, 16, "UHD20", 1800),
				},
			},
			{
				Name:     "Sony Bravia 65\" OLED TV",
				Category: "Electronics",
				Glyph:    "📺",
				ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(199999, 164999, 18, "OLED25", 8000),
					Amazon:   offer(199999, 169999, 15, "SONY20", 7000),
				},
			},
			{
				Name:     "Mi 32\" HD Smart TV",
				Category: "Electronics",
				Glyph:    "📺",
				ImageURL: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(19999, 14999, 25, "MI30", 1000),
					Amazon:   offer(19999, 15999, 20, "BUDGET25", 800),
					Meesho:   offer(19999, 16999, 15, "TV15", 500),
				},
			},
		}},
		{Key: "shirt", Products: []Product{
			tommy,
			levis,
			{
				Name:     "Peter England Formal Shirt",
				Category: "Fashion",
				Glyph:    "👔",
				ImageURL: "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(1999, 1199, 40, "FORMAL50", 80),
					Amazon:   offer(1999, 1299, 35, "OFFICE40", 70),
					Myntra:   offer(1999, 1099, 45, "MYNTRA45", 100),
					Meesho:   offer(1999, 1399, 30, "WORK30", 50),
				},
			},
			{
				Name:     "Van Heusen Casual Shirt",
				Category: "Fashion",
				Glyph:    "👔",
				ImageURL: "https://images.unsplash.com/photo-1621072156002-e2fccdc0b176?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(2499, 1749, 30, "VH35", 120),
					Amazon:   offer(2499, 1849, 26, "CASUAL30", 100),
					Myntra:   offer(2499, 1649, 34, "WEEKEND35", 150),
				},
			},
			{
				Name:     "Arrow Sports Polo Shirt",
				Category: "Fashion",
				Glyph:    "👔",
				ImageURL: "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(1799, 1259, 30, "POLO35", 90),
					Amazon:   offer(1799, 1349, 25, "SPORT30", 75),
					Myntra:   offer(1799, 1199, 33, "ARROW35", 120),
					Meesho:   offer(1799, 1439, 20, "ACTIVE20", 60),
				},
			},
		}},
		{Key: "shirts", Products: []Product{tommy, levis}},
		{Key: "home appliances", Products: []Product{
			{
				Name:     "LG 1.5 Ton AC",
				Category: "Home & Kitchen",
				Glyph:    "❄️",
				ImageURL: "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(45999, 39999, 13, "AC15", 2000),
					Amazon:   offer(45999, 41999, 9, "COOL10", 1500),
				},
			},
			{
				Name:     "Samsung Front Load Washing Machine",
				Category: "Home & Kitchen",
				Glyph:    "🧺",
				ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(32999, 27999, 15, "WASH20", 1200),
					Amazon:   offer(32999, 28999, 12, "CLEAN15", 1000),
				},
			},
		}},
		{Key: "electronics", Products: []Product{
			{
				Name:     "Sony WH-1000XM5 Headphones",
				Category: "Electronics",
				Glyph:    "🎧",
				ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(29990, 24990, 17, "AUDIO20", 800),
					Amazon:   offer(29990, 25990, 13, "SONY15", 600),
				},
			},
			{
				Name:     "MacBook Air M2",
				Category: "Electronics",
				Glyph:    "💻",
				ImageURL: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400&h=400&fit=crop",
				Deals: Deals{
					Flipkart: offer(114900, 104900, 9, "MAC10", 3000),
					Amazon:   offer(114900, 107900, 6, "APPLE5", 2500),
				},
			},
		}},
	}}
}
