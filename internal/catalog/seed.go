package catalog

// Seed returns the demo catalog used by the storefront binary. The mix
// deliberately covers every category plus featured, out-of-stock and
// free-shipping products so each filter has something to bite on.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Classic Leather Tote", Description: "Handstitched full-grain leather tote bag", Category: "Bags", PriceCents: 12900, Rating: 4.7, Reviews: 214, InStock: true, Featured: true, Tags: []string{"leather", "tote", FreeShippingTag}, Image: "tote.jpg"},
		{ID: 2, Name: "Running Shoe", Description: "Lightweight breathable running shoe", Category: "Footwear", PriceCents: 8900, Rating: 4.5, Reviews: 532, InStock: true, Featured: false, Tags: []string{"shoe", "sport"}, Image: "runner.jpg"},
		{ID: 3, Name: "Wool Fedora Hat", Description: "Classic wool felt fedora", Category: "Accessories", PriceCents: 4500, Rating: 4.1, Reviews: 88, InStock: true, Featured: false, Tags: []string{"hat", "wool"}, Image: "fedora.jpg"},
		{ID: 4, Name: "Canvas Weekender", Description: "Waxed canvas weekender with brass hardware", Category: "Bags", PriceCents: 15900, Rating: 4.8, Reviews: 167, InStock: false, Featured: true, Tags: []string{"canvas", "travel", FreeShippingTag}, Image: "weekender.jpg"},
		{ID: 5, Name: "Trail Hiking Boot", Description: "Waterproof leather hiking boot", Category: "Footwear", PriceCents: 13400, Rating: 4.6, Reviews: 301, InStock: true, Featured: false, Tags: []string{"shoe", "boot", "outdoor"}, Image: "boot.jpg"},
		{ID: 6, Name: "Silk Pocket Square", Description: "Hand-rolled silk pocket square", Category: "Accessories", PriceCents: 2400, Rating: 3.9, Reviews: 41, InStock: true, Featured: false, Tags: []string{"silk", "formal"}, Image: "square.jpg"},
		{ID: 7, Name: "Everyday Backpack", Description: "Water-resistant commuter backpack with laptop sleeve", Category: "Bags", PriceCents: 9800, Rating: 4.4, Reviews: 623, InStock: true, Featured: true, Tags: []string{"backpack", "commute", FreeShippingTag}, Image: "backpack.jpg"},
		{ID: 8, Name: "Suede Loafer", Description: "Italian suede penny loafer", Category: "Footwear", PriceCents: 17800, Rating: 4.9, Reviews: 129, InStock: true, Featured: true, Tags: []string{"shoe", "suede", "formal"}, Image: "loafer.jpg"},
		{ID: 9, Name: "Braided Leather Belt", Description: "Hand-braided leather belt", Category: "Accessories", PriceCents: 3900, Rating: 4.2, Reviews: 203, InStock: true, Featured: false, Tags: []string{"leather", "belt"}, Image: "belt.jpg"},
		{ID: 10, Name: "Linen Summer Scarf", Description: "Lightweight linen scarf in natural dye", Category: "Accessories", PriceCents: 3200, Rating: 4.0, Reviews: 57, InStock: false, Featured: false, Tags: []string{"linen", "summer"}, Image: "scarf.jpg"},
		{ID: 11, Name: "Crossbody Saddle Bag", Description: "Compact saddle bag with adjustable strap", Category: "Bags", PriceCents: 7400, Rating: 4.3, Reviews: 345, InStock: true, Featured: false, Tags: []string{"leather", "crossbody"}, Image: "saddle.jpg"},
		{ID: 12, Name: "Canvas Sneaker", Description: "Low-top organic canvas sneaker", Category: "Footwear", PriceCents: 5600, Rating: 4.0, Reviews: 418, InStock: true, Featured: false, Tags: []string{"shoe", "canvas", FreeShippingTag}, Image: "sneaker.jpg"},
		{ID: 13, Name: "Merino Beanie", Description: "Ribbed merino wool beanie", Category: "Accessories", PriceCents: 2800, Rating: 4.6, Reviews: 92, InStock: true, Featured: false, Tags: []string{"wool", "winter"}, Image: "beanie.jpg"},
	}
}
