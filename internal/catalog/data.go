package catalog

// thumbnailIndex maps shop tile images to product ids. Tiles carry no id of
// their own, so routing keys off the image path.
var thumbnailIndex = map[string]string{
	"assets/Products/f1.png":  "masako-seasoning",
	"assets/Products/f2.png":  "teriyaki-sauce",
	"assets/Products/f3.png":  "almond-milk",
	"assets/Products/f4.png":  "ramen-family-pack",
	"assets/Products/f5.png":  "herman-mayonnaise",
	"assets/Products/f6.png":  "blueberry-filling",
	"assets/Products/f7.png":  "strawberry-filling",
	"assets/Products/f8.png":  "coco-chips",
	"assets/Products/f9.png":  "cream-cheese",
	"assets/Products/f10.jpg": "boba-pearls",
	"assets/Products/f11.png": "corn-syrup",
	"assets/Products/f12.png": "flavoured-pastes",
}

var products = []Product{
	{
		ID:              "masako-seasoning",
		Name:            "Masako Meat Seasoning",
		Brand:           "Masako",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f1.png",
			"assets/Products/f2.png",
			"assets/Products/f3.png",
			"assets/Products/f4.png",
		},
		Description: "Premium meat seasoning that enhances the flavor of your dishes. Perfect for grilling, roasting, and everyday cooking. Made with high-quality spices and natural ingredients for authentic taste.",
		Category:    "Seasonings",
		InStock:     true,
		Features: []string{
			"All-natural ingredients",
			"No artificial preservatives",
			"Perfect for meat dishes",
			"Easy to use",
		},
	},
	{
		ID:              "herman-mayonnaise",
		Name:            "Herman Mayonnaise",
		Brand:           "Herman",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f5.png",
			"assets/Products/f1.png",
			"assets/Products/f2.png",
			"assets/Products/f3.png",
		},
		Description: "Creamy and rich mayonnaise perfect for sandwiches, salads, and cooking. Made with premium ingredients for the perfect taste and texture.",
		Category:    "Condiments",
		InStock:     true,
		Features: []string{
			"Creamy texture",
			"Premium quality",
			"Versatile use",
			"Long shelf life",
		},
	},
	{
		ID:              "blueberry-filling",
		Name:            "Blueberry Filling",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f6.png",
			"assets/Products/f7.png",
			"assets/Products/f8.png",
			"assets/Products/f9.png",
		},
		Description: "Delicious blueberry filling perfect for cakes, pastries, and desserts. Made with real blueberries for authentic flavor and natural sweetness.",
		Category:    "Baking Supplies",
		InStock:     true,
		Features: []string{
			"Made with real blueberries",
			"Perfect for baking",
			"Natural flavor",
			"No artificial colors",
		},
	},
	{
		ID:              "strawberry-filling",
		Name:            "Strawberry Filling",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f7.png",
			"assets/Products/f6.png",
			"assets/Products/f8.png",
			"assets/Products/f9.png",
		},
		Description: "Sweet and tangy strawberry filling ideal for cakes, tarts, and pastries. Made with premium strawberries for exceptional taste.",
		Category:    "Baking Supplies",
		InStock:     true,
		Features: []string{
			"Premium strawberry flavor",
			"Perfect consistency",
			"Great for baking",
			"Natural ingredients",
		},
	},
	{
		ID:              "coco-chips",
		Name:            "Coco Chips",
		Brand:           "Malaysian",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f8.png",
			"assets/Products/f9.png",
			"assets/Products/f10.jpg",
			"assets/Products/f11.png",
		},
		Description: "Crispy and delicious coconut chips, perfect as a snack or ingredient for baking. Made from fresh coconuts with authentic Malaysian quality.",
		Category:    "Snacks",
		InStock:     true,
		Features: []string{
			"Made from fresh coconuts",
			"Crispy texture",
			"Malaysian quality",
			"Perfect for snacking",
		},
	},
	{
		ID:              "cream-cheese",
		Name:            "Cream Cheese",
		Brand:           "Beqa",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f9.png",
			"assets/Products/f10.jpg",
			"assets/Products/f11.png",
			"assets/Products/f12.png",
		},
		Description: "Smooth and creamy cheese perfect for spreading, baking, and cooking. High-quality cream cheese with rich flavor and perfect texture.",
		Category:    "Dairy",
		InStock:     true,
		Features: []string{
			"Smooth texture",
			"Rich flavor",
			"Versatile use",
			"Premium quality",
		},
	},
	{
		ID:              "boba-pearls",
		Name:            "Boba Pearls",
		Brand:           "Doking",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f10.jpg",
			"assets/Products/f11.png",
			"assets/Products/f12.png",
			"assets/Products/f1.png",
		},
		Description: "Authentic boba pearls perfect for bubble tea and desserts. Easy to prepare and provides the perfect chewy texture.",
		Category:    "Beverages",
		InStock:     true,
		Features: []string{
			"Authentic taste",
			"Easy to prepare",
			"Perfect texture",
			"Great for bubble tea",
		},
	},
	{
		ID:              "corn-syrup",
		Name:            "Corn Syrup",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f11.png",
			"assets/Products/f12.png",
			"assets/Products/f1.png",
			"assets/Products/f2.png",
		},
		Description: "High-quality corn syrup perfect for baking, candy making, and cooking. Provides excellent sweetness and texture to your recipes.",
		Category:    "Baking Supplies",
		InStock:     true,
		Features: []string{
			"High quality",
			"Perfect for baking",
			"Excellent sweetness",
			"Versatile ingredient",
		},
	},
	{
		ID:              "flavoured-pastes",
		Name:            "Flavoured Pastes",
		Brand:           "Thai Choice",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f12.png",
			"assets/Products/f1.png",
			"assets/Products/f2.png",
			"assets/Products/f3.png",
		},
		Description: "Authentic Thai flavored pastes for cooking traditional and modern dishes. Made with premium ingredients for authentic taste.",
		Category:    "Condiments",
		InStock:     true,
		Features: []string{
			"Authentic Thai flavors",
			"Premium ingredients",
			"Perfect for cooking",
			"Traditional recipes",
		},
	},
	{
		ID:              "teriyaki-sauce",
		Name:            "Teriyaki Sauce",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f2.png",
			"assets/Products/f3.png",
			"assets/Products/f4.png",
			"assets/Products/f5.png",
		},
		Description: "Rich and flavorful teriyaki sauce perfect for marinades, stir-fries, and glazes. Authentic Japanese taste with premium ingredients.",
		Category:    "Condiments",
		InStock:     true,
		Features: []string{
			"Authentic Japanese flavor",
			"Perfect for marinades",
			"Rich taste",
			"Premium quality",
		},
	},
	{
		ID:              "almond-milk",
		Name:            "Almond Milk",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f3.png",
			"assets/Products/f4.png",
			"assets/Products/f5.png",
			"assets/Products/f6.png",
		},
		Description: "Creamy and nutritious almond milk, perfect for drinking, cereals, and baking. Made from premium almonds with natural flavor.",
		Category:    "Beverages",
		InStock:     true,
		Features: []string{
			"Made from premium almonds",
			"Nutritious and healthy",
			"Creamy texture",
			"Natural flavor",
		},
	},
	{
		ID:              "ramen-family-pack",
		Name:            "Ramen Family Pack",
		Brand:           "Baked & Bounty",
		Price:           "650৳",
		OriginalPrice:   "650৳",
		DiscountedPrice: "650৳",
		Images: []string{
			"assets/Products/f4.png",
			"assets/Products/f5.png",
			"assets/Products/f6.png",
			"assets/Products/f7.png",
		},
		Description: "Delicious instant ramen noodles in family pack size. Perfect for quick meals with authentic flavors and quality ingredients.",
		Category:    "Instant Food",
		InStock:     true,
		Features: []string{
			"Family pack size",
			"Quick and easy",
			"Authentic flavors",
			"Quality ingredients",
		},
	},
}
