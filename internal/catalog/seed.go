package catalog

// Seed returns the cold brew product line. The storefront sells a fixed,
// curated assortment, so the catalog ships with the binary instead of living
// in a database.
func Seed() []Product {
	return []Product{
		{
			ID:            "ethiopian-reserve",
			SKU:           "CRB-ETH-001",
			Name:          "Резерв Эфиопский",
			Description:   "Моносортовой холодный кофе с цветочными нотами",
			Price:         2499,
			OriginalPrice: 2999,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe1.jpg",
			Category:      "Моносорт",
			SubCategory:   "Африканский",
			Volume:        "500 мл",
			Strength:      StrengthMedium,
			StrengthLevel: 3,
			Rating:        4.8,
			ReviewsCount:  42,
			Stock:         150,
			Featured:      true,
			BestSeller:    true,
			Tags:          []string{"хит", "премиум", "цветочный"},
			Variants: []Variant{
				{Volume: "250 мл", Price: 1499, SKU: "CRB-ETH-001-S"},
				{Volume: "500 мл", Price: 2499, SKU: "CRB-ETH-001-M"},
				{Volume: "1 л", Price: 3999, SKU: "CRB-ETH-001-L"},
			},
		},
		{
			ID:            "colombian-reserve",
			SKU:           "CRB-COL-002",
			Name:          "Резерв Колумбийский",
			Description:   "Насыщенный, мягкий холодный кофе с шоколадными нотами",
			Price:         2299,
			OriginalPrice: 2599,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe2.jpg",
			Category:      "Моносорт",
			SubCategory:   "Латинская Америка",
			Volume:        "500 мл",
			Strength:      StrengthStrong,
			StrengthLevel: 4,
			Rating:        4.7,
			ReviewsCount:  35,
			Stock:         120,
			Featured:      true,
			BestSeller:    true,
			Tags:          []string{"шоколадный", "насыщенный"},
			Variants: []Variant{
				{Volume: "250 мл", Price: 1399, SKU: "CRB-COL-002-S"},
				{Volume: "500 мл", Price: 2299, SKU: "CRB-COL-002-M"},
			},
		},
		{
			ID:            "blend-reserve",
			SKU:           "CRB-BLD-003",
			Name:          "Резерв Купаж",
			Description:   "Фирменный домашний купаж холодного кофе",
			Price:         1999,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe3.jpg",
			Category:      "Купаж",
			SubCategory:   "Авторский микс",
			Volume:        "500 мл",
			Strength:      StrengthMedium,
			StrengthLevel: 3,
			Rating:        4.5,
			ReviewsCount:  28,
			Stock:         95,
			Tags:          []string{"сбалансированный", "универсальный"},
			Variants: []Variant{
				{Volume: "500 мл", Price: 1999, SKU: "CRB-BLD-003-M"},
				{Volume: "1 л", Price: 3499, SKU: "CRB-BLD-003-L"},
			},
		},
		{
			ID:            "decaf-reserve",
			SKU:           "CRB-DCF-004",
			Name:          "Резерв Декаф",
			Description:   "Полный вкус без кофеина",
			Price:         2199,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe4.jpg",
			Category:      "Без кофеина",
			SubCategory:   "Вечерний",
			Volume:        "500 мл",
			Strength:      StrengthLight,
			StrengthLevel: 2,
			Rating:        4.6,
			ReviewsCount:  31,
			Stock:         80,
			Tags:          []string{"без кофеина", "вечерний"},
			Variants: []Variant{
				{Volume: "250 мл", Price: 1299, SKU: "CRB-DCF-004-S"},
				{Volume: "500 мл", Price: 2199, SKU: "CRB-DCF-004-M"},
			},
		},
		{
			ID:            "nitro-reserve",
			SKU:           "CRB-NIT-005",
			Name:          "Резерв Нитро",
			Description:   "Мягкий холодный кофе с азотом",
			Price:         2699,
			OriginalPrice: 2999,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe5.jpg",
			Category:      "Специальный",
			SubCategory:   "Нитро кофе",
			Volume:        "500 мл",
			Strength:      StrengthMedium,
			StrengthLevel: 3,
			Rating:        4.9,
			ReviewsCount:  58,
			Stock:         90,
			Featured:      true,
			BestSeller:    true,
			Tags:          []string{"нитро", "кремовый", "лимитированный"},
			Variants: []Variant{
				{Volume: "330 мл", Price: 2299, SKU: "CRB-NIT-005-S"},
				{Volume: "500 мл", Price: 2699, SKU: "CRB-NIT-005-M"},
			},
		},
		{
			ID:            "guatemala-reserve",
			SKU:           "CRB-GTM-006",
			Name:          "Резерв Гватемала",
			Description:   "Насыщенный гватемальский моносорт",
			Price:         2399,
			ImageURL:      "https://cdn.reservecold.ru/images/coffe6.jpg",
			Category:      "Моносорт",
			SubCategory:   "Центральная Америка",
			Volume:        "500 мл",
			Strength:      StrengthStrong,
			StrengthLevel: 4,
			Rating:        4.7,
			ReviewsCount:  39,
			Stock:         75,
			Tags:          []string{"вулканический", "пряный"},
			Variants: []Variant{
				{Volume: "500 мл", Price: 2399, SKU: "CRB-GTM-006-M"},
				{Volume: "1 л", Price: 4199, SKU: "CRB-GTM-006-L"},
			},
		},
	}
}
