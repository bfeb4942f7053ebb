// Package catalog owns the static product catalog and the filter/sort
// view-model that projects it for display.
package catalog

// Strength labels used across the cold brew line.
const (
	StrengthLight  = "Легкий"
	StrengthMedium = "Средний"
	StrengthStrong = "Крепкий"
)

// Product is a purchasable item in the catalog. The catalog is read-only;
// products are loaded once at startup and never mutated.
type Product struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category"`
	Volume        string    `json:"volume"`
	Strength      string    `json:"strength"`
	StrengthLevel int       `json:"strength_level"`
	Rating        float64   `json:"rating"`
	ReviewsCount  int       `json:"reviews_count"`
	Stock         int       `json:"stock"`
	Featured      bool      `json:"featured"`
	BestSeller    bool      `json:"best_seller"`
	Tags          []string  `json:"tags,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
}

// Variant is an alternative volume/price option for a product.
type Variant struct {
	Volume string `json:"volume"`
	Price  int64  `json:"price"`
	SKU    string `json:"sku"`
}

// Catalog is the static, ordered, read-only product collection.
type Catalog struct {
	products   []Product
	byID       map[string]int
	categories []string
}

// New builds a catalog from an ordered product list. Product order is
// preserved and used as the sort tie-break; the category list is derived
// from the data in first-seen order.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}

	seen := make(map[string]bool)
	for i, p := range products {
		c.byID[p.ID] = i
		if !seen[p.Category] {
			seen[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
	}

	return c
}

// All returns the products in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []Product {
	return c.products
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Featured returns the products flagged for the home page, in catalog order.
func (c *Catalog) Featured() []Product {
	var featured []Product
	for _, p := range c.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Categories returns the distinct category labels in first-seen order,
// without the sentinel.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Strengths returns the fixed set of strength labels.
func (c *Catalog) Strengths() []string {
	return []string{StrengthLight, StrengthMedium, StrengthStrong}
}

// HasCategory reports whether the label is a known category.
func (c *Catalog) HasCategory(label string) bool {
	for _, cat := range c.categories {
		if cat == label {
			return true
		}
	}
	return false
}

// HasStrength reports whether the label is a known strength.
func (c *Catalog) HasStrength(label string) bool {
	switch label {
	case StrengthLight, StrengthMedium, StrengthStrong:
		return true
	}
	return false
}
