package models

// Category is a product category reference.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductImage is one image attached to a product.
type ProductImage struct {
	Src string `json:"src"`
}

// Product is a catalog entry. Price is kept as the API's display string since
// the catalog view renders it verbatim and no arithmetic is performed on it.
type Product struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Price         string         `json:"price"`
	StockQuantity *int           `json:"stock_quantity"`
	Images        []ProductImage `json:"images"`
	Categories    []Category     `json:"categories"`
}

// InCategories reports whether the product belongs to at least one of the
// given category names. An empty selection matches everything.
func (p *Product) InCategories(selected map[string]bool) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range p.Categories {
		if selected[c.Name] {
			return true
		}
	}
	return false
}
