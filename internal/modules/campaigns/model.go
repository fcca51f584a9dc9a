package campaigns

import (
	"time"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

// Campaign is a named grouping of products rendered together as one flyer.
type Campaign struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Title     string `gorm:"size:255" json:"title"`
	ValidText string `gorm:"size:255" json:"validText"`

	Items []Item `gorm:"foreignKey:CampaignID" json:"products"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Item links a product into a campaign at a position. Positions need not be
// contiguous; display order is always sorted by position.
type Item struct {
	ID         string `gorm:"primaryKey;size:36" json:"-"`
	CampaignID string `gorm:"size:36;index" json:"-"`
	ProductID  string `gorm:"size:36;index" json:"productId"`
	Position   int    `json:"position"`
}

// ResolvedItem is an item joined to its product row.
type ResolvedItem struct {
	ProductID string           `json:"productId"`
	Position  int              `json:"position"`
	Product   products.Product `json:"product"`
}

// Resolved is a campaign with its ordered, existing-only product list.
// Items referencing deleted products are dropped, not errors.
type Resolved struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	ValidText string         `json:"validText"`
	Products  []ResolvedItem `json:"products"`
}

// ProductList flattens the resolved items into the bare product rows, in
// display order.
func (r Resolved) ProductList() []products.Product {
	out := make([]products.Product, len(r.Products))
	for i, it := range r.Products {
		out[i] = it.Product
	}
	return out
}
