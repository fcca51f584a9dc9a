package campaigns

import (
	"context"

	"github.com/google/uuid"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

const DemoProductCount = 7

// SeedDemo creates the demo campaign with its products. Used by the in-memory
// repos when no database is configured and by the seeddemo tool.
func SeedDemo(ctx context.Context, repo Repository, prodRepo products.Repository) (Campaign, error) {
	c := Campaign{
		ID:        uuid.NewString(),
		Title:     "Aytas Wereld Supermarkt",
		ValidText: "Haftanın kampanyaları",
	}

	for i, d := range products.SeedDrafts(DemoProductCount) {
		p := products.Product{
			ID:          uuid.NewString(),
			Name:        d.Name,
			Desc:        d.Desc,
			WeightValue: d.WeightValue,
			WeightUnit:  d.WeightUnit,
			PriceMain:   d.PriceMain,
			PriceCents:  d.PriceCents,
			Theme:       d.Theme,
			Color:       d.Color,
			Image:       d.Image,
			Position:    i,
		}
		if err := prodRepo.Create(ctx, p); err != nil {
			return Campaign{}, err
		}
		c.Items = append(c.Items, Item{
			ID:         uuid.NewString(),
			CampaignID: c.ID,
			ProductID:  p.ID,
			Position:   i,
		})
	}

	if err := repo.Create(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}
