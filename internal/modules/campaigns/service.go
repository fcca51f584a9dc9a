package campaigns

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

type Service struct {
	repo     Repository
	prodRepo products.Repository
}

func NewService(repo Repository, prodRepo products.Repository) *Service {
	return &Service{repo: repo, prodRepo: prodRepo}
}

func (s *Service) List(ctx context.Context) ([]Campaign, error) {
	return s.repo.List(ctx)
}

// Resolve joins the campaign's items to their product rows, ordered by
// position. Items whose product no longer exists are silently omitted.
func (s *Service) Resolve(ctx context.Context, id string) (Resolved, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Resolved{}, err
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	out := Resolved{ID: c.ID, Title: c.Title, ValidText: c.ValidText, Products: []ResolvedItem{}}
	for _, it := range items {
		p, err := s.prodRepo.Get(ctx, it.ProductID)
		if errors.Is(err, products.ErrNotFound) {
			continue
		}
		if err != nil {
			return Resolved{}, err
		}
		out.Products = append(out.Products, ResolvedItem{
			ProductID: it.ProductID,
			Position:  it.Position,
			Product:   p,
		})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, title, validText string) (Campaign, error) {
	c := Campaign{
		ID:        uuid.NewString(),
		Title:     title,
		ValidText: validText,
		Items:     []Item{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id, title, validText string) error {
	return s.repo.Update(ctx, id, title, validText)
}

// AttachProduct creates the product row and links it into the campaign at
// the given position. A non-empty id is honored so clients that assign ids
// locally can address the row afterwards; otherwise one is generated.
func (s *Service) AttachProduct(ctx context.Context, campaignID, id string, d products.Draft, position int) (products.Product, error) {
	if _, err := s.repo.Get(ctx, campaignID); err != nil {
		return products.Product{}, err
	}

	if id == "" {
		id = uuid.NewString()
	}
	p := products.Product{
		ID:          id,
		Name:        d.Name,
		Desc:        d.Desc,
		WeightValue: d.WeightValue,
		WeightUnit:  d.WeightUnit,
		PriceMain:   d.PriceMain,
		PriceCents:  d.PriceCents,
		Theme:       d.Theme,
		Color:       d.Color,
		Image:       d.Image,
		Position:    position,
	}
	if p.Image == "" {
		p.Image = products.DefaultImage
	}
	if err := s.prodRepo.Create(ctx, p); err != nil {
		return products.Product{}, err
	}

	err := s.repo.AddItem(ctx, Item{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		ProductID:  p.ID,
		Position:   position,
	})
	if err != nil {
		return products.Product{}, err
	}
	return p, nil
}
