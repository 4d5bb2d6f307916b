package catalog

import (
	"sort"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

// Annotated is a product ready to render: at most one badge and, when
// discounted, its effective sale price.
type Annotated struct {
	models.Product
	Badge     string  `json:"badge,omitempty"`
	OnSale    bool    `json:"on_sale"`
	SalePrice float64 `json:"sale_price"`
}

// Pipeline renders product lists for one view. It has no side effects and no
// I/O: callers fetch products however they like and must not mutate the slice
// while a render is in flight. Now is overridable for tests; nil means
// time.Now.
type Pipeline struct {
	Badges BadgeSet
	Now    func() time.Time
}

// Storefront is the pipeline used by the men's and women's views.
var Storefront = Pipeline{Badges: StorefrontBadges}

// SalePipeline is the pipeline used by sale-oriented views.
var SalePipeline = Pipeline{Badges: SaleBadges}

func (pl Pipeline) now() time.Time {
	if pl.Now != nil {
		return pl.Now()
	}
	return time.Now()
}

// Render filters products by cfg, stable-sorts the survivors by cfg.SortBy
// (unknown keys fall back to featured) and annotates each with its badge and
// sale price. The input slice is never reordered or modified.
func (pl Pipeline) Render(products []models.Product, cfg FilterConfig) []Annotated {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if cfg.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}

	key := cfg.SortBy.Normalize()
	sort.SliceStable(filtered, func(i, j int) bool {
		return key.less(&filtered[i], &filtered[j])
	})

	now := pl.now()
	out := make([]Annotated, len(filtered))
	for i := range filtered {
		out[i] = pl.annotate(filtered[i], now)
	}
	return out
}

// Annotate badges a single product without running the full pipeline, e.g.
// for a product-detail page fetched by id.
func (pl Pipeline) Annotate(p models.Product) Annotated {
	return pl.annotate(p, pl.now())
}

func (pl Pipeline) annotate(p models.Product, now time.Time) Annotated {
	a := Annotated{
		Product:   p,
		Badge:     pl.Badges.For(&p, now),
		SalePrice: p.Price,
	}
	if p.DiscountPercentage > 0 {
		a.OnSale = true
		a.SalePrice = SalePrice(p.Price, p.DiscountPercentage)
	}
	return a
}
