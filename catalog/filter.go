// Package catalog implements the storefront's filter-sort-badge pipeline: a
// pure transformation from a raw product list plus a per-render filter
// configuration to the ordered, badge-annotated list a listing view renders.
// Every listing view (men's, women's, sale) runs the same pipeline with its
// own section parameters instead of reimplementing the logic.
package catalog

import (
	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

// FilterConfig is built fresh from user input for a single render pass and
// discarded afterwards. An absent field imposes no constraint. The numeric
// bounds are pointers so that an explicit 0 is a real bound, not "unset".
type FilterConfig struct {
	Category    string
	BrandName   string
	MinPrice    *float64
	MaxPrice    *float64
	MinDiscount *int
	Sizes       []string
	SortBy      SortKey
}

// Matches reports whether p satisfies every constraint present in cfg.
// All numeric bounds are inclusive.
func (cfg FilterConfig) Matches(p *models.Product) bool {
	if cfg.Category != "" && p.Category != cfg.Category {
		return false
	}
	if cfg.BrandName != "" && p.BrandName != cfg.BrandName {
		return false
	}
	if cfg.MinPrice != nil && p.Price < *cfg.MinPrice {
		return false
	}
	if cfg.MaxPrice != nil && p.Price > *cfg.MaxPrice {
		return false
	}
	if cfg.MinDiscount != nil && p.DiscountPercentage < *cfg.MinDiscount {
		return false
	}
	if len(cfg.Sizes) > 0 && !intersects(p.Sizes, cfg.Sizes) {
		// A product with no size data matches no size filter. It is still
		// rendered by unfiltered views, never treated as an error.
		return false
	}
	return true
}

func intersects(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
