package catalog

import "github.com/Velora-Fashion/velora-storefront-backend/models"

// Section is one named storefront view. Men's, women's and sale all share the
// same pipeline; a section only contributes its category scope, default sort,
// badge wording and (for the sale view) a discount floor.
type Section struct {
	Slug        string
	Title       string
	Categories  []string
	DefaultSort SortKey
	MinDiscount *int
	Badges      BadgeSet
}

var saleFloor = 1 // any discount at all

var sections = map[string]Section{
	"mens": {
		Slug:  "mens",
		Title: "Men",
		Categories: []string{
			models.CategoryMensShirts,
			models.CategoryMensPants,
			models.CategoryCasualWear,
			models.CategoryFormalWear,
			models.CategorySportswear,
		},
		DefaultSort: SortFeatured,
		Badges:      StorefrontBadges,
	},
	"womens": {
		Slug:  "womens",
		Title: "Women",
		Categories: []string{
			models.CategoryWomensDresses,
			models.CategoryWomensTops,
			models.CategoryCasualWear,
			models.CategoryFormalWear,
			models.CategorySportswear,
		},
		DefaultSort: SortFeatured,
		Badges:      StorefrontBadges,
	},
	"sale": {
		Slug:        "sale",
		Title:       "Sale",
		Categories:  models.ValidCategories,
		DefaultSort: SortDiscountHigh,
		MinDiscount: &saleFloor,
		Badges:      SaleBadges,
	},
}

// SectionBySlug looks up a storefront section by its URL slug.
func SectionBySlug(slug string) (Section, bool) {
	s, ok := sections[slug]
	return s, ok
}

// Pipeline returns the render pipeline configured for this section.
func (s Section) Pipeline() Pipeline {
	return Pipeline{Badges: s.Badges}
}

// Apply overlays the section's defaults on a user-supplied config: the
// section sort when none was chosen, and the section discount floor when the
// user's floor is absent or lower.
func (s Section) Apply(cfg FilterConfig) FilterConfig {
	if cfg.SortBy == "" {
		cfg.SortBy = s.DefaultSort
	}
	if s.MinDiscount != nil && (cfg.MinDiscount == nil || *cfg.MinDiscount < *s.MinDiscount) {
		cfg.MinDiscount = s.MinDiscount
	}
	return cfg
}
