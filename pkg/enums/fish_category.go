package enums

import "fmt"

// FishCategory is the closed set of catalog categories.
type FishCategory string

const (
	FishCategoryFresh  FishCategory = "Fresco"
	FishCategoryFrozen FishCategory = "Congelado"
	FishCategoryDried  FishCategory = "Seco"
)

var validFishCategories = []FishCategory{
	FishCategoryFresh,
	FishCategoryFrozen,
	FishCategoryDried,
}

// String implements fmt.Stringer.
func (f FishCategory) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FishCategory.
func (f FishCategory) IsValid() bool {
	for _, candidate := range validFishCategories {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFishCategory converts raw input into a FishCategory.
func ParseFishCategory(value string) (FishCategory, error) {
	for _, candidate := range validFishCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fish category %q", value)
}
