package category

import (
	"errors"
	"fmt"
)

var ErrInvalidCategory = errors.New("invalid category")

// Category is one of the fixed catalog sections.
type Category string

const (
	Laptops         Category = "laptops"
	Mobiles         Category = "mobiles"
	Headphones      Category = "headphones"
	AirConditioners Category = "ac"
	TV              Category = "tv"
	Refrigerators   Category = "refrigerator"
	Coolers         Category = "coolers"
	Books           Category = "books"
	Shoes           Category = "shoes"
	Watches         Category = "watches"
	MensFashion     Category = "mens_fashion"
	WomensFashion   Category = "womens_fashions"
)

var all = []Category{
	Laptops, Mobiles, Headphones, AirConditioners, TV,
	Refrigerators, Coolers, Books, Shoes,
	Watches, MensFashion, WomensFashion,
}

// All returns the categories in display order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}

func Parse(s string) (Category, error) {
	for _, c := range all {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) String() string {
	return string(c)
}

// Count is the number of products listed under a category.
type Count struct {
	Name  Category
	Count int64
}
