package model

import "fmt"

// Category is the content class assigned to a clipboard capture.
type Category string

const (
	CategoryCode      Category = "Code"
	CategoryLaTeX     Category = "LaTeX"
	CategoryQuote     Category = "Quote"
	CategoryURL       Category = "URL"
	CategoryPlaintext Category = "Plaintext"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCode,
	CategoryLaTeX,
	CategoryQuote,
	CategoryURL,
	CategoryPlaintext,
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown category: %s", s)
}

// Valid reports whether the category is one of the known labels.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}
