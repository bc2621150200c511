package menu

import "strings"

// Size is a price-table label. Catalogs may use the canonical Small/Medium/Large
// set, the single OneSize label, or any custom label set of their own.
type Size string

// Canonical size labels.
const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeOne    Size = "OneSize"
)

// sizeToken maps a free-text token to its canonical size. Tokens are matched
// by case-insensitive containment, larger sizes first, so "large" wins over a
// stray "l" elsewhere in the message.
type sizeToken struct {
	token string
	size  Size
}

// Token order matters: full words before single-letter abbreviations.
var sizeTokens = []sizeToken{
	{"large", SizeLarge},
	{"medium", SizeMedium},
	{"small", SizeSmall},
	{"l", SizeLarge},
	{"m", SizeMedium},
	{"s", SizeSmall},
}

// DetectSize scans free text for a size token and returns the canonical size.
// The second return is false when no size token occurs in the text.
func DetectSize(text string) (Size, bool) {
	lower := strings.ToLower(text)
	for _, st := range sizeTokens {
		if strings.Contains(lower, st.token) {
			return st.size, true
		}
	}
	return "", false
}

// String returns the label.
func (s Size) String() string {
	return string(s)
}
