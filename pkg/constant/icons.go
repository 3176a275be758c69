package constant

// Icon keys stored on services map to a closed set of CSS classes rendered on
// the public site. Unknown keys fall back to IconDefault rather than failing.
const IconDefault = "bx bx-code-alt"

var ServiceIcons = map[string]string{
	"code":      "bx bx-code-alt",
	"web":       "bx bx-globe",
	"mobile":    "bx bx-mobile-alt",
	"design":    "bx bx-palette",
	"database":  "bx bx-data",
	"cloud":     "bx bx-cloud",
	"analytics": "bx bx-line-chart",
	"support":   "bx bx-support",
	"security":  "bx bx-shield-quarter",
	"seo":       "bx bx-search-alt",
}

// ResolveIcon returns the CSS class for a stored icon key, falling back to the
// default icon when the key is unknown or empty.
func ResolveIcon(key string) string {
	if class, ok := ServiceIcons[key]; ok {
		return class
	}
	return IconDefault
}
