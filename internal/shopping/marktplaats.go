package shopping

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const marktplaatsBaseURL = "https://www.marktplaats.nl"

// marktplaatsCategoryPaths maps item categories onto Marktplaats
// browse paths. Categories without a path fall back to plain search.
var marktplaatsCategoryPaths = map[Category]string{
	CategoryMeubels:     "huis-en-inrichting/meubels",
	CategoryVerlichting: "huis-en-inrichting/lampen",
	CategoryKeuken:      "huis-en-inrichting/keuken",
	CategoryDecoratie:   "huis-en-inrichting/woonaccessoires",
	CategoryElektronica: "computers-en-software",
	CategoryBadkamer:    "huis-en-inrichting/badkamer",
	CategorySlaapkamer:  "huis-en-inrichting/slaapkamer",
	CategoryTuin:        "tuin-en-terras",
}

// SearchOptions narrow a Marktplaats search.
type SearchOptions struct {
	MaxPriceCents int64
	DistanceKm    int
	Postcode      string
	SortByPrice   bool
}

// MarktplaatsSearchURL builds a direct search URL for an item, with the
// category path and price/distance filters applied.
func MarktplaatsSearchURL(item *Item, opts SearchOptions) string {
	term := url.PathEscape(item.Name)

	var searchURL string
	if path, ok := marktplaatsCategoryPaths[item.Category]; ok {
		searchURL = fmt.Sprintf("%s/l/%s/#q:%s", marktplaatsBaseURL, path, term)
	} else {
		searchURL = fmt.Sprintf("%s/q/%s/", marktplaatsBaseURL, term)
	}

	params := url.Values{}

	if opts.MaxPriceCents > 0 {
		params.Set("priceFrom", "0")
		// Marktplaats filters in whole euros.
		params.Set("priceTo", strconv.FormatInt(opts.MaxPriceCents/100, 10))
	}

	if opts.DistanceKm > 0 && opts.Postcode != "" {
		params.Set("distanceMeters", strconv.Itoa(opts.DistanceKm*1000))
		params.Set("postcode", strings.ReplaceAll(opts.Postcode, " ", ""))
	}

	if opts.SortByPrice {
		params.Set("sortBy", "PRICE")
	}

	if query := params.Encode(); query != "" {
		sep := "?"
		if strings.Contains(searchURL, "?") {
			sep = "&"
		}

		searchURL += sep + query
	}

	return searchURL
}

// IsMarktplaatsURL reports whether the URL points at marktplaats.nl.
func IsMarktplaatsURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := parsed.Hostname()

	return host == "marktplaats.nl" || strings.HasSuffix(host, ".marktplaats.nl")
}

// Ad paths look like /v/category/m123456-title or /a/.../m123456.
var marktplaatsAdPattern = regexp.MustCompile(`/m(\d+)`)

// ParseMarktplaatsAdID extracts the advertisement id from a Marktplaats
// URL. It returns false for search pages and non-Marktplaats URLs.
func ParseMarktplaatsAdID(raw string) (string, bool) {
	if !IsMarktplaatsURL(raw) {
		return "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	match := marktplaatsAdPattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return "", false
	}

	return match[1], true
}
