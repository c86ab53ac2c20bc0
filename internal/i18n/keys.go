// Package i18n provides internationalization support for the necklace report.
package i18n

// Report message translation keys.
const (
	// KeyGenerating announces necklace generation.
	KeyGenerating = "report.generating"
	// KeyShapeHeading introduces the shape count.
	KeyShapeHeading = "report.shape_heading"
	// KeyShapeCount formats teardrop and round counts.
	KeyShapeCount = "report.shape_count"
	// KeyDetails introduces the per-pearl listing.
	KeyDetails = "report.details"
	// KeySorted introduces the sorted listing.
	KeySorted = "report.sorted"
	// KeyTotalCost formats the necklace total in kr.
	KeyTotalCost = "report.total_cost"
	// KeySearch formats the search target.
	KeySearch = "report.search"
	// KeyMatchFound formats a found pearl and its index.
	KeyMatchFound = "report.match_found"
	// KeyNoMatch reports a failed search.
	KeyNoMatch = "report.no_match"
)
