package pdfgen

// A4 portrait, in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// ScaledHeightMM converts a bitmap's pixel height to output millimeters
// once its width is fitted to the page width.
func ScaledHeightMM(bmpW, bmpH int) float64 {
	if bmpW <= 0 {
		return 0
	}
	return float64(bmpH) * PageWidthMM / float64(bmpW)
}

// PageCount returns how many A4 pages the fitted bitmap spans: one page,
// plus one more for every full page height still remaining. A bitmap of
// exactly one page height spills onto a second (empty-bottom) page, which
// matches the subtract-while-remaining loop the slicing uses.
func PageCount(bmpW, bmpH int) int {
	if bmpW <= 0 || bmpH <= 0 {
		return 1
	}
	pages := 1
	left := ScaledHeightMM(bmpW, bmpH) - PageHeightMM
	for left >= 0 {
		pages++
		left -= PageHeightMM
	}
	return pages
}

// PageOffsetMM is the vertical placement of the full bitmap on the given
// 0-based page: the one tall image shifted up so each page exposes its own
// slice.
func PageOffsetMM(pageIndex int) float64 {
	return -float64(pageIndex) * PageHeightMM
}
