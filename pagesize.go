package pptx2pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Unit conversions for slide geometry.
const (
	emuPerInch    = 914400.0
	pointsPerInch = 72.0
)

// Fallback slide size when neither query succeeds: classic 4:3,
// 10 × 7.5 inches. Advisory only, the raster size is DPI-driven.
const (
	fallbackWidthInches  = 10.0
	fallbackHeightInches = 7.5
)

// PageSize is a detected slide size in inches. Advisory: it is logged
// for diagnostics and never gates or resizes output.
type PageSize struct {
	WidthInches  float64
	HeightInches float64
	Source       string // "document", "pdf", or "fallback"
}

// detectPageSize tries two independent queries for the slide size:
// first the source document's own layout, then the intermediate PDF's
// page dimensions. Both are optional; if neither answers, the 4:3
// fallback is recorded so the log always names a size.
func detectPageSize(doc *Document, tempPDF string) PageSize {
	if doc != nil && doc.WidthEMU > 0 && doc.HeightEMU > 0 {
		return PageSize{
			WidthInches:  float64(doc.WidthEMU) / emuPerInch,
			HeightInches: float64(doc.HeightEMU) / emuPerInch,
			Source:       "document",
		}
	}

	if tempPDF != "" {
		if dims, err := api.PageDimsFile(tempPDF); err == nil && len(dims) > 0 {
			if dims[0].Width > 0 && dims[0].Height > 0 {
				return PageSize{
					WidthInches:  dims[0].Width / pointsPerInch,
					HeightInches: dims[0].Height / pointsPerInch,
					Source:       "pdf",
				}
			}
		}
	}

	return PageSize{
		WidthInches:  fallbackWidthInches,
		HeightInches: fallbackHeightInches,
		Source:       "fallback",
	}
}
