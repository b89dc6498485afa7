package pptx2pdf

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDetectPageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        *Document
		wantW      float64
		wantH      float64
		wantSource string
	}{
		{
			name:       "standard 4:3 deck geometry",
			doc:        &Document{WidthEMU: 9144000, HeightEMU: 6858000},
			wantW:      10.0,
			wantH:      7.5,
			wantSource: "document",
		},
		{
			name:       "widescreen 16:9 deck geometry",
			doc:        &Document{WidthEMU: 12192000, HeightEMU: 6858000},
			wantW:      13.333333,
			wantH:      7.5,
			wantSource: "document",
		},
		{
			name:       "no geometry falls back to 4:3",
			doc:        &Document{},
			wantW:      10.0,
			wantH:      7.5,
			wantSource: "fallback",
		},
		{
			name:       "nil document falls back",
			doc:        nil,
			wantW:      10.0,
			wantH:      7.5,
			wantSource: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := detectPageSize(tt.doc, "")
			if !almostEqual(got.WidthInches, tt.wantW) {
				t.Errorf("WidthInches = %f, want %f", got.WidthInches, tt.wantW)
			}
			if !almostEqual(got.HeightInches, tt.wantH) {
				t.Errorf("HeightInches = %f, want %f", got.HeightInches, tt.wantH)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}
