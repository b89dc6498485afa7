package pptx2pdf

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-pptx2pdf/internal/fileutil"
)

// tempPDFName is the intermediate PDF written into the output directory
// during slide export. It must never survive a run, successful or not.
const tempPDFName = "temp_export.pdf"

// verifySlides confirms the output directory holds the expected slide
// set. With a known page count the set must match exactly: slide-1.png
// through slide-<n>.png, no gaps, no extras. With an unknown count any
// non-empty set passes.
func verifySlides(outDir string, expectedPages int) ([]string, error) {
	files, err := fileutil.GlobSortedByNumber(filepath.Join(outDir, slidePrefix+"-*.png"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteOutput, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no slide images in %s", ErrIncompleteOutput, outDir)
	}

	if expectedPages > 0 && len(files) != expectedPages {
		return nil, fmt.Errorf("%w: found %d slide images, expected %d", ErrIncompleteOutput, len(files), expectedPages)
	}

	for i, f := range files {
		want := SlideFileName(i + 1)
		if filepath.Base(f) != want {
			return nil, fmt.Errorf("%w: gap in slide sequence, found %s where %s was expected", ErrIncompleteOutput, filepath.Base(f), want)
		}
	}
	return files, nil
}

// verifyTarget confirms a direct-export target exists and is non-empty.
func verifyTarget(path string) error {
	if !fileutil.NonEmptyFile(path) {
		return fmt.Errorf("%w: %s missing or empty", ErrIncompleteOutput, path)
	}
	return nil
}
