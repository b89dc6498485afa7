package pptx2pdf_test

import (
	"context"
	"fmt"
	"log"

	"github.com/alnah/go-pptx2pdf"
)

// Example demonstrates converting a presentation to PDF. It requires a
// LibreOffice installation, so it is compiled but not run.
func Example() {
	svc := pptx2pdf.New(
		pptx2pdf.WithDPI(150),
	)

	if err := svc.ConvertToPDF(context.Background(), "deck.pptx", "deck.pdf"); err != nil {
		log.Fatal(err)
	}
}

// Example_exportSlides demonstrates exporting one PNG per slide.
func Example_exportSlides() {
	svc := pptx2pdf.New()

	outcome, err := svc.ExportSlides(context.Background(), "deck.pptx", "slides")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d slides via %s\n", len(outcome.Files), outcome.Strategy)
}

// ExampleSlideFileName shows the output naming contract.
func ExampleSlideFileName() {
	fmt.Println(pptx2pdf.SlideFileName(1))
	fmt.Println(pptx2pdf.SlideFileName(12))
	// Output:
	// slide-1.png
	// slide-12.png
}
