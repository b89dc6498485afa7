// Package pptx2pdf converts presentation documents to PDF and per-slide
// PNG images using a headless LibreOffice instance.
//
// The library supervises the engine process itself: any stale instance
// listening on the control port is killed before a new one is started,
// the socket control endpoint is probed with bounded retries until the
// engine accepts connections, and the process is always terminated when
// a conversion run ends, whether it succeeded or failed.
//
// Basic usage:
//
//	svc := pptx2pdf.New()
//	if err := svc.ConvertToPDF(ctx, "deck.pptx", "deck.pdf"); err != nil {
//		log.Fatal(err)
//	}
//
// Per-slide export writes slide-1.png .. slide-N.png into a directory:
//
//	outcome, err := svc.ExportSlides(ctx, "deck.pptx", "slides/")
//
// Slide export renders through an intermediate PDF and picks the first
// available rasterization backend: pdftoppm (poppler), the MuPDF
// library, or the engine itself as a last resort.
package pptx2pdf
