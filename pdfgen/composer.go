package pdfgen

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"vigovia/render"
)

// Composer assembles page slices into the final document. The engine drives
// it page by page so the slicing arithmetic stays backend-independent.
type Composer interface {
	// AddPage places the full surface bitmap on a fresh page, shifted up by
	// offsetMM. The company footer is stamped only when lastPage is set.
	AddPage(offsetMM float64, lastPage bool)
	Output() ([]byte, error)
}

// NewComposer is the constructor the engine uses; tests swap it for a fake.
type NewComposer func(bmp image.Image) (Composer, error)

type pdfComposer struct {
	pdf     *gofpdf.Fpdf
	scaledH float64
	qrPNG   []byte
}

// NewPDFComposer registers the tall bitmap once with a gofpdf document;
// every page re-places the same image at a different offset, so nothing is
// re-encoded per page.
func NewPDFComposer(bmp image.Image) (Composer, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, bmp, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode surface bitmap: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", imgOpts, bytes.NewReader(buf.Bytes()))

	qrPNG, err := qrcode.Encode(render.CompanyFooter.BookingURL, qrcode.Medium, 128)
	if err != nil {
		return nil, fmt.Errorf("encode booking QR: %w", err)
	}

	b := bmp.Bounds()
	return &pdfComposer{
		pdf:     pdf,
		scaledH: ScaledHeightMM(b.Dx(), b.Dy()),
		qrPNG:   qrPNG,
	}, nil
}

func (c *pdfComposer) AddPage(offsetMM float64, lastPage bool) {
	c.pdf.AddPage()
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.ImageOptions("surface", 0, offsetMM, PageWidthMM, c.scaledH, false, imgOpts, 0, "")
	if lastPage {
		c.stampFooter()
	}
}

func (c *pdfComposer) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// stampFooter draws the company block on the current page: logo mark,
// contact lines and the booking QR.
func (c *pdfComposer) stampFooter() {
	footerY := PageHeightMM - 15

	c.pdf.SetFontSize(8)

	// Logo mark, two-tone.
	c.pdf.SetFont("Helvetica", "B", 8)
	c.pdf.SetTextColor(139, 69, 19)
	c.pdf.Text(10, footerY-12, "vi")
	c.pdf.SetTextColor(128, 0, 128)
	c.pdf.Text(13, footerY-12, "govia")

	c.pdf.SetFont("Helvetica", "", 8)
	c.pdf.SetTextColor(100, 100, 100)
	c.pdf.Text(25, footerY-12, render.CompanyFooter.Website)
	c.pdf.Text(25, footerY-9, render.CompanyFooter.Office)
	c.pdf.Text(25, footerY-6, render.CompanyFooter.Phone)
	c.pdf.Text(25, footerY-3, render.CompanyFooter.Email)
	c.pdf.Text(25, footerY, render.CompanyFooter.CIN)

	qrOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader("booking-qr", qrOpts, bytes.NewReader(c.qrPNG))
	c.pdf.ImageOptions("booking-qr", PageWidthMM-30, footerY-16, 20, 20, false, qrOpts, 0, "")

	c.pdf.SetTextColor(0, 0, 0)
}
