package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// Physical page size in millimetres. Each face fills one full page.
const (
	pageWidthMM  = 65
	pageHeightMM = 92
)

// CardAssembler lays the two face rasters onto a two-page PDF, front first,
// each page exactly the card's physical size with no margins.
type CardAssembler struct{}

func NewCardAssembler() *CardAssembler {
	return &CardAssembler{}
}

func (a *CardAssembler) Assemble(front, back image.Image) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidthMM, Ht: pageHeightMM},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	for i, face := range []image.Image{front, back} {
		name := fmt.Sprintf("face-%d", i)
		if err := addFacePage(doc, name, face); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func addFacePage(doc *fpdf.Fpdf, name string, face image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, face); err != nil {
		return fmt.Errorf("encode face %s: %w", name, err)
	}

	doc.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, &buf)
	doc.ImageOptions(name, 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")

	if err := doc.Error(); err != nil {
		return fmt.Errorf("place face %s: %w", name, err)
	}
	return nil
}
