package pdf

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func solidFace(c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 130, 184))
	for y := 0; y < 184; y++ {
		for x := 0; x < 130; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAssembleProducesTwoPagePDF(t *testing.T) {
	a := NewCardAssembler()

	front := solidFace(color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff})
	back := solidFace(color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff})

	data, err := a.Assemble(front, back)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
	if !bytes.Contains(data, []byte("/Count 2")) {
		t.Error("document does not declare two pages")
	}
}

func TestAssembleDistinctDocumentsPerInput(t *testing.T) {
	a := NewCardAssembler()

	red := solidFace(color.NRGBA{R: 0xff, A: 0xff})
	blue := solidFace(color.NRGBA{B: 0xff, A: 0xff})

	first, err := a.Assemble(red, red)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	second, err := a.Assemble(blue, blue)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("different face rasters produced identical documents")
	}
}
