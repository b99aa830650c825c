package render

import (
	"context"
	"image/color"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cezeus/club-api/internal/core/domain"
)

func testRasterizer(t *testing.T) *CardRasterizer {
	t.Helper()
	r, err := NewCardRasterizer(2, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewCardRasterizer() error = %v", err)
	}
	return r
}

func TestRasterizeFrontDimensionsAndOpacity(t *testing.T) {
	r := testRasterizer(t)

	img, err := r.RasterizeFront(context.Background(), domain.FrontFace{
		ClubMark:       domain.ClubMarkText,
		SurnamesLine:   "GÓMEZ RÍOS",
		GivenNamesLine: "Ana María",
		Category:       "TRANSICIÓN",
		BloodType:      "O+",
		HealthProvider: "SURA",
		StatusBarColor: domain.StatusActiveColor,
	})
	if err != nil {
		t.Fatalf("RasterizeFront() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != baseWidth*2 || bounds.Dy() != baseHeight*2 {
		t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), baseWidth*2, baseHeight*2)
	}

	// Every face must be fully opaque so paper shows no bleed-through.
	corners := [][2]int{
		{bounds.Min.X, bounds.Min.Y},
		{bounds.Max.X - 1, bounds.Min.Y},
		{bounds.Min.X, bounds.Max.Y - 1},
		{bounds.Max.X - 1, bounds.Max.Y - 1},
	}
	for _, c := range corners {
		_, _, _, a := img.At(c[0], c[1]).RGBA()
		if a != 0xffff {
			t.Errorf("pixel (%d,%d) alpha = %#x, want fully opaque", c[0], c[1], a)
		}
	}
}

func TestRasterizeBackStatusBar(t *testing.T) {
	r := testRasterizer(t)

	img, err := r.RasterizeBack(context.Background(), domain.BackFace{
		GuardianLine:   domain.GuardianMissingText,
		PrimaryContact: "3001112233",
		MedicalNotes:   domain.MedicalNotesEmptyText,
		LegalNotice:    domain.LegalNoticeText,
		StatusBarColor: domain.StatusInactiveCol,
	})
	if err != nil {
		t.Fatalf("RasterizeBack() error = %v", err)
	}

	// Sample the middle of the bottom status bar.
	bounds := img.Bounds()
	got := color.NRGBAModel.Convert(img.At(bounds.Dx()/2, bounds.Max.Y-4)).(color.NRGBA)
	want := color.NRGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff}
	if got != want {
		t.Errorf("status bar pixel = %+v, want %+v", got, want)
	}
}

func TestRasterizeFrontWithoutPhotoUsesPlaceholder(t *testing.T) {
	r := testRasterizer(t)

	img, err := r.RasterizeFront(context.Background(), domain.FrontFace{
		ClubMark:       domain.ClubMarkText,
		SurnamesLine:   "PÉREZ",
		GivenNamesLine: "Luis",
		Category:       domain.CategoryPendingText,
		BloodType:      "A-",
		StatusBarColor: domain.StatusActiveColor,
	})
	if err != nil {
		t.Fatalf("RasterizeFront() error = %v", err)
	}

	// The photo well must differ from the card background even with no photo.
	cx, cy := (baseWidth/2)*2, 120*2
	well := color.NRGBAModel.Convert(img.At(cx, cy)).(color.NRGBA)
	background := color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	if well == background {
		t.Error("photo well matches background, placeholder not drawn")
	}
}
