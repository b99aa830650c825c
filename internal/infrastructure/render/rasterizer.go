package render

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/cezeus/club-api/internal/core/domain"

	_ "image/jpeg"
	_ "image/png"
)

// Base raster geometry. 260x368 keeps the 65x92mm card aspect; the scale
// factor multiplies it up to print resolution.
const (
	baseWidth  = 260
	baseHeight = 368

	statusBarHeight = 14
	defaultScale    = 4
)

// CardRasterizer draws carnet faces with an opaque background and neutral
// geometry: no rotation, no mirroring, full opacity.
type CardRasterizer struct {
	scale   int
	client  *http.Client
	regular *opentype.Font
	bold    *opentype.Font
	logger  zerolog.Logger
}

func NewCardRasterizer(scale int, logger zerolog.Logger) (*CardRasterizer, error) {
	if scale <= 0 {
		scale = defaultScale
	}

	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	return &CardRasterizer{
		scale:   scale,
		client:  &http.Client{Timeout: 10 * time.Second},
		regular: regular,
		bold:    bold,
		logger:  logger,
	}, nil
}

func (r *CardRasterizer) RasterizeFront(ctx context.Context, face domain.FrontFace) (image.Image, error) {
	s := float64(r.scale)
	dc := gg.NewContext(baseWidth*r.scale, baseHeight*r.scale)

	dc.SetHexColor(domain.CardBaseColor)
	dc.Clear()

	// Club mark, top left.
	if err := r.setFace(dc, r.bold, 16*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#ffffff")
	dc.DrawString(face.ClubMark, 16*s, 30*s)

	// Photo, centered in the upper half.
	r.drawPhoto(ctx, dc, face.PhotoURL, s)

	// Identity block.
	if err := r.setFace(dc, r.bold, 15*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored(face.SurnamesLine, baseWidth/2*s, 218*s, 0.5, 0.5)

	if err := r.setFace(dc, r.regular, 13*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#cbd5e1")
	dc.DrawStringAnchored(face.GivenNamesLine, baseWidth/2*s, 238*s, 0.5, 0.5)

	if err := r.setFace(dc, r.bold, 12*s); err != nil {
		return nil, err
	}
	dc.SetHexColor(domain.StatusActiveColor)
	dc.DrawStringAnchored(face.Category, baseWidth/2*s, 264*s, 0.5, 0.5)

	if err := r.setFace(dc, r.regular, 10*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#94a3b8")
	dc.DrawStringAnchored("RH "+face.BloodType, baseWidth/2*s, 292*s, 0.5, 0.5)
	dc.DrawStringAnchored(face.HealthProvider, baseWidth/2*s, 310*s, 0.5, 0.5)

	r.drawStatusBar(dc, face.StatusBarColor, s)
	return dc.Image(), nil
}

func (r *CardRasterizer) RasterizeBack(ctx context.Context, face domain.BackFace) (image.Image, error) {
	s := float64(r.scale)
	dc := gg.NewContext(baseWidth*r.scale, baseHeight*r.scale)

	dc.SetHexColor(domain.CardBaseColor)
	dc.Clear()

	contentWidth := (baseWidth - 32) * s

	if err := r.setFace(dc, r.bold, 11*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#94a3b8")
	dc.DrawString("GUARDIAN", 16*s, 36*s)

	if err := r.setFace(dc, r.regular, 12*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(face.GuardianLine, 16*s, 46*s, 0, 0, contentWidth, 1.3, gg.AlignLeft)

	if err := r.setFace(dc, r.bold, 11*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#94a3b8")
	dc.DrawString("CONTACT", 16*s, 108*s)

	if err := r.setFace(dc, r.regular, 12*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#ffffff")
	dc.DrawString(face.PrimaryContact, 16*s, 126*s)
	if face.SecondaryContact != "" {
		dc.DrawString(face.SecondaryContact, 16*s, 144*s)
	}

	if err := r.setFace(dc, r.bold, 11*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#94a3b8")
	dc.DrawString("MEDICAL NOTES", 16*s, 184*s)

	if err := r.setFace(dc, r.regular, 11*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#ffffff")
	dc.DrawStringWrapped(face.MedicalNotes, 16*s, 194*s, 0, 0, contentWidth, 1.3, gg.AlignLeft)

	if err := r.setFace(dc, r.regular, 8*s); err != nil {
		return nil, err
	}
	dc.SetHexColor("#64748b")
	dc.DrawStringWrapped(face.LegalNotice, 16*s, 286*s, 0, 0, contentWidth, 1.3, gg.AlignLeft)

	r.drawStatusBar(dc, face.StatusBarColor, s)
	return dc.Image(), nil
}

func (r *CardRasterizer) setFace(dc *gg.Context, f *opentype.Font, size float64) error {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("build font face: %w", err)
	}
	dc.SetFontFace(face)
	return nil
}

func (r *CardRasterizer) drawStatusBar(dc *gg.Context, hexColor string, s float64) {
	dc.SetHexColor(hexColor)
	dc.DrawRectangle(0, (baseHeight-statusBarHeight)*s, baseWidth*s, statusBarHeight*s)
	dc.Fill()
}

// drawPhoto fetches, scales and clips the member photo into a circle. A
// failed fetch degrades to the placeholder silhouette rather than failing
// the whole export.
func (r *CardRasterizer) drawPhoto(ctx context.Context, dc *gg.Context, photoURL string, s float64) {
	const (
		photoCX = baseWidth / 2
		photoCY = 120
		photoR  = 62
	)

	dc.SetHexColor("#1e293b")
	dc.DrawCircle(photoCX*s, photoCY*s, photoR*s)
	dc.Fill()

	img := r.fetchPhoto(ctx, photoURL)
	if img == nil {
		// Placeholder silhouette: head and shoulders.
		dc.SetHexColor("#475569")
		dc.DrawCircle(photoCX*s, (photoCY-18)*s, 22*s)
		dc.Fill()
		dc.DrawEllipse(photoCX*s, (photoCY+34)*s, 38*s, 26*s)
		dc.Fill()
		return
	}

	side := int(2 * photoR * s)
	scaled := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	dc.Push()
	dc.DrawCircle(photoCX*s, photoCY*s, photoR*s)
	dc.Clip()
	dc.DrawImage(scaled, int((photoCX-photoR)*s), int((photoCY-photoR)*s))
	dc.Pop()
}

func (r *CardRasterizer) fetchPhoto(ctx context.Context, photoURL string) image.Image {
	if photoURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", photoURL).Msg("invalid photo url")
		return nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", photoURL).Msg("photo fetch failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn().Int("status", resp.StatusCode).Str("url", photoURL).Msg("photo fetch failed")
		return nil
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", photoURL).Msg("photo decode failed")
		return nil
	}
	return img
}
