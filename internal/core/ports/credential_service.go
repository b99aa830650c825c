package ports

import (
	"context"
	"image"

	"github.com/cezeus/club-api/internal/core/domain"
)

// FacesView is what the carnet viewer renders: both faces, always fully
// built, plus which one is currently shown.
type FacesView struct {
	MemberID string           `json:"member_id"`
	Shown    domain.Face      `json:"shown"`
	Front    domain.FrontFace `json:"front"`
	Back     domain.BackFace  `json:"back"`
}

// CredentialService owns the per-caller carnet workspace: which member is
// selected and which face is shown. The shown face flips only on an explicit
// request, never on a timer.
type CredentialService interface {
	Select(ctx context.Context, caller Caller, memberID string) (*FacesView, error)
	Faces(ctx context.Context, caller Caller) (*FacesView, error)
	Flip(ctx context.Context, caller Caller) (*FacesView, error)
	// ClearSelection drops every workspace pointing at the member, used when
	// the record is deleted.
	ClearSelection(memberID string)
}

// SelectionCleaner is the slice of CredentialService the roster needs when a
// record is deleted.
type SelectionCleaner interface {
	ClearSelection(memberID string)
}

// CardRasterizer produces a geometry-neutral raster of one face: no
// rotation, no mirroring, full opacity, opaque background. It never sees the
// interactive flip state.
type CardRasterizer interface {
	RasterizeFront(ctx context.Context, face domain.FrontFace) (image.Image, error)
	RasterizeBack(ctx context.Context, face domain.BackFace) (image.Image, error)
}

// DocumentAssembler builds the final two-page document from the face
// rasters, front first, at fixed physical page size.
type DocumentAssembler interface {
	Assemble(front, back image.Image) ([]byte, error)
}

// ExportResult is the finished carnet document.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService produces the downloadable two-page carnet for one member.
type ExportService interface {
	Export(ctx context.Context, caller Caller, memberID string) (*ExportResult, error)
}
