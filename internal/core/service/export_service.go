package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// ExportService assembles the downloadable two-page carnet. The per-member
// busy guard is the only concurrency control in the subsystem: it protects
// against double-submission of the same export, nothing else.
type ExportService struct {
	repo      ports.MemberRepository
	raster    ports.CardRasterizer
	assembler ports.DocumentAssembler
	logger    zerolog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewExportService(
	repo ports.MemberRepository,
	raster ports.CardRasterizer,
	assembler ports.DocumentAssembler,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		repo:      repo,
		raster:    raster,
		assembler: assembler,
		logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// Export produces the carnet document for one member.
//
// A re-entrant call for the same member is rejected immediately with
// ErrExportBusy: it is not queued and does not cancel or touch the in-flight
// export. The two face captures run sequentially — both would otherwise
// contend for the rendering path and double peak memory for no gain. Any
// failure aborts the whole export; partial output is discarded and the busy
// flag is cleared on every exit path.
func (s *ExportService) Export(ctx context.Context, caller ports.Caller, memberID string) (*ports.ExportResult, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}

	if !s.acquire(memberID) {
		return nil, domain.ErrExportBusy
	}
	defer s.release(memberID)

	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if caps.ScopeToSelf && !strings.EqualFold(m.Email, caller.Email) {
		return nil, domain.ErrPermissionDenied
	}

	// The faces are rebuilt from the record, never taken from the viewer
	// workspace, so the export is independent of the on-screen toggle.
	front, err := s.raster.RasterizeFront(ctx, domain.BuildFront(m))
	if err != nil {
		return nil, fmt.Errorf("export: capture front face: %w", err)
	}
	back, err := s.raster.RasterizeBack(ctx, domain.BuildBack(m))
	if err != nil {
		return nil, fmt.Errorf("export: capture back face: %w", err)
	}

	data, err := s.assembler.Assemble(front, back)
	if err != nil {
		return nil, fmt.Errorf("export: assemble document: %w", err)
	}

	s.logger.Info().Str("member_id", memberID).Int("bytes", len(data)).Msg("carnet exported")
	return &ports.ExportResult{
		Filename:    fmt.Sprintf("Credential_%s.pdf", m.DocumentNumber),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *ExportService) acquire(memberID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[memberID]; busy {
		return false
	}
	s.inFlight[memberID] = struct{}{}
	return true
}

func (s *ExportService) release(memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, memberID)
}
