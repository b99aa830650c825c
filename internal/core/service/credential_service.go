package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// CredentialService owns one carnet workspace per caller: the selected
// member and the face currently shown. Faces are rebuilt from the record on
// every read; the workspace never caches face content, only the selection
// and the toggle.
type CredentialService struct {
	repo   ports.MemberRepository
	logger zerolog.Logger

	mu         sync.Mutex
	workspaces map[string]*workspace // keyed by caller ID
}

type workspace struct {
	memberID string
	shown    domain.Face
}

func NewCredentialService(repo ports.MemberRepository, logger zerolog.Logger) *CredentialService {
	return &CredentialService{
		repo:       repo,
		logger:     logger,
		workspaces: make(map[string]*workspace),
	}
}

// Select points the caller's workspace at a member and resets the shown face
// to FRONT. Scope-to-self callers may only select their own record.
func (s *CredentialService) Select(ctx context.Context, caller ports.Caller, memberID string) (*ports.FacesView, error) {
	m, err := s.visibleMember(ctx, caller, memberID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.workspaces[caller.ID] = &workspace{memberID: memberID, shown: domain.FaceFront}
	s.mu.Unlock()

	return facesView(m, domain.FaceFront), nil
}

// Faces returns both faces of the selected member plus the shown toggle.
// Without a selection it returns ErrNoSelection so the handler can render
// the "select a member" placeholder instead of faces.
func (s *CredentialService) Faces(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
	ws, ok := s.workspace(caller.ID)
	if !ok {
		return nil, domain.ErrNoSelection
	}
	m, err := s.visibleMember(ctx, caller, ws.memberID)
	if err != nil {
		return nil, err
	}
	return facesView(m, ws.shown), nil
}

// Flip toggles the shown face. It is only ever driven by an explicit user
// action; there is no automatic flipping.
func (s *CredentialService) Flip(ctx context.Context, caller ports.Caller) (*ports.FacesView, error) {
	s.mu.Lock()
	ws, ok := s.workspaces[caller.ID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNoSelection
	}
	if ws.shown == domain.FaceFront {
		ws.shown = domain.FaceBack
	} else {
		ws.shown = domain.FaceFront
	}
	memberID, shown := ws.memberID, ws.shown
	s.mu.Unlock()

	m, err := s.visibleMember(ctx, caller, memberID)
	if err != nil {
		return nil, err
	}
	return facesView(m, shown), nil
}

// ClearSelection drops every workspace pointing at the member. Called by the
// roster after a successful delete.
func (s *CredentialService) ClearSelection(memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for callerID, ws := range s.workspaces {
		if ws.memberID == memberID {
			delete(s.workspaces, callerID)
		}
	}
}

func (s *CredentialService) workspace(callerID string) (workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.workspaces[callerID]
	if !ok {
		return workspace{}, false
	}
	return *ws, true
}

func (s *CredentialService) visibleMember(ctx context.Context, caller ports.Caller, memberID string) (*domain.Member, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if caps.ScopeToSelf && !strings.EqualFold(m.Email, caller.Email) {
		return nil, domain.ErrPermissionDenied
	}
	return m, nil
}

func facesView(m *domain.Member, shown domain.Face) *ports.FacesView {
	return &ports.FacesView{
		MemberID: m.ID,
		Shown:    shown,
		Front:    domain.BuildFront(m),
		Back:     domain.BuildBack(m),
	}
}
