package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

func newTestCredentialService(repo ports.MemberRepository) *CredentialService {
	return NewCredentialService(repo, zerolog.Nop())
}

func TestFaces_NoSelectionYieldsPlaceholder(t *testing.T) {
	svc := newTestCredentialService(newStubMemberRepo(rosterFixture()...))

	_, err := svc.Faces(context.Background(), admin())
	if !errors.Is(err, domain.ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
}

func TestSelect_InitialFaceIsFrontAndBothFacesBuilt(t *testing.T) {
	svc := newTestCredentialService(newStubMemberRepo(rosterFixture()...))

	view, err := svc.Select(context.Background(), admin(), "m1")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if view.Shown != domain.FaceFront {
		t.Fatalf("initial face = %s, want FRONT", view.Shown)
	}
	if view.Front.SurnamesLine == "" || view.Back.LegalNotice == "" {
		t.Fatalf("both faces must be fully built regardless of the toggle")
	}
}

func TestFlip_TogglesOnlyOnExplicitRequest(t *testing.T) {
	svc := newTestCredentialService(newStubMemberRepo(rosterFixture()...))
	caller := admin()

	if _, err := svc.Select(context.Background(), caller, "m1"); err != nil {
		t.Fatalf("Select: %v", err)
	}

	// Reads never flip.
	for i := 0; i < 3; i++ {
		view, err := svc.Faces(context.Background(), caller)
		if err != nil {
			t.Fatalf("Faces: %v", err)
		}
		if view.Shown != domain.FaceFront {
			t.Fatalf("read %d flipped the face to %s", i, view.Shown)
		}
	}

	view, err := svc.Flip(context.Background(), caller)
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if view.Shown != domain.FaceBack {
		t.Fatalf("after flip: %s, want BACK", view.Shown)
	}
	if view.Front.SurnamesLine == "" {
		t.Fatalf("hidden face must remain renderable")
	}

	view, _ = svc.Flip(context.Background(), caller)
	if view.Shown != domain.FaceFront {
		t.Fatalf("second flip: %s, want FRONT", view.Shown)
	}
}

func TestSelect_MemberScopedToSelf(t *testing.T) {
	svc := newTestCredentialService(newStubMemberRepo(rosterFixture()...))

	ana := ports.Caller{ID: "u1", Email: "ana@club.com", Role: domain.RoleMember}
	if _, err := svc.Select(context.Background(), ana, "m1"); err != nil {
		t.Fatalf("member selecting own record: %v", err)
	}
	if _, err := svc.Select(context.Background(), ana, "m2"); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("member selecting other record: err = %v, want ErrPermissionDenied", err)
	}
}

func TestClearSelection_DropsWorkspacesForDeletedMember(t *testing.T) {
	svc := newTestCredentialService(newStubMemberRepo(rosterFixture()...))
	caller := admin()

	if _, err := svc.Select(context.Background(), caller, "m1"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	svc.ClearSelection("m1")

	if _, err := svc.Faces(context.Background(), caller); !errors.Is(err, domain.ErrNoSelection) {
		t.Fatalf("workspace survived ClearSelection: %v", err)
	}
}
