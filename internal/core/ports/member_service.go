package ports

import (
	"context"

	"github.com/cezeus/club-api/internal/core/domain"
)

// Caller is the authenticated identity performing an operation, as extracted
// from the JWT by the auth middleware.
type Caller struct {
	ID    string
	Email string
	Role  domain.Role
}

// SearchQuery carries the roster view filters.
//
// Term matches case-insensitively against the concatenated name (first
// surname, second surname, first given name, second given name) or as a
// substring of the document number. CategoryFilter "ALL" (or empty) is a
// no-op, anything else is a case-insensitive substring match against the
// category. StatusFilter "" is a no-op, anything else requires an exact
// case-insensitive status match.
type SearchQuery struct {
	Term           string
	CategoryFilter string
	StatusFilter   string
}

// CategoryFilterAll disables category filtering.
const CategoryFilterAll = "ALL"

// RosterResult is a scoped, filtered view over the member collection plus the
// per-category and per-status counters shown as filter badges.
type RosterResult struct {
	Members        []*domain.Member
	CategoryCounts map[string]int
	StatusCounts   map[string]int
}

// GuardianInput holds guardian details for create/update.
type GuardianInput struct {
	GivenName        string
	Surname          string
	Relationship     string
	PrimaryContact   string
	SecondaryContact string
}

// MedicalInput holds the health sheet for create/update.
type MedicalInput struct {
	HealthProvider string
	BloodGroup     string
	RHFactor       string
	Notes          string
}

// PhotoUpload is an in-memory photo file pending storage.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CreateMemberInput carries everything needed for the two-step member
// creation: login credential first, then the profile, then optionally the
// photo. Category is derived and never accepted from the caller.
type CreateMemberInput struct {
	Email           string
	Password        string
	AccountRole     domain.Role // defaults to MEMBER when empty
	FirstGivenName  string
	SecondGivenName string
	FirstSurname    string
	SecondSurname   string
	DocumentType    string
	DocumentNumber  string
	BirthDate       string
	Guardian        GuardianInput
	Medical         MedicalInput
	Photo           *PhotoUpload
}

// MemberPatch is a partial update. Nil fields are left untouched. A birth
// date change triggers category recomputation before persisting.
type MemberPatch struct {
	FirstGivenName  *string
	SecondGivenName *string
	FirstSurname    *string
	SecondSurname   *string
	DocumentType    *string
	DocumentNumber  *string
	BirthDate       *string
	Guardian        *GuardianInput
	Medical         *MedicalInput
	Status          *domain.MemberStatus
}

// MemberService defines the roster use cases. Every mutating operation
// re-validates the caller's capabilities at the point of invocation.
type MemberService interface {
	List(ctx context.Context, caller Caller) (*RosterResult, error)
	Search(ctx context.Context, caller Caller, query SearchQuery) (*RosterResult, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Member, error)
	Create(ctx context.Context, caller Caller, input CreateMemberInput) (*domain.Member, error)
	Update(ctx context.Context, caller Caller, id string, patch MemberPatch) (*domain.Member, error)
	Delete(ctx context.Context, caller Caller, id string) error
	AttachPhoto(ctx context.Context, caller Caller, id string, photo PhotoUpload) (*domain.Member, error)
}
