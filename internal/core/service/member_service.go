package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// MemberService implements the roster view logic: scoped listing, in-memory
// search and filters, the two-step create flow, updates with category
// recomputation, and deletes that clear the carnet selection.
type MemberService struct {
	repo       ports.MemberRepository
	accounts   ports.AccountProvisioner
	photos     ports.ObjectStorage
	selections ports.SelectionCleaner
	logger     zerolog.Logger
	now        func() time.Time
}

func NewMemberService(
	repo ports.MemberRepository,
	accounts ports.AccountProvisioner,
	photos ports.ObjectStorage,
	selections ports.SelectionCleaner,
	logger zerolog.Logger,
) *MemberService {
	return &MemberService{
		repo:       repo,
		accounts:   accounts,
		photos:     photos,
		selections: selections,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns the roster visible to the caller. Scope-to-self callers only
// ever see records matching their own email.
func (s *MemberService) List(ctx context.Context, caller ports.Caller) (*ports.RosterResult, error) {
	return s.Search(ctx, caller, ports.SearchQuery{})
}

// Search applies the roster filters on top of the caller-scoped collection.
// The counters are computed over the scoped collection before filtering, so
// the filter badges stay stable while the user types.
func (s *MemberService) Search(ctx context.Context, caller ports.Caller, query ports.SearchQuery) (*ports.RosterResult, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list members")
		return nil, err
	}

	scoped := members[:0:0]
	for _, m := range members {
		if caps.ScopeToSelf && !strings.EqualFold(m.Email, caller.Email) {
			continue
		}
		scoped = append(scoped, m)
	}

	result := &ports.RosterResult{
		Members:        scoped[:0:0],
		CategoryCounts: make(map[string]int),
		StatusCounts:   make(map[string]int),
	}
	for _, m := range scoped {
		result.CategoryCounts[string(m.Category)]++
		result.StatusCounts[string(m.Status)]++
		if matchesQuery(m, query) {
			result.Members = append(result.Members, m)
		}
	}
	return result, nil
}

func matchesQuery(m *domain.Member, q ports.SearchQuery) bool {
	if term := strings.ToLower(q.Term); term != "" {
		if !strings.Contains(m.SearchableName(), term) &&
			!strings.Contains(m.DocumentNumber, q.Term) {
			return false
		}
	}
	if f := q.CategoryFilter; f != "" && !strings.EqualFold(f, ports.CategoryFilterAll) {
		if !strings.Contains(strings.ToLower(string(m.Category)), strings.ToLower(f)) {
			return false
		}
	}
	if f := q.StatusFilter; f != "" {
		if !strings.EqualFold(string(m.Status), f) {
			return false
		}
	}
	return true
}

// Get returns a single record. Scope-to-self callers may only read their own.
func (s *MemberService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Member, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caps.ScopeToSelf && !strings.EqualFold(m.Email, caller.Email) {
		return nil, domain.ErrPermissionDenied
	}
	return m, nil
}

// Create runs the three-step enrolment: provision the login credential,
// upload the photo (non-fatal), persist the profile. The steps are not
// transactional: a failed photo upload leaves a usable record without a
// photo, and a failed profile insert leaves the account behind for a retry.
func (s *MemberService) Create(ctx context.Context, caller ports.Caller, input ports.CreateMemberInput) (*domain.Member, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}
	if !caps.CanCreate {
		return nil, domain.ErrPermissionDenied
	}

	role := input.AccountRole
	if role == "" {
		role = domain.RoleMember
	}
	if role == domain.RoleSuperAdmin && !caps.CanAssignSuperAdmin {
		return nil, fmt.Errorf("%w: cannot assign SUPER_ADMIN", domain.ErrPermissionDenied)
	}

	account, err := s.accounts.Provision(ctx, input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	m := &domain.Member{
		ID:              account.ID,
		Email:           input.Email,
		FirstGivenName:  strings.ToUpper(input.FirstGivenName),
		SecondGivenName: strings.ToUpper(input.SecondGivenName),
		FirstSurname:    strings.ToUpper(input.FirstSurname),
		SecondSurname:   strings.ToUpper(input.SecondSurname),
		DocumentType:    input.DocumentType,
		DocumentNumber:  input.DocumentNumber,
		BirthDate:       input.BirthDate,
		Category:        domain.Classify(input.BirthDate, now),
		Guardian:        guardianFromInput(input.Guardian),
		Medical:         medicalFromInput(input.Medical),
		Status:          domain.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if input.Photo != nil {
		path := s.photoPath(m.DocumentNumber, input.Photo.FileName)
		url, uploadErr := s.photos.Upload(ctx, path, input.Photo.ContentType, input.Photo.Data)
		if uploadErr != nil {
			// Tolerated partial failure: the record is still created.
			s.logger.Warn().Err(uploadErr).Str("member_email", m.Email).Msg("photo upload failed, creating member without photo")
		} else {
			m.PhotoURL = url
			m.PhotoPath = path
		}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("member_email", m.Email).Msg("failed to create member record")
		return nil, err
	}

	s.logger.Info().Str("member_id", m.ID).Str("category", string(m.Category)).Msg("member created")
	return m, nil
}

// Update merges the patch into the stored record. A birth date change
// recomputes the category before persisting; the category itself is never
// writable. The caller only observes the new state after persistence
// succeeds.
func (s *MemberService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.MemberPatch) (*domain.Member, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}
	if !caps.CanEdit {
		return nil, domain.ErrPermissionDenied
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(m, patch)
	if patch.BirthDate != nil {
		m.Category = domain.Classify(m.BirthDate, s.now().UTC())
	}
	m.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("member_id", id).Msg("failed to update member record")
		return nil, err
	}
	return m, nil
}

func applyPatch(m *domain.Member, patch ports.MemberPatch) {
	setUpper := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.ToUpper(*src)
		}
	}
	setUpper(&m.FirstGivenName, patch.FirstGivenName)
	setUpper(&m.SecondGivenName, patch.SecondGivenName)
	setUpper(&m.FirstSurname, patch.FirstSurname)
	setUpper(&m.SecondSurname, patch.SecondSurname)
	if patch.DocumentType != nil {
		m.DocumentType = *patch.DocumentType
	}
	if patch.DocumentNumber != nil {
		m.DocumentNumber = *patch.DocumentNumber
	}
	if patch.BirthDate != nil {
		m.BirthDate = *patch.BirthDate
	}
	if patch.Guardian != nil {
		m.Guardian = guardianFromInput(*patch.Guardian)
	}
	if patch.Medical != nil {
		m.Medical = medicalFromInput(*patch.Medical)
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
}

// Delete removes the record and, once persistence confirms it, clears any
// carnet workspace still pointing at it.
func (s *MemberService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return err
	}
	if !caps.CanDelete {
		return domain.ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("member_id", id).Msg("failed to delete member record")
		return err
	}

	if s.selections != nil {
		s.selections.ClearSelection(id)
	}
	s.logger.Info().Str("member_id", id).Msg("member deleted")
	return nil
}

// AttachPhoto stores a new photo, points the record at it and only then
// removes the previous object so the record never references a missing
// photo. A failed cleanup is logged and tolerated.
func (s *MemberService) AttachPhoto(ctx context.Context, caller ports.Caller, id string, photo ports.PhotoUpload) (*domain.Member, error) {
	caps, err := domain.PermissionsFor(caller.Role)
	if err != nil {
		return nil, err
	}
	if !caps.CanEdit {
		return nil, domain.ErrPermissionDenied
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousPath := m.PhotoPath
	path := s.photoPath(m.DocumentNumber, photo.FileName)
	url, err := s.photos.Upload(ctx, path, photo.ContentType, photo.Data)
	if err != nil {
		s.logger.Error().Err(err).Str("member_id", id).Msg("photo upload failed")
		return nil, err
	}

	m.PhotoURL = url
	m.PhotoPath = path
	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if previousPath != "" && previousPath != path {
		if err := s.photos.Delete(ctx, previousPath); err != nil {
			s.logger.Warn().Err(err).Str("path", previousPath).Msg("failed to remove replaced photo")
		}
	}
	return m, nil
}

func (s *MemberService) photoPath(documentNumber, fileName string) string {
	ext := filepath.Ext(fileName)
	if documentNumber == "" {
		documentNumber = uuid.NewString()
	}
	return fmt.Sprintf("fotos_perfil/%s-%d%s", documentNumber, s.now().UnixNano(), ext)
}

func guardianFromInput(in ports.GuardianInput) domain.Guardian {
	return domain.Guardian{
		GivenName:        strings.ToUpper(in.GivenName),
		Surname:          strings.ToUpper(in.Surname),
		Relationship:     in.Relationship,
		PrimaryContact:   in.PrimaryContact,
		SecondaryContact: in.SecondaryContact,
	}
}

func medicalFromInput(in ports.MedicalInput) domain.Medical {
	return domain.Medical{
		HealthProvider: in.HealthProvider,
		BloodGroup:     in.BloodGroup,
		RHFactor:       in.RHFactor,
		Notes:          in.Notes,
	}
}
