package handler

import (
	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createMemberRequest) ports.CreateMemberInput {
	return ports.CreateMemberInput{
		Email:           req.Email,
		Password:        req.Password,
		AccountRole:     domain.Role(req.AccountRole),
		FirstGivenName:  req.FirstGivenName,
		SecondGivenName: req.SecondGivenName,
		FirstSurname:    req.FirstSurname,
		SecondSurname:   req.SecondSurname,
		DocumentType:    req.DocumentType,
		DocumentNumber:  req.DocumentNumber,
		BirthDate:       req.BirthDate,
		Guardian:        toGuardianInput(req.Guardian),
		Medical:         toMedicalInput(req.Medical),
	}
}

func toPatch(req updateMemberRequest) ports.MemberPatch {
	patch := ports.MemberPatch{
		FirstGivenName:  req.FirstGivenName,
		SecondGivenName: req.SecondGivenName,
		FirstSurname:    req.FirstSurname,
		SecondSurname:   req.SecondSurname,
		DocumentType:    req.DocumentType,
		DocumentNumber:  req.DocumentNumber,
		BirthDate:       req.BirthDate,
	}
	if req.Guardian != nil {
		g := toGuardianInput(*req.Guardian)
		patch.Guardian = &g
	}
	if req.Medical != nil {
		m := toMedicalInput(*req.Medical)
		patch.Medical = &m
	}
	if req.Status != nil {
		s := domain.MemberStatus(*req.Status)
		patch.Status = &s
	}
	return patch
}

func toGuardianInput(g guardianRequest) ports.GuardianInput {
	return ports.GuardianInput{
		GivenName:        g.GivenName,
		Surname:          g.Surname,
		Relationship:     g.Relationship,
		PrimaryContact:   g.PrimaryContact,
		SecondaryContact: g.SecondaryContact,
	}
}

func toMedicalInput(m medicalRequest) ports.MedicalInput {
	return ports.MedicalInput{
		HealthProvider: m.HealthProvider,
		BloodGroup:     m.BloodGroup,
		RHFactor:       m.RHFactor,
		Notes:          m.Notes,
	}
}

// --- Service result → HTTP response ---

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:              m.ID,
		Email:           m.Email,
		FirstGivenName:  m.FirstGivenName,
		SecondGivenName: m.SecondGivenName,
		FirstSurname:    m.FirstSurname,
		SecondSurname:   m.SecondSurname,
		DocumentType:    m.DocumentType,
		DocumentNumber:  m.DocumentNumber,
		BirthDate:       m.BirthDate,
		Category:        string(m.Category),
		Guardian: guardianResponse{
			GivenName:        m.Guardian.GivenName,
			Surname:          m.Guardian.Surname,
			Relationship:     m.Guardian.Relationship,
			PrimaryContact:   m.Guardian.PrimaryContact,
			SecondaryContact: m.Guardian.SecondaryContact,
		},
		Medical: medicalResponse{
			HealthProvider: m.Medical.HealthProvider,
			BloodGroup:     m.Medical.BloodGroup,
			RHFactor:       m.Medical.RHFactor,
			Notes:          m.Medical.Notes,
		},
		PhotoURL:  m.PhotoURL,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toRosterResponse(r *ports.RosterResult) rosterResponse {
	items := make([]memberResponse, len(r.Members))
	for i, m := range r.Members {
		items[i] = toMemberResponse(m)
	}
	return rosterResponse{
		Data:           items,
		CategoryCounts: r.CategoryCounts,
		StatusCounts:   r.StatusCounts,
		Total:          len(items),
	}
}
