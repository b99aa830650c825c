package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type guardianRequest struct {
	GivenName        string `json:"given_name"`
	Surname          string `json:"surname"`
	Relationship     string `json:"relationship"`
	PrimaryContact   string `json:"primary_contact"`
	SecondaryContact string `json:"secondary_contact"`
}

type medicalRequest struct {
	HealthProvider string `json:"health_provider" validate:"required"`
	BloodGroup     string `json:"blood_group"     validate:"required,oneof=O A B AB"`
	RHFactor       string `json:"rh_factor"       validate:"required,oneof=+ -"`
	Notes          string `json:"notes"`
}

type createMemberRequest struct {
	Email           string          `json:"email"             validate:"required,email"`
	Password        string          `json:"password"          validate:"required,min=8"`
	AccountRole     string          `json:"account_role"      validate:"omitempty,oneof=SUPER_ADMIN ADMINISTRATIVE DIRECTOR COACH MEMBER"`
	FirstGivenName  string          `json:"first_given_name"  validate:"required"`
	SecondGivenName string          `json:"second_given_name"`
	FirstSurname    string          `json:"first_surname"     validate:"required"`
	SecondSurname   string          `json:"second_surname"`
	DocumentType    string          `json:"document_type"     validate:"required"`
	DocumentNumber  string          `json:"document_number"   validate:"required"`
	BirthDate       string          `json:"birth_date"        validate:"required,datetime=2006-01-02"`
	Guardian        guardianRequest `json:"guardian"`
	Medical         medicalRequest  `json:"medical"           validate:"required"`
}

type updateMemberRequest struct {
	FirstGivenName  *string          `json:"first_given_name"`
	SecondGivenName *string          `json:"second_given_name"`
	FirstSurname    *string          `json:"first_surname"`
	SecondSurname   *string          `json:"second_surname"`
	DocumentType    *string          `json:"document_type"`
	DocumentNumber  *string          `json:"document_number"`
	BirthDate       *string          `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Guardian        *guardianRequest `json:"guardian"`
	Medical         *medicalRequest  `json:"medical"`
	Status          *string          `json:"status"     validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal service changes.

type guardianResponse struct {
	GivenName        string `json:"given_name"`
	Surname          string `json:"surname"`
	Relationship     string `json:"relationship"`
	PrimaryContact   string `json:"primary_contact"`
	SecondaryContact string `json:"secondary_contact,omitempty"`
}

type medicalResponse struct {
	HealthProvider string `json:"health_provider"`
	BloodGroup     string `json:"blood_group"`
	RHFactor       string `json:"rh_factor"`
	Notes          string `json:"notes,omitempty"`
}

type memberResponse struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	FirstGivenName  string           `json:"first_given_name"`
	SecondGivenName string           `json:"second_given_name,omitempty"`
	FirstSurname    string           `json:"first_surname"`
	SecondSurname   string           `json:"second_surname,omitempty"`
	DocumentType    string           `json:"document_type"`
	DocumentNumber  string           `json:"document_number"`
	BirthDate       string           `json:"birth_date"`
	Category        string           `json:"category"`
	Guardian        guardianResponse `json:"guardian"`
	Medical         medicalResponse  `json:"medical"`
	PhotoURL        string           `json:"photo_url,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type rosterResponse struct {
	Data           []memberResponse `json:"data"`
	CategoryCounts map[string]int   `json:"category_counts"`
	StatusCounts   map[string]int   `json:"status_counts"`
	Total          int              `json:"total"`
}
