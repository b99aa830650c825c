package domain

import (
	"errors"
	"strings"
	"time"
)

// MemberStatus represents whether a member is currently enrolled.
type MemberStatus string

const (
	StatusActive   MemberStatus = "ACTIVE"
	StatusInactive MemberStatus = "INACTIVE"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrPermissionDenied = errors.New("permission denied")
var ErrExportBusy = errors.New("export already in progress")
var ErrNoSelection = errors.New("no member selected")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrResetTokenInvalid = errors.New("reset token invalid or expired")

// Guardian holds the responsible adult registered for a member.
type Guardian struct {
	GivenName        string `json:"given_name" bson:"given_name"`
	Surname          string `json:"surname" bson:"surname"`
	Relationship     string `json:"relationship" bson:"relationship"`
	PrimaryContact   string `json:"primary_contact" bson:"primary_contact"`
	SecondaryContact string `json:"secondary_contact,omitempty" bson:"secondary_contact,omitempty"`
}

// Registered reports whether a guardian has been recorded at all.
func (g Guardian) Registered() bool {
	return g.GivenName != "" || g.Surname != ""
}

// Medical holds the health sheet printed on the carnet.
type Medical struct {
	HealthProvider string `json:"health_provider" bson:"health_provider"`
	BloodGroup     string `json:"blood_group" bson:"blood_group"`
	RHFactor       string `json:"rh_factor" bson:"rh_factor"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// BloodType renders the combined blood group and RH factor (e.g. "O+").
func (m Medical) BloodType() string {
	return m.BloodGroup + m.RHFactor
}

// Member is the core aggregate root: one club member and their carnet data.
type Member struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	Email           string        `json:"email" bson:"email"`
	FirstGivenName  string        `json:"first_given_name" bson:"first_given_name"`
	SecondGivenName string        `json:"second_given_name,omitempty" bson:"second_given_name,omitempty"`
	FirstSurname    string        `json:"first_surname" bson:"first_surname"`
	SecondSurname   string        `json:"second_surname,omitempty" bson:"second_surname,omitempty"`
	DocumentType    string        `json:"document_type" bson:"document_type"`
	DocumentNumber  string        `json:"document_number" bson:"document_number"`
	BirthDate       string        `json:"birth_date" bson:"birth_date"`
	Category        CategoryLabel `json:"category" bson:"category"`
	Guardian        Guardian      `json:"guardian" bson:"guardian"`
	Medical         Medical       `json:"medical" bson:"medical"`
	PhotoURL        string        `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	PhotoPath       string        `json:"-" bson:"photo_path,omitempty"`
	Status          MemberStatus  `json:"status" bson:"status"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}

// SurnamesLine is the surname row as printed on the carnet front.
func (m *Member) SurnamesLine() string {
	return joinNonEmpty(m.FirstSurname, m.SecondSurname)
}

// GivenNamesLine is the given-name row as printed on the carnet front.
func (m *Member) GivenNamesLine() string {
	return joinNonEmpty(m.FirstGivenName, m.SecondGivenName)
}

// SearchableName concatenates the name parts in roster search order:
// first surname, second surname, first given name, second given name.
func (m *Member) SearchableName() string {
	return strings.ToLower(strings.Join([]string{
		m.FirstSurname, m.SecondSurname, m.FirstGivenName, m.SecondGivenName,
	}, " "))
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
