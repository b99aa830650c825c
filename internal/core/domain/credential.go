package domain

// Face identifies one side of the carnet.
type Face string

const (
	FaceFront Face = "FRONT"
	FaceBack  Face = "BACK"
)

// Literals printed on a face when the underlying field is absent.
const (
	CategoryPendingText   = "PENDING"
	GuardianMissingText   = "NOT REGISTERED"
	MedicalNotesEmptyText = "No relevant observations"
	LegalNoticeText       = "This carnet is personal and non-transferable. " +
		"It certifies active enrolment with Club Deportivo Cezeus and must be " +
		"presented at every official competition."
)

// Carnet colors. The base color is also the export raster background, which
// must always be opaque.
const (
	CardBaseColor     = "#0f172a"
	StatusActiveColor = "#13ecec"
	StatusInactiveCol = "#f43f5e"
)

// StatusColor is the color of the bottom bar on both faces. It is a pure
// function of the member status.
func StatusColor(s MemberStatus) string {
	if s == StatusInactive {
		return StatusInactiveCol
	}
	return StatusActiveColor
}

// FrontFace is the pure projection of a member onto the carnet front. It
// holds no mutable state.
type FrontFace struct {
	ClubMark       string `json:"club_mark"`
	PhotoURL       string `json:"photo_url,omitempty"`
	SurnamesLine   string `json:"surnames_line"`
	GivenNamesLine string `json:"given_names_line"`
	Category       string `json:"category"`
	BloodType      string `json:"blood_type"`
	HealthProvider string `json:"health_provider"`
	StatusBarColor string `json:"status_bar_color"`
}

// BackFace is the pure projection of a member onto the carnet back.
type BackFace struct {
	GuardianLine     string `json:"guardian_line"`
	PrimaryContact   string `json:"primary_contact"`
	SecondaryContact string `json:"secondary_contact,omitempty"`
	MedicalNotes     string `json:"medical_notes"`
	LegalNotice      string `json:"legal_notice"`
	StatusBarColor   string `json:"status_bar_color"`
}

// ClubMarkText is the mark rendered in the carnet corner.
const ClubMarkText = "CZ"

// BuildFront projects a member onto the front face. Identical members always
// produce identical faces.
func BuildFront(m *Member) FrontFace {
	category := string(m.Category)
	if m.Category == CategoryUnassigned || m.Category == "" {
		category = CategoryPendingText
	}
	return FrontFace{
		ClubMark:       ClubMarkText,
		PhotoURL:       m.PhotoURL,
		SurnamesLine:   m.SurnamesLine(),
		GivenNamesLine: m.GivenNamesLine(),
		Category:       category,
		BloodType:      m.Medical.BloodType(),
		HealthProvider: m.Medical.HealthProvider,
		StatusBarColor: StatusColor(m.Status),
	}
}

// BuildBack projects a member onto the back face.
func BuildBack(m *Member) BackFace {
	guardian := GuardianMissingText
	if m.Guardian.Registered() {
		guardian = joinNonEmpty(m.Guardian.GivenName, m.Guardian.Surname)
		if m.Guardian.Relationship != "" {
			guardian += " (" + m.Guardian.Relationship + ")"
		}
	}
	notes := m.Medical.Notes
	if notes == "" {
		notes = MedicalNotesEmptyText
	}
	return BackFace{
		GuardianLine:     guardian,
		PrimaryContact:   m.Guardian.PrimaryContact,
		SecondaryContact: m.Guardian.SecondaryContact,
		MedicalNotes:     notes,
		LegalNotice:      LegalNoticeText,
		StatusBarColor:   StatusColor(m.Status),
	}
}
