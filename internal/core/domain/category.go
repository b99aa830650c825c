package domain

import "time"

// CategoryLabel is the age-derived membership tier printed on the carnet.
type CategoryLabel string

// CategoryUnassigned is returned when the birth date is absent or unparsable.
// It is a sentinel, not a band: the front face renders it as "PENDING".
const CategoryUnassigned CategoryLabel = "UNASSIGNED"

const (
	CategorySemillero  CategoryLabel = "SEMILLERO"
	CategoryIniciacion CategoryLabel = "INICIACIÓN"
	CategoryInfantil   CategoryLabel = "INFANTIL"
	CategoryTransicion CategoryLabel = "TRANSICIÓN"
)

// BirthDateLayout is the wire format for birth dates (ISO calendar date).
const BirthDateLayout = "2006-01-02"

// CategoryBand maps a closed age range to its label. MaxAge < 0 means the
// band is open-ended.
type CategoryBand struct {
	Label  CategoryLabel
	MinAge int
	MaxAge int
}

// categoryBands is the single canonical band table. The bands are ordered,
// non-overlapping and cover every non-negative age.
var categoryBands = []CategoryBand{
	{Label: CategorySemillero, MinAge: 0, MaxAge: 3},
	{Label: CategoryIniciacion, MinAge: 4, MaxAge: 7},
	{Label: CategoryInfantil, MinAge: 8, MaxAge: 11},
	{Label: CategoryTransicion, MinAge: 12, MaxAge: -1},
}

// CategoryBands returns a copy of the canonical band table.
func CategoryBands() []CategoryBand {
	out := make([]CategoryBand, len(categoryBands))
	copy(out, categoryBands)
	return out
}

// Classify maps a birth date to its category band as of ref. An empty or
// unparsable birth date yields CategoryUnassigned; Classify never fails.
func Classify(birthDate string, ref time.Time) CategoryLabel {
	if birthDate == "" {
		return CategoryUnassigned
	}
	born, err := time.Parse(BirthDateLayout, birthDate)
	if err != nil {
		return CategoryUnassigned
	}

	age := ref.Year() - born.Year()
	// Birthday not reached yet this year.
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return CategoryUnassigned
	}

	for _, b := range categoryBands {
		if age >= b.MinAge && (b.MaxAge < 0 || age <= b.MaxAge) {
			return b.Label
		}
	}
	return CategoryUnassigned
}
