package domain

import "time"

// Locale identifies the language/script context used to select extraction
// rule tables. The set is closed but extensible: adding a locale means adding
// rule tables, not touching extraction logic.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleUrdu    Locale = "ur"
)

// Language returns the spoken-language token recorded on profiles for this locale.
func (l Locale) Language() string {
	switch l {
	case LocaleUrdu:
		return "urdu"
	default:
		return "english"
	}
}

// Gender is the extracted gender attribute
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// EducationLevel is a fixed ordered education enum
type EducationLevel string

const (
	EducationNone       EducationLevel = "none"
	EducationPrimary    EducationLevel = "primary"
	EducationSecondary  EducationLevel = "secondary"
	EducationHighSchool EducationLevel = "high_school"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
	EducationVocational EducationLevel = "vocational"
	EducationTechnical  EducationLevel = "technical"
)

// IncomeLevel is the extracted household income bracket
type IncomeLevel string

const (
	IncomeLow      IncomeLevel = "low"
	IncomeMedium   IncomeLevel = "medium"
	IncomeHigh     IncomeLevel = "high"
	IncomeVeryHigh IncomeLevel = "very_high"
)

// Location is a coarse extracted locality. Country is always the configured
// default; the extractor makes no attempt to split city vs province.
type Location struct {
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
	Country  string `json:"country"`
}

// ParsedAttributes holds the structured attributes extracted from one message.
// Pointer fields are nil when the extractor could not confidently match them.
type ParsedAttributes struct {
	Age          *int            `json:"age,omitempty"`
	Gender       *Gender         `json:"gender,omitempty"`
	Education    *EducationLevel `json:"education,omitempty"`
	Location     *Location       `json:"location,omitempty"`
	Goals        []string        `json:"goals,omitempty"`
	Income       *IncomeLevel    `json:"income,omitempty"`
	Occupation   *string         `json:"occupation,omitempty"`
	FamilySize   *int            `json:"familySize,omitempty"`
	Disabilities []string        `json:"disabilities,omitempty"`
	Languages    []string        `json:"languages,omitempty"`
	Confidence   float64         `json:"confidence"` // 0-1, weighted field coverage
}

// UserProfile is the long-lived applicant profile, built up message by message.
type UserProfile struct {
	ID           string          `json:"id"`
	Age          *int            `json:"age,omitempty"`
	Gender       *Gender         `json:"gender,omitempty"`
	Education    *EducationLevel `json:"education,omitempty"`
	Location     *Location       `json:"location,omitempty"`
	Goals        []string        `json:"goals,omitempty"`
	Income       *IncomeLevel    `json:"income,omitempty"`
	Occupation   *string         `json:"occupation,omitempty"`
	FamilySize   *int            `json:"familySize,omitempty"`
	Disabilities []string        `json:"disabilities,omitempty"`
	Languages    []string        `json:"languages,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
