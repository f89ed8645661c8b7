package domain

// Category classifies a government program. The set is closed.
type Category string

const (
	CategoryScholarship      Category = "scholarship"
	CategoryGrant            Category = "grant"
	CategoryLoan             Category = "loan"
	CategorySkillTraining    Category = "skill_training"
	CategoryEmployment       Category = "employment"
	CategoryBusiness         Category = "business"
	CategoryHousing          Category = "housing"
	CategoryHealth           Category = "health"
	CategoryDisability       Category = "disability"
	CategoryWomenEmpowerment Category = "women_empowerment"
	CategoryYouth            Category = "youth"
	CategoryAgriculture      Category = "agriculture"
	CategoryTechnology       Category = "technology"
)

// Categories lists every program category in display order.
var Categories = []Category{
	CategoryScholarship,
	CategoryGrant,
	CategoryLoan,
	CategorySkillTraining,
	CategoryEmployment,
	CategoryBusiness,
	CategoryHousing,
	CategoryHealth,
	CategoryDisability,
	CategoryWomenEmpowerment,
	CategoryYouth,
	CategoryAgriculture,
	CategoryTechnology,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FundingRange is the monetary range a program awards.
type FundingRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// EligibilityCriteria describes who a program is open to.
type EligibilityCriteria struct {
	AgeMin             *int             `json:"age_min,omitempty"`
	AgeMax             *int             `json:"age_max,omitempty"`
	EducationLevels    []EducationLevel `json:"education_level,omitempty"`
	IncomeLevels       []IncomeLevel    `json:"income_level,omitempty"`
	Locations          []string         `json:"location,omitempty"`
	Gender             string           `json:"gender,omitempty"` // male, female or all
	DisabilityFriendly bool             `json:"disability_friendly,omitempty"`
	FamilySizeMax      *int             `json:"family_size_max,omitempty"`
	Occupations        []string         `json:"occupation,omitempty"`
	Languages          []string         `json:"languages,omitempty"`
}

// Program is a government assistance program from the corpus. Read-only input
// to the recommendation pipeline.
type Program struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	TitleUrdu      string              `json:"title_urdu,omitempty"`
	Description    string              `json:"description"`
	Category       Category            `json:"category"`
	Eligibility    EligibilityCriteria `json:"eligibility_criteria"`
	Benefits       []string            `json:"benefits"`
	Requirements   []string            `json:"requirements"`
	Funding        *FundingRange       `json:"funding_amount,omitempty"`
	Deadline       string              `json:"application_deadline,omitempty"`
	ApplicationURL string              `json:"application_url,omitempty"`
	Active         bool                `json:"is_active"`
}
