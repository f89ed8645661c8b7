package store

import "github.com/sahulat/backend/internal/domain"

func intPtr(n int) *int { return &n }

// SeedPrograms returns the built-in corpus of flagship federal programs used
// when no external program source is wired up.
func SeedPrograms() []domain.Program {
	return []domain.Program{
		{
			ID:          "ehsaas-emergency-cash",
			Title:       "Ehsaas Emergency Cash Programme",
			TitleUrdu:   "احساس ایمرجنسی کیش پروگرام",
			Description: "Unconditional cash transfers for low-income families affected by economic hardship.",
			Category:    domain.CategoryGrant,
			Eligibility: domain.EligibilityCriteria{
				AgeMin:       intPtr(18),
				IncomeLevels: []domain.IncomeLevel{domain.IncomeLow},
				Gender:       "all",
			},
			Benefits:     []string{"One-time cash grant of PKR 12,000 per eligible household"},
			Requirements: []string{"Valid CNIC", "Registration in the Ehsaas survey"},
			Funding:      &domain.FundingRange{Min: 12000, Max: 12000, Currency: "PKR"},
			Deadline:     "Rolling enrollment",
			Active:       true,
		},
		{
			ID:          "hec-need-based-scholarship",
			Title:       "HEC Need-Based Scholarship",
			TitleUrdu:   "ایچ ای سی وظیفہ برائے مستحق طلبہ",
			Description: "Tuition and stipend support for undergraduate students from low-income households at public universities.",
			Category:    domain.CategoryScholarship,
			Eligibility: domain.EligibilityCriteria{
				AgeMin:          intPtr(17),
				AgeMax:          intPtr(26),
				EducationLevels: []domain.EducationLevel{domain.EducationHighSchool, domain.EducationBachelor},
				IncomeLevels:    []domain.IncomeLevel{domain.IncomeLow, domain.IncomeMedium},
				Gender:          "all",
			},
			Benefits:     []string{"Full tuition coverage", "Monthly living stipend"},
			Requirements: []string{"Admission at a partner university", "Household income certificate"},
			Funding:      &domain.FundingRange{Min: 50000, Max: 400000, Currency: "PKR"},
			Deadline:     "2024-11-30",
			Active:       true,
		},
		{
			ID:          "kamyab-jawan-loan",
			Title:       "Prime Minister's Kamyab Jawan Youth Entrepreneurship Scheme",
			TitleUrdu:   "کامیاب جوان پروگرام",
			Description: "Subsidized business loans for young entrepreneurs starting or expanding a small business.",
			Category:    domain.CategoryLoan,
			Eligibility: domain.EligibilityCriteria{
				AgeMin: intPtr(21),
				AgeMax: intPtr(45),
				Gender: "all",
			},
			Benefits:     []string{"Loans from PKR 100,000 to 25 million at subsidized markup"},
			Requirements: []string{"Valid CNIC", "Business plan", "Clean credit history"},
			Funding:      &domain.FundingRange{Min: 100000, Max: 25000000, Currency: "PKR"},
			Deadline:     "Rolling enrollment",
			Active:       true,
		},
		{
			ID:          "navttc-skills-for-all",
			Title:       "NAVTTC Skills for All Programme",
			TitleUrdu:   "ہنر مند پاکستان پروگرام",
			Description: "Free technical and vocational training courses with certification across high-demand trades and IT.",
			Category:    domain.CategorySkillTraining,
			Eligibility: domain.EligibilityCriteria{
				AgeMin:          intPtr(16),
				AgeMax:          intPtr(40),
				EducationLevels: []domain.EducationLevel{domain.EducationSecondary, domain.EducationHighSchool, domain.EducationVocational},
				Gender:          "all",
			},
			Benefits:     []string{"Free 3-6 month training", "Certification", "Monthly stipend during training"},
			Requirements: []string{"Valid CNIC or B-Form", "Minimum middle-school education for most trades"},
			Deadline:     "2024-12-15",
			Active:       true,
		},
		{
			ID:          "naya-pakistan-housing",
			Title:       "Naya Pakistan Housing Scheme",
			TitleUrdu:   "نیا پاکستان ہاؤسنگ سکیم",
			Description: "Subsidized mortgage financing for first-time home buyers from low and middle income households.",
			Category:    domain.CategoryHousing,
			Eligibility: domain.EligibilityCriteria{
				AgeMin:        intPtr(25),
				IncomeLevels:  []domain.IncomeLevel{domain.IncomeLow, domain.IncomeMedium},
				Gender:        "all",
				FamilySizeMax: intPtr(10),
			},
			Benefits:     []string{"Markup subsidy on home loans", "Priority allotment in government housing projects"},
			Requirements: []string{"First-time home buyer", "Valid CNIC", "Verifiable income"},
			Funding:      &domain.FundingRange{Min: 2000000, Max: 10000000, Currency: "PKR"},
			Deadline:     "Rolling enrollment",
			Active:       true,
		},
		{
			ID:          "sehat-sahulat-card",
			Title:       "Sehat Sahulat Programme",
			TitleUrdu:   "صحت سہولت پروگرام",
			Description: "Public health insurance covering hospitalization for eligible families, including disability support.",
			Category:    domain.CategoryHealth,
			Eligibility: domain.EligibilityCriteria{
				IncomeLevels:       []domain.IncomeLevel{domain.IncomeLow, domain.IncomeMedium},
				Gender:             "all",
				DisabilityFriendly: true,
			},
			Benefits:     []string{"Inpatient coverage up to PKR 1 million per family per year"},
			Requirements: []string{"Valid CNIC", "Family registered in national socio-economic registry"},
			Funding:      &domain.FundingRange{Min: 0, Max: 1000000, Currency: "PKR"},
			Deadline:     "Rolling enrollment",
			Active:       true,
		},
	}
}
