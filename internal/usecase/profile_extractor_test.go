package usecase

import (
	"math"
	"testing"

	"github.com/sahulat/backend/internal/domain"
)

func TestExtract(t *testing.T) {
	extractor := NewProfileExtractor("Pakistan")

	t.Run("extracts full english profile sentence", func(t *testing.T) {
		attrs := extractor.Extract(
			"I am 25 years old, have a bachelor degree, live in Lahore, looking for scholarship",
			domain.LocaleEnglish)

		if attrs.Age == nil || *attrs.Age != 25 {
			t.Errorf("Age = %v, want 25", attrs.Age)
		}
		if attrs.Education == nil || *attrs.Education != domain.EducationBachelor {
			t.Errorf("Education = %v, want bachelor", attrs.Education)
		}
		if attrs.Location == nil || attrs.Location.City != "Lahore" {
			t.Errorf("Location = %+v, want city Lahore", attrs.Location)
		}
		if attrs.Location != nil && attrs.Location.Country != "Pakistan" {
			t.Errorf("Location.Country = %s, want Pakistan", attrs.Location.Country)
		}
		if len(attrs.Goals) != 1 || attrs.Goals[0] != "scholarship" {
			t.Errorf("Goals = %v, want [scholarship]", attrs.Goals)
		}
		if attrs.Confidence <= ConfidenceThreshold {
			t.Errorf("Confidence = %f, want > %f", attrs.Confidence, ConfidenceThreshold)
		}
		if !Usable(attrs) {
			t.Error("Usable() = false, want true")
		}
	})

	t.Run("empty message yields nothing usable", func(t *testing.T) {
		attrs := extractor.Extract("", domain.LocaleEnglish)

		if attrs.Age != nil || attrs.Gender != nil || attrs.Education != nil || attrs.Location != nil {
			t.Errorf("expected no attributes, got %+v", attrs)
		}
		if len(attrs.Goals) != 0 {
			t.Errorf("Goals = %v, want none", attrs.Goals)
		}
		if Usable(attrs) {
			t.Error("Usable() = true, want false")
		}
	})

	t.Run("out of bound age is dropped", func(t *testing.T) {
		attrs := extractor.Extract("I am 0 years old", domain.LocaleEnglish)
		if attrs.Age != nil {
			t.Errorf("Age = %d, want nil", *attrs.Age)
		}
	})

	t.Run("out of bound family size is dropped", func(t *testing.T) {
		attrs := extractor.Extract("We are a family of 25", domain.LocaleEnglish)
		if attrs.FamilySize != nil {
			t.Errorf("FamilySize = %d, want nil", *attrs.FamilySize)
		}
	})

	t.Run("family size within bounds", func(t *testing.T) {
		attrs := extractor.Extract("We are a family of 7", domain.LocaleEnglish)
		if attrs.FamilySize == nil || *attrs.FamilySize != 7 {
			t.Errorf("FamilySize = %v, want 7", attrs.FamilySize)
		}
	})

	t.Run("gender from pronouns", func(t *testing.T) {
		attrs := extractor.Extract("She lives with her parents", domain.LocaleEnglish)
		if attrs.Gender == nil || *attrs.Gender != domain.GenderFemale {
			t.Errorf("Gender = %v, want female", attrs.Gender)
		}

		attrs = extractor.Extract("He lost his job", domain.LocaleEnglish)
		if attrs.Gender == nil || *attrs.Gender != domain.GenderMale {
			t.Errorf("Gender = %v, want male", attrs.Gender)
		}
	})

	t.Run("goals collected and deduplicated in table order", func(t *testing.T) {
		attrs := extractor.Extract(
			"I want a scholarship or a loan for my education, any scholarship helps",
			domain.LocaleEnglish)

		want := []string{"scholarship", "loan", "education"}
		if len(attrs.Goals) != len(want) {
			t.Fatalf("Goals = %v, want %v", attrs.Goals, want)
		}
		for i, goal := range want {
			if attrs.Goals[i] != goal {
				t.Errorf("Goals[%d] = %s, want %s", i, attrs.Goals[i], goal)
			}
		}
	})

	t.Run("disability mentions collapse to a single tag", func(t *testing.T) {
		attrs := extractor.Extract("I am disabled and use a wheelchair", domain.LocaleEnglish)
		if len(attrs.Disabilities) != 1 || attrs.Disabilities[0] != "disability" {
			t.Errorf("Disabilities = %v, want [disability]", attrs.Disabilities)
		}
	})

	t.Run("low income from keyword", func(t *testing.T) {
		attrs := extractor.Extract("We are poor and struggling", domain.LocaleEnglish)
		if attrs.Income == nil || *attrs.Income != domain.IncomeLow {
			t.Errorf("Income = %v, want low", attrs.Income)
		}
	})

	t.Run("urdu age and goal", func(t *testing.T) {
		attrs := extractor.Extract("میری عمر 30 سال ہے اور مجھے وظیفہ چاہیے", domain.LocaleUrdu)

		if attrs.Age == nil || *attrs.Age != 30 {
			t.Errorf("Age = %v, want 30", attrs.Age)
		}
		hasScholarship := false
		for _, g := range attrs.Goals {
			if g == "scholarship" {
				hasScholarship = true
			}
		}
		if !hasScholarship {
			t.Errorf("Goals = %v, want scholarship included", attrs.Goals)
		}
		if len(attrs.Languages) != 1 || attrs.Languages[0] != "urdu" {
			t.Errorf("Languages = %v, want [urdu]", attrs.Languages)
		}
	})

	t.Run("latin script under urdu locale records both languages", func(t *testing.T) {
		attrs := extractor.Extract("I need a scholarship", domain.LocaleUrdu)
		if len(attrs.Languages) != 2 || attrs.Languages[0] != "urdu" || attrs.Languages[1] != "english" {
			t.Errorf("Languages = %v, want [urdu english]", attrs.Languages)
		}
	})

	t.Run("unknown locale falls back to english rules", func(t *testing.T) {
		attrs := extractor.Extract("I am 40 years old", domain.Locale("fr"))
		if attrs.Age == nil || *attrs.Age != 40 {
			t.Errorf("Age = %v, want 40", attrs.Age)
		}
		if len(attrs.Languages) != 1 || attrs.Languages[0] != "english" {
			t.Errorf("Languages = %v, want [english]", attrs.Languages)
		}
	})
}

func TestScoreConfidence(t *testing.T) {
	age := 25
	gender := domain.GenderFemale
	education := domain.EducationBachelor
	location := domain.Location{City: "Karachi", Country: "Pakistan"}
	income := domain.IncomeLow

	t.Run("single field scores its weight", func(t *testing.T) {
		got := ScoreConfidence(domain.ParsedAttributes{Age: &age})
		if math.Abs(got-0.15) > 1e-9 {
			t.Errorf("ScoreConfidence = %f, want 0.15", got)
		}
	})

	t.Run("three fields earn the first bonus", func(t *testing.T) {
		got := ScoreConfidence(domain.ParsedAttributes{
			Age:       &age,
			Education: &education,
			Location:  &location,
		})
		// 0.15 + 0.15 + 0.15 + 0.10
		if math.Abs(got-0.55) > 1e-9 {
			t.Errorf("ScoreConfidence = %f, want 0.55", got)
		}
	})

	t.Run("five fields earn both bonuses", func(t *testing.T) {
		got := ScoreConfidence(domain.ParsedAttributes{
			Age:       &age,
			Gender:    &gender,
			Education: &education,
			Location:  &location,
			Goals:     []string{"scholarship"},
		})
		// 0.15 + 0.10 + 0.15 + 0.15 + 0.20 + 0.10 + 0.10
		if math.Abs(got-0.95) > 1e-9 {
			t.Errorf("ScoreConfidence = %f, want 0.95", got)
		}
	})

	t.Run("full extraction clamps at 1.0", func(t *testing.T) {
		occupation := "teacher"
		familySize := 6
		got := ScoreConfidence(domain.ParsedAttributes{
			Age:        &age,
			Gender:     &gender,
			Education:  &education,
			Location:   &location,
			Goals:      []string{"scholarship"},
			Income:     &income,
			Occupation: &occupation,
			FamilySize: &familySize,
		})
		if got != 1.0 {
			t.Errorf("ScoreConfidence = %f, want 1.0", got)
		}
	})

	t.Run("adding a field never lowers confidence", func(t *testing.T) {
		without := ScoreConfidence(domain.ParsedAttributes{Age: &age, Location: &location})
		with := ScoreConfidence(domain.ParsedAttributes{Age: &age, Location: &location, Gender: &gender})
		if with < without {
			t.Errorf("confidence dropped from %f to %f after adding a field", without, with)
		}
	})
}

func TestMissingFieldSuggestions(t *testing.T) {
	age := 25

	t.Run("empty extraction prompts all four in order", func(t *testing.T) {
		got := MissingFieldSuggestions(domain.ParsedAttributes{}, domain.LocaleEnglish)
		want := []string{
			"Please provide your age",
			"Please mention your education level",
			"Please provide your location",
			"Please mention your goals (scholarship, job, etc.)",
		}
		if len(got) != len(want) {
			t.Fatalf("suggestions = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("suggestions[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("present fields are not prompted", func(t *testing.T) {
		got := MissingFieldSuggestions(domain.ParsedAttributes{
			Age:   &age,
			Goals: []string{"loan"},
		}, domain.LocaleEnglish)
		if len(got) != 2 {
			t.Fatalf("suggestions = %v, want education and location prompts only", got)
		}
	})

	t.Run("urdu locale gets urdu prompts", func(t *testing.T) {
		got := MissingFieldSuggestions(domain.ParsedAttributes{}, domain.LocaleUrdu)
		if len(got) != 4 {
			t.Fatalf("len(suggestions) = %d, want 4", len(got))
		}
		if got[0] != "براہ کرم اپنی عمر بتائیں" {
			t.Errorf("suggestions[0] = %s, want urdu age prompt", got[0])
		}
	})
}
