package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sahulat/backend/internal/domain"
)

// Field bounds. Captures outside these are dropped silently and the next
// rule is tried.
const (
	minAge        = 1
	maxAge        = 120
	minFamilySize = 1
	maxFamilySize = 20

	minCityLen       = 3
	minOccupationLen = 3
)

// Confidence weights per extracted field. Only present fields contribute, so
// partial extraction yields a sub-total rather than a renormalized fraction.
const (
	weightAge        = 0.15
	weightGender     = 0.10
	weightEducation  = 0.15
	weightLocation   = 0.15
	weightGoals      = 0.20
	weightIncome     = 0.10
	weightOccupation = 0.10
	weightFamilySize = 0.05

	multiFieldBonus = 0.10 // applied once at >=3 fields, again at >=5
)

// ConfidenceThreshold is the fixed acceptance bar: an extraction is usable
// when its confidence exceeds this value.
const ConfidenceThreshold = 0.3

var latinScriptRegex = regexp.MustCompile(`[a-zA-Z]`)

// ProfileExtractor pulls structured applicant attributes out of free text
// using per-locale pattern rule tables. Extraction never fails: fields that
// cannot be matched confidently are simply left absent.
type ProfileExtractor struct {
	defaultCountry string
}

// NewProfileExtractor creates an extractor. Matched localities are stamped
// with defaultCountry since the rules make no city/province/country
// distinction.
func NewProfileExtractor(defaultCountry string) *ProfileExtractor {
	if defaultCountry == "" {
		defaultCountry = "Pakistan"
	}
	return &ProfileExtractor{defaultCountry: defaultCountry}
}

// Extract parses one message and returns the attributes it could match,
// with the weighted confidence already computed. Unknown locales fall back
// to the English table.
func (e *ProfileExtractor) Extract(text string, locale domain.Locale) domain.ParsedAttributes {
	rules, ok := rulesByLocale[locale]
	if !ok {
		locale = domain.LocaleEnglish
		rules = rulesByLocale[locale]
	}

	attrs := domain.ParsedAttributes{
		Age:          extractBoundedInt(text, rules.age, minAge, maxAge),
		Location:     e.extractLocation(text, rules.location),
		Goals:        extractGoals(text, rules.goals),
		Occupation:   extractOccupation(text, rules.occupation),
		FamilySize:   extractBoundedInt(text, rules.familySize, minFamilySize, maxFamilySize),
		Disabilities: extractDisabilities(text, rules.disabilities),
		Languages:    detectLanguages(text, locale),
	}

	if g := matchEnum(text, rules.gender); g != "" {
		gender := domain.Gender(g)
		attrs.Gender = &gender
	}
	if ed := matchEnum(text, rules.education); ed != "" {
		education := domain.EducationLevel(ed)
		attrs.Education = &education
	}
	if inc := matchEnum(text, rules.income); inc != "" {
		income := domain.IncomeLevel(inc)
		attrs.Income = &income
	}

	attrs.Confidence = ScoreConfidence(attrs)
	return attrs
}

// Usable reports whether an extraction cleared the acceptance threshold.
func Usable(attrs domain.ParsedAttributes) bool {
	return attrs.Confidence > ConfidenceThreshold
}

// ScoreConfidence computes the deterministic weighted confidence for a
// partial attribute set, clamped to 1.0.
func ScoreConfidence(attrs domain.ParsedAttributes) float64 {
	confidence := 0.0
	fields := 0

	if attrs.Age != nil {
		confidence += weightAge
		fields++
	}
	if attrs.Gender != nil {
		confidence += weightGender
		fields++
	}
	if attrs.Education != nil {
		confidence += weightEducation
		fields++
	}
	if attrs.Location != nil {
		confidence += weightLocation
		fields++
	}
	if len(attrs.Goals) > 0 {
		confidence += weightGoals
		fields++
	}
	if attrs.Income != nil {
		confidence += weightIncome
		fields++
	}
	if attrs.Occupation != nil {
		confidence += weightOccupation
		fields++
	}
	if attrs.FamilySize != nil {
		confidence += weightFamilySize
		fields++
	}

	if fields >= 3 {
		confidence += multiFieldBonus
	}
	if fields >= 5 {
		confidence += multiFieldBonus
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// MissingFieldSuggestions returns localized prompts for the absent fields
// among age, education, location and goals, in that fixed order.
func MissingFieldSuggestions(attrs domain.ParsedAttributes, locale domain.Locale) []string {
	messages, ok := suggestionMessages[locale]
	if !ok {
		messages = suggestionMessages[domain.LocaleEnglish]
	}

	var suggestions []string
	if attrs.Age == nil {
		suggestions = append(suggestions, messages[0])
	}
	if attrs.Education == nil {
		suggestions = append(suggestions, messages[1])
	}
	if attrs.Location == nil {
		suggestions = append(suggestions, messages[2])
	}
	if len(attrs.Goals) == 0 {
		suggestions = append(suggestions, messages[3])
	}
	return suggestions
}

// extractBoundedInt tries each rule in order and accepts the first captured
// integer inside [lo, hi]. Out-of-bound captures are skipped, not errors.
func extractBoundedInt(text string, rules []*regexp.Regexp, lo, hi int) *int {
	for _, rule := range rules {
		match := rule.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil || n < lo || n > hi {
			continue
		}
		return &n
	}
	return nil
}

// matchEnum scans the value groups in declared order and returns the first
// group with any matching pattern. Group order is the tie-break for
// overlapping rules.
func matchEnum(text string, groups []enumGroup) string {
	for _, group := range groups {
		for _, pattern := range group.patterns {
			if pattern.MatchString(text) {
				return group.value
			}
		}
	}
	return ""
}

func (e *ProfileExtractor) extractLocation(text string, rules []*regexp.Regexp) *domain.Location {
	for _, rule := range rules {
		match := rule.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		city := strings.TrimSpace(match[1])
		if len([]rune(city)) < minCityLen {
			continue
		}
		return &domain.Location{City: city, Country: e.defaultCountry}
	}
	return nil
}

// extractGoals tests every rule independently and collects all canonical
// tokens, deduplicated, in rule-table order.
func extractGoals(text string, rules []goalRule) []string {
	var goals []string
	seen := make(map[string]bool)
	for _, rule := range rules {
		if !rule.pattern.MatchString(text) {
			continue
		}
		if seen[rule.token] {
			continue
		}
		seen[rule.token] = true
		goals = append(goals, rule.token)
	}
	return goals
}

func extractOccupation(text string, rules []*regexp.Regexp) *string {
	for _, rule := range rules {
		match := rule.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		occupation := strings.TrimSpace(match[1])
		if len([]rune(occupation)) < minOccupationLen {
			continue
		}
		return &occupation
	}
	return nil
}

// extractDisabilities collapses any disability mention into the single
// "disability" tag.
func extractDisabilities(text string, rules []*regexp.Regexp) []string {
	for _, rule := range rules {
		if rule.MatchString(text) {
			return []string{"disability"}
		}
	}
	return nil
}

// detectLanguages always records the locale's language and adds english when
// Latin script is present.
func detectLanguages(text string, locale domain.Locale) []string {
	languages := []string{locale.Language()}
	if locale != domain.LocaleEnglish && latinScriptRegex.MatchString(text) {
		languages = append(languages, "english")
	}
	return languages
}
