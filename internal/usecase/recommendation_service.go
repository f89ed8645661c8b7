package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sahulat/backend/internal/domain"
)

// Prompt and fallback sizing
const (
	promptCorpusLimit    = 10 // corpus entries serialized into the prompt
	fallbackProgramCount = 3  // entries shown by the deterministic fallback
	defaultConfidence    = 0.8
)

// jsonObjectRegex locates the first top-level JSON object in model output,
// which free models routinely wrap in prose.
var jsonObjectRegex = regexp.MustCompile(`(?s)\{.*\}`)

// goalKeywords maps message keywords to goal tokens for corpus-less profiles.
// Order matters: first match wins.
var goalKeywords = []struct {
	keyword string
	goal    string
}{
	{"scholarship", "scholarship"},
	{"loan", "loan"},
	{"training", "training"},
	{"job", "employment"},
	{"housing", "housing"},
	{"health", "healthcare"},
}

const genericGoal = "government programs"

// fallbackSuggestions is the fixed prompt list attached to degraded
// responses.
var fallbackSuggestions = []string{
	"Share your age for age-specific programs",
	"Tell us your education level for education programs",
	"Mention your location for local opportunities",
	"Describe your specific goals (scholarships, loans, training, etc.)",
}

// overviewSuggestions is the fixed prompt list attached to the empty-corpus
// overview.
var overviewSuggestions = []string{
	"Tell us your age",
	"Share your education level",
	"Mention your location",
	"Describe your goals",
}

// RecommendationService composes extraction, search and completion into the
// degrading recommendation pipeline. Every tier below the credential check is
// failure-tolerant: the service always produces a usable answer.
type RecommendationService struct {
	completion domain.CompletionClient
	search     domain.WebSearcher
	log        *logrus.Entry
}

// NewRecommendationService creates a recommendation service with its
// collaborators.
func NewRecommendationService(completion domain.CompletionClient, search domain.WebSearcher, log *logrus.Entry) *RecommendationService {
	return &RecommendationService{
		completion: completion,
		search:     search,
		log:        log,
	}
}

// modelAnswer is the JSON shape the completion backend is instructed to
// return. Confidence is a pointer so an omitted value can default to 0.8.
type modelAnswer struct {
	Message             string   `json:"message"`
	RecommendedPrograms []string `json:"recommendedPrograms"`
	WebResults          []string `json:"webResults"`
	Suggestions         []string `json:"suggestions"`
	Confidence          *float64 `json:"confidence"`
}

// Recommend produces program recommendations for one message. Response tiers,
// in order: canned category overview (empty corpus), model-driven
// recommendation, deterministic first-3 fallback. Only a missing completion
// credential yields success=false.
func (s *RecommendationService) Recommend(ctx context.Context, message string, profile *domain.UserProfile, corpus []domain.Program) domain.RecommendationResult {
	if len(corpus) == 0 {
		s.log.WithError(domain.ErrNoPrograms).Info("returning category overview")
		return s.cannedOverview()
	}

	if !s.completion.Configured() {
		return domain.RecommendationResult{
			Success:  false,
			Message:  "AI service is not configured. Please contact support.",
			ErrorTag: "missing API key",
		}
	}

	goals := deriveGoals(message, profile)

	// Best-effort augmentation; a search outage just means no web context
	webResults, err := s.search.SearchPrograms(ctx, profile, goals)
	if err != nil {
		s.log.WithError(err).Debug("web augmentation unavailable")
		webResults = nil
	}

	prompt := buildPrompt(message, profile, corpus, webResults)
	model := s.completion.ResolveModel(ctx, domain.TierChat)

	raw, err := s.completion.Complete(ctx, domain.CompletionRequest{
		Model: model,
		Messages: []domain.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:  0.3,
		MaxTokens:    1000,
		JSONResponse: true,
	})
	if err != nil {
		s.log.WithError(err).WithField("model", model).Warn("completion failed, using deterministic fallback")
		return s.deterministicFallback(corpus)
	}

	answer, err := parseModelAnswer(raw)
	if err != nil {
		s.log.WithError(err).Warn("unparseable completion output, using deterministic fallback")
		return s.deterministicFallback(corpus)
	}

	confidence := defaultConfidence
	if answer.Confidence != nil {
		confidence = *answer.Confidence
	}

	return domain.RecommendationResult{
		Success:     true,
		Message:     answer.Message,
		Programs:    filterByIDs(corpus, answer.RecommendedPrograms),
		WebResults:  answer.WebResults,
		Suggestions: answer.Suggestions,
		Confidence:  confidence,
	}
}

// deriveGoals prefers the profile's goal set and otherwise sniffs the raw
// message for category keywords, first match wins.
func deriveGoals(message string, profile *domain.UserProfile) []string {
	if profile != nil && len(profile.Goals) > 0 {
		return profile.Goals
	}

	lower := strings.ToLower(message)
	for _, kw := range goalKeywords {
		if strings.Contains(lower, kw.keyword) {
			return []string{kw.goal}
		}
	}
	return []string{genericGoal}
}

const systemPrompt = `You are Sahulat AI, a government program discovery assistant in Pakistan. Your PRIMARY goal is to RECOMMEND SPECIFIC PROGRAMS from the available list.

CRITICAL RULES:
1. ALWAYS recommend 2-3 specific programs from the available list first
2. NEVER just ask questions without providing program recommendations
3. Even with incomplete user profiles, recommend programs based on what you know
4. Provide specific details about each recommended program
5. Only ask for missing information AFTER providing recommendations

You must respond in JSON format with actual program recommendations.`

// buildPrompt assembles the bounded completion context: at most the first 10
// corpus entries, the web results, the flattened profile and the raw message.
func buildPrompt(message string, profile *domain.UserProfile, corpus []domain.Program, webResults []domain.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You have access to %d government programs in our database and %d additional opportunities found online.\n\n",
		len(corpus), len(webResults))

	b.WriteString("Available Programs in Database:\n")
	for i, p := range corpus {
		if i >= promptCorpusLimit {
			break
		}
		fmt.Fprintf(&b, "- %s [%s] (%s): %s\n", p.Title, p.ID, p.Category, p.Description)
	}

	if len(webResults) > 0 {
		b.WriteString("\nAdditional opportunities found online:\n")
		for _, r := range webResults {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", r.Title, r.Snippet, r.Link)
		}
	}

	fmt.Fprintf(&b, "\nUser Profile: %s\n", flattenProfile(profile))
	fmt.Fprintf(&b, "User Message: %q\n\n", message)

	b.WriteString(`YOUR TASK:
1. Recommend 2-3 specific programs from the database list above, referenced by id
2. If relevant online opportunities were found, cite 1-2 of them
3. For each program explain benefits, requirements, funding and deadline
4. Only after full program details, briefly note missing profile details

RESPOND IN JSON FORMAT:
{
  "message": "Your detailed program recommendations",
  "recommendedPrograms": ["program_id_1", "program_id_2"],
  "webResults": ["url_1", "url_2"],
  "suggestions": ["Ask for age", "Ask for education level"],
  "confidence": 0.85
}`)

	return b.String()
}

// flattenProfile serializes the known profile attributes as "key: value"
// pairs for the prompt.
func flattenProfile(profile *domain.UserProfile) string {
	if profile == nil {
		return "Basic profile"
	}

	var parts []string
	if profile.Age != nil {
		parts = append(parts, fmt.Sprintf("age: %d", *profile.Age))
	}
	if profile.Gender != nil {
		parts = append(parts, "gender: "+string(*profile.Gender))
	}
	if profile.Education != nil {
		parts = append(parts, "education: "+string(*profile.Education))
	}
	if profile.Location != nil {
		parts = append(parts, "location: "+profile.Location.City)
	}
	if len(profile.Goals) > 0 {
		parts = append(parts, "goals: "+strings.Join(profile.Goals, ", "))
	}
	if profile.Income != nil {
		parts = append(parts, "income: "+string(*profile.Income))
	}
	if profile.Occupation != nil {
		parts = append(parts, "occupation: "+*profile.Occupation)
	}
	if profile.FamilySize != nil {
		parts = append(parts, fmt.Sprintf("family size: %d", *profile.FamilySize))
	}

	if len(parts) == 0 {
		return "Basic profile"
	}
	return strings.Join(parts, ", ")
}

// parseModelAnswer defensively extracts the first top-level JSON object from
// the raw model text before structural parsing.
func parseModelAnswer(raw string) (*modelAnswer, error) {
	match := jsonObjectRegex.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object in output", domain.ErrMalformedResponse)
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(match), &answer); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if answer.Message == "" {
		return nil, fmt.Errorf("%w: missing message field", domain.ErrMalformedResponse)
	}

	return &answer, nil
}

// filterByIDs returns the corpus subset whose id was recommended, preserving
// corpus order rather than the model's.
func filterByIDs(corpus []domain.Program, ids []string) []domain.Program {
	if len(ids) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var programs []domain.Program
	for _, p := range corpus {
		if wanted[p.ID] {
			programs = append(programs, p)
		}
	}
	return programs
}

// deterministicFallback formats the first three corpus entries without any
// ranking. This tier has no failure mode.
func (s *RecommendationService) deterministicFallback(corpus []domain.Program) domain.RecommendationResult {
	count := fallbackProgramCount
	if count > len(corpus) {
		count = len(corpus)
	}
	programs := corpus[:count]

	var b strings.Builder
	b.WriteString("Here are specific government programs available for you in Pakistan:\n\n")
	for _, p := range programs {
		fmt.Fprintf(&b, "**%s** (%s)\n%s\n\n", p.Title, p.Category, p.Description)
		fmt.Fprintf(&b, "**Benefits:** %s\n", strings.Join(p.Benefits, "; "))
		fmt.Fprintf(&b, "**Requirements:** %s\n", strings.Join(p.Requirements, "; "))
		fmt.Fprintf(&b, "**Funding Amount:** %s\n", formatFunding(p.Funding))
		fmt.Fprintf(&b, "**Application Deadline:** %s\n\n---\n\n", orUnknown(p.Deadline))
	}
	b.WriteString("These programs are currently available and accepting applications. " +
		"For more personalized recommendations, you can share your age, education level, location, and specific goals.")

	return domain.RecommendationResult{
		Success:     true,
		Message:     b.String(),
		Programs:    programs,
		Suggestions: fallbackSuggestions,
		ErrorTag:    "AI service temporarily unavailable, showing available programs",
	}
}

// cannedOverview enumerates the fixed category list when the corpus is empty.
func (s *RecommendationService) cannedOverview() domain.RecommendationResult {
	var b strings.Builder
	b.WriteString("Here are the main types of government programs available in Pakistan:\n\n")
	for _, category := range domain.Categories {
		fmt.Fprintf(&b, "- %s\n", categoryLabel(category))
	}
	b.WriteString("\nTo get specific program recommendations, please tell me about your age, education, location, and what type of support you're looking for.")

	return domain.RecommendationResult{
		Success:     true,
		Message:     b.String(),
		Programs:    nil,
		Suggestions: overviewSuggestions,
		Confidence:  0,
		ErrorTag:    "no programs in database, providing general information",
	}
}

// categoryLabel renders a category enum as display text.
func categoryLabel(category domain.Category) string {
	label := strings.ReplaceAll(string(category), "_", " ")
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func formatFunding(funding *domain.FundingRange) string {
	if funding == nil {
		return "Varies by program"
	}
	if funding.Min == funding.Max {
		return fmt.Sprintf("%.0f %s", funding.Max, funding.Currency)
	}
	return fmt.Sprintf("%.0f - %.0f %s", funding.Min, funding.Max, funding.Currency)
}

func orUnknown(s string) string {
	if s == "" {
		return "Contact the program office"
	}
	return s
}
