package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/sahulat/backend/internal/domain"
)

// MockCompletionClient scripts the completion backend for orchestrator tests.
type MockCompletionClient struct {
	configured bool
	response   string
	err        error
	calls      int
	lastReq    domain.CompletionRequest
}

func (m *MockCompletionClient) Configured() bool { return m.configured }

func (m *MockCompletionClient) ResolveModel(ctx context.Context, tier domain.ModelTier) string {
	return "meta-llama/llama-3.1-8b-instruct"
}

func (m *MockCompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// MockWebSearcher scripts the search service.
type MockWebSearcher struct {
	results []domain.SearchResult
	err     error
}

func (m *MockWebSearcher) SearchPrograms(ctx context.Context, profile *domain.UserProfile, goals []string) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func testCorpus() []domain.Program {
	return []domain.Program{
		{
			ID:           "prog-1",
			Title:        "Merit Scholarship",
			Description:  "Scholarship for top students",
			Category:     domain.CategoryScholarship,
			Benefits:     []string{"Tuition coverage"},
			Requirements: []string{"Transcript"},
			Funding:      &domain.FundingRange{Min: 50000, Max: 200000, Currency: "PKR"},
			Deadline:     "2024-12-01",
			Active:       true,
		},
		{
			ID:           "prog-2",
			Title:        "Startup Loan",
			Description:  "Loans for small businesses",
			Category:     domain.CategoryLoan,
			Benefits:     []string{"Low markup financing"},
			Requirements: []string{"Business plan"},
			Active:       true,
		},
		{
			ID:           "prog-3",
			Title:        "Skills Bootcamp",
			Description:  "Free vocational training",
			Category:     domain.CategorySkillTraining,
			Benefits:     []string{"Free training"},
			Requirements: []string{"CNIC"},
			Active:       true,
		},
		{
			ID:          "prog-4",
			Title:       "Housing Subsidy",
			Description: "Mortgage support",
			Category:    domain.CategoryHousing,
			Active:      true,
		},
	}
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("empty corpus returns canned category overview", func(t *testing.T) {
		completion := &MockCompletionClient{configured: true}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "what programs exist?", nil, nil)

		if !result.Success {
			t.Error("Success = false, want true")
		}
		if result.Confidence != 0 {
			t.Errorf("Confidence = %f, want 0", result.Confidence)
		}
		if len(result.Suggestions) != 4 {
			t.Errorf("len(Suggestions) = %d, want 4", len(result.Suggestions))
		}
		if result.ErrorTag == "" {
			t.Error("ErrorTag is empty, want explanatory tag")
		}
		if !strings.Contains(result.Message, "Scholarship") {
			t.Errorf("Message does not enumerate categories: %s", result.Message)
		}
		if completion.calls != 0 {
			t.Errorf("completion called %d times, want 0", completion.calls)
		}
	})

	t.Run("missing credential is the only hard failure", func(t *testing.T) {
		completion := &MockCompletionClient{configured: false}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "I need a loan", nil, testCorpus())

		if result.Success {
			t.Error("Success = true, want false")
		}
		if result.ErrorTag == "" {
			t.Error("ErrorTag is empty, want set")
		}
	})

	t.Run("model answer drives the result", func(t *testing.T) {
		completion := &MockCompletionClient{
			configured: true,
			response: `Here you go: {"message": "Apply to the Merit Scholarship.",
				"recommendedPrograms": ["prog-3", "prog-1"],
				"webResults": ["https://example.gov.pk"],
				"suggestions": ["Share your age"],
				"confidence": 0.9}`,
		}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "I need a scholarship", nil, testCorpus())

		if !result.Success {
			t.Fatal("Success = false, want true")
		}
		if result.Message != "Apply to the Merit Scholarship." {
			t.Errorf("Message = %s", result.Message)
		}
		// Corpus order wins over the model's ordering
		if len(result.Programs) != 2 || result.Programs[0].ID != "prog-1" || result.Programs[1].ID != "prog-3" {
			t.Errorf("Programs = %+v, want prog-1 then prog-3", result.Programs)
		}
		if result.Confidence != 0.9 {
			t.Errorf("Confidence = %f, want 0.9", result.Confidence)
		}
		if completion.lastReq.Temperature != 0.3 {
			t.Errorf("Temperature = %f, want 0.3", completion.lastReq.Temperature)
		}
		if completion.lastReq.MaxTokens != 1000 {
			t.Errorf("MaxTokens = %d, want 1000", completion.lastReq.MaxTokens)
		}
		if !completion.lastReq.JSONResponse {
			t.Error("JSONResponse = false, want true")
		}
	})

	t.Run("omitted confidence defaults to 0.8", func(t *testing.T) {
		completion := &MockCompletionClient{
			configured: true,
			response:   `{"message": "ok", "recommendedPrograms": ["prog-2"]}`,
		}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "loan please", nil, testCorpus())

		if result.Confidence != 0.8 {
			t.Errorf("Confidence = %f, want 0.8", result.Confidence)
		}
	})

	t.Run("unknown program ids are dropped", func(t *testing.T) {
		completion := &MockCompletionClient{
			configured: true,
			response:   `{"message": "ok", "recommendedPrograms": ["prog-1", "made-up"]}`,
		}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "help", nil, testCorpus())

		if len(result.Programs) != 1 || result.Programs[0].ID != "prog-1" {
			t.Errorf("Programs = %+v, want only prog-1", result.Programs)
		}
	})

	t.Run("completion failure degrades to first three programs", func(t *testing.T) {
		completion := &MockCompletionClient{configured: true, err: domain.ErrUpstreamFailure}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "I need help", nil, testCorpus())

		if !result.Success {
			t.Error("Success = false, want true")
		}
		if len(result.Programs) != 3 {
			t.Fatalf("len(Programs) = %d, want 3", len(result.Programs))
		}
		for i, id := range []string{"prog-1", "prog-2", "prog-3"} {
			if result.Programs[i].ID != id {
				t.Errorf("Programs[%d].ID = %s, want %s", i, result.Programs[i].ID, id)
			}
		}
		if result.ErrorTag == "" {
			t.Error("ErrorTag is empty, want set")
		}
		if len(result.Suggestions) != 4 {
			t.Errorf("len(Suggestions) = %d, want 4", len(result.Suggestions))
		}
		for _, id := range []string{"Merit Scholarship", "Startup Loan", "Skills Bootcamp"} {
			if !strings.Contains(result.Message, id) {
				t.Errorf("fallback message missing %q", id)
			}
		}
	})

	t.Run("unparseable model output degrades to fallback", func(t *testing.T) {
		completion := &MockCompletionClient{configured: true, response: "Sorry, I can only answer in prose."}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "I need help", nil, testCorpus())

		if !result.Success {
			t.Error("Success = false, want true")
		}
		if len(result.Programs) != 3 {
			t.Errorf("len(Programs) = %d, want 3", len(result.Programs))
		}
		if result.ErrorTag == "" {
			t.Error("ErrorTag is empty, want set")
		}
	})

	t.Run("search outage does not break recommendation", func(t *testing.T) {
		completion := &MockCompletionClient{
			configured: true,
			response:   `{"message": "ok", "recommendedPrograms": ["prog-1"]}`,
		}
		service := NewRecommendationService(completion, &MockWebSearcher{err: domain.ErrNoResults}, testLogger())

		result := service.Recommend(ctx, "scholarship", nil, testCorpus())

		if !result.Success {
			t.Error("Success = false, want true")
		}
		if len(result.Programs) != 1 {
			t.Errorf("len(Programs) = %d, want 1", len(result.Programs))
		}
	})

	t.Run("fallback with fewer than three programs", func(t *testing.T) {
		completion := &MockCompletionClient{configured: true, err: domain.ErrUpstreamFailure}
		service := NewRecommendationService(completion, &MockWebSearcher{}, testLogger())

		result := service.Recommend(ctx, "help", nil, testCorpus()[:1])

		if len(result.Programs) != 1 {
			t.Errorf("len(Programs) = %d, want 1", len(result.Programs))
		}
	})
}

func TestDeriveGoals(t *testing.T) {
	t.Run("profile goals win", func(t *testing.T) {
		profile := &domain.UserProfile{Goals: []string{"housing"}}
		got := deriveGoals("I want a scholarship", profile)
		if len(got) != 1 || got[0] != "housing" {
			t.Errorf("deriveGoals = %v, want [housing]", got)
		}
	})

	t.Run("keyword sniffing order", func(t *testing.T) {
		tests := []struct {
			message string
			want    string
		}{
			{"any scholarship for me?", "scholarship"},
			{"I need a business loan", "loan"},
			{"vocational training nearby", "training"},
			{"looking for a job", "employment"},
			{"housing support please", "housing"},
			{"health insurance options", "healthcare"},
			{"help me", "government programs"},
			{"scholarship or loan, whichever", "scholarship"},
		}
		for _, tt := range tests {
			got := deriveGoals(tt.message, nil)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("deriveGoals(%q) = %v, want [%s]", tt.message, got, tt.want)
			}
		}
	})
}

func TestParseModelAnswer(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		answer, err := parseModelAnswer(`{"message": "hi", "confidence": 0.7}`)
		if err != nil {
			t.Fatalf("parseModelAnswer() error = %v", err)
		}
		if answer.Message != "hi" {
			t.Errorf("Message = %s, want hi", answer.Message)
		}
		if answer.Confidence == nil || *answer.Confidence != 0.7 {
			t.Errorf("Confidence = %v, want 0.7", answer.Confidence)
		}
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		answer, err := parseModelAnswer("Sure! Here is the answer:\n{\"message\": \"wrapped\"}\nHope that helps.")
		if err != nil {
			t.Fatalf("parseModelAnswer() error = %v", err)
		}
		if answer.Message != "wrapped" {
			t.Errorf("Message = %s, want wrapped", answer.Message)
		}
	})

	t.Run("no json object", func(t *testing.T) {
		if _, err := parseModelAnswer("just prose"); err == nil {
			t.Fatal("error = nil, want malformed response")
		}
	})

	t.Run("broken json", func(t *testing.T) {
		if _, err := parseModelAnswer(`{"message": `); err == nil {
			t.Fatal("error = nil, want malformed response")
		}
	})

	t.Run("missing message field", func(t *testing.T) {
		if _, err := parseModelAnswer(`{"confidence": 0.5}`); err == nil {
			t.Fatal("error = nil, want malformed response")
		}
	})
}
