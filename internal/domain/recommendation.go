package domain

import "time"

// SearchResult is one supplementary opportunity found by a web search
// provider. Results are deduplicated by Link.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date,omitempty"`
}

// RecommendationResult is the sole output of the recommendation pipeline.
// Success is false only when the completion service is not configured; every
// other failure degrades into a successful lower-tier result.
type RecommendationResult struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Programs    []Program `json:"recommendedPrograms"`
	WebResults  []string  `json:"webResults,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Confidence  float64   `json:"confidence"`
	ErrorTag    string    `json:"error,omitempty"`
}

// ChatMessage is one role/content entry in a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a structured completion call to the model backend.
type CompletionRequest struct {
	Model        string
	Messages     []ChatMessage
	Temperature  float64
	MaxTokens    int
	JSONResponse bool
}

// ModelTier names a capability class requested from the completion service.
// The selector resolves it to a concrete model identifier.
type ModelTier string

const (
	TierChat     ModelTier = "chat"
	TierFast     ModelTier = "fast"
	TierCreative ModelTier = "creative"
	TierSmart    ModelTier = "smart"
)

// ChatRecord is an optional analytics record of one exchange.
type ChatRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	ProgramIDs  []string  `json:"recommended_programs"`
	WebResults  []string  `json:"web_results"`
	Confidence  float64   `json:"confidence"`
	CreatedAt   time.Time `json:"created_at"`
}
