package domain

import "context"

// ProgramStore supplies the read-only program corpus.
type ProgramStore interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	ListByCategory(ctx context.Context, category Category) ([]Program, error)
}

// ChatLogStore records exchanges for analytics. Best-effort: callers log
// append failures but never surface them.
type ChatLogStore interface {
	Append(ctx context.Context, record ChatRecord) error
}

// CompletionClient is the interface to the model completion service.
type CompletionClient interface {
	// Configured reports whether a credential is present.
	Configured() bool

	// ResolveModel maps a capability tier to a concrete model identifier.
	// It never fails: catalog errors fall back to a static default.
	ResolveModel(ctx context.Context, tier ModelTier) string

	// Complete issues one completion request and returns the raw model text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// WebSearcher finds supplementary opportunities online. Implementations are
// best-effort and must not propagate transport errors as hard failures.
type WebSearcher interface {
	SearchPrograms(ctx context.Context, profile *UserProfile, goals []string) ([]SearchResult, error)
}
