package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sahulat/backend/internal/domain"
	"github.com/sahulat/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extractor     *usecase.ProfileExtractor
	profiles      *usecase.ProfileService
	recommender   *usecase.RecommendationService
	programs      domain.ProgramStore
	chatLog       domain.ChatLogStore
	defaultLocale domain.Locale
	log           *logrus.Entry
}

// NewHandler creates a new HTTP handler
func NewHandler(
	extractor *usecase.ProfileExtractor,
	profiles *usecase.ProfileService,
	recommender *usecase.RecommendationService,
	programs domain.ProgramStore,
	chatLog domain.ChatLogStore,
	defaultLocale domain.Locale,
	log *logrus.Entry,
) *Handler {
	return &Handler{
		extractor:     extractor,
		profiles:      profiles,
		recommender:   recommender,
		programs:      programs,
		chatLog:       chatLog,
		defaultLocale: defaultLocale,
		log:           log,
	}
}

// chatRequest is the POST /api/v1/chat body. UserProfile carries the
// client-held profile from previous turns; the server is stateless.
type chatRequest struct {
	Message     string              `json:"message" binding:"required"`
	UserProfile *domain.UserProfile `json:"userProfile"`
	Locale      string              `json:"locale"`
}

// chatResponse extends the recommendation result with the merged profile the
// client should carry into the next turn.
type chatResponse struct {
	domain.RecommendationResult
	UserProfile *domain.UserProfile     `json:"userProfile"`
	Parsed      domain.ParsedAttributes `json:"parsedAttributes"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sahulat-backend",
		"version": "1.0.0",
	})
}

// Chat runs one conversation turn: extract attributes from the message, merge
// them into the profile, then recommend programs.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "message is required",
		})
		return
	}

	locale := h.defaultLocale
	switch req.Locale {
	case "":
	case string(domain.LocaleEnglish):
		locale = domain.LocaleEnglish
	case string(domain.LocaleUrdu):
		locale = domain.LocaleUrdu
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "locale must be 'en' or 'ur'",
		})
		return
	}

	parsed := h.extractor.Extract(req.Message, locale)
	profile := h.profiles.Merge(req.UserProfile, parsed)

	corpus, err := h.programs.ListPrograms(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("program store unavailable")
		corpus = nil
	}

	result := h.recommender.Recommend(c.Request.Context(), req.Message, profile, corpus)

	if !usecase.Usable(parsed) && len(result.Suggestions) == 0 {
		result.Suggestions = usecase.MissingFieldSuggestions(parsed, locale)
	}

	h.recordChat(c, req.Message, profile, result)

	c.JSON(http.StatusOK, chatResponse{
		RecommendationResult: result,
		UserProfile:          profile,
		Parsed:               parsed,
	})
}

// recordChat appends the exchange to the chat log. Failures are logged and
// swallowed; analytics never block a response.
func (h *Handler) recordChat(c *gin.Context, message string, profile *domain.UserProfile, result domain.RecommendationResult) {
	if h.chatLog == nil {
		return
	}

	ids := make([]string, 0, len(result.Programs))
	for _, p := range result.Programs {
		ids = append(ids, p.ID)
	}

	record := domain.ChatRecord{
		ID:         uuid.NewString(),
		UserID:     profile.ID,
		Message:    message,
		Response:   result.Message,
		ProgramIDs: ids,
		WebResults: result.WebResults,
		Confidence: result.Confidence,
		CreatedAt:  time.Now(),
	}
	if err := h.chatLog.Append(c.Request.Context(), record); err != nil {
		h.log.WithError(err).Warn("failed to record chat exchange")
	}
}

// ListPrograms returns the active program corpus, optionally filtered with
// ?category=.
func (h *Handler) ListPrograms(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		programs []domain.Program
		err      error
	)
	if category := c.Query("category"); category != "" {
		programs, err = h.programs.ListByCategory(ctx, domain.Category(category))
	} else {
		programs, err = h.programs.ListPrograms(ctx)
	}

	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "unknown category",
			})
			return
		}
		h.log.WithError(err).Error("program store unavailable")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"programs": programs,
		"count":    len(programs),
	})
}
