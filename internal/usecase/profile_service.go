package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sahulat/backend/internal/domain"
)

// ProfileService merges newly extracted attributes into long-lived profiles.
type ProfileService struct{}

// NewProfileService creates a profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Merge overlays parsed attributes onto an existing profile. The overlay is
// sparse and last-write-wins: only fields the extractor actually produced a
// value for are written, so a message that fails to re-mention a known
// attribute never erases it. Merging the same attributes twice is a no-op
// beyond the UpdatedAt bump. A nil existing profile creates a fresh one.
func (s *ProfileService) Merge(existing *domain.UserProfile, parsed domain.ParsedAttributes) *domain.UserProfile {
	now := time.Now().UTC()

	profile := existing
	if profile == nil {
		profile = &domain.UserProfile{
			ID:        uuid.NewString(),
			CreatedAt: now,
		}
	}

	if parsed.Age != nil {
		profile.Age = parsed.Age
	}
	if parsed.Gender != nil {
		profile.Gender = parsed.Gender
	}
	if parsed.Education != nil {
		profile.Education = parsed.Education
	}
	if parsed.Location != nil {
		profile.Location = parsed.Location
	}
	if len(parsed.Goals) > 0 {
		profile.Goals = parsed.Goals
	}
	if parsed.Income != nil {
		profile.Income = parsed.Income
	}
	if parsed.Occupation != nil {
		profile.Occupation = parsed.Occupation
	}
	if parsed.FamilySize != nil {
		profile.FamilySize = parsed.FamilySize
	}
	if len(parsed.Disabilities) > 0 {
		profile.Disabilities = parsed.Disabilities
	}
	if len(parsed.Languages) > 0 {
		profile.Languages = parsed.Languages
	}

	profile.UpdatedAt = now
	return profile
}
