package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TopicSource tells where a content idea came from.
type TopicSource string

const (
	TopicSourceManual      TopicSource = "manual"
	TopicSourceRSS         TopicSource = "rss"
	TopicSourceAISuggested TopicSource = "ai_suggested"
)

func (s TopicSource) IsValid() bool {
	switch s {
	case TopicSourceManual, TopicSourceRSS, TopicSourceAISuggested:
		return true
	}
	return false
}

// Topic is a content idea moving through the editorial pipeline.
// Each stage's output lives in its own typed artifact struct; artifacts
// accumulate as the topic advances and are never cleared by later stages.
type Topic struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Source      TopicSource
	Keywords    []string
	Priority    int
	Status      Status

	Prompt   *PromptArtifacts
	Article  *ArticleArtifacts
	LinkedIn *LinkedInArtifacts

	LockedBy *uuid.UUID
	LockedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLocked returns true if another editor holds the topic's edit lock.
func (t *Topic) IsLocked(actor uuid.UUID) bool {
	return t.LockedBy != nil && *t.LockedBy != actor
}

// PromptArtifacts is the output of the prompt-generation stage.
type PromptArtifacts struct {
	Prompt      string     `json:"prompt"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

// ArticleArtifacts is the output of article generation and publication.
type ArticleArtifacts struct {
	DraftIDEn   *uuid.UUID `json:"draftIdEn,omitempty"`
	DraftIDAr   *uuid.UUID `json:"draftIdAr,omitempty"`
	Slug        string     `json:"slug,omitempty"`
	URLEn       string     `json:"urlEn,omitempty"`
	URLAr       string     `json:"urlAr,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// LinkedInArtifacts is the output of LinkedIn post generation and delivery.
type LinkedInArtifacts struct {
	PostBodyEn  string     `json:"postBodyEn,omitempty"`
	PostBodyAr  string     `json:"postBodyAr,omitempty"`
	PermalinkEn string     `json:"permalinkEn,omitempty"`
	PermalinkAr string     `json:"permalinkAr,omitempty"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
}

// ArtifactPatch carries the artifacts a transition produces. Nil fields
// leave the topic's existing artifacts untouched.
type ArtifactPatch struct {
	Prompt   *PromptArtifacts
	Article  *ArticleArtifacts
	LinkedIn *LinkedInArtifacts
}

// ApplyTransition validates the requested status change against the
// pipeline transition table and, if allowed, merges the patch into the
// topic's artifacts and sets the new status. On a rejected transition the
// topic is left unchanged and ErrInvalidTransition is returned.
//
// Merging is additive: a patch replaces or fills the artifact slot for
// its own stage and never deletes artifacts written by earlier stages.
func (t *Topic) ApplyTransition(requested Status, patch ArtifactPatch) error {
	if !CanTransition(t.Status, requested) {
		return fmt.Errorf("topic %s: %s -> %s: %w", t.ID, t.Status, requested, ErrInvalidTransition)
	}

	if patch.Prompt != nil {
		t.Prompt = patch.Prompt
	}
	if patch.Article != nil {
		t.Article = mergeArticle(t.Article, patch.Article)
	}
	if patch.LinkedIn != nil {
		t.LinkedIn = mergeLinkedIn(t.LinkedIn, patch.LinkedIn)
	}

	t.Status = requested
	return nil
}

// mergeArticle overlays non-zero patch fields onto the existing artifacts.
func mergeArticle(cur, patch *ArticleArtifacts) *ArticleArtifacts {
	if cur == nil {
		out := *patch
		return &out
	}
	out := *cur
	if patch.DraftIDEn != nil {
		out.DraftIDEn = patch.DraftIDEn
	}
	if patch.DraftIDAr != nil {
		out.DraftIDAr = patch.DraftIDAr
	}
	if patch.Slug != "" {
		out.Slug = patch.Slug
	}
	if patch.URLEn != "" {
		out.URLEn = patch.URLEn
	}
	if patch.URLAr != "" {
		out.URLAr = patch.URLAr
	}
	if patch.PublishedAt != nil {
		out.PublishedAt = patch.PublishedAt
	}
	return &out
}

// mergeLinkedIn overlays non-zero patch fields onto the existing artifacts.
// LastError is always taken from the patch so a successful retry clears it.
func mergeLinkedIn(cur, patch *LinkedInArtifacts) *LinkedInArtifacts {
	if cur == nil {
		out := *patch
		return &out
	}
	out := *cur
	if patch.PostBodyEn != "" {
		out.PostBodyEn = patch.PostBodyEn
	}
	if patch.PostBodyAr != "" {
		out.PostBodyAr = patch.PostBodyAr
	}
	if patch.PermalinkEn != "" {
		out.PermalinkEn = patch.PermalinkEn
	}
	if patch.PermalinkAr != "" {
		out.PermalinkAr = patch.PermalinkAr
	}
	if patch.PostedAt != nil {
		out.PostedAt = patch.PostedAt
	}
	out.LastError = patch.LastError
	return &out
}
