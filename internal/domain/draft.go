package domain

import (
	"time"

	"github.com/google/uuid"
)

// DraftKind distinguishes full articles from social posts.
type DraftKind string

const (
	DraftKindArticle    DraftKind = "article"
	DraftKindSocialPost DraftKind = "social_post"
)

func (k DraftKind) IsValid() bool {
	return k == DraftKindArticle || k == DraftKindSocialPost
}

// Language is a supported content language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// Languages lists all supported content languages in publication order.
var Languages = []Language{LanguageEnglish, LanguageArabic}

// DraftStatus is the publication state of a content draft.
type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusPublished DraftStatus = "published"
	DraftStatusPosted    DraftStatus = "posted"
)

func (s DraftStatus) IsValid() bool {
	switch s {
	case DraftStatusDraft, DraftStatusPublished, DraftStatusPosted:
		return true
	}
	return false
}

// ContentDraft is a persisted language-specific body of text (article or
// social post) tied to a Topic. The publish attempt counter only ever
// increases; at most one published URL per (topic, kind, language) is
// authoritative at a time.
type ContentDraft struct {
	ID       uuid.UUID
	TopicID  uuid.UUID
	Kind     DraftKind
	Language Language
	Title    string
	Body     string
	Status   DraftStatus

	Slug              string
	URL               string
	ExternalPermalink *string

	PublishAttempts int
	LastAttemptAt   *time.Time
	LastError       *string

	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished returns true once the draft carries an authoritative URL.
func (d *ContentDraft) IsPublished() bool {
	return d.Status == DraftStatusPublished || d.Status == DraftStatusPosted
}
