package domain

// Status is a named point in the editorial pipeline.
type Status string

const (
	StatusPending           Status = "pending"
	StatusPromptReady       Status = "prompt_ready"
	StatusPromptApproved    Status = "prompt_approved"
	StatusArticleGenerating Status = "article_generating"
	StatusArticleReady      Status = "article_ready"
	StatusArticleApproved   Status = "article_approved"
	StatusPublishing        Status = "publishing"
	StatusPublished         Status = "published"
	StatusLinkedInReady     Status = "linkedin_ready"
	StatusLinkedInApproved  Status = "linkedin_approved"
	StatusLinkedInPublished Status = "linkedin_published"
)

func (s Status) String() string { return string(s) }

// IsValid returns true if the status is a known pipeline state.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok || s == StatusLinkedInPublished
}

// IsTransient returns true for states a topic passes through while an
// external call is in flight. A crash mid-call can leave a topic here;
// recovery reverts it to the preceding approved state.
func (s Status) IsTransient() bool {
	return s == StatusArticleGenerating || s == StatusPublishing
}

// transitions is the pipeline adjacency list. Forward edges follow the
// editorial flow; the edges back out of transient states are the
// revert-on-failure paths and the only non-monotonic moves allowed.
var transitions = map[Status][]Status{
	StatusPending:           {StatusPromptReady},
	StatusPromptReady:       {StatusPromptApproved},
	StatusPromptApproved:    {StatusArticleGenerating},
	StatusArticleGenerating: {StatusArticleReady, StatusPromptApproved},
	StatusArticleReady:      {StatusArticleApproved, StatusPublishing},
	StatusArticleApproved:   {StatusPublishing},
	StatusPublishing:        {StatusPublished, StatusArticleApproved},
	StatusPublished:         {StatusLinkedInReady},
	StatusLinkedInReady:     {StatusLinkedInApproved, StatusLinkedInPublished},
	StatusLinkedInApproved:  {StatusLinkedInPublished},
}

// CanTransition reports whether the pipeline allows moving from current
// to requested. Self-loops and stage skips are rejected.
func CanTransition(current, requested Status) bool {
	for _, next := range transitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// RevertTarget returns the stable state a transient status falls back to
// when the in-flight operation fails, and false for non-transient states.
func RevertTarget(s Status) (Status, bool) {
	switch s {
	case StatusArticleGenerating:
		return StatusPromptApproved, true
	case StatusPublishing:
		return StatusArticleApproved, true
	}
	return "", false
}
