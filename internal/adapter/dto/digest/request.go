package digest

// DigestRequest runs the post-processing engine on text the caller already
// has. At least one of transcript or provider_summary must be present.
type DigestRequest struct {
	Transcript          string   `json:"transcript" validate:"required_without=ProviderSummary"`
	ProviderSummary     string   `json:"provider_summary" validate:"required_without=Transcript"`
	TargetSentenceCount int      `json:"target_sentence_count" validate:"gte=0,lte=10"`
	Participants        []string `json:"participants" validate:"omitempty,max=50,dive,notblank"`
}

// ListDigestsRequest is the query of GET /v1/digests
type ListDigestsRequest struct {
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"page_size" validate:"omitempty,gte=1,lte=100"`
	Search   string `query:"search" validate:"omitempty,max=100"`
}
