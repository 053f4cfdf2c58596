package hashtags

// SuggestRequest - POST /api/hashtags request body
type SuggestRequest struct {
	ProductDesc string `json:"productDesc"`
	Lang        string `json:"lang"`
}

// SuggestResponse - hashtag strings without the leading "#"
type SuggestResponse struct {
	Tags []string `json:"tags"`
}
