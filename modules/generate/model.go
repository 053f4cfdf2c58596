package generate

// Platform identifiers the caption JSON is keyed by.
const (
	PlatformXiaohongshu = "xiaohongshu"
	PlatformInstagram   = "instagram"
	PlatformFacebook    = "facebook"
)

// GenerateRequest - POST /api/generate request body.
// Images carries 1-3 product photos, ModelImage an optional model reference;
// both are data URIs or bare base64 payloads. VoiceStyle is an opaque tone
// label chosen by the client (e.g. "storytelling", "minimalist").
type GenerateRequest struct {
	Images            []string `json:"images"`
	ModelImage        string   `json:"modelImage"`
	Platform          string   `json:"platform"`
	PlatformName      string   `json:"platformName"`
	ProductDesc       string   `json:"productDesc"`
	StylePreference   string   `json:"stylePreference"`
	PotentialHashtags []string `json:"potentialHashtags"`
	IsCustomizable    bool     `json:"isCustomizable"`
	Lang              string   `json:"lang"`
	VoiceStyle        string   `json:"voiceStyle"`
	FeedbackText      string   `json:"feedbackText"`
}

// ContentBlock - structured caption output for one platform
type ContentBlock struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

// GenerateResponse - assembled generation result. Images holds 0-2 enhanced
// photos as data URIs; Platform echoes the caller's requested platform.
type GenerateResponse struct {
	Images   []string                `json:"images"`
	Content  map[string]ContentBlock `json:"content"`
	Platform string                  `json:"platform"`
}
