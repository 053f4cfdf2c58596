package vision

// DescribeRequest - POST /api/vision request body
type DescribeRequest struct {
	Images []string `json:"images"`
	Lang   string   `json:"lang"`
}

// DescribeResponse - keyword description derived from the supplied images
type DescribeResponse struct {
	Text string `json:"text"`
}
