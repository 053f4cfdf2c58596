// Package imagedata normalizes images between the wire format the web client
// speaks (data URIs or bare base64 strings) and the inline-data parts the
// Gemini API expects, and extracts image/text payloads from model responses.
package imagedata

import (
	"encoding/base64"
	"log"
	"strings"

	"google.golang.org/genai"
)

const dataURIPrefix = "data:"

// Inline - an image payload (base64) and its MIME type, ready for a request
type Inline struct {
	MimeType string
	Data     string
}

// Parse - normalize a client-supplied image string into an Inline envelope.
// A "data:" URI is split on its first comma; the MIME type sits between the
// prefix and the first ";" and defaults to image/png. Anything else is
// treated as a bare base64 payload. Returns nil for an empty input and never
// fails: a data URI without a comma yields an empty payload.
func Parse(input string) *Inline {
	if input == "" {
		return nil
	}
	if !strings.HasPrefix(input, dataURIPrefix) {
		return &Inline{MimeType: "image/png", Data: input}
	}

	meta, payload, _ := strings.Cut(input, ",")
	mimeType := strings.TrimPrefix(meta, dataURIPrefix)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &Inline{MimeType: mimeType, Data: payload}
}

// Part - decode the envelope into a genai inline-data part.
// Returns nil when the payload is empty or not valid base64, so a bad image
// is dropped from the request instead of failing it.
func (in *Inline) Part() *genai.Part {
	if in == nil || in.Data == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(in.Data)
	if err != nil {
		log.Printf("⚠️ [ImageData] Failed to decode image payload: %v", err)
		return nil
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: in.MimeType, Data: raw}}
}

// Parts - convert a list of client images, dropping empty or undecodable ones
func Parts(images []string) []*genai.Part {
	parts := make([]*genai.Part, 0, len(images))
	for _, img := range images {
		if p := Parse(img).Part(); p != nil {
			parts = append(parts, p)
		}
	}
	return parts
}

// ExtractImage - the first inline image of the first candidate, re-encoded
// as a "data:image/png;base64," URI. Returns "" when the response carries no
// image or has an unexpected shape.
func ExtractImage(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	for _, part := range content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data)
		}
	}
	return ""
}

// Text - the concatenated text parts of the first candidate, "" when absent
func Text(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
