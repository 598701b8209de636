// Package gateway defines the request/response contract with the remote
// generative service and its Gemini-backed implementation.
package gateway

import (
	"context"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

// Tier selects between the fast and higher-quality backend model.
type Tier string

const (
	TierFast    Tier = "fast"
	TierQuality Tier = "quality"
)

// Citation kinds. Only web citations are surfaced to the user.
const (
	CitationWeb   = "web"
	CitationOther = "other"
)

// Request is the structured, transport-agnostic request to the service.
// Fields beyond Prompt are optional and ignored by capabilities that do not
// use them.
type Request struct {
	Prompt          string
	Image           *models.Attachment
	SystemFraming   string
	WebGrounding    bool
	ReasoningBudget int32
	Tier            Tier
	AspectRatio     string
}

// Part is one content part of an image-capability response: either a text
// segment or an inline image payload.
type Part struct {
	Text  string
	Image *models.Attachment
}

// ImageResult is the response of the image-generation capability.
type ImageResult struct {
	Parts []Part
}

// Citation is one grounding citation from the text-generation capability.
type Citation struct {
	URI   string
	Title string
	Kind  string
}

// TextResult is the response of the text-generation capability.
type TextResult struct {
	Text      string
	Citations []Citation
}

// Client is the narrow contract the orchestrator depends on.
type Client interface {
	GenerateImage(ctx context.Context, req Request) (*ImageResult, error)
	GenerateText(ctx context.Context, req Request) (*TextResult, error)
}
