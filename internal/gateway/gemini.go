package gateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
)

// Gemini implements Client over the Gemini API.
type Gemini struct {
	client       *genai.Client
	fastModel    string
	qualityModel string
	imageModel   string
}

// NewGemini creates a Gemini-backed gateway client. The API key is supplied
// explicitly; nothing here reads the environment.
func NewGemini(ctx context.Context, apiKey, fastModel, qualityModel, imageModel string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini gateway: API key must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Gemini{
		client:       client,
		fastModel:    fastModel,
		qualityModel: qualityModel,
		imageModel:   imageModel,
	}, nil
}

func (g *Gemini) modelFor(tier Tier) string {
	if tier == TierQuality {
		return g.qualityModel
	}
	return g.fastModel
}

// GenerateImage implements the image-generation capability.
func (g *Gemini) GenerateImage(ctx context.Context, req Request) (*ImageResult, error) {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{}
	if req.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	res, err := g.client.Models.GenerateContent(ctx, g.imageModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate image: %w", err)
	}

	out := &ImageResult{}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return out, nil
	}
	for _, part := range res.Candidates[0].Content.Parts {
		switch {
		case part.InlineData != nil:
			out.Parts = append(out.Parts, Part{Image: &models.Attachment{
				MIME: part.InlineData.MIMEType,
				Data: part.InlineData.Data,
			}})
		case part.Text != "":
			out.Parts = append(out.Parts, Part{Text: part.Text})
		}
	}
	return out, nil
}

// GenerateText implements the text-generation capability, with optional web
// grounding and an optional extended-reasoning budget.
func (g *Gemini) GenerateText(ctx context.Context, req Request) (*TextResult, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIME))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemFraming != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemFraming, genai.RoleUser)
	}
	if req.WebGrounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.ReasoningBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(req.ReasoningBudget)}
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelFor(req.Tier), contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate text: %w", err)
	}

	return &TextResult{
		Text:      res.Text(),
		Citations: extractCitations(res),
	}, nil
}

// extractCitations maps grounding chunks to citations, preserving response
// order. Non-web chunks are kept with CitationOther so callers can filter.
func extractCitations(res *genai.GenerateContentResponse) []Citation {
	if len(res.Candidates) == 0 || res.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Citation
	for _, chunk := range res.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web != nil {
			out = append(out, Citation{URI: chunk.Web.URI, Title: chunk.Web.Title, Kind: CitationWeb})
			continue
		}
		if chunk.RetrievedContext != nil {
			out = append(out, Citation{URI: chunk.RetrievedContext.URI, Title: chunk.RetrievedContext.Title, Kind: CitationOther})
		}
	}
	return out
}
