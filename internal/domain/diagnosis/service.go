package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vitashifa/internal/ports/ai"

	"github.com/google/uuid"
)

const (
	recentLimit  = 10
	maxImageSize = 8 << 20 // 8 MiB

	disclaimer = "This AI analysis is for informational purposes only and should not replace professional medical diagnosis."
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = errors.New("vision model not configured")
)

var allowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type Service struct {
	repo  Repository
	model ai.VisionModel
	now   func() time.Time
}

func NewService(repo Repository, model ai.VisionModel) *Service {
	return &Service{
		repo:  repo,
		model: model,
		now:   time.Now,
	}
}

type AnalyzeInput struct {
	MIMEType string
	Image    []byte
	Question string
	Language string
}

// Analyze runs the vision model over a medical image and stores the
// structured result for the user.
func (s *Service) Analyze(ctx context.Context, userID string, in AnalyzeInput) (Analysis, error) {
	if strings.TrimSpace(userID) == "" {
		return Analysis{}, ErrInvalidInput
	}
	if len(in.Image) == 0 || len(in.Image) > maxImageSize {
		return Analysis{}, ErrInvalidInput
	}
	if _, ok := allowedMIMETypes[in.MIMEType]; !ok {
		return Analysis{}, ErrInvalidInput
	}
	if s.model == nil {
		return Analysis{}, ErrNotConfigured
	}

	raw, err := s.model.AnalyzeImage(ctx, ai.ImageRequest{
		Prompt:   buildPrompt(in.Question, in.Language),
		MIMEType: in.MIMEType,
		Data:     in.Image,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("analyze image: %w", err)
	}

	result, err := parseResult(raw)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  strings.TrimSpace(in.Question),
		Result:    result,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func (s *Service) ListRecent(ctx context.Context, userID string) ([]Analysis, error) {
	return s.repo.ListRecentByUser(ctx, userID, recentLimit)
}

func buildPrompt(question, language string) string {
	var b strings.Builder
	b.WriteString(`You are a medical imaging triage assistant. Analyze the provided image for visible abnormalities.

TASK:
1. Describe the notable findings in the image
2. Suggest next steps the patient should take
3. Rate the urgency as low, medium or high
4. State your confidence in the analysis as an integer 0-100

REQUIREMENTS:
- Never present the analysis as a diagnosis
- Recommend professional evaluation whenever findings are uncertain
- Keep each finding and recommendation to one sentence

CRITICAL JSON FORMAT REQUIREMENTS:
- Your response MUST be a valid JSON object, with no markdown and no text around it
- The JSON must have these exact fields:
  {
    "confidence": 85,
    "findings": ["finding 1", "finding 2"],
    "recommendations": ["recommendation 1"],
    "urgency": "low|medium|high"
  }`)

	if q := strings.TrimSpace(question); q != "" {
		b.WriteString("\n\nThe patient asks: ")
		b.WriteString(q)
	}
	if lang := strings.TrimSpace(language); lang != "" && lang != "en" {
		fmt.Fprintf(&b, "\n\nWrite the findings and recommendations in the language with ISO code %q.", lang)
	}
	return b.String()
}

func parseResult(raw string) (Result, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return Result{}, fmt.Errorf("no valid JSON in model response")
	}

	var out struct {
		Confidence      int      `json:"confidence"`
		Findings        []string `json:"findings"`
		Recommendations []string `json:"recommendations"`
		Urgency         string   `json:"urgency"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return Result{}, fmt.Errorf("parse model response: %w", err)
	}

	urgency := Urgency(strings.ToLower(strings.TrimSpace(out.Urgency)))
	switch urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
	default:
		urgency = UrgencyLow
	}

	confidence := out.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return Result{
		Confidence:      confidence,
		Findings:        out.Findings,
		Recommendations: out.Recommendations,
		Urgency:         urgency,
		Disclaimer:      disclaimer,
	}, nil
}

// extractJSON pulls the outermost JSON object out of a model reply that
// may be wrapped in code fences or prose.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
