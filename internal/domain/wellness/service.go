package wellness

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
	planTemperature = 0.7
	planMaxTokens   = 4096
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = errors.New("chat model not configured")
)

var languageInstructions = map[string]string{
	"en": "Respond in English.",
	"ar": "Respond in Arabic (العربية). Use proper Arabic grammar and wellness terminology.",
	"es": "Respond in Spanish (Español). Use proper Spanish grammar and wellness terminology.",
	"fr": "Respond in French (Français). Use proper French grammar and wellness terminology.",
	"ja": "Respond in Japanese (日本語). Use proper Japanese grammar and wellness terminology.",
	"id": "Respond in Indonesian (Bahasa Indonesia). Use proper Indonesian grammar and wellness terminology.",
	"hi": "Respond in Hindi (हिन्दी). Use proper Hindi grammar and wellness terminology.",
}

type Service struct {
	repo  Repository
	model ai.ChatModel
	now   func() time.Time
}

func NewService(repo Repository, model ai.ChatModel) *Service {
	return &Service{
		repo:  repo,
		model: model,
		now:   time.Now,
	}
}

// Generate builds a personalized plan from the questionnaire via the
// chat model. Nothing is persisted; saving is a separate call.
func (s *Service) Generate(ctx context.Context, q Questionnaire, language string) (Plan, error) {
	if s.model == nil {
		return Plan{}, ErrNotConfigured
	}
	if q.PersonalInfo.Age == "" && len(q.HealthGoals) == 0 {
		return Plan{}, ErrInvalidInput
	}

	raw, err := s.model.Chat(ctx, ai.ChatRequest{
		Messages: []ai.Message{
			{
				Role:    ai.RoleSystem,
				Content: "You are VitaShifa's wellness planning expert. Create personalized, actionable health plans in JSON format.",
			},
			{
				Role:    ai.RoleUser,
				Content: buildPrompt(q, language),
			},
		},
		JSONOnly:    true,
		Temperature: planTemperature,
		MaxTokens:   planMaxTokens,
	})
	if err != nil {
		return Plan{}, fmt.Errorf("generate plan: %w", err)
	}

	var plan Plan
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return Plan{}, fmt.Errorf("no valid JSON in model response")
	}
	if err := json.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return Plan{}, fmt.Errorf("parse model response: %w", err)
	}
	return plan, nil
}

func (s *Service) Save(ctx context.Context, userID string, q Questionnaire, plan Plan) (SavedPlan, error) {
	if strings.TrimSpace(userID) == "" {
		return SavedPlan{}, ErrInvalidInput
	}

	p := SavedPlan{
		ID:            uuid.NewString(),
		UserID:        userID,
		Questionnaire: q,
		Plan:          plan,
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return SavedPlan{}, err
	}
	return p, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]SavedPlan, error) {
	return s.repo.ListByUser(ctx, userID)
}

func buildPrompt(q Questionnaire, language string) string {
	instruction, ok := languageInstructions[language]
	if !ok {
		instruction = languageInstructions["en"]
	}

	return fmt.Sprintf(`Create a personalized wellness plan based on this profile. %s

Age: %s, Gender: %s, Height: %scm, Weight: %skg, Activity: %s
Goals: %s
Sleep: %shrs, Stress: %s, Smoking: %s, Alcohol: %s
Conditions: %s
Diet: %s, Exercise preferences: %s, Time: %s

Generate JSON with these keys (all content in the requested language):

1. "nutritionPlan", "fitnessPlan", "mindfulnessPlan": Each has:
   - title: catchy title
   - summary: 1-2 sentences
   - recommendations: array of objects with "tip" and "explanation" (3-4 items each)

2. "weeklySchedule":
   - title: "Your Sample Week at a Glance" (translated)
   - summary: brief sentence
   - schedule: 7 day objects (Monday-Sunday, translated) each with "fitness", "nutrition", "mindfulness"`,
		instruction,
		q.PersonalInfo.Age, q.PersonalInfo.Gender, q.PersonalInfo.Height,
		q.PersonalInfo.Weight, q.PersonalInfo.ActivityLevel,
		strings.Join(q.HealthGoals, ", "),
		q.Lifestyle.SleepHours, q.Lifestyle.StressLevel,
		q.Lifestyle.SmokingStatus, q.Lifestyle.AlcoholConsumption,
		orNone(strings.Join(q.MedicalHistory.Conditions, ", ")),
		q.Preferences.DietType,
		strings.Join(q.Preferences.ExercisePreferences, ", "),
		q.Preferences.TimeAvailability,
	)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

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
