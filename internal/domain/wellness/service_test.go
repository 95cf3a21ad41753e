package wellness

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vitashifa/internal/ports/ai"
)

type testRepo struct {
	byID map[string]SavedPlan
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]SavedPlan{}}
}

func (r *testRepo) Create(ctx context.Context, p SavedPlan) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]SavedPlan, error) {
	out := make([]SavedPlan, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeChat struct {
	lastReq ai.ChatRequest
	reply   string
	err     error
}

func (f *fakeChat) Chat(ctx context.Context, req ai.ChatRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const planReply = `{
	"nutritionPlan": {"title": "Eat Well", "summary": "Balanced meals.", "recommendations": [{"tip": "More greens", "explanation": "Fiber helps."}]},
	"fitnessPlan": {"title": "Move More", "summary": "Daily walks.", "recommendations": []},
	"mindfulnessPlan": {"title": "Calm Mind", "summary": "Short sessions.", "recommendations": []},
	"weeklySchedule": {"title": "Your Sample Week at a Glance", "summary": "A starting point.", "schedule": [{"day": "Monday", "fitness": "Walk", "nutrition": "Salad", "mindfulness": "Breathing"}]}
}`

func sampleQuestionnaire() Questionnaire {
	return Questionnaire{
		PersonalInfo: PersonalInfo{Age: "34", Gender: "female", Height: "170", Weight: "65", ActivityLevel: "moderate"},
		HealthGoals:  []string{"weight management", "better sleep"},
		Lifestyle:    Lifestyle{SleepHours: "6", StressLevel: "high", SmokingStatus: "never", AlcoholConsumption: "rarely"},
		Preferences:  Preferences{DietType: "vegetarian", ExercisePreferences: []string{"yoga"}, TimeAvailability: "30min"},
	}
}

func TestService_Generate_ParsesPlan(t *testing.T) {
	model := &fakeChat{reply: planReply}
	svc := NewService(newTestRepo(), model)

	plan, err := svc.Generate(context.Background(), sampleQuestionnaire(), "en")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if plan.NutritionPlan.Title != "Eat Well" {
		t.Fatalf("expected parsed nutrition plan, got %#v", plan.NutritionPlan)
	}
	if len(plan.WeeklySchedule.Schedule) != 1 {
		t.Fatalf("expected schedule days, got %#v", plan.WeeklySchedule)
	}

	if !model.lastReq.JSONOnly {
		t.Fatalf("expected JSON-only request")
	}
	prompt := model.lastReq.Messages[1].Content
	if !strings.Contains(prompt, "weight management") {
		t.Fatalf("expected goals in prompt")
	}
	if !strings.Contains(prompt, "Conditions: none") {
		t.Fatalf("expected empty conditions rendered as none")
	}
}

func TestService_Generate_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	model := &fakeChat{reply: planReply}
	svc := NewService(newTestRepo(), model)

	if _, err := svc.Generate(context.Background(), sampleQuestionnaire(), "xx"); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(model.lastReq.Messages[1].Content, languageInstructions["en"]) {
		t.Fatalf("expected english instruction fallback")
	}
}

func TestService_Generate_EmptyQuestionnaireRejected(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeChat{reply: planReply})

	if _, err := svc.Generate(context.Background(), Questionnaire{}, "en"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Generate_NoModelConfigured(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.Generate(context.Background(), sampleQuestionnaire(), "en"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestService_SaveAndList(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	saved, err := svc.Save(context.Background(), "user-1", sampleQuestionnaire(), Plan{})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt != now {
		t.Fatalf("unexpected saved plan: %#v", saved)
	}

	got, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(got))
	}

	if _, err := svc.Save(context.Background(), " ", Questionnaire{}, Plan{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
}
