package diagnosis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vitashifa/internal/ports/ai"
)

type testRepo struct {
	byID map[string]Analysis
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Analysis{}}
}

func (r *testRepo) Create(ctx context.Context, a Analysis) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]Analysis, error) {
	out := make([]Analysis, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeVision records the last request and returns a canned reply.
type fakeVision struct {
	lastReq ai.ImageRequest
	reply   string
	err     error
}

func (f *fakeVision) AnalyzeImage(ctx context.Context, req ai.ImageRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const fencedReply = "```json\n{\"confidence\": 85, \"findings\": [\"mild redness\"], \"recommendations\": [\"see a dermatologist\"], \"urgency\": \"Low\"}\n```"

func validImage() AnalyzeInput {
	return AnalyzeInput{
		MIMEType: "image/jpeg",
		Image:    []byte{0xff, 0xd8, 0xff},
		Question: "What is this rash?",
		Language: "en",
	}
}

func TestService_Analyze_ParsesFencedJSON(t *testing.T) {
	repo := newTestRepo()
	model := &fakeVision{reply: fencedReply}
	svc := NewService(repo, model)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Analyze(context.Background(), "user-1", validImage())
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if a.Result.Confidence != 85 {
		t.Fatalf("expected confidence 85, got %d", a.Result.Confidence)
	}
	if a.Result.Urgency != UrgencyLow {
		t.Fatalf("expected low urgency (case-normalized), got %s", a.Result.Urgency)
	}
	if a.Result.Disclaimer == "" {
		t.Fatalf("expected disclaimer to be set")
	}
	if a.CreatedAt != now {
		t.Fatalf("expected fixed clock timestamp")
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatalf("expected analysis persisted")
	}

	// The question makes it into the prompt.
	if !strings.Contains(model.lastReq.Prompt, "What is this rash?") {
		t.Fatalf("expected patient question in prompt")
	}
}

func TestService_Analyze_ClampsAndNormalizes(t *testing.T) {
	model := &fakeVision{reply: `{"confidence": 140, "findings": [], "recommendations": [], "urgency": "critical"}`}
	svc := NewService(newTestRepo(), model)

	a, err := svc.Analyze(context.Background(), "user-1", validImage())
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if a.Result.Confidence != 100 {
		t.Fatalf("expected confidence clamped to 100, got %d", a.Result.Confidence)
	}
	if a.Result.Urgency != UrgencyLow {
		t.Fatalf("expected unknown urgency to default low, got %s", a.Result.Urgency)
	}
}

func TestService_Analyze_RejectsBadInput(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeVision{reply: fencedReply})

	tooBig := validImage()
	tooBig.Image = make([]byte, maxImageSize+1)

	badMIME := validImage()
	badMIME.MIMEType = "image/gif"

	empty := validImage()
	empty.Image = nil

	for name, in := range map[string]AnalyzeInput{
		"too big":  tooBig,
		"bad mime": badMIME,
		"empty":    empty,
	} {
		if _, err := svc.Analyze(context.Background(), "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Analyze_NoModelConfigured(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	if _, err := svc.Analyze(context.Background(), "user-1", validImage()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestService_Analyze_NonJSONReply(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeVision{reply: "I cannot analyze this image."})

	if _, err := svc.Analyze(context.Background(), "user-1", validImage()); err == nil {
		t.Fatalf("expected error for non-JSON reply")
	}
}
