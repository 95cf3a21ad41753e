package consultations

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"vitashifa/internal/ports/ai"

	"github.com/google/uuid"
)

const (
	recentLimit   = 5
	titleMaxRunes = 30

	chatTemperature = 0.8
	chatMaxTokens   = 2048
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("consultation not found")
	ErrNotConfigured = errors.New("chat model not configured")
)

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

type ChatResult struct {
	Reply          string
	ConsultationID string
}

// Chat sends one user message through the model, threading the prior
// transcript when consultationID is set, and persists the exchange.
func (s *Service) Chat(ctx context.Context, userID, consultationID, message, language string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if strings.TrimSpace(userID) == "" || message == "" {
		return ChatResult{}, ErrInvalidInput
	}
	if s.model == nil {
		return ChatResult{}, ErrNotConfigured
	}
	if language == "" {
		language = "en"
	}

	var c Consultation
	if consultationID != "" {
		existing, err := s.repo.GetByID(ctx, consultationID)
		if err != nil || existing.UserID != userID {
			return ChatResult{}, ErrNotFound
		}
		c = existing
	}

	messages := make([]ai.Message, 0, len(c.Messages)+2)
	messages = append(messages, ai.Message{
		Role:    ai.RoleSystem,
		Content: systemPrompt + "\n\n" + languageInstruction(language),
	})
	for _, m := range c.Messages {
		role := ai.RoleAssistant
		if m.Sender == SenderUser {
			role = ai.RoleUser
		}
		messages = append(messages, ai.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: message})

	reply, err := s.model.Chat(ctx, ai.ChatRequest{
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return ChatResult{}, err
	}

	now := s.now()
	c.Messages = append(c.Messages,
		Message{Sender: SenderUser, Content: message, SentAt: now},
		Message{Sender: SenderAssistant, Content: reply, SentAt: now},
	)
	c.Language = language
	c.UpdatedAt = now

	if c.ID == "" {
		c.ID = uuid.NewString()
		c.UserID = userID
		c.Title = truncateTitle(message)
		c.StartedAt = now
		if err := s.repo.Create(ctx, c); err != nil {
			return ChatResult{}, err
		}
	} else {
		if err := s.repo.Update(ctx, c); err != nil {
			return ChatResult{}, err
		}
	}

	return ChatResult{Reply: reply, ConsultationID: c.ID}, nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (Consultation, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil || c.UserID != userID {
		return Consultation{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) ListRecent(ctx context.Context, userID string) ([]Consultation, error) {
	return s.repo.ListRecentByUser(ctx, userID, recentLimit)
}

func truncateTitle(message string) string {
	if utf8.RuneCountInString(message) <= titleMaxRunes {
		return message
	}
	runes := []rune(message)
	return string(runes[:titleMaxRunes])
}
