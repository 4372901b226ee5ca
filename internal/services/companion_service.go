package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/blushy/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultCompanionTimeout = 20 * time.Second
	MaxChatMessageLength    = 4000
	defaultChatHistoryLimit = 50

	companionFallbackEmptyKey = "companion.fallback.empty"
	companionFallbackErrorKey = "companion.fallback.error"
)

var (
	ErrEmptyChatMessage  = errors.New("empty chat message")
	ErrCompletionFailed  = errors.New("completion failed")
	ErrEmptyCompletion   = errors.New("empty completion")
	ErrChatHistoryFailed = errors.New("load chat history failed")
)

// Completer is a text-completion backend. Implementations return
// ErrCompletionFailed for transport failures and ErrEmptyCompletion when the
// backend answers without text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ChatMessageRepository interface {
	Append(message *models.ChatMessage) error
	ListRecent(limit int) ([]models.ChatMessage, error)
}

type Translator interface {
	Translate(language string, key string) string
	Translatef(language string, key string, args ...any) string
	DayMonth(language string, day time.Time) string
}

type CompanionReply struct {
	UserMessage      models.ChatMessage `json:"userMessage"`
	AssistantMessage models.ChatMessage `json:"assistantMessage"`
}

// CompanionService wraps the chat backend. A failing or slow backend degrades
// to a canned reply and never surfaces as an error to the caller.
type CompanionService struct {
	completer  Completer
	messages   ChatMessageRepository
	translator Translator
	timeout    time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewCompanionService(completer Completer, messages ChatMessageRepository, translator Translator, timeout time.Duration, logger *zap.Logger) *CompanionService {
	if timeout <= 0 {
		timeout = DefaultCompanionTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanionService{
		completer:  completer,
		messages:   messages,
		translator: translator,
		timeout:    timeout,
		logger:     logger,
		now:        time.Now,
	}
}

func (service *CompanionService) Greeting(language string) string {
	return service.translator.Translate(language, "companion.greeting")
}

func (service *CompanionService) Reply(ctx context.Context, language string, message string, prediction CyclePrediction) (CompanionReply, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return CompanionReply{}, ErrEmptyChatMessage
	}
	text = truncateUTF8(text, MaxChatMessageLength)

	userMessage := service.newMessage(models.ChatRoleUser, text)
	service.store(&userMessage)

	answer, fallback := service.complete(ctx, language, buildCompanionPrompt(text, prediction))
	assistantMessage := service.newMessage(models.ChatRoleAssistant, answer)
	assistantMessage.Fallback = fallback
	service.store(&assistantMessage)

	return CompanionReply{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

func (service *CompanionService) History(limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > defaultChatHistoryLimit {
		limit = defaultChatHistoryLimit
	}
	messages, err := service.messages.ListRecent(limit)
	if err != nil {
		return nil, ErrChatHistoryFailed
	}
	return messages, nil
}

func (service *CompanionService) complete(ctx context.Context, language string, prompt string) (string, bool) {
	if service.completer == nil {
		return service.translator.Translate(language, companionFallbackErrorKey), true
	}

	completionCtx, cancel := context.WithTimeout(ctx, service.timeout)
	defer cancel()

	answer, err := service.completer.Complete(completionCtx, prompt)
	answer = strings.TrimSpace(answer)
	switch {
	case err == nil && answer != "":
		return answer, false
	case err == nil, errors.Is(err, ErrEmptyCompletion):
		service.logger.Warn("companion returned empty completion")
		return service.translator.Translate(language, companionFallbackEmptyKey), true
	default:
		service.logger.Warn("companion completion failed", zap.Error(err))
		return service.translator.Translate(language, companionFallbackErrorKey), true
	}
}

func (service *CompanionService) newMessage(role string, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: service.now().UTC(),
	}
}

func (service *CompanionService) store(message *models.ChatMessage) {
	if service.messages == nil {
		return
	}
	if err := service.messages.Append(message); err != nil {
		service.logger.Warn("store chat message failed", zap.String("role", message.Role), zap.Error(err))
	}
}

func buildCompanionPrompt(message string, prediction CyclePrediction) string {
	var builder strings.Builder
	builder.WriteString("You are a warm, caring companion in a cycle tracking app. ")
	builder.WriteString("Speak like a supportive friend who understands periods, emotions and wellbeing. ")
	builder.WriteString("Be encouraging, avoid sounding clinical, and suggest seeing a healthcare provider for medical concerns.\n\n")
	if prediction.CycleDayNumber > 0 {
		fmt.Fprintf(&builder, "Context: today is cycle day %d of %d (%s), %d days until the next expected period.\n\n",
			prediction.CycleDayNumber,
			prediction.AverageCycleLength,
			prediction.CurrentPhaseName,
			prediction.DaysUntilNextPeriod,
		)
	}
	fmt.Fprintf(&builder, "User message: %s", message)
	return builder.String()
}
