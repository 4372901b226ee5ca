package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultReminderInterval = 6 * time.Hour
	telegramAPIBaseURL      = "https://api.telegram.org"
)

type ReminderSender interface {
	Send(ctx context.Context, message string) error
}

type PredictionSource interface {
	PredictionView(today time.Time) (PredictionView, error)
}

type ReminderSettings struct {
	PeriodReminderDays int
	FertilityReminder  bool
	Interval           time.Duration
	Language           string
}

// ReminderService pushes "period soon" and "fertile window" reminders derived
// from the same prediction the calendar shows. Each reminder kind goes out at
// most once per day.
type ReminderService struct {
	predictions        PredictionSource
	sender             ReminderSender
	translator         Translator
	periodReminderDays int
	fertilityReminder  bool
	interval           time.Duration
	language           string
	location           *time.Location
	logger             *zap.Logger
	now                func() time.Time

	mu                     sync.Mutex
	sentDailyNotifications map[string]time.Time
}

func NewReminderService(predictions PredictionSource, sender ReminderSender, translator Translator, settings ReminderSettings, location *time.Location, logger *zap.Logger) *ReminderService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := settings.Interval
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	periodReminderDays := settings.PeriodReminderDays
	if periodReminderDays < 0 {
		periodReminderDays = 0
	}

	return &ReminderService{
		predictions:            predictions,
		sender:                 sender,
		translator:             translator,
		periodReminderDays:     periodReminderDays,
		fertilityReminder:      settings.FertilityReminder,
		interval:               interval,
		language:               settings.Language,
		location:               location,
		logger:                 logger,
		now:                    time.Now,
		sentDailyNotifications: make(map[string]time.Time),
	}
}

func (service *ReminderService) Enabled() bool {
	return service.sender != nil
}

// Run checks once immediately and then on every interval until ctx is done.
func (service *ReminderService) Run(ctx context.Context) error {
	if !service.Enabled() {
		service.logger.Info("reminders disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(service.interval)
	defer ticker.Stop()

	service.runAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			service.runAndLog(ctx)
		}
	}
}

func (service *ReminderService) runAndLog(ctx context.Context) {
	sent, err := service.RunOnce(ctx)
	if err != nil {
		service.logger.Warn("reminder check failed", zap.Error(err))
		return
	}
	if sent > 0 {
		service.logger.Info("reminders sent", zap.Int("count", sent))
	}
}

// RunOnce evaluates today's reminders and returns how many were delivered.
func (service *ReminderService) RunOnce(ctx context.Context) (int, error) {
	if !service.Enabled() {
		return 0, nil
	}

	today := DateAtLocation(service.now(), service.location)
	view, err := service.predictions.PredictionView(today)
	if err != nil {
		return 0, fmt.Errorf("load prediction: %w", err)
	}
	if !view.HasCycleStart {
		return 0, nil
	}

	sent := 0
	prediction := view.Prediction
	if prediction.DaysUntilNextPeriod == service.periodReminderDays {
		key := "period:" + today.Format("2006-01-02")
		if service.shouldSend(key, today) {
			message := service.translator.Translatef(service.language, "reminder.period",
				prediction.DaysUntilNextPeriod,
				service.translator.DayMonth(service.language, view.Insights.NextPeriodStart),
			)
			if err := service.sender.Send(ctx, message); err != nil {
				service.forget(key)
				return sent, fmt.Errorf("send period reminder: %w", err)
			}
			sent++
		}
	}

	if service.fertilityReminder && FertileWindowStartsOn(prediction.CycleDayNumber) {
		key := "fertility:" + today.Format("2006-01-02")
		if service.shouldSend(key, today) {
			message := service.translator.Translate(service.language, "reminder.fertility")
			if err := service.sender.Send(ctx, message); err != nil {
				service.forget(key)
				return sent, fmt.Errorf("send fertility reminder: %w", err)
			}
			sent++
		}
	}

	return sent, nil
}

// FertileWindowStartsOn reports whether cycleDay is the first fertile day of
// the phase table.
func FertileWindowStartsOn(cycleDay int) bool {
	return Classify(cycleDay).Fertile && !Classify(cycleDay-1).Fertile
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sentDailyNotifications[key]; ok && sameDay(sentOn, today) {
		return false
	}

	service.sentDailyNotifications[key] = today
	if len(service.sentDailyNotifications) > 500 {
		service.sentDailyNotifications = map[string]time.Time{key: today}
	}
	return true
}

func (service *ReminderService) forget(key string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sentDailyNotifications, key)
}

type TelegramSender struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegramSender returns nil when either credential is missing, which turns
// reminders off.
func NewTelegramSender(botToken string, chatID string) *TelegramSender {
	if strings.TrimSpace(botToken) == "" || strings.TrimSpace(chatID) == "" {
		return nil
	}
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBaseURL,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (sender *TelegramSender) Send(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", sender.baseURL, sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
