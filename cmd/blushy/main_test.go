package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/terraincognita07/blushy/internal/config"
	"go.uber.org/zap"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPhaseCommand(t *testing.T) {
	output, err := executeCommand(t, "phase", "3")
	if err != nil {
		t.Fatalf("phase command failed: %v", err)
	}
	if output != "Day 3: Period [period]\n" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestPredictCommandUsesFlags(t *testing.T) {
	output, err := executeCommand(t, "predict", "--start", "2024-12-25", "--today", "2025-03-10", "--length", "28")
	if err != nil {
		t.Fatalf("predict command failed: %v", err)
	}
	if !strings.Contains(output, "Cycle day 20 of 28") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestCalendarCommandPrintsMonth(t *testing.T) {
	output, err := executeCommand(t, "calendar", "--month", "2025-03")
	if err != nil {
		t.Fatalf("calendar command failed: %v", err)
	}
	if !strings.HasPrefix(output, "March 2025\n") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestPhaseCommandRequiresArgument(t *testing.T) {
	if _, err := executeCommand(t, "phase"); err == nil {
		t.Fatal("expected error without cycle day")
	}
}

func TestNewReminderSenderWithoutCredentialsIsNil(t *testing.T) {
	if sender := newReminderSender(config.RemindersConfig{}); sender != nil {
		t.Fatalf("expected nil sender interface, got %#v", sender)
	}
	if sender := newReminderSender(config.RemindersConfig{TelegramBotToken: "token", TelegramChatID: "1"}); sender == nil {
		t.Fatal("expected telegram sender when credentials are set")
	}
}

func TestNewCompleterDisabledWithoutKey(t *testing.T) {
	completer, err := newCompleter(context.Background(), config.CompanionConfig{Enabled: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("newCompleter() unexpected error: %v", err)
	}
	if completer != nil {
		t.Fatalf("expected nil completer, got %#v", completer)
	}
}
