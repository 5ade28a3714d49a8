package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMessagePrefixes(t *testing.T) {
	var buf bytes.Buffer
	u := NewWithWriter(&buf)
	u.SetNoColor(true)

	u.Info("listing")
	u.Successf("copied %d files", 2)
	u.Warning("careful")
	u.Errorf("failed: %s", "boom")

	want := "[INFO] listing\n[✓] copied 2 files\n[WARNING] careful\n[ERROR] failed: boom\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResultsSeparatedFromMessages(t *testing.T) {
	var messages, results bytes.Buffer
	u := NewWithWriters(&messages, &results)
	u.SetNoColor(true)

	u.Info("reading")
	u.Result("hello")
	u.Lines([]string{"a.txt", "sub"})

	if got := results.String(); got != "helloa.txt\nsub\n" {
		t.Errorf("results = %q", got)
	}
	if strings.Contains(messages.String(), "hello") {
		t.Errorf("messages should not contain results: %q", messages.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	u := NewWithWriter(&buf)
	u.SetNoColor(true)

	u.Header("turtleshell")

	if !strings.Contains(buf.String(), "  turtleshell\n") {
		t.Errorf("header missing title: %q", buf.String())
	}
	if !strings.Contains(buf.String(), strings.Repeat("=", 70)) {
		t.Errorf("header missing border: %q", buf.String())
	}
}

func TestNonInteractivePrompts(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)

	if !u.IsNonInteractive() {
		t.Fatal("IsNonInteractive() = false, want true")
	}

	yes, err := u.PromptYesNo("Overwrite?", false)
	if err != nil || yes {
		t.Errorf("PromptYesNo() = %v, %v; want false, nil", yes, err)
	}

	val, err := u.PromptInput("Path", ".")
	if err != nil || val != "." {
		t.Errorf("PromptInput() = %q, %v; want \".\", nil", val, err)
	}

	notEmpty := func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	}
	if _, err := u.PromptInputWithValidation("Path", "", notEmpty); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("PromptInputWithValidation() error = %v, want ErrNonInteractive", err)
	}

	if _, err := u.PromptSelect("Pick", []string{"a"}); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("PromptSelect() error = %v, want ErrNonInteractive", err)
	}
}
