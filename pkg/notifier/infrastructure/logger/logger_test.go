package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

var _ applogger.Logger = (*TextLogger)(nil)

func TestTextLoggerSplitsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewTextLogger(&out, &errOut)

	l.Info("calling travis")
	l.Error(errors.New("connection refused"), "failed to notify")

	if !strings.Contains(out.String(), "calling travis") {
		t.Fatalf("expected info line on stdout, got %q", out.String())
	}
	if strings.Contains(out.String(), "failed to notify") {
		t.Fatalf("error line leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "failed to notify") || !strings.Contains(errOut.String(), "connection refused") {
		t.Fatalf("expected error line with cause on stderr, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "calling travis") {
		t.Fatalf("info line leaked to stderr: %q", errOut.String())
	}
}

func TestTextLoggerWarningGoesToErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	NewTextLogger(&out, &errOut).Warning(errors.New("slow"), "retrying")

	if out.Len() != 0 {
		t.Fatalf("warning leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "retrying") {
		t.Fatalf("expected warning on stderr, got %q", errOut.String())
	}
}

func TestTextLoggerDebugLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewTextLogger(&out, &errOut)

	l.Debug("hidden")
	if out.Len() != 0 {
		t.Fatalf("debug line written without debug mode: %q", out.String())
	}

	l.SetDebug(true)
	l.Debug("visible")
	if !strings.Contains(out.String(), "visible") {
		t.Fatalf("expected debug line in debug mode, got %q", out.String())
	}
}

func TestTextLoggerWithFields(t *testing.T) {
	var out, errOut bytes.Buffer
	NewTextLogger(&out, &errOut).
		WithFields(applogger.Fields{"target": "rackn/rackn-saas"}).
		WithField("branch", "tip").
		Info("trigger build")

	for _, expected := range []string{"target=rackn/rackn-saas", "branch=tip", "trigger build"} {
		if !strings.Contains(out.String(), expected) {
			t.Fatalf("expected %q in %q", expected, out.String())
		}
	}
}
