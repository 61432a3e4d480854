package debug

import "testing"

func TestInitTogglesEnabled(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	Init(true)
	if !Enabled() {
		t.Error("Expected Enabled() to report true after Init(true)")
	}

	Init(false)
	if Enabled() {
		t.Error("Expected Enabled() to report false after Init(false)")
	}
}

func TestDisabledLoggerDiscards(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	Init(false)
	// Must not panic or write anywhere.
	Debug("debug message", "key", "value")
	Info("info message")
	Warn("warn message")
	Error("error message")
}
