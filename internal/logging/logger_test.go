package logging

import (
	"fmt"
	"testing"
)

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) must return a usable logger")
	}

	custom := ForTesting(t)
	if OrNop(custom) != custom {
		t.Error("OrNop must pass a non-nil logger through")
	}

	// Must not panic
	nop := Nop()
	nop.Debug("msg", "k", "v")
	nop.Info("msg")
	nop.Warn("msg", "k", "v")
	nop.Error("msg")
}

type captureTB struct {
	lines []string
}

func (c *captureTB) Logf(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestForTesting(t *testing.T) {
	tb := &captureTB{}
	logger := ForTesting(tb)

	logger.Info("driver provisioned", "version", "26.0.0")
	logger.Warn("plain message")

	if len(tb.lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(tb.lines))
	}
	if tb.lines[0] != "INFO: driver provisioned [version 26.0.0]" {
		t.Errorf("line 0 = %q", tb.lines[0])
	}
	if tb.lines[1] != "WARN: plain message" {
		t.Errorf("line 1 = %q", tb.lines[1])
	}
}
