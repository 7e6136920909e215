package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(0, &buf)
	if quiet.GetLevel() != logrus.WarnLevel {
		t.Errorf("verbosity 0 level = %v, want Warn", quiet.GetLevel())
	}

	verbose := New(1, &buf)
	if verbose.GetLevel() != logrus.DebugLevel {
		t.Errorf("verbosity 1 level = %v, want Debug", verbose.GetLevel())
	}

	trace := New(2, &buf)
	if trace.GetLevel() != logrus.TraceLevel {
		t.Errorf("verbosity 2 level = %v, want Trace", trace.GetLevel())
	}
}

func TestNewWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	log := New(1, &buf)
	log.Debug("tracing pass entry")

	if buf.Len() == 0 {
		t.Fatal("expected log output to be written to out")
	}
}
