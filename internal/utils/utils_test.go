package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	for in, want := range map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"WARN":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	} {
		if err := SetLogLevel(in); err != nil {
			t.Fatalf("SetLogLevel(%q): %v", in, err)
		}
		if Log.GetLevel() != want {
			t.Fatalf("SetLogLevel(%q) set %v", in, Log.GetLevel())
		}
	}
	if err := SetLogLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
