package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_Levels(t *testing.T) {
	defer Configure("", "")

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"error", logrus.ErrorLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.WarnLevel},
		{"bogus", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Configure(tt.level, "")
			if Logger.GetLevel() != tt.want {
				t.Errorf("level: got %v, want %v", Logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestConfigure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	defer Configure("", "")

	Configure("info", "json")
	WithField("path", "icon.png").Info("saved")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["path"] != "icon.png" {
		t.Errorf("path field: got %v", entry["path"])
	}
	if entry["msg"] != "saved" {
		t.Errorf("msg field: got %v", entry["msg"])
	}
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	Configure("", "")
	WithFields(logrus.Fields{"step": "erode"}).Info("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message should be suppressed at the default warn level")
	}
}
