package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CustomFormatter{})

	l.WithField("document", "a.pdf").WithField("score", 3.5).Warn("分析完成")

	out := buf.String()
	for _, want := range []string{"[WARN]", "分析完成", "document=a.pdf", "score=3.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Index(out, "document=") > strings.Index(out, "score=") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestInitLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "esg.log")
	if err := InitLogger("debug", path); err != nil {
		t.Fatalf("InitLogger() error = %v", err)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}

	Log.Info("hello")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want hello", data)
	}
}

func TestInitLogger_BadLevel(t *testing.T) {
	if err := InitLogger("loud", ""); err != nil {
		t.Fatalf("InitLogger() error = %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}
