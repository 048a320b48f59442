package polyedit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled at %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureDebug(t)

	Logger().Info("corner added", "index", 2)
	if !strings.Contains(buf.String(), "corner added") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "corner added")
	}

	SetLogger(nil)
	if Logger() != silentLogger {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestEditLogsAtDebug(t *testing.T) {
	buf := captureDebug(t)

	p := NewPolylineFrom(pts(0, 0, 5, 0, 10, 0))
	ed := NewEditor(p)
	_ = ed.BeginEdit(ModeReshape, Vt(5, 0))
	ed.CalcEdit(Vt(0, 0))
	ed.EndEdit(Vt(0, 0))

	out := buf.String()
	for _, want := range []string{"reshape target", "begin edit", "removed coincident vertex", "end edit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFailureLogsAtWarn(t *testing.T) {
	buf := captureDebug(t)

	p := NewPolylineFrom(pts(0, 0, 10, 0))
	b := &mockBackend{err: errors.New("device lost")}
	if err := p.Render(b, RenderOptions{}); err == nil {
		t.Fatal("Render() error = nil, want backend failure")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("log output missing warning:\n%s", buf.String())
	}
}

func TestLoggerConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("read during swap")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledDebug(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
