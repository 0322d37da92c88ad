package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vertextoedge/docfetch/internal/domain"
)

func newTestApp(t *testing.T, srvURL string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		Entries: []domain.DownloadEntry{
			{Filename: "one.html", URL: srvURL + "/one"},
			{Filename: "two.html", URL: srvURL + "/two"},
		},
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	}, &out
}

func writeTestConfig(t *testing.T, outDir, historyPath string) string {
	t.Helper()
	content := "output:\n  dir: " + outDir + "\nlogging:\n  level: error\n"
	if historyPath != "" {
		content += "history:\n  path: " + historyPath + "\n"
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(app *App, args ...string) error {
	cmd := app.RootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRun_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<title>" + r.URL.Path + "</title>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "docs")
	historyPath := filepath.Join(dir, "history.db")
	cfgPath := writeTestConfig(t, outDir, historyPath)

	app, out := newTestApp(t, srv.URL)
	if err := execute(app, "--config", cfgPath); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	wantLines := []string{
		"Downloading: " + srv.URL + "/one",
		"Saved: " + filepath.Join(outDir, "one.html"),
		"Downloading: " + srv.URL + "/two",
		"Saved: " + filepath.Join(outDir, "two.html"),
	}
	gotLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if strings.Join(gotLines, "\n") != strings.Join(wantLines, "\n") {
		t.Errorf("stdout =\n%s\nwant\n%s", out.String(), strings.Join(wantLines, "\n"))
	}

	got, err := os.ReadFile(filepath.Join(outDir, "two.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<title>/two</title>" {
		t.Errorf("two.html = %q", got)
	}

	// History is readable through the history command
	out.Reset()
	if err := execute(app, "history", "--config", cfgPath); err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out.String(), "saved=2  ok") {
		t.Errorf("history output missing run line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "/one") {
		t.Errorf("history output missing page title:\n%s", out.String())
	}
}

func TestRun_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/one" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	outDir := filepath.Join(t.TempDir(), "docs")
	app, out := newTestApp(t, srv.URL)

	err := execute(app, "run", "--config", writeTestConfig(t, outDir, ""))
	if !domain.IsNetwork(err) {
		t.Fatalf("execute() error = %v, want network error", err)
	}
	if strings.Contains(out.String(), "Saved:") {
		t.Errorf("nothing should be saved:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, "two.html")); !os.IsNotExist(err) {
		t.Errorf("two.html should not exist, stat err = %v", err)
	}
}

func TestList(t *testing.T) {
	app, out := newTestApp(t, "http://example.test")

	if err := execute(app, "list"); err != nil {
		t.Fatalf("list error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("list printed %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "one.html") || !strings.HasSuffix(lines[0], "http://example.test/one") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestHistory_Disabled(t *testing.T) {
	app, _ := newTestApp(t, "http://example.test")
	cfgPath := writeTestConfig(t, t.TempDir(), "")

	err := execute(app, "history", "--config", cfgPath)
	if !errors.Is(err, domain.ErrHistoryDisabled) {
		t.Errorf("history error = %v, want ErrHistoryDisabled", err)
	}
}

func TestRun_RejectsArgs(t *testing.T) {
	app, _ := newTestApp(t, "http://example.test")

	if err := execute(app, "extra"); err == nil {
		t.Error("unexpected positional argument should fail")
	}
}
