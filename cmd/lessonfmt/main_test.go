package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/lessonfmt"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("one "), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one two" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestOpenInputRejectsEmptyArgument(t *testing.T) {
	if _, _, err := openInputs([]string{"  "}); err == nil {
		t.Fatalf("expected error for empty input argument")
	}
}

func TestHasLessonInput(t *testing.T) {
	cases := map[string]bool{
		"lesson.yaml":                      true,
		"LESSON.YML":                       true,
		"unit/loops.json":                  true,
		"https://example.com/l.yaml?raw=1": true,
		"notes.txt":                        false,
		"-":                                false,
	}
	for input, want := range cases {
		if got := hasLessonInput([]string{input}); got != want {
			t.Fatalf("hasLessonInput(%q)=%v want %v", input, got, want)
		}
	}
}

func TestRenderMarkupBoring(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.txt")
	if err := os.WriteFile(path, []byte("Use **print()** to show {gold:output}.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := renderMarkup([]string{path}, &out, 80, lessonfmt.BoringTheme(), false, nil); err != nil {
		t.Fatalf("renderMarkup: %v", err)
	}
	if out.String() != "Use print() to show output.\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderMarkupFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("---\ntitle: remote\n---\n`x = 1` is an *assignment*.\n"))
	}))
	defer srv.Close()
	if !isHTTPInput(srv.URL) || isHTTPInput("notes.txt") {
		t.Fatalf("unexpected isHTTPInput classification")
	}
	var out bytes.Buffer
	if err := renderMarkup([]string{srv.URL}, &out, 80, lessonfmt.BoringTheme(), false, nil); err != nil {
		t.Fatalf("renderMarkup: %v", err)
	}
	if out.String() != "x = 1 is an assignment.\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderLessonsFromFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lesson.yaml")
	src := "title: Strings\nsections:\n  - blocks:\n      - type: text\n        content: Quote *text* with `\"`.\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	if err := renderLessons([]string{path, path}, &out, 80, lessonfmt.BoringTheme(), false, nil); err != nil {
		t.Fatalf("renderLessons: %v", err)
	}
	one := "Strings\nLESSON • 1 MIN • 4 WORDS\n\nQuote text with \".\n"
	if out.String() != one+"\n"+one {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderLessonsReportsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("sections: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := renderLessons([]string{path}, io.Discard, 80, lessonfmt.BoringTheme(), false, nil)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("expected error naming the input, got %v", err)
	}
}

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(42, io.Discard); got != 42 {
		t.Fatalf("expected explicit width, got %d", got)
	}
	t.Setenv("COLUMNS", "66")
	if got := resolveWidth(0, &bytes.Buffer{}); got != 66 {
		t.Fatalf("expected COLUMNS width for non-terminal output, got %d", got)
	}
	t.Setenv("COLUMNS", "")
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if got := resolveWidth(0, f); got != defaultWidth {
		t.Fatalf("expected default width for file output, got %d", got)
	}
}

func TestRunWritesAndClosesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "nested", "out.txt")
	if err := os.WriteFile(in, []byte("Use **print()** now.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run([]string{"-b", "-o", out, in}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "Use print() now.\n" {
		t.Fatalf("unexpected output %q", string(got))
	}
}

func TestRunFailureStillFlushesOutput(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(good, []byte("first line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(bad, []byte{'x', 0x00}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run([]string{"-b", "-o", out, good, bad}); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "first line\n" {
		t.Fatalf("expected partial output to reach the file, got %q", string(got))
	}
	if code := run([]string{"--theme", "no-such-theme"}); code != 2 {
		t.Fatalf("expected exit 2 for unknown theme, got %d", code)
	}
}

func TestPrintThemes(t *testing.T) {
	var out bytes.Buffer
	printThemes(&out)
	if !strings.Contains(out.String(), "boring\n") || !strings.Contains(out.String(), "default\n") {
		t.Fatalf("unexpected theme list %q", out.String())
	}
}
