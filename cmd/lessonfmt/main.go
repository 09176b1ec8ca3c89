package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"pkt.systems/lessonfmt"
	"pkt.systems/lessonfmt/lesson"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/lessonfmt")
}

type options struct {
	themeName  string
	width      int
	boring     bool
	listThemes bool
	outPath    string
	lessonMode bool
	spans      bool
	softWrap   bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred closes happen before exit.
func run(argv []string) int {
	var opts options
	flags := pflag.NewFlagSet("lessonfmt", pflag.ExitOnError)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate output without ANSI styling")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.lessonMode, "lesson", "l", false, "Treat inputs as lesson documents (implied for .yaml, .yml and .json)")
	flags.BoolVar(&opts.spans, "spans", false, "Print parsed spans instead of rendering")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the width")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: lessonfmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, lesson markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		return 2
	}

	if opts.listThemes {
		printThemes(os.Stdout)
		return 0
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	theme, ok := lessonfmt.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(os.Stderr)
		return 2
	}
	if opts.boring {
		theme = lessonfmt.BoringTheme()
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		logger.Error("open output", zap.String("path", opts.outPath), zap.Error(err))
		return 1
	}
	if closeOut != nil {
		defer func() {
			if err := closeOut.Close(); err != nil {
				logger.Error("close output", zap.String("path", opts.outPath), zap.Error(err))
			}
		}()
	}

	args := flags.Args()
	if !opts.lessonMode && hasLessonInput(args) {
		logger.Debug("lesson document input detected", zap.Strings("inputs", args))
		opts.lessonMode = true
	}

	renderOpts := []lessonfmt.RenderOption{
		lessonfmt.WithSoftWrap(opts.softWrap),
		lessonfmt.WithLogger(logger),
	}
	width := resolveWidth(opts.width, writer)
	pp.ColoringEnabled = isTerminal(writer) && !opts.boring

	if opts.lessonMode {
		err = renderLessons(args, writer, width, theme, opts.spans, renderOpts)
	} else {
		err = renderMarkup(args, writer, width, theme, opts.spans, renderOpts)
	}
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func renderMarkup(args []string, w io.Writer, width int, theme lessonfmt.Theme, spans bool, opts []lessonfmt.RenderOption) error {
	if len(args) == 1 && !spans && isHTTPInput(args[0]) {
		return lessonfmt.HTTPRender(context.Background(), lessonfmt.HTTPRenderRequest{
			URL:     strings.TrimSpace(args[0]),
			Writer:  w,
			Width:   width,
			Theme:   theme,
			Options: opts,
		})
	}
	reader, closer, err := openInputs(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if spans {
		data, err := io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := lessonfmt.ValidateInput(data); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		_, err = pp.Fprintln(w, lessonfmt.Parse(string(data), lessonfmt.PaletteLookup()))
		return err
	}
	return lessonfmt.Render(lessonfmt.RenderRequest{
		Reader:  reader,
		Writer:  w,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
}

func renderLessons(args []string, w io.Writer, width int, theme lessonfmt.Theme, spans bool, opts []lessonfmt.RenderOption) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return err
		}
		doc, err := loadLesson(src)
		if err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if spans {
			if _, err := pp.Fprintln(w, doc); err != nil {
				return err
			}
			continue
		}
		err = lesson.Render(lesson.RenderRequest{
			Document: doc,
			Writer:   w,
			Width:    width,
			Theme:    theme,
			Options:  opts,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
	}
	return nil
}

func loadLesson(src inputSource) (lesson.Document, error) {
	reader, closer, err := src.open()
	if err != nil {
		return lesson.Document{}, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return lesson.Load(reader)
}

func hasLessonInput(args []string) bool {
	for _, raw := range args {
		path := raw
		if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
			path = u.Path
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			return true
		}
	}
	return false
}

func isHTTPInput(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func printThemes(w io.Writer) {
	for _, name := range lessonfmt.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

// resolveWidth picks the wrap width for output written to w. The terminal
// size is only consulted when w itself is a terminal.
func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
