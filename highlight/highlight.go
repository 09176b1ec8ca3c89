// Package highlight classifies source code for lesson code blocks.
//
// Lessons only distinguish keywords, builtin functions, strings and comments;
// everything else is plain. Tokenization is done by chroma, so any language
// chroma knows can be highlighted, with Python being the common case.
package highlight

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Class is the highlight category of a segment.
type Class uint8

const (
	Plain Class = iota
	Keyword
	Function
	String
	Comment
)

func (c Class) String() string {
	switch c {
	case Keyword:
		return "keyword"
	case Function:
		return "function"
	case String:
		return "string"
	case Comment:
		return "comment"
	default:
		return "plain"
	}
}

// Segment is a run of code text in one class.
type Segment struct {
	Text  string
	Class Class
}

var (
	lexerCache   = make(map[string]chroma.Lexer)
	lexerCacheMu sync.RWMutex
)

func lexerFor(language string) chroma.Lexer {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return nil
	}
	lexerCacheMu.RLock()
	lexer, ok := lexerCache[lang]
	lexerCacheMu.RUnlock()
	if ok {
		return lexer
	}
	lexer = lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match("file." + lang)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	// Unknown languages are never cached.
	lexerCacheMu.Lock()
	lexerCache[lang] = lexer
	lexerCacheMu.Unlock()
	return lexer
}

// Highlight splits code into classified segments. Unknown languages yield a
// single plain segment. The segment texts always concatenate to code.
func Highlight(code, language string) []Segment {
	if code == "" {
		return nil
	}
	lexer := lexerFor(language)
	if lexer == nil {
		return []Segment{{Text: code, Class: Plain}}
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []Segment{{Text: code, Class: Plain}}
	}
	var segments []Segment
	for _, tok := range iterator.Tokens() {
		if tok.Value == "" {
			continue
		}
		class := classify(tok.Type)
		if n := len(segments); n > 0 && segments[n-1].Class == class {
			segments[n-1].Text += tok.Value
			continue
		}
		segments = append(segments, Segment{Text: tok.Value, Class: class})
	}
	if out := joined(segments); out != code {
		// Lexers may append a final newline; anything else (e.g. CRLF
		// normalization) falls back to plain text.
		if out != code+"\n" {
			return []Segment{{Text: code, Class: Plain}}
		}
		last := &segments[len(segments)-1]
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text == "" {
			segments = segments[:len(segments)-1]
		}
	}
	return segments
}

func classify(t chroma.TokenType) Class {
	switch {
	case t.InCategory(chroma.Keyword), t == chroma.OperatorWord:
		return Keyword
	case t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo:
		return Function
	case t.InSubCategory(chroma.LiteralString):
		return String
	case t.InCategory(chroma.Comment):
		return Comment
	default:
		return Plain
	}
}

func joined(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Lines splits segments at newlines so each line can be laid out on its own.
// A trailing newline does not produce an empty last line.
func Lines(segments []Segment) [][]Segment {
	var (
		lines [][]Segment
		cur   []Segment
	)
	for _, seg := range segments {
		text := seg.Text
		for {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				break
			}
			if idx > 0 {
				cur = append(cur, Segment{Text: text[:idx], Class: seg.Class})
			}
			lines = append(lines, cur)
			cur = nil
			text = text[idx+1:]
		}
		if text != "" {
			cur = append(cur, Segment{Text: text, Class: seg.Class})
		}
	}
	if cur != nil {
		lines = append(lines, cur)
	}
	return lines
}
