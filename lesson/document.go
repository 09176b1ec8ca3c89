// Package lesson models lesson documents and renders them for terminals.
//
// A document is a title plus sections of typed blocks, mirroring the lesson
// screen of the app: text and callout blocks carry inline markup, code
// blocks carry source code, and component blocks reference interactive
// widgets that only the app can draw.
package lesson

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/lessonfmt"
)

// Block types.
const (
	BlockText      = "text"
	BlockCode      = "code"
	BlockCallout   = "callout"
	BlockComponent = "component"
	BlockGlowItem  = "glow_item"
)

const (
	defaultLanguage     = "python"
	defaultCalloutTitle = "NOTE"
	wordsPerMinute      = 200
)

var (
	// ErrEmptyDocument reports input without a document.
	ErrEmptyDocument = errors.New("empty lesson document")
	// ErrNoTitle reports a document without a title.
	ErrNoTitle = errors.New("lesson has no title")
	// ErrUnknownBlockType reports a block type outside the known set. Such
	// blocks are skipped when rendering.
	ErrUnknownBlockType = errors.New("unknown block type")
	// ErrMissingComponent reports a component block without a component
	// type. Such blocks are skipped when rendering.
	ErrMissingComponent = errors.New("component block without componentType")
)

// Document is one lesson.
type Document struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Unit     string    `yaml:"unit"`
	Minutes  int       `yaml:"minutes"`
	Sections []Section `yaml:"sections"`
}

// Section groups blocks under an optional title.
type Section struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Blocks []Block `yaml:"blocks"`
}

// Block is a unit of lesson content.
type Block struct {
	ID            string         `yaml:"id"`
	Type          string         `yaml:"type"`
	Content       string         `yaml:"content"`
	Language      string         `yaml:"language"`
	Title         string         `yaml:"title"`
	ComponentType string         `yaml:"componentType"`
	GlowColor     string         `yaml:"glowColor"`
	Props         map[string]any `yaml:"props"`
}

// Load decodes a lesson document from YAML or JSON and validates it. Keys
// the model does not know are ignored so content authored for newer app
// versions still loads.
func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("lesson load: %w", ErrEmptyDocument)
		}
		return Document{}, fmt.Errorf("lesson load: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the document structure. A missing title is the only
// error; a block that fails Check is skipped by Render and never rejects
// the document.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("lesson validate: %w", ErrNoTitle)
	}
	return nil
}

// Check reports whether the block can be shown.
func (b Block) Check() error {
	switch b.Type {
	case BlockText, BlockCode, BlockCallout:
		return nil
	case BlockComponent, BlockGlowItem:
		if b.ComponentType == "" {
			return ErrMissingComponent
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownBlockType, b.Type)
	}
}

// WordCount counts the words of prose blocks with markup removed.
func (d Document) WordCount() int {
	n := 0
	for _, section := range d.Sections {
		for _, block := range section.Blocks {
			if block.Type != BlockText && block.Type != BlockCallout {
				continue
			}
			n += len(strings.Fields(lessonfmt.PlainText(lessonfmt.Parse(block.Content, nil))))
		}
	}
	return n
}

// ReadingMinutes returns Minutes when set, otherwise an estimate from the
// word count. It is never less than one.
func (d Document) ReadingMinutes() int {
	if d.Minutes > 0 {
		return d.Minutes
	}
	minutes := (d.WordCount() + wordsPerMinute - 1) / wordsPerMinute
	return max(minutes, 1)
}
