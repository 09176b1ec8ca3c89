// Package lessonfmt parses and renders the inline markup used in lesson
// content.
//
// Lesson text is plain prose with a small set of non-nesting inline spans:
// **bold**, `code`, *italic*, __underline__ and {token:text}, where token
// names a color. Parse turns a content string into typed spans and never
// fails: anything that is not a complete span stays plain text.
//
//	spans := lessonfmt.Parse("Use **print()** to show {gold:output}.", lessonfmt.PaletteLookup())
//
// Color tokens are looked up verbatim first, then against a fixed table of
// friendly names (gold, cyan, blue, orange, red, green), and otherwise render
// white.
//
// For terminals, Render streams markup from an io.Reader and writes themed,
// word-wrapped ANSI text:
//
//	err := lessonfmt.Render(lessonfmt.RenderRequest{
//		Reader: strings.NewReader(content),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  lessonfmt.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Whole lesson documents (sections of text, code and callout blocks) are
// handled by the lesson subpackage.
package lessonfmt
