package lessonfmt

import "strings"

const maxFrontMatterProbeBytes = 64 * 1024

type frontMatterState uint8

const (
	frontMatterStart frontMatterState = iota
	frontMatterProbe
	frontMatterPass
)

// frontMatterFilter drops a metadata block (--- yaml, +++ toml, ;;; json)
// at the top of lesson content. Lines are pushed one at a time; anything
// that does not turn out to be a closed metadata block is released as
// content.
type frontMatterFilter struct {
	state   frontMatterState
	delim   string
	probe   []string
	size    int
	dropped int
	one     [1]string
}

func (f *frontMatterFilter) push(line string) []string {
	switch f.state {
	case frontMatterPass:
		return f.single(line)
	case frontMatterStart:
		line = strings.TrimPrefix(line, "\ufeff")
		f.state = frontMatterPass
		if delim, ok := openingFrontMatterDelimiter(line); ok {
			f.state = frontMatterProbe
			f.delim = delim
			f.probe = append(f.probe[:0], line)
			f.size = len(line)
			return nil
		}
		return f.single(line)
	}
	f.probe = append(f.probe, line)
	f.size += len(line)
	if len(f.probe) == 2 && !frontMatterMetadataLikely(line) {
		return f.release()
	}
	if len(f.probe) > 2 && strings.TrimSpace(line) == f.delim {
		f.dropped = len(f.probe)
		f.probe = f.probe[:0]
		f.state = frontMatterPass
		return nil
	}
	if f.size > maxFrontMatterProbeBytes {
		return f.release()
	}
	return nil
}

// finish releases an unterminated metadata block as content.
func (f *frontMatterFilter) finish() []string {
	if f.state == frontMatterProbe {
		return f.release()
	}
	return nil
}

func (f *frontMatterFilter) release() []string {
	out := f.probe
	f.probe = nil
	f.state = frontMatterPass
	return out
}

func (f *frontMatterFilter) single(line string) []string {
	f.one[0] = line
	return f.one[:]
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	switch trimmed := strings.TrimSpace(line); trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}
