// Package segment splits raw markdown text into typed contiguous blocks and
// formats them into card-ready snippets.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BlockType classifies a block by the markdown construct of its first line.
type BlockType int

const (
	Paragraph BlockType = iota
	Heading
	Code
	Blockquote
	List
)

func (t BlockType) String() string {
	switch t {
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Blockquote:
		return "blockquote"
	case List:
		return "list"
	default:
		return "paragraph"
	}
}

// Block is a contiguous, typed span of document lines.
type Block struct {
	Content      string
	Type         BlockType
	StartLine    int // 0-based
	EndLine      int // inclusive
	HeadingLevel int // 1..6 for headings, 0 otherwise
}

// MinCandidateLength is the noise filter: blocks whose formatted text is
// shorter than this are not worth a card.
const MinCandidateLength = 10

var (
	headingRe     = regexp.MustCompile(`^(#{1,6})\s`)
	bulletRe      = regexp.MustCompile(`^[-*+]\s`)
	orderedRe     = regexp.MustCompile(`^\d+\.\s`)
	headingTrimRe = regexp.MustCompile(`^#{1,6}\s*`)
	bulletTrimRe  = regexp.MustCompile(`^\s*[-*+]\s*`)
	orderedTrimRe = regexp.MustCompile(`^\s*\d+\.\s*`)
	quoteTrimRe   = regexp.MustCompile(`^\s*>\s*`)
	fenceOpenRe   = regexp.MustCompile("^(```|~~~)[\\w]*\\n?")
	fenceCloseRe  = regexp.MustCompile("\\n?(```|~~~)$")
)

// DetectType classifies a single non-blank line. Precedence: heading, code
// fence, blockquote, list, paragraph.
func DetectType(line string) BlockType {
	trimmed := strings.TrimSpace(line)
	switch {
	case headingRe.MatchString(trimmed):
		return Heading
	case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
		return Code
	case strings.HasPrefix(trimmed, ">"):
		return Blockquote
	case bulletRe.MatchString(trimmed) || orderedRe.MatchString(trimmed):
		return List
	default:
		return Paragraph
	}
}

// Segment scans lines top to bottom and groups them into blocks. A blank
// line closes the open block. A non-blank line opens a new block when none
// is open, when its type differs from the open block's, or when it is a
// heading (consecutive headings never merge). Otherwise it extends the open
// block. Blocks come back in document order.
func Segment(text string) []Block {
	lines := strings.Split(text, "\n")

	var blocks []Block
	var current *Block

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		lineType := DetectType(line)
		if current == nil || current.Type != lineType || lineType == Heading {
			flush()
			current = &Block{
				Content:   line,
				Type:      lineType,
				StartLine: i,
				EndLine:   i,
			}
			if lineType == Heading {
				current.HeadingLevel = headingLevel(line)
			}
			continue
		}

		current.Content += "\n" + line
		current.EndLine = i
	}
	flush()

	return blocks
}

func headingLevel(line string) int {
	m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 1
	}
	return len(m[1])
}

// FormatForCard strips the block's markdown scaffolding: heading markers,
// blockquote markers and code fences go away, list markers become a uniform
// bullet glyph. The result is trimmed.
func FormatForCard(b Block) string {
	content := strings.TrimSpace(b.Content)

	switch b.Type {
	case Heading:
		content = headingTrimRe.ReplaceAllString(content, "")
	case List:
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			line = bulletTrimRe.ReplaceAllString(line, "• ")
			line = orderedTrimRe.ReplaceAllString(line, "• ")
			lines[i] = line
		}
		content = strings.Join(lines, "\n")
	case Blockquote:
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			lines[i] = quoteTrimRe.ReplaceAllString(line, "")
		}
		content = strings.Join(lines, "\n")
	case Code:
		content = fenceOpenRe.ReplaceAllString(content, "")
		content = fenceCloseRe.ReplaceAllString(content, "")
	}

	return strings.TrimSpace(content)
}

// Candidates segments a document and returns the card-ready texts of blocks
// that pass the noise filter, preserving document order.
func Candidates(text string) []string {
	var out []string
	for _, b := range Segment(text) {
		formatted := FormatForCard(b)
		if utf8.RuneCountInString(formatted) >= MinCandidateLength {
			out = append(out, formatted)
		}
	}
	return out
}
