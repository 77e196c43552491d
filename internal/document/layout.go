package document

import (
	"regexp"
	"strings"
)

// BlockKind classifies a rendered paragraph.
type BlockKind int

const (
	KindTitle BlockKind = iota
	KindSubtitle
	KindByline
	KindIssuer
	KindHeading
	KindBody
)

// Type sizes in half-points, the unit the docx format uses.
const (
	TitleSize    = 48
	SubtitleSize = 32
	BylineSize   = 24
	IssuerSize   = 22
	HeadingSize  = 28
	BodySize     = 24
)

// Paragraph spacing in twentieths of a point.
const (
	TitleSpaceAfter    = 200
	SubtitleSpaceAfter = 200
	BylineSpaceAfter   = 100
	IssuerSpaceAfter   = 400
	HeadingSpaceBefore = 300
	HeadingSpaceAfter  = 150
	BodySpaceAfter     = 120
)

// Paragraph style IDs.
const (
	StyleTitle    = "Title"
	StyleHeading1 = "Heading1"
)

// Block is one styled paragraph of a document.
type Block struct {
	Kind        BlockKind
	Text        string
	Style       string
	Bold        bool
	Italic      bool
	Size        int
	Centered    bool
	SpaceBefore int
	SpaceAfter  int
}

var headingPattern = regexp.MustCompile(`^\d+\.\s+[A-Z]`)

// IsHeading reports whether line opens a numbered section such as "1. EXECUTIVE SUMMARY".
// Lines that do not follow that convention are treated as body text.
func IsHeading(line string) bool {
	return headingPattern.MatchString(line)
}

// Layout splits generated text into heading and body blocks. Blank lines produce nothing.
func Layout(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		switch {
		case IsHeading(line):
			blocks = append(blocks, Block{
				Kind:        KindHeading,
				Text:        line,
				Style:       StyleHeading1,
				Bold:        true,
				Size:        HeadingSize,
				SpaceBefore: HeadingSpaceBefore,
				SpaceAfter:  HeadingSpaceAfter,
			})
		case strings.TrimSpace(line) != "":
			blocks = append(blocks, Block{Kind: KindBody, Text: line, Size: BodySize, SpaceAfter: BodySpaceAfter})
		}
	}

	return blocks
}
