package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/startright-uk/startright/internal/order"
)

const (
	businessNamePlaceholder = "Business Name TBC"
	dateLayout              = "02/01/2006"
)

// AssemblyError reports a document that could not be serialized.
type AssemblyError struct {
	Title string
	Err   error
}

// Error implements the error interface
func (e *AssemblyError) Error() string {
	return fmt.Sprintf("failed to assemble %q: %v", e.Title, e.Err)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// Assembler turns generated text into a Word document with a title page.
type Assembler struct {
	issuer string
	now    func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock overrides the clock used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates an Assembler that signs documents as issuer.
func NewAssembler(issuer string, opts ...Option) *Assembler {
	a := &Assembler{
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Blocks returns the title block followed by the laid out text.
func (a *Assembler) Blocks(text, title string, o *order.Order) []Block {
	blocks := []Block{
		{
			Kind:       KindTitle,
			Text:       strings.ToUpper(title),
			Style:      StyleTitle,
			Bold:       true,
			Size:       TitleSize,
			Centered:   true,
			SpaceAfter: TitleSpaceAfter,
		},
		{
			Kind:       KindSubtitle,
			Text:       order.Or(o.BusinessName, businessNamePlaceholder),
			Size:       SubtitleSize,
			Centered:   true,
			SpaceAfter: SubtitleSpaceAfter,
		},
		{
			Kind:       KindByline,
			Text:       "Prepared for " + o.CustomerName,
			Italic:     true,
			Size:       BylineSize,
			Centered:   true,
			SpaceAfter: BylineSpaceAfter,
		},
		{
			Kind:       KindIssuer,
			Text:       fmt.Sprintf("by %s - %s", a.issuer, a.now().Format(dateLayout)),
			Size:       IssuerSize,
			Centered:   true,
			SpaceAfter: IssuerSpaceAfter,
		},
	}

	return append(blocks, Layout(text)...)
}

// Assemble renders text as a .docx document and returns its bytes.
func (a *Assembler) Assemble(text, title string, o *order.Order) ([]byte, error) {
	data, err := Render(a.Blocks(text, title, o))
	if err != nil {
		return nil, &AssemblyError{Title: title, Err: err}
	}

	return data, nil
}

// Render serializes blocks into a .docx buffer.
// go-docx has no w:after attribute, so a block's SpaceAfter is added to the w:before of the next paragraph.
func Render(blocks []Block) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for i, b := range blocks {
		para := doc.AddParagraph()
		if b.Style != "" {
			para.Style(b.Style)
		}
		if b.Centered {
			para.Justification("center")
		}
		if before := spaceBefore(blocks, i); before > 0 {
			if para.Properties == nil {
				para.Properties = &docx.ParagraphProperties{}
			}
			para.Properties.Spacing = &docx.Spacing{Before: before}
		}

		run := para.AddText(b.Text)
		if b.Size > 0 {
			run.Size(strconv.Itoa(b.Size))
		}
		if b.Bold {
			run.Bold()
		}
		if b.Italic {
			run.Italic()
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func spaceBefore(blocks []Block, i int) int {
	before := blocks[i].SpaceBefore
	if i > 0 {
		before += blocks[i-1].SpaceAfter
	}

	return before
}
