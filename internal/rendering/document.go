// Package rendering turns a CV record and a resolved style into an ordered
// sequence of formatted blocks ready for a document writer.
package rendering

import (
	"strings"

	"github.com/jonathan/cv-as-code/internal/style"
)

// BlockKind distinguishes headings, paragraphs and bullet items
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindBullet
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	default:
		return "paragraph"
	}
}

// Alignment is the horizontal paragraph alignment
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Spacing is paragraph-level vertical spacing
type Spacing struct {
	Before      style.Length
	After       style.Length
	LineSpacing style.Ratio
}

// Indent is paragraph-level horizontal indentation
type Indent struct {
	Left      style.Length
	FirstLine style.Length
}

// Run is a span of text sharing one formatting
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Hyperlink string
	Size      style.Length
}

// Block is one renderable unit of output
type Block struct {
	Kind    BlockKind
	Runs    []Run
	Align   Alignment
	Spacing Spacing
	Indent  Indent
}

// Text concatenates the text of every run
func (b Block) Text() string {
	var sb strings.Builder
	for _, run := range b.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// Document is the rendered CV: page settings plus ordered blocks
type Document struct {
	Title    string
	FontName string
	FontSize style.Length
	Margins  style.Margins
	Blocks   []Block
}

// Headings returns the text of every heading block in order
func (d Document) Headings() []string {
	var headings []string
	for _, block := range d.Blocks {
		if block.Kind == KindHeading {
			headings = append(headings, block.Text())
		}
	}
	return headings
}

// Hyperlinks returns every distinct hyperlink target in order of first use
func (d Document) Hyperlinks() []string {
	seen := make(map[string]bool)
	var links []string
	for _, block := range d.Blocks {
		for _, run := range block.Runs {
			if run.Hyperlink == "" || seen[run.Hyperlink] {
				continue
			}
			seen[run.Hyperlink] = true
			links = append(links, run.Hyperlink)
		}
	}
	return links
}
