// Package docx writes rendered CV documents as Office Open XML (.docx) packages.
package docx

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/jonathan/cv-as-code/internal/data"
	"github.com/jonathan/cv-as-code/internal/rendering"
	"github.com/jonathan/cv-as-code/internal/style"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

const (
	// US Letter in twips
	letterWidth  = 12240
	letterHeight = 15840

	singleLineSpacing = 240
	defaultCreator    = "cvac"
)

// parts lists every package part in the order it is written
var parts = []struct {
	name     string
	template string
}{
	{"[Content_Types].xml", "content_types.xml.tmpl"},
	{"_rels/.rels", "rels.xml.tmpl"},
	{"docProps/core.xml", "core.xml.tmpl"},
	{"docProps/app.xml", "app.xml.tmpl"},
	{"word/document.xml", "document.xml.tmpl"},
	{"word/styles.xml", "styles.xml.tmpl"},
	{"word/numbering.xml", "numbering.xml.tmpl"},
	{"word/_rels/document.xml.rels", "document.xml.rels.tmpl"},
}

// Writer encodes rendered documents into DOCX packages
type Writer struct {
	// Creator is recorded in the core properties
	Creator string
	// Now supplies the creation timestamp; defaults to time.Now
	Now func() time.Time

	templates *template.Template
}

// NewWriter parses the embedded package templates
func NewWriter() (*Writer, error) {
	tmpl, err := template.New("docx").Funcs(template.FuncMap{
		"escape": EscapeXML,
	}).ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, &WriteError{Message: "failed to parse package templates", Cause: err}
	}
	return &Writer{Creator: defaultCreator, Now: time.Now, templates: tmpl}, nil
}

// WriteFile renders doc into a DOCX package at path.
// The package is assembled in memory and moved into place atomically.
func WriteFile(doc rendering.Document, path string) error {
	w, err := NewWriter()
	if err != nil {
		return err
	}
	return w.WriteFile(doc, path)
}

// WriteFile renders doc into a DOCX package at path
func (w *Writer) WriteFile(doc rendering.Document, path string) error {
	var buf bytes.Buffer
	if err := w.Encode(doc, &buf); err != nil {
		return err
	}
	if err := data.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return &WriteError{Path: path, Message: "failed to save package", Cause: err}
	}
	return nil
}

// Encode writes the DOCX package for doc to out
func (w *Writer) Encode(doc rendering.Document, out io.Writer) error {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	created := now().UTC()
	view := buildView(doc, w.Creator, created)

	zw := zip.NewWriter(out)
	for _, part := range parts {
		header := &zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: created,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			return &WriteError{Message: fmt.Sprintf("failed to add %s", part.name), Cause: err}
		}
		if err := w.templates.ExecuteTemplate(entry, part.template, view); err != nil {
			return &WriteError{Message: fmt.Sprintf("failed to render %s", part.name), Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &WriteError{Message: "failed to finalize package", Cause: err}
	}
	return nil
}

type packageView struct {
	Title       string
	Creator     string
	Application string
	Created     string
	FontName    string
	FontSize    int
	Page        pageView
	Margins     marginsView
	Bullet      indentView
	Paragraphs  []paragraphView
	Links       []linkView
}

type pageView struct {
	Width  int
	Height int
}

type marginsView struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

type indentView struct {
	Left      int
	Hanging   int
	FirstLine int
}

type paragraphView struct {
	Bullet bool
	Center bool
	Before int
	After  int
	Line   int
	Indent *indentView
	Runs   []runView
}

type runView struct {
	Text      string
	Bold      bool
	Underline bool
	Size      int
	RelID     string
}

type linkView struct {
	ID     string
	Target string
}

// firstHyperlinkRel follows the styles and numbering relationships
const firstHyperlinkRel = 3

func buildView(doc rendering.Document, creator string, created time.Time) packageView {
	relIDs := make(map[string]string)
	var links []linkView
	for i, target := range doc.Hyperlinks() {
		id := fmt.Sprintf("rId%d", firstHyperlinkRel+i)
		relIDs[target] = id
		links = append(links, linkView{ID: id, Target: target})
	}

	paragraphs := make([]paragraphView, 0, len(doc.Blocks))
	bullet := indentView{Left: 720, Hanging: 360}
	bulletSet := false
	for _, block := range doc.Blocks {
		p := paragraphView{
			Bullet: block.Kind == rendering.KindBullet,
			Center: block.Align == rendering.AlignCenter,
			Before: block.Spacing.Before.Twips(),
			After:  block.Spacing.After.Twips(),
			Line:   lineValue(block.Spacing.LineSpacing),
			Indent: indent(block.Indent),
		}
		if p.Bullet && p.Indent != nil && !bulletSet {
			bullet = *p.Indent
			bulletSet = true
		}
		for _, run := range block.Runs {
			p.Runs = append(p.Runs, runView{
				Text:      run.Text,
				Bold:      run.Bold,
				Underline: run.Underline,
				Size:      run.Size.HalfPoints(),
				RelID:     relIDs[run.Hyperlink],
			})
		}
		paragraphs = append(paragraphs, p)
	}

	fontName := doc.FontName
	if strings.TrimSpace(fontName) == "" {
		fontName = style.Default().FontName
	}
	fontSize := doc.FontSize
	if fontSize.IsZero() {
		fontSize = style.Default().FontSize
	}

	return packageView{
		Title:       doc.Title,
		Creator:     creator,
		Application: defaultCreator,
		Created:     created.Format(time.RFC3339),
		FontName:    fontName,
		FontSize:    fontSize.HalfPoints(),
		Page:        pageView{Width: letterWidth, Height: letterHeight},
		Margins: marginsView{
			Top:    doc.Margins.Top.Twips(),
			Bottom: doc.Margins.Bottom.Twips(),
			Left:   doc.Margins.Left.Twips(),
			Right:  doc.Margins.Right.Twips(),
		},
		Bullet:     bullet,
		Paragraphs: paragraphs,
		Links:      links,
	}
}

// lineValue converts a line spacing ratio to 240ths of a line
func lineValue(ratio style.Ratio) int {
	if ratio <= 0 {
		return singleLineSpacing
	}
	return int(math.Round(float64(ratio) * singleLineSpacing))
}

// indent maps a block indent to OOXML, where a negative first line becomes a hanging indent
func indent(in rendering.Indent) *indentView {
	if in.Left.IsZero() && in.FirstLine.IsZero() {
		return nil
	}
	out := &indentView{Left: in.Left.Twips()}
	first := in.FirstLine.Twips()
	if first < 0 {
		out.Hanging = -first
	} else {
		out.FirstLine = first
	}
	return out
}
