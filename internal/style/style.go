package style

// Config is the resolved style used by the renderer and the DOCX writer
type Config struct {
	FontName         string           `mapstructure:"font_name"`
	FontSize         Length           `mapstructure:"font_size"`
	NameFontSize     Length           `mapstructure:"name_font_size"`
	HeadingFontSize  Length           `mapstructure:"heading_font_size"`
	Margins          Margins          `mapstructure:"margins"`
	ParagraphSpacing ParagraphSpacing `mapstructure:"paragraph_spacing"`
	BulletStyle      BulletStyle      `mapstructure:"bullet_style"`
}

// Margins are the page margins
type Margins struct {
	Top    Length `mapstructure:"top"`
	Bottom Length `mapstructure:"bottom"`
	Left   Length `mapstructure:"left"`
	Right  Length `mapstructure:"right"`
}

// ParagraphSpacing applies to ordinary body paragraphs
type ParagraphSpacing struct {
	Before      Length `mapstructure:"before"`
	After       Length `mapstructure:"after"`
	LineSpacing Ratio  `mapstructure:"line_spacing"`
}

// BulletStyle controls the geometry of bulleted list items
type BulletStyle struct {
	LeftIndent      Length `mapstructure:"left_indent"`
	FirstLineIndent Length `mapstructure:"first_line_indent"`
	LineSpacing     Ratio  `mapstructure:"line_spacing"`
	SpaceAfter      Length `mapstructure:"space_after"`
	SpaceBefore     Length `mapstructure:"space_before"`
}

var defaultStyle = Config{
	FontName:        "Calibri",
	FontSize:        Pt(11),
	NameFontSize:    Pt(14),
	HeadingFontSize: Pt(11),
	Margins: Margins{
		Top:    Mm(15),
		Bottom: Mm(15),
		Left:   Mm(15),
		Right:  Mm(15),
	},
	ParagraphSpacing: ParagraphSpacing{
		Before:      Pt(0),
		After:       Pt(2),
		LineSpacing: 1.0,
	},
	BulletStyle: BulletStyle{
		LeftIndent:      Cm(0.5),
		FirstLineIndent: Cm(-0.25),
		LineSpacing:     1.0,
		SpaceAfter:      Pt(3),
		SpaceBefore:     Pt(0),
	},
}

// Default returns a copy of the built-in style
func Default() Config {
	return defaultStyle
}

// Tree returns the style as a nested mapping keyed by configuration names
func (c Config) Tree() map[string]any {
	return map[string]any{
		"font_name":         c.FontName,
		"font_size":         c.FontSize,
		"name_font_size":    c.NameFontSize,
		"heading_font_size": c.HeadingFontSize,
		"margins": map[string]any{
			"top":    c.Margins.Top,
			"bottom": c.Margins.Bottom,
			"left":   c.Margins.Left,
			"right":  c.Margins.Right,
		},
		"paragraph_spacing": map[string]any{
			"before":       c.ParagraphSpacing.Before,
			"after":        c.ParagraphSpacing.After,
			"line_spacing": float64(c.ParagraphSpacing.LineSpacing),
		},
		"bullet_style": map[string]any{
			"left_indent":       c.BulletStyle.LeftIndent,
			"first_line_indent": c.BulletStyle.FirstLineIndent,
			"line_spacing":      float64(c.BulletStyle.LineSpacing),
			"space_after":       c.BulletStyle.SpaceAfter,
			"space_before":      c.BulletStyle.SpaceBefore,
		},
	}
}
