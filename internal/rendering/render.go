package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-as-code/internal/style"
	"github.com/jonathan/cv-as-code/internal/types"
)

// Fixed spacing used around headers and the personal info block, in points
const (
	headerSpaceBefore  = 3
	headerSpaceAfter   = 2
	nameSpaceAfter     = 3
	contactSpaceAfter  = 2
	sectionSpaceAfter  = 3
	doiResolverBaseURL = "https://doi.org/"
)

// RenderValue decodes a loaded value tree into a CV record and renders it
func RenderValue(value any, cfg style.Config) (Document, error) {
	record, err := types.Decode(value)
	if err != nil {
		return Document{}, &RenderError{Message: "CV data does not match the expected structure", Cause: err}
	}
	return Render(record, cfg), nil
}

// Render lays out every CV section in fixed order.
// Sections without content produce no blocks, including no header.
func Render(record *types.CVRecord, cfg style.Config) Document {
	if record == nil {
		record = &types.CVRecord{}
	}
	r := &renderer{style: cfg}

	r.blocks = append(r.blocks, r.personalInfo(record.PersonalInfo)...)
	r.section("PROFESSIONAL SUMMARY", r.summary(record.ProfessionalSummary))
	r.section("EXPERIENCE", r.experience(record.WorkExperience))
	r.section("EDUCATION", r.education(record.Education))
	r.section("PROJECTS", r.projects(record.Projects))
	r.section(skillsHeader(record.Skills), r.skills(record.Skills))
	r.section("CERTIFICATIONS", r.certifications(record.Certifications))
	r.section("PUBLICATIONS", r.publications(record.Publications))
	r.section("AWARDS & HONORS", r.awards(record.Awards))
	r.section("VOLUNTEER WORK", r.volunteerWork(record.VolunteerWork))
	r.section("LANGUAGES", r.languages(record.Languages))
	r.section("REFERENCES", r.references(record.References))

	return Document{
		Title:    record.PersonalInfo.FullName(),
		FontName: cfg.FontName,
		FontSize: cfg.FontSize,
		Margins:  cfg.Margins,
		Blocks:   r.blocks,
	}
}

type renderer struct {
	style  style.Config
	blocks []Block
}

func (r *renderer) section(title string, body []Block) {
	if len(body) == 0 {
		return
	}
	r.blocks = append(r.blocks, Block{
		Kind: KindHeading,
		Runs: []Run{{Text: title, Bold: true, Size: r.style.HeadingFontSize}},
		Spacing: Spacing{
			Before:      style.Pt(headerSpaceBefore),
			After:       style.Pt(headerSpaceAfter),
			LineSpacing: r.style.ParagraphSpacing.LineSpacing,
		},
	})
	r.blocks = append(r.blocks, body...)
}

func (r *renderer) text(text string) Run {
	return Run{Text: text, Size: r.style.FontSize}
}

func (r *renderer) bold(text string) Run {
	return Run{Text: text, Bold: true, Size: r.style.FontSize}
}

func (r *renderer) link(target, text string) Run {
	return Run{Text: text, Hyperlink: target, Underline: true, Size: r.style.FontSize}
}

func (r *renderer) spacing() Spacing {
	ps := r.style.ParagraphSpacing
	return Spacing{Before: ps.Before, After: ps.After, LineSpacing: ps.LineSpacing}
}

func (r *renderer) spacingAfter(points float64) Spacing {
	s := r.spacing()
	s.After = style.Pt(points)
	return s
}

func (r *renderer) paragraph(runs ...Run) Block {
	return Block{Kind: KindParagraph, Runs: runs, Spacing: r.spacing()}
}

func (r *renderer) closingParagraph(runs ...Run) Block {
	return Block{Kind: KindParagraph, Runs: runs, Spacing: r.spacingAfter(sectionSpaceAfter)}
}

func (r *renderer) bullet(text string) Block {
	bs := r.style.BulletStyle
	return Block{
		Kind: KindBullet,
		Runs: []Run{r.text(text)},
		Spacing: Spacing{
			Before:      bs.SpaceBefore,
			After:       bs.SpaceAfter,
			LineSpacing: bs.LineSpacing,
		},
		Indent: Indent{Left: bs.LeftIndent, FirstLine: bs.FirstLineIndent},
	}
}

// labeledList renders "<label>: a, b, c" with a bold label
func (r *renderer) labeledList(label string, items []string) []Run {
	return []Run{r.bold(label + ": "), r.text(strings.Join(items, ", "))}
}

type contactItem struct {
	text   string
	target string
}

func (r *renderer) personalInfo(info *types.PersonalInfo) []Block {
	if info == nil {
		return nil
	}
	var blocks []Block

	if name := info.FullName(); name != "" {
		blocks = append(blocks, Block{
			Kind:    KindParagraph,
			Runs:    []Run{{Text: name, Bold: true, Size: r.style.NameFontSize}},
			Align:   AlignCenter,
			Spacing: r.spacingAfter(nameSpaceAfter),
		})
	}

	row1 := []contactItem{
		{text: info.Email, target: "mailto:" + info.Email},
		{text: info.Phone, target: "tel:" + info.Phone},
	}
	if block, ok := r.contactRow(row1, contactSpaceAfter); ok {
		blocks = append(blocks, block)
	}

	row2 := []contactItem{
		{text: formatProfileURL(info.LinkedIn), target: info.LinkedIn},
		{text: formatProfileURL(info.GithubURL), target: info.GithubURL},
	}
	for _, site := range []string{info.Website, info.Portfolio, info.Blog} {
		row2 = append(row2, contactItem{text: extractDomain(site), target: site})
	}
	if block, ok := r.contactRow(row2, nameSpaceAfter); ok {
		blocks = append(blocks, block)
	}
	return blocks
}

func (r *renderer) contactRow(items []contactItem, after float64) (Block, bool) {
	var runs []Run
	for _, item := range items {
		if item.text == "" {
			continue
		}
		if len(runs) > 0 {
			runs = append(runs, r.text(" | "))
		}
		runs = append(runs, r.link(item.target, item.text))
	}
	if len(runs) == 0 {
		return Block{}, false
	}
	return Block{Kind: KindParagraph, Runs: runs, Align: AlignCenter, Spacing: r.spacingAfter(after)}, true
}

func (r *renderer) summary(summary string) []Block {
	if summary == "" {
		return nil
	}
	return []Block{r.closingParagraph(r.text(summary))}
}

func (r *renderer) experience(jobs []types.WorkExperience) []Block {
	var blocks []Block
	for _, job := range jobs {
		if job.Company != "" {
			runs := []Run{r.bold(job.Company)}
			if job.Location != "" {
				runs = append(runs, r.bold(" | "+job.Location))
			}
			if target := job.CompanyLink(); target != "" {
				domainLink := r.link(target, extractDomain(target))
				domainLink.Underline = false
				runs = append(runs, r.bold(" ("), domainLink, r.bold(")"))
			}
			blocks = append(blocks, r.paragraph(runs...))
		}

		if job.Position != "" {
			blocks = append(blocks, r.paragraph(r.bold(job.Position)))
		}

		end := FormatDate(job.EndDate.String())
		if job.Current {
			end = "Present"
		}
		if dates := dateRange(FormatDate(job.StartDate.String()), end); dates != "" {
			blocks = append(blocks, r.paragraph(r.text(dates)))
		}

		if job.Description != "" {
			blocks = append(blocks, r.bullet(job.Description))
		}
		for _, achievement := range nonEmpty(job.Achievements) {
			blocks = append(blocks, r.bullet(ensurePeriod(achievement)))
		}

		if techs := nonEmpty(job.Technologies); len(techs) > 0 {
			blocks = append(blocks, r.closingParagraph(r.labeledList("Technologies used", techs)...))
		}
	}
	return blocks
}

func (r *renderer) education(entries []types.Education) []Block {
	var blocks []Block
	for _, edu := range entries {
		if edu.Institution != "" {
			blocks = append(blocks, r.paragraph(r.text(edu.Institution)))
		}

		if degree := joinPresent(" | ", edu.Degree, edu.Field); degree != "" {
			runs := []Run{r.text(degree)}
			if edu.GPA != nil {
				runs = append(runs, r.text(fmt.Sprintf(" | GPA: %.2f/4.0", *edu.GPA)))
			}
			blocks = append(blocks, r.paragraph(runs...))
		}

		graduated := ""
		if edu.GraduationDate != "" {
			graduated = "Graduated in " + FormatDate(edu.GraduationDate.String())
		}
		if line := joinPresent(" | ", edu.Location, graduated); line != "" {
			blocks = append(blocks, r.closingParagraph(r.text(line)))
		}

		for _, honor := range nonEmpty(edu.Honors) {
			blocks = append(blocks, r.bullet(honor))
		}

		if courses := nonEmpty(edu.RelevantCourses); len(courses) > 0 {
			blocks = append(blocks, r.closingParagraph(r.labeledList("Relevant Courses", courses)...))
		}
	}
	return blocks
}

func (r *renderer) projects(projects []types.Project) []Block {
	var blocks []Block
	for _, project := range projects {
		if project.Name != "" {
			name := r.bold(project.Name)
			if project.URL != "" {
				name = r.link(project.URL, project.Name)
				name.Bold = true
			}
			blocks = append(blocks, r.paragraph(name))
		}

		dates := dateRange(FormatDate(project.StartDate.String()), FormatDate(project.EndDate.String()))
		if dates != "" {
			blocks = append(blocks, r.paragraph(r.text(dates)))
		}

		if project.Description != "" {
			blocks = append(blocks, r.paragraph(r.text(project.Description)))
		}
		for _, highlight := range nonEmpty(project.Highlights) {
			blocks = append(blocks, r.bullet(ensurePeriod(highlight)))
		}

		if techs := nonEmpty(project.Technologies); len(techs) > 0 {
			blocks = append(blocks, r.closingParagraph(r.labeledList("Technologies", techs)...))
		}
	}
	return blocks
}

const otherCategory = "Other"

func hasSkillCategories(skills []types.Skill) bool {
	for _, skill := range skills {
		if skill.Category != "" {
			return true
		}
	}
	return false
}

func skillsHeader(skills []types.Skill) string {
	if hasSkillCategories(skills) {
		return "SKILLS"
	}
	return "TECHNOLOGIES"
}

func (r *renderer) skills(skills []types.Skill) []Block {
	if len(skills) == 0 {
		return nil
	}

	if !hasSkillCategories(skills) {
		labels := make([]string, 0, len(skills))
		for _, skill := range skills {
			if label := skill.Label(); label != "" {
				labels = append(labels, label)
			}
		}
		if len(labels) == 0 {
			return nil
		}
		return []Block{r.paragraph(r.text(ensurePeriod(strings.Join(labels, ", "))))}
	}

	var order []string
	grouped := make(map[string][]string)
	var uncategorized []string
	for _, skill := range skills {
		label := skill.Label()
		if label == "" {
			continue
		}
		if skill.Category == "" {
			uncategorized = append(uncategorized, label)
			continue
		}
		if _, seen := grouped[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		grouped[skill.Category] = append(grouped[skill.Category], label)
	}

	if len(uncategorized) > 0 && len(order) > 0 {
		// an explicit "Other" category absorbs the uncategorized entries
		if _, seen := grouped[otherCategory]; !seen {
			order = append(order, otherCategory)
		}
		grouped[otherCategory] = append(grouped[otherCategory], uncategorized...)
		uncategorized = nil
	}

	blocks := make([]Block, 0, len(order)+1)
	for _, category := range order {
		blocks = append(blocks, r.paragraph(r.labeledList(category, grouped[category])...))
	}
	if len(uncategorized) > 0 {
		blocks = append(blocks, r.paragraph(r.text(strings.Join(uncategorized, ", "))))
	}
	return blocks
}

func (r *renderer) certifications(certs []types.Certification) []Block {
	var blocks []Block
	for _, cert := range certs {
		var runs []Run
		if cert.Name != "" {
			runs = append(runs, r.bold(cert.Name))
		}
		if cert.Issuer != "" {
			runs = append(runs, r.text(", "+cert.Issuer))
		}
		if cert.DateObtained != "" {
			runs = append(runs, r.text(", Issued "+FormatDate(cert.DateObtained.String())))
		}
		if cert.ExpiryDate != "" {
			runs = append(runs, r.text(" (Expires "+FormatDate(cert.ExpiryDate.String())+")"))
		}
		if cert.CredentialURL != "" {
			runs = append(runs, r.text(" "), r.link(cert.CredentialURL, "[View Certificate]"))
		}
		if len(runs) > 0 {
			blocks = append(blocks, r.closingParagraph(runs...))
		}
	}
	return blocks
}

func (r *renderer) publications(pubs []types.Publication) []Block {
	var blocks []Block
	for _, pub := range pubs {
		var runs []Run
		if pub.Title != "" {
			runs = append(runs, r.bold(pub.Title))
		}
		if authors := nonEmpty(pub.Authors); len(authors) > 0 {
			runs = append(runs, r.text(". "+strings.Join(authors, ", ")))
		}
		if pub.Publisher != "" {
			runs = append(runs, r.text(". "+pub.Publisher))
		}
		if pub.Date != "" {
			runs = append(runs, r.text(", "+FormatDate(pub.Date.String())))
		}
		switch {
		case pub.DOI != "":
			runs = append(runs, r.text(" "), r.link(doiResolverBaseURL+pub.DOI, "DOI: "+pub.DOI))
		case pub.URL != "":
			runs = append(runs, r.text(" "), r.link(pub.URL, "[Link]"))
		}
		if len(runs) > 0 {
			blocks = append(blocks, r.closingParagraph(runs...))
		}
	}
	return blocks
}

func (r *renderer) awards(awards []types.Award) []Block {
	var blocks []Block
	for _, award := range awards {
		var runs []Run
		if award.Name != "" {
			runs = append(runs, r.bold(award.Name))
		}
		if award.Issuer != "" {
			runs = append(runs, r.text(", "+award.Issuer))
		}
		if award.Date != "" {
			runs = append(runs, r.text(", "+FormatDate(award.Date.String())))
		}
		if len(runs) > 0 {
			blocks = append(blocks, r.closingParagraph(runs...))
		}
		if award.Description != "" {
			blocks = append(blocks, r.closingParagraph(r.text(award.Description)))
		}
	}
	return blocks
}

func (r *renderer) volunteerWork(entries []types.VolunteerWork) []Block {
	var blocks []Block
	for _, work := range entries {
		if work.Organization != "" {
			blocks = append(blocks, r.paragraph(r.bold(work.Organization)))
		}
		if work.Role != "" {
			blocks = append(blocks, r.paragraph(r.text(work.Role)))
		}
		dates := dateRange(FormatDate(work.StartDate.String()), FormatDate(work.EndDate.String()))
		if dates != "" {
			blocks = append(blocks, r.paragraph(r.text(dates)))
		}
		if work.Description != "" {
			blocks = append(blocks, r.bullet(work.Description))
		}
	}
	return blocks
}

// languageEntry renders "name (native)", "name (proficiency)" or "name"
func languageEntry(lang types.Language) string {
	switch {
	case lang.Language == "":
		return ""
	case lang.Native || lang.Proficiency == "C2":
		return lang.Language + " (native)"
	case lang.Proficiency != "":
		return lang.Language + " (" + lang.Proficiency + ")"
	default:
		return lang.Language
	}
}

func (r *renderer) languages(langs []types.Language) []Block {
	entries := make([]string, 0, len(langs))
	for _, lang := range langs {
		if entry := languageEntry(lang); entry != "" {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return []Block{r.closingParagraph(r.text(strings.Join(entries, ", ")))}
}

func (r *renderer) references(refs []types.Reference) []Block {
	var blocks []Block
	for _, ref := range refs {
		if ref.Name != "" {
			runs := []Run{r.bold(ref.Name)}
			if details := joinPresent(", ", ref.Relationship, ref.Company); details != "" {
				runs = append(runs, r.text(", "+details))
			}
			blocks = append(blocks, r.paragraph(runs...))
		}
		if contact := joinPresent(" | ", ref.Email, ref.Phone); contact != "" {
			blocks = append(blocks, r.closingParagraph(r.text(contact)))
		}
	}
	return blocks
}
