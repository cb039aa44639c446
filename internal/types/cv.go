// Package types provides the typed view of a CV record used by the renderer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CVRecord is a validated CV. Every section is optional.
type CVRecord struct {
	PersonalInfo        *PersonalInfo    `json:"personalInfo,omitempty"`
	ProfessionalSummary string           `json:"professionalSummary,omitempty"`
	WorkExperience      []WorkExperience `json:"workExperience,omitempty"`
	Education           []Education      `json:"education,omitempty"`
	Projects            []Project        `json:"projects,omitempty"`
	Skills              []Skill          `json:"skills,omitempty"`
	Certifications      []Certification  `json:"certifications,omitempty"`
	Publications        []Publication    `json:"publications,omitempty"`
	Awards              []Award          `json:"awards,omitempty"`
	VolunteerWork       []VolunteerWork  `json:"volunteerWork,omitempty"`
	Languages           []Language       `json:"languages,omitempty"`
	References          []Reference      `json:"references,omitempty"`
}

// PersonalInfo holds the candidate's name and contact details
type PersonalInfo struct {
	FirstName  string    `json:"firstName,omitempty"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	LinkedIn   string    `json:"linkedIn,omitempty"`
	GithubURL  string    `json:"githubUrl,omitempty"`
	Website    string    `json:"website,omitempty"`
	Portfolio  string    `json:"portfolio,omitempty"`
	Blog       string    `json:"blog,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// Location is a postal location
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// FullName joins the present name parts with single spaces
func (p *PersonalInfo) FullName() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// WorkExperience is a single job entry
type WorkExperience struct {
	Company      string   `json:"company,omitempty"`
	Position     string   `json:"position,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    Date     `json:"startDate,omitempty"`
	EndDate      Date     `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`

	// Company URL aliases, in lookup order
	CompanyURL      string `json:"companyUrl,omitempty"`
	CompanyURLSnake string `json:"company_url,omitempty"`
	Website         string `json:"website,omitempty"`
	URL             string `json:"url,omitempty"`
	Link            string `json:"link,omitempty"`
	Homepage        string `json:"homepage,omitempty"`
}

// CompanyLink returns the first non-empty company URL alias
func (w WorkExperience) CompanyLink() string {
	for _, candidate := range []string{w.CompanyURL, w.CompanyURLSnake, w.Website, w.URL, w.Link, w.Homepage} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Education is a single degree entry
type Education struct {
	Institution     string   `json:"institution,omitempty"`
	Degree          string   `json:"degree,omitempty"`
	Field           string   `json:"field,omitempty"`
	GPA             *float64 `json:"gpa,omitempty"`
	GraduationDate  Date     `json:"graduationDate,omitempty"`
	Location        string   `json:"location,omitempty"`
	Honors          []string `json:"honors,omitempty"`
	RelevantCourses []string `json:"relevantCourses,omitempty"`
}

// Project is a personal or professional project
type Project struct {
	Name         string   `json:"name,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    Date     `json:"startDate,omitempty"`
	EndDate      Date     `json:"endDate,omitempty"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Certification is a professional certification
type Certification struct {
	Name          string `json:"name,omitempty"`
	Issuer        string `json:"issuer,omitempty"`
	DateObtained  Date   `json:"dateObtained,omitempty"`
	ExpiryDate    Date   `json:"expiryDate,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

// Publication is a published work
type Publication struct {
	Title     string   `json:"title,omitempty"`
	Authors   []string `json:"authors,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Date      Date     `json:"date,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// Award is an award or honor
type Award struct {
	Name        string `json:"name,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	Date        Date   `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// VolunteerWork is an unpaid role
type VolunteerWork struct {
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	StartDate    Date   `json:"startDate,omitempty"`
	EndDate      Date   `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Language is a spoken language
type Language struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
	Native      bool   `json:"native,omitempty"`
}

// Reference is a professional reference
type Reference struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Decode builds a CVRecord from a loaded value tree.
// The tree is expected to have passed schema validation already.
func Decode(value any) (*CVRecord, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CV data: %w", err)
	}
	var record CVRecord
	if string(raw) == "null" {
		return &record, nil
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode CV data: %w", err)
	}
	return &record, nil
}
