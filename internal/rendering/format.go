package rendering

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

var dateLayouts = []struct {
	parse  string
	output string
}{
	{"2006-1-2", "January 02, 2006"},
	{"2006-1", "January 2006"},
	{"2006", "2006"},
}

// FormatDate renders "2025-01-15" as "January 15, 2025", "2025-01" as
// "January 2025" and "2025" as "2025". Month and day may omit the leading zero.
// Other input is returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout.parse, value); err == nil {
			return t.Format(layout.output)
		}
	}
	return value
}

// dateRange joins formatted start and end with " - ", or returns whichever is present
func dateRange(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

// ensurePeriod appends a period unless text already ends with one
func ensurePeriod(text string) string {
	if strings.HasSuffix(text, ".") {
		return text
	}
	return text + "."
}

// joinPresent joins the non-empty parts with sep
func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, sep)
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// extractDomain strips the scheme and returns everything before the first slash
func extractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	rest := strings.TrimPrefix(rawURL, "https://")
	rest = strings.TrimPrefix(rest, "http://")
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// codeHosts are registrable domains whose first path segment is a username
var codeHosts = map[string]bool{
	"github.com":    true,
	"gitlab.com":    true,
	"bitbucket.org": true,
}

const professionalNetwork = "linkedin.com"

// formatProfileURL shortens recognized profile URLs to "linkedin.com/in/<user>"
// or "<host>/<user>"; anything else is shown as its bare domain.
func formatProfileURL(rawURL string) string {
	domain := extractDomain(rawURL)
	if domain == "" {
		return ""
	}

	candidate := rawURL
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return domain
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return domain
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case registrable == professionalNetwork:
		if len(segments) >= 2 && segments[0] == "in" && segments[1] != "" {
			return professionalNetwork + "/in/" + segments[1]
		}
	case codeHosts[registrable]:
		if segments[0] != "" {
			return registrable + "/" + segments[0]
		}
	}
	return domain
}
