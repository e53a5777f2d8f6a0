package pagesum

import "strings"

// Style selects the prompt template used for a summary.
type Style string

// Summary styles.
const (
	StyleDefault  Style = ""
	StyleBrief    Style = "brief"
	StyleDetailed Style = "detailed"
	StyleBullets  Style = "bullets"
)

// ParseStyle returns the style named by s. An empty string or "default"
// selects StyleDefault.
func ParseStyle(s string) (Style, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "default":
		return StyleDefault, nil
	case string(StyleBrief), string(StyleDetailed), string(StyleBullets):
		return Style(v), nil
	default:
		return StyleDefault, Errorf(EINVALID, "unknown summary style %q (supported: brief, detailed, bullets, default)", s)
	}
}

// String returns the style name.
func (s Style) String() string {
	if s == StyleDefault {
		return "default"
	}
	return string(s)
}
