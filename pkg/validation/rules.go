package validation

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	websitePattern = regexp.MustCompile(`(?i)^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})[/\w .-]*/?$`)
)

// emailPart excludes '@' and every character a browser regexp treats as
// whitespace, including no-break and other Unicode spaces.
const emailPart = `[^\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+`

const (
	minPhoneDigits = 8
	maxPhoneDigits = 15
)

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts international numbers: a leading '+' followed by
// 8 to 15 ASCII digits once everything else is stripped.
func ValidPhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// ValidWebsite accepts bare domains, domain paths and http(s) URLs, e.g.
// company.com, linkedin.com/company/acme or https://www.company.com.
func ValidWebsite(website string) bool {
	website = strings.TrimSpace(website)
	if !websitePattern.MatchString(website) {
		return false
	}
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		website = "https://" + website
	}
	u, err := url.Parse(website)
	if err != nil {
		return false
	}
	return u.Host != ""
}
