package validators

import (
	"net"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/idna"

	"schema-serializer/primitive"
)

var (
	emailUserRe   = regexp.MustCompile("^[\\p{L}\\p{N}_!#$%&'*+\\-/=?^`{|}~.]+$")
	emailDomainRe = regexp.MustCompile(`(?i)^(?:[a-z0-9][a-z0-9\-]{0,62}\.)+(?:[a-z]{2,63}|xn--[a-z0-9\-]{2,59})$`)
)

// EmailValidator checks e-mail addresses.
type EmailValidator struct {
	Base

	blacklist []string
}

// Email accepts addresses whose local part uses the allowed token characters
// and whose IDNA-normalised domain is a dotted name with a valid top level
// label. Domains in blacklist are rejected.
func Email(blacklist []string, opts ...Option) *EmailValidator {
	return &EmailValidator{
		Base: newBase("EmailValidator", "email", map[string]string{
			KeyInvalid: "{value} is an invalid email address.",
		}, opts),
		blacklist: blacklist,
	}
}

func (v *EmailValidator) IsValid(value any) bool {
	s := primitive.Text(value)

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}

	user, domain := s[:at], s[at+1:]

	if lo.ContainsBy(v.blacklist, func(b string) bool { return strings.EqualFold(b, domain) }) {
		return false
	}

	if !emailUserRe.MatchString(user) {
		return false
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return false
	}

	return emailDomainRe.MatchString(ascii)
}

func (v *EmailValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"value": primitive.Text(value)})
}

// DefaultSchemes are the URL schemes accepted when none are configured.
var DefaultSchemes = []string{"http", "https", "ftp", "ftps"}

var urlRe = regexp.MustCompile(`(?i)^` +
	`(?:[^\s:@/]+(?::[^\s:@/]*)?@)?` + // user:pass authentication
	`(` +
	`localhost` +
	`|(?:25[0-5]|2[0-4]\d|[0-1]?\d?\d)(?:\.(?:25[0-5]|2[0-4]\d|[0-1]?\d?\d)){3}` + // ipv4
	`|\[[0-9a-f:.]+\]` + // ipv6
	`|(?:[a-z0-9\p{L}](?:[a-z0-9\p{L}\-]{0,61}[a-z0-9\p{L}])?\.)+(?:[a-z\p{L}]{2,63}|xn--[a-z0-9]{1,59})\.?` + // domain
	`)` +
	`(?::\d{2,5})?` + // port
	`(?:[/?#]\S*)?$`) // path

// URLValidator checks URL shape and scheme.
type URLValidator struct {
	Base

	schemes []string
}

// URL accepts URLs with an optional scheme from schemes (DefaultSchemes when
// empty), optional credentials, a domain, localhost, IPv4 or bracketed IPv6
// host, an optional port and an optional path.
func URL(schemes []string, opts ...Option) *URLValidator {
	if len(schemes) == 0 {
		schemes = DefaultSchemes
	}

	return &URLValidator{
		Base: newBase("UrlValidator", "url", map[string]string{
			KeyInvalid: "{value} is an invalid url.",
		}, opts),
		schemes: lo.Map(schemes, func(s string, _ int) string { return strings.ToLower(s) }),
	}
}

func (v *URLValidator) IsValid(value any) bool {
	s := primitive.Text(value)

	if scheme, rest, ok := strings.Cut(s, "://"); ok {
		if !lo.Contains(v.schemes, strings.ToLower(scheme)) {
			return false
		}

		s = rest
	}

	m := urlRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	if host := m[1]; strings.HasPrefix(host, "[") {
		return net.ParseIP(strings.Trim(host, "[]")) != nil
	}

	return true
}

func (v *URLValidator) Validate(value any) *Failure {
	return v.check(value, v.IsValid, Params{"value": primitive.Text(value)})
}
