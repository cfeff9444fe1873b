// Package jid models address-like identifiers of the form
// local@domain/resource.
//
// A JID is an immutable comparable value: two JIDs are equal exactly when
// their normalized parts are equal, which makes JID usable directly as a
// map or cache key. The only way to build a non-zero JID is New or Parse,
// both of which normalize every part and guarantee valid UTF-8.
package jid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/secure/precis"
	"golang.org/x/text/unicode/norm"
)

// MaxPartLen is the maximum length of each part in bytes.
const MaxPartLen = 1023

var (
	ErrEmpty           = errors.New("jid: empty identifier")
	ErrNoDomain        = errors.New("jid: missing domain")
	ErrInvalidLocal    = errors.New("jid: invalid local part")
	ErrInvalidDomain   = errors.New("jid: invalid domain")
	ErrInvalidResource = errors.New("jid: invalid resource")
	ErrTooLong         = errors.New("jid: part exceeds 1023 bytes")
)

// JID is a parsed identifier. Empty parts are absent.
type JID struct {
	local    string
	domain   string
	resource string
}

func (j JID) Local() string    { return j.local }
func (j JID) Domain() string   { return j.domain }
func (j JID) Resource() string { return j.resource }

// IsZero reports whether every part is absent.
func (j JID) IsZero() bool { return j == JID{} }

// IsBare reports whether the identifier has no resource.
func (j JID) IsBare() bool { return j.resource == "" }

// Bare returns the identifier without its resource.
func (j JID) Bare() JID {
	j.resource = ""
	return j
}

// String renders local@domain/resource, omitting absent parts and
// their separators.
func (j JID) String() string {
	var sb strings.Builder
	sb.Grow(len(j.local) + len(j.domain) + len(j.resource) + 2)
	if j.local != "" {
		sb.WriteString(j.local)
		sb.WriteByte('@')
	}
	sb.WriteString(j.domain)
	if j.resource != "" {
		sb.WriteByte('/')
		sb.WriteString(j.resource)
	}
	return sb.String()
}

// New builds a JID from already split parts. Parts are normalized to NFC
// and the domain is case-folded; no PRECIS enforcement is applied, so
// New accepts anything that Parse would split the same way.
func New(local, domain, resource string) (JID, error) {
	j := JID{
		local:    nfc(local),
		domain:   foldDomain(domain),
		resource: nfc(resource),
	}
	if err := j.validate(); err != nil {
		return JID{}, err
	}
	return j, nil
}

// MustNew is New that panics on error. Intended for tests and constants.
func MustNew(local, domain, resource string) JID {
	j, err := New(local, domain, resource)
	if err != nil {
		panic(err)
	}
	return j
}

// Parse splits s at the first '/' (resource) and then at the first '@'
// before it (local part), and normalizes the parts like New.
func Parse(s string) (JID, error) {
	local, domain, resource, err := split(s)
	if err != nil {
		return JID{}, err
	}
	return New(local, domain, resource)
}

// ParseStrict is Parse with PRECIS enforcement: the local part must
// satisfy the UsernameCasePreserved profile and the resource the
// OpaqueString profile. Mixed-direction local parts are rejected here,
// so homograph checks should normally run on Parse results instead.
func ParseStrict(s string) (JID, error) {
	local, domain, resource, err := split(s)
	if err != nil {
		return JID{}, err
	}
	if local != "" {
		local, err = precis.UsernameCasePreserved.String(local)
		if err != nil {
			return JID{}, fmt.Errorf("%w: %w", ErrInvalidLocal, err)
		}
	}
	if resource != "" {
		resource, err = precis.OpaqueString.String(resource)
		if err != nil {
			return JID{}, fmt.Errorf("%w: %w", ErrInvalidResource, err)
		}
	}
	return New(local, domain, resource)
}

func split(s string) (local, domain, resource string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", "", ErrEmpty
	}
	domain = s
	if i := strings.IndexByte(domain, '/'); i >= 0 {
		domain, resource = domain[:i], domain[i+1:]
		if resource == "" {
			return "", "", "", fmt.Errorf("%w: empty after '/'", ErrInvalidResource)
		}
	}
	if i := strings.IndexByte(domain, '@'); i >= 0 {
		local, domain = domain[:i], domain[i+1:]
		if local == "" {
			return "", "", "", fmt.Errorf("%w: empty before '@'", ErrInvalidLocal)
		}
	}
	if domain == "" {
		return "", "", "", ErrNoDomain
	}
	return local, domain, resource, nil
}

func (j JID) validate() error {
	if j.domain == "" {
		if j.local == "" && j.resource == "" {
			return ErrEmpty
		}
		return ErrNoDomain
	}
	if len(j.local) > MaxPartLen || len(j.domain) > MaxPartLen || len(j.resource) > MaxPartLen {
		return ErrTooLong
	}
	if strings.ContainsAny(j.local, "@/") || !printable(j.local, false) {
		return fmt.Errorf("%w: %q", ErrInvalidLocal, j.local)
	}
	if strings.ContainsAny(j.domain, "@/") || !printable(j.domain, false) {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, j.domain)
	}
	// ресурс свободной формы, пробелы допустимы
	if !printable(j.resource, true) {
		return fmt.Errorf("%w: %q", ErrInvalidResource, j.resource)
	}
	return nil
}

// printable rejects control characters and, unless allowSpace is set,
// whitespace. Everything else, mixed scripts included, is left for the
// detector to judge.
func printable(s string, allowSpace bool) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsSpace(r) && !(allowSpace && r == ' ') {
			return false
		}
	}
	return true
}

func nfc(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return norm.NFC.String(s)
}

func foldDomain(s string) string {
	s = strings.TrimSuffix(nfc(s), ".")
	// Caser хранит состояние, делить между горутинами нельзя
	return cases.Fold().String(s)
}
