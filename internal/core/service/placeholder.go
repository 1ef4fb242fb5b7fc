package service

import "strings"

// Placeholders lists the example values shipped in .env.example. A value
// matching them means the user never filled the key in.
type Placeholders struct {
	// Substrings are removed from required values before any other test.
	Substrings []string
	// ExamplePrefixes mark a required value as unconfigured.
	ExamplePrefixes []string
	// OptionalExamplePrefixes mark an optional value as unconfigured.
	OptionalExamplePrefixes []string
}

func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Substrings:              []string{"YOUR_API_KEY", "0xYourWalletAddress"},
		ExamplePrefixes:         []string{"sk-proj-...", "AIza..."},
		OptionalExamplePrefixes: []string{"https://eth-mainnet.g.alchemy.com"},
	}
}

// WithSubstrings returns a copy with extra substrings appended.
func (p Placeholders) WithSubstrings(extra ...string) Placeholders {
	subs := make([]string, 0, len(p.Substrings)+len(extra))
	subs = append(subs, p.Substrings...)
	for _, s := range extra {
		if s = strings.TrimSpace(s); s != "" {
			subs = append(subs, s)
		}
	}
	p.Substrings = subs
	return p
}

// FilterRequired strips placeholder substrings and reports whether what
// remains counts as configured.
func (p Placeholders) FilterRequired(raw string) (string, bool) {
	value := raw
	for _, s := range p.Substrings {
		value = strings.ReplaceAll(value, s, "")
	}
	if value == "" || hasAnyPrefix(value, p.ExamplePrefixes) {
		return value, false
	}
	return value, true
}

// FilterOptional reports whether an optional value counts as configured.
func (p Placeholders) FilterOptional(raw string) (string, bool) {
	if raw == "" || hasAnyPrefix(raw, p.OptionalExamplePrefixes) {
		return raw, false
	}
	return raw, true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, pre := range prefixes {
		if strings.HasPrefix(s, pre) {
			return true
		}
	}
	return false
}
