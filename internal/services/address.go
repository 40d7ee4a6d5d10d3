package services

import (
	"regexp"
	"strings"
)

// ParsedAddress is the structured form of a free-text fan-mail address.
// It is derived on demand for the fulfillment payload and never persisted.
type ParsedAddress struct {
	Name     string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
}

// Matches a trailing "City, ST 12345" or "City, ST 12345-6789" line. Every
// portion is optional; unmatched groups stay empty.
var cityStateZipRe = regexp.MustCompile(`^(.*?),?\s*([A-Z]{2})?\s*(\d{5}(?:-\d{4})?)?$`)

// ParseAddress splits a multi-line fan-mail address into structured fields.
// The first non-blank line is the recipient name, the second is the street
// line, the third becomes a second street line when it is not also the last
// line, and the last line is scanned for city, state and zip. Anything in
// between (suite numbers, floors) is dropped. This is a best-effort heuristic,
// not a postal-address grammar: callers must tolerate empty fields.
func ParseAddress(raw string) (ParsedAddress, error) {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) < 2 {
		return ParsedAddress{}, ErrInvalidAddress
	}

	parsed := ParsedAddress{
		Name:     lines[0],
		Address1: lines[1],
		Country:  "US",
	}
	if len(lines) > 3 {
		parsed.Address2 = lines[2]
	}

	// With only a name and a street line there is no separate city line.
	if len(lines) < 3 {
		return parsed, nil
	}

	last := lines[len(lines)-1]
	if m := cityStateZipRe.FindStringSubmatch(last); m != nil {
		parsed.City = strings.TrimSpace(m[1])
		parsed.State = m[2]
		parsed.Zip = m[3]
	}
	return parsed, nil
}
