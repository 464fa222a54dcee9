package render

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
)

// Tag names of the XML-based substitution serialization: a cds-root element
// holding cds-unit children keyed by dotted identifiers.
const (
	xmlRootMarker = "<cds-root"

	// DefaultSecondaryDevice is the device bucket tried when no unit
	// matches the exact runtime device class.
	DefaultSecondaryDevice = "phone"

	// GenericDevice is the catch-all device bucket.
	GenericDevice = "other"

	// deviceToken is the synthetic token name device variants collapse
	// into when the document has no substitution units.
	deviceToken = "content"
)

// SubstitutionRules is the reduced form of an XML substitution template: a
// single phrase with embedded `%#@token@` markers and a plural rule set per
// token.
type SubstitutionRules struct {
	Phrase string
	Tokens map[string]RuleSet
}

// IsSubstitutionTemplate reports whether template carries the XML
// substitution serialization.
func IsSubstitutionTemplate(template string) bool {
	return strings.Contains(template, xmlRootMarker)
}

type xmlRoot struct {
	XMLName xml.Name  `xml:"cds-root"`
	Units   []xmlUnit `xml:"cds-unit"`
}

type xmlUnit struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// ParseSubstitutions reduces an XML substitution template to a phrase and
// per-token rule sets. Device-specific variants are reconciled against the
// given runtime device class, trying the exact name first, then
// secondaryDevice, then the generic "other" bucket.
//
// Recognized unit identifiers:
//
//	device.<deviceName>.plural.<category>
//	substitutions.<tokenName>.plural.<category>
//	phrase
//
// When the document holds several substitution tokens and no explicit
// phrase, a combined phrase is synthesized with one embedded marker per
// token.
func ParseSubstitutions(template, device, secondaryDevice string) (*SubstitutionRules, error) {
	var root xmlRoot
	if err := xml.Unmarshal([]byte(template), &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSubstitution, err)
	}

	deviceRules := make(map[string]RuleSet)
	tokenRules := make(map[string]RuleSet)
	phrase := ""

	for _, unit := range root.Units {
		parts := strings.Split(unit.ID, ".")
		switch {
		case unit.ID == "phrase":
			phrase = unit.Text

		case len(parts) == 4 && parts[0] == "device" && parts[2] == "plural":
			category, ok := ParseCategory(parts[3])
			if !ok {
				continue
			}
			rules, exists := deviceRules[parts[1]]
			if !exists {
				rules = make(RuleSet)
				deviceRules[parts[1]] = rules
			}
			rules[category] = unit.Text

		case len(parts) == 4 && parts[0] == "substitutions" && parts[2] == "plural":
			category, ok := ParseCategory(parts[3])
			if !ok {
				continue
			}
			rules, exists := tokenRules[parts[1]]
			if !exists {
				rules = make(RuleSet)
				tokenRules[parts[1]] = rules
			}
			rules[category] = unit.Text
		}
	}

	if resolved, ok := resolveDevice(deviceRules, device, secondaryDevice); ok {
		tokenRules[deviceToken] = resolved
	}

	if len(tokenRules) == 0 {
		return nil, ErrMalformedSubstitution
	}

	if phrase == "" {
		phrase = synthesizePhrase(tokenRules)
	}

	return &SubstitutionRules{Phrase: phrase, Tokens: tokenRules}, nil
}

// resolveDevice picks the rule set for the runtime device class with the
// defined fallback order.
func resolveDevice(deviceRules map[string]RuleSet, device, secondaryDevice string) (RuleSet, bool) {
	if len(deviceRules) == 0 {
		return nil, false
	}
	for _, name := range []string{device, secondaryDevice, GenericDevice} {
		if rules, ok := deviceRules[name]; ok && len(rules) > 0 {
			return rules, true
		}
	}
	return nil, false
}

// synthesizePhrase builds a combined phrase with one embedded marker per
// token, in stable order.
func synthesizePhrase(tokenRules map[string]RuleSet) string {
	names := make([]string, 0, len(tokenRules))
	for name := range tokenRules {
		names = append(names, name)
	}
	sort.Strings(names)

	markers := make([]string, len(names))
	for i, name := range names {
		markers[i] = "%#@" + name + "@"
	}
	return strings.Join(markers, " ")
}
