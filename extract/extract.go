// Package extract parses free-text listing fields into structured
// attributes.
//
// A single Extractor instance holds the compiled rule set and the
// manufacturer vocabulary. Parse is read-only; Apply performs the
// fill-only-if-empty merge over a record's model and description
// fields, so running it twice is the same as running it once.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dealpredict/carwash/listing"
)

// Fields is the partial attribute record pulled out of one text field.
// Empty string / zero year mean "not found".
type Fields struct {
	Manufacturer string
	Type         string
	Drive        string
	Cylinders    string
	Year         int
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Cylinder rules in precedence order; first hit wins.
var cylinderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:cyl|cylinder|cylinders?)\b`),
	regexp.MustCompile(`(?i)\b(\d+)(?:\s*|-)?(?:cyl|cylinder|cylinders?)\b`),
}

// Drive rules in precedence order: the 4wd family is checked before
// rwd, which is checked before fwd, regardless of token position in
// the text.
var driveRules = []struct {
	re    *regexp.Regexp
	canon string
}{
	{regexp.MustCompile(`(?i)\b(4d|4wd|awd|all.?wheel.?drive|4x4)\b`), "4wd"},
	{regexp.MustCompile(`(?i)\b(2d|rwd|rear.?wheel.?drive)\b`), "rwd"},
	{regexp.MustCompile(`(?i)\b(fwd|front.?wheel.?drive)\b`), "fwd"},
}

var typeRe = regexp.MustCompile(`(?i)\b(sedan|coupe|suv|hatchback|wagon|convertible|pickup|truck|van|mini.?van|minivan|offroad|bus)\b`)

// typeCanon maps a matched body-style token (lowercased, separators
// removed) to its canonical casing.
var typeCanon = map[string]string{
	"sedan": "sedan", "coupe": "coupe", "suv": "SUV",
	"hatchback": "hatchback", "wagon": "wagon", "convertible": "convertible",
	"pickup": "pickup", "truck": "truck", "van": "van",
	"minivan": "mini-van", "offroad": "offroad", "bus": "bus",
}

// Extractor parses free-text fields using a fixed rule set and a
// manufacturer vocabulary. Safe for concurrent use once built.
type Extractor struct {
	multiWord  []manufacturerPattern
	singleWord map[string]string
}

type manufacturerPattern struct {
	name string
	re   *regexp.Regexp
}

// NewExtractor compiles the rule set for the given manufacturer
// vocabulary. Multi-word names (containing a space or hyphen) are
// matched longest-first as whole words with either separator; the
// rest match against individual words of the text.
func NewExtractor(manufacturers []string) *Extractor {
	e := &Extractor{singleWord: make(map[string]string)}

	var multi []string
	for _, name := range manufacturers {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, " -") {
			multi = append(multi, name)
		} else {
			e.singleWord[name] = name
		}
	}

	// Longest first so "land rover" cannot lose to a shorter name
	// matching inside it.
	sort.SliceStable(multi, func(i, j int) bool { return len(multi[i]) > len(multi[j]) })
	for _, name := range multi {
		quoted := regexp.QuoteMeta(name)
		quoted = strings.ReplaceAll(quoted, "-", `[-\s]`)
		quoted = strings.ReplaceAll(quoted, " ", `[-\s]`)
		e.multiWord = append(e.multiWord, manufacturerPattern{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + quoted + `\b`),
		})
	}
	return e
}

// Parse extracts the attribute fields found in text. Each field is
// independent; the first matching rule for a field wins.
func (e *Extractor) Parse(text string) Fields {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "nan") {
		return Fields{}
	}

	var f Fields

	if m := yearRe.FindString(text); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			f.Year = year
		}
	}

	for _, re := range cylinderRes {
		if m := re.FindStringSubmatch(text); m != nil {
			f.Cylinders = fmt.Sprintf("%s cylinders", m[1])
			break
		}
	}

	for _, rule := range driveRules {
		if rule.re.MatchString(text) {
			f.Drive = rule.canon
			break
		}
	}

	if m := typeRe.FindStringSubmatch(text); m != nil {
		token := strings.ToLower(m[1])
		token = strings.ReplaceAll(token, "-", "")
		token = strings.ReplaceAll(token, " ", "")
		if canon, ok := typeCanon[token]; ok {
			f.Type = canon
		} else {
			f.Type = token
		}
	}

	f.Manufacturer = e.manufacturer(text)

	return f
}

func (e *Extractor) manufacturer(text string) string {
	lower := strings.ToLower(text)
	for _, p := range e.multiWord {
		if p.re.MatchString(lower) {
			return p.name
		}
	}
	for _, word := range strings.Fields(text) {
		if name, ok := e.singleWord[strings.ToLower(strings.TrimSpace(word))]; ok {
			return name
		}
	}
	return ""
}

// Apply parses the record's model field, then its description, filling
// only attribute fields that are still blank. Existing non-blank
// values are never overwritten.
func (e *Extractor) Apply(r *listing.Record) {
	for _, src := range []*string{r.Model, r.Description} {
		if listing.Blank(src) {
			continue
		}
		f := e.Parse(*src)

		if f.Manufacturer != "" && listing.Blank(r.Manufacturer) {
			r.Manufacturer = listing.String(f.Manufacturer)
		}
		if f.Type != "" && listing.Blank(r.Type) {
			r.Type = listing.String(f.Type)
		}
		if f.Drive != "" && listing.Blank(r.Drive) {
			r.Drive = listing.String(f.Drive)
		}
		if f.Cylinders != "" && listing.Blank(r.Cylinders) {
			r.Cylinders = listing.String(f.Cylinders)
		}
		if f.Year != 0 && r.Year == nil {
			r.Year = listing.Int(f.Year)
		}
	}
}
