package job

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// RelevanceFilter keeps listings whose title covers every significant token of a role
type RelevanceFilter struct {
	stopWords map[string]struct{}
	closures  map[string]map[string]struct{}
}

// NewRelevanceFilter precomputes synonym closures; the result is safe for concurrent use
func NewRelevanceFilter(vocab Vocabulary) *RelevanceFilter {
	f := &RelevanceFilter{
		stopWords: make(map[string]struct{}, len(vocab.StopWords)),
		closures:  make(map[string]map[string]struct{}),
	}

	for _, w := range vocab.StopWords {
		f.stopWords[strings.ToLower(w)] = struct{}{}
	}

	closureOf := func(tok string) map[string]struct{} {
		set, ok := f.closures[tok]
		if !ok {
			set = map[string]struct{}{tok: {}}
			f.closures[tok] = set
		}
		return set
	}

	for key, syns := range vocab.Synonyms {
		key = strings.ToLower(key)

		// key -> its own set
		own := closureOf(key)
		for _, s := range syns {
			own[strings.ToLower(s)] = struct{}{}
		}

		// member -> the key and every sibling in the set
		for _, member := range syns {
			set := closureOf(strings.ToLower(member))
			set[key] = struct{}{}
			for _, s := range syns {
				set[strings.ToLower(s)] = struct{}{}
			}
		}
	}

	return f
}

// Filter returns the listings relevant to role, preserving order
func (f *RelevanceFilter) Filter(jobs []domain.JobListing, role string) []domain.JobListing {
	out := make([]domain.JobListing, 0, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	tokens := f.SignificantTokens(role)
	if len(tokens) == 0 {
		return out
	}

	for _, j := range jobs {
		if f.matches(j, tokens) {
			out = append(out, j)
		}
	}
	return out
}

// SignificantTokens drops stop words, unless that would leave nothing
func (f *RelevanceFilter) SignificantTokens(role string) []string {
	all := tokenize(role)

	significant := make([]string, 0, len(all))
	for _, t := range all {
		if _, stop := f.stopWords[t]; !stop {
			significant = append(significant, t)
		}
	}
	if len(significant) == 0 {
		return all
	}
	return significant
}

func (f *RelevanceFilter) matches(j domain.JobListing, tokens []string) bool {
	if !j.HasTitle() {
		return false
	}

	title := make(map[string]struct{})
	for _, t := range tokenize(j.Title) {
		title[t] = struct{}{}
	}

	for _, tok := range tokens {
		if !f.covers(title, tok) {
			return false
		}
	}
	return true
}

func (f *RelevanceFilter) covers(title map[string]struct{}, tok string) bool {
	set, ok := f.closures[tok]
	if !ok {
		_, hit := title[tok]
		return hit
	}
	for t := range set {
		if _, hit := title[t]; hit {
			return true
		}
	}
	return false
}

// tokenize lowercases s and splits it on any Unicode space, dropping punctuation.
// Spaces are folded to ' ' first since RE2's \s is ASCII only.
func tokenize(s string) []string {
	lower := cases.Lower(language.Und).String(s)
	spaced := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Z, r) {
			return ' '
		}
		return r
	}, lower)
	return strings.Fields(nonWordPattern.ReplaceAllString(spaced, ""))
}
