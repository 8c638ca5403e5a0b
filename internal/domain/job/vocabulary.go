package job

// SynonymTable maps a canonical token to tokens that may stand in for it.
// Lookups close the relation, so entries need not be stored both ways.
type SynonymTable map[string][]string

// Vocabulary is the immutable data the relevance filter is built from
type Vocabulary struct {
	Synonyms  SynonymTable
	StopWords []string
}

// DefaultVocabulary returns the built-in synonym and stop-word tables
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Synonyms: SynonymTable{
			"engineer":      {"developer", "programmer", "coder", "architect", "engineering"},
			"developer":     {"engineer", "programmer", "coder", "architect", "development"},
			"software":      {"sw", "application", "app"},
			"manager":       {"lead", "director", "head", "management"},
			"admin":         {"administrator", "coordinator"},
			"administrator": {"admin", "coordinator"},
			"designer":      {"artist", "creative", "design"},
			"data":          {"analytics", "bi"},
			"devops":        {"sre", "platform", "infrastructure"},
			"frontend":      {"front-end", "ui", "react", "angular", "vue"},
			"backend":       {"back-end", "api", "server"},
			"fullstack":     {"full-stack", "full"},
		},
		StopWords: []string{
			"senior", "junior", "mid", "level",
			"the", "a", "an", "and", "or", "of", "for", "in", "at",
		},
	}
}
