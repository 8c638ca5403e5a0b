package job

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

func titled(titles ...string) []domain.JobListing {
	out := make([]domain.JobListing, len(titles))
	for i, t := range titles {
		out[i] = domain.JobListing{ID: t, Title: t}
	}
	return out
}

func titlesOf(jobs []domain.JobListing) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestRelevanceFilter_Filter(t *testing.T) {
	f := NewRelevanceFilter(DefaultVocabulary())

	tests := []struct {
		name   string
		role   string
		titles []string
		want   []string
	}{
		{
			name:   "synonym satisfies a token",
			role:   "Software Engineer",
			titles: []string{"Software Developer", "Python Developer", "Tech Lead"},
			want:   []string{"Software Developer"},
		},
		{
			name:   "every token must be covered",
			role:   "Engineer Manager",
			titles: []string{"Engineering Manager", "Tech Lead", "Software Engineer"},
			want:   []string{"Engineering Manager"},
		},
		{
			name:   "stop words are ignored",
			role:   "Senior Data Engineer",
			titles: []string{"Data Engineer", "Junior Analytics Developer", "Senior Designer"},
			want:   []string{"Data Engineer", "Junior Analytics Developer"},
		},
		{
			name:   "unicode spaces separate words",
			role:   "software engineer",
			titles: []string{"Software\u00a0Engineer", "Software Engineer", "Software\u2009Developer", "SoftwareEngineer"},
			want:   []string{"Software\u00a0Engineer", "Software Engineer", "Software\u2009Developer"},
		},
		{
			name:   "punctuation is stripped from titles",
			role:   "Frontend Developer",
			titles: []string{"Front-End Developer (React)", "Backend Developer"},
			want:   []string{"Front-End Developer (React)"},
		},
		{
			name:   "order is preserved",
			role:   "developer",
			titles: []string{"Go Developer", "Designer", "Java Engineer", "Coder"},
			want:   []string{"Go Developer", "Java Engineer", "Coder"},
		},
		{
			name:   "missing titles are excluded",
			role:   "engineer",
			titles: []string{"", "N/A", "Engineer"},
			want:   []string{"Engineer"},
		},
		{
			name:   "blank role matches nothing",
			role:   "   ",
			titles: []string{"Engineer"},
			want:   []string{},
		},
		{
			name:   "punctuation only role matches nothing",
			role:   "?!",
			titles: []string{"Engineer"},
			want:   []string{},
		},
		{
			name:   "unicode titles",
			role:   "Ingénieur",
			titles: []string{"INGÉNIEUR logiciel", "Ingenieur"},
			want:   []string{"INGÉNIEUR logiciel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Filter(titled(tt.titles...), tt.role)
			assert.Equal(t, tt.want, titlesOf(got))
		})
	}
}

func TestRelevanceFilter_StopWordFallback(t *testing.T) {
	f := NewRelevanceFilter(DefaultVocabulary())

	assert.Equal(t, []string{"the", "senior"}, f.SignificantTokens("The Senior"))

	got := f.Filter(titled("Senior Engineer", "Engineer", "The Senior Partner"), "Senior The")
	assert.Equal(t, []string{"The Senior Partner"}, titlesOf(got))
}

func TestRelevanceFilter_Closures(t *testing.T) {
	f := NewRelevanceFilter(DefaultVocabulary())

	keys := func(set map[string]struct{}) []string {
		out := make([]string, 0, len(set))
		for k := range set {
			out = append(out, k)
		}
		return out
	}

	assert.ElementsMatch(t,
		[]string{"engineer", "developer", "programmer", "coder", "architect", "engineering", "development"},
		keys(f.closures["engineer"]),
	)
	assert.Contains(t, f.closures["lead"], "manager")
	assert.Contains(t, f.closures["lead"], "director")
	assert.NotContains(t, f.closures, "plumber")

	got := f.Filter(titled("Plumber", "Plumbing Apprentice"), "plumber")
	assert.Equal(t, []string{"Plumber"}, titlesOf(got))
}

func TestRelevanceFilter_CustomVocabulary(t *testing.T) {
	f := NewRelevanceFilter(Vocabulary{
		Synonyms: SynonymTable{"nurse": {"rn"}},
	})

	got := f.Filter([]domain.JobListing{{Title: "RN - Night Shift"}, {Title: "Software Developer"}}, "nurse")
	assert.Equal(t, []string{"RN - Night Shift"}, titlesOf(got))

	assert.Empty(t, f.Filter([]domain.JobListing{{Title: "Software Developer"}}, "software engineer"))
}

func TestRelevanceFilter_EmptyInput(t *testing.T) {
	f := NewRelevanceFilter(DefaultVocabulary())

	got := f.Filter(nil, "engineer")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
