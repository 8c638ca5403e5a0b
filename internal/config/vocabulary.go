package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/honeycarbs/career-hunter/internal/domain/job"
)

type vocabularyFile struct {
	Synonyms  map[string][]string `yaml:"synonyms"`
	StopWords []string            `yaml:"stop_words"`
}

// LoadVocabulary returns the built-in vocabulary when path is empty. Sections
// present in the file replace the corresponding built-in table.
func LoadVocabulary(path string) (job.Vocabulary, error) {
	vocab := job.DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab, fmt.Errorf("read vocabulary file: %w", err)
	}

	return ParseVocabulary(data)
}

// ParseVocabulary decodes YAML vocabulary over the built-in defaults
func ParseVocabulary(data []byte) (job.Vocabulary, error) {
	vocab := job.DefaultVocabulary()

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return vocab, fmt.Errorf("decode vocabulary: %w", err)
	}

	if file.Synonyms != nil {
		vocab.Synonyms = job.SynonymTable(file.Synonyms)
	}
	if file.StopWords != nil {
		vocab.StopWords = file.StopWords
	}

	return vocab, nil
}
