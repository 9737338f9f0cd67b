// Package loader reads profiles, synonym dictionaries, and corpus
// documents from their on-disk formats. Profile and dictionary files are
// line-delimited; the corpus is a directory of plain-text files.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/fdiazgon/minimal-ir/internal/dictionary"
	"github.com/fdiazgon/minimal-ir/internal/domain"
	"github.com/fdiazgon/minimal-ir/internal/stemming"
)

// BuildProfiles reads one profile per line, fields separated by delimiter:
// the user name first, then one or more raw interests. It returns the
// profiles and the union of their stemmed interests, which is the
// profile-driven vocabulary. Blank lines are skipped; a line with fewer
// than two fields is a data-format error.
func BuildProfiles(path, delimiter string) ([]*domain.Profile, []string, error) {
	var profiles []*domain.Profile
	var terms []string
	err := eachLine(path, func(n int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%s:%d: expected a name and at least one interest", path, n)
		}
		name, interests := fields[0], fields[1:]
		profiles = append(profiles, domain.NewProfile(name, interests))
		terms = append(terms, lo.Map(interests, func(interest string, _ int) string {
			return stemming.Stem(interest)
		})...)
		return nil
	}, delimiter)
	if err != nil {
		return nil, nil, err
	}
	return profiles, lo.Uniq(terms), nil
}

// BuildDictionary reads one synonym cluster per line, fields separated by
// delimiter: the canonical raw term first, then its synonyms. All fields
// are stemmed on insertion and the first field's stem becomes the cluster's
// canonical term.
func BuildDictionary(path, delimiter string) (dictionary.Dictionary, error) {
	var clusters [][]string
	err := eachLine(path, func(n int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%s:%d: expected a canonical term and at least one synonym", path, n)
		}
		clusters = append(clusters, fields)
		return nil
	}, delimiter)
	if err != nil {
		return nil, err
	}
	return dictionary.FromClusters(clusters), nil
}

// LoadCorpus enumerates dir and reads every file with a recognized
// extension wholly into memory. The document id is the filename without
// its extension. Subdirectories are not descended into.
func LoadCorpus(dir string, extensions []string) ([]domain.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}
	var corpus []domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !lo.Contains(extensions, ext) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		corpus = append(corpus, domain.Document{
			ID:      strings.TrimSuffix(name, ext),
			Path:    path,
			Content: string(data),
		})
	}
	return corpus, nil
}

func eachLine(path string, fn func(n int, fields []string) error, delimiter string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(n, strings.Split(line, delimiter)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
