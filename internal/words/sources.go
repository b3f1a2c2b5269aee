// internal/words/sources.go
//
// Word list sources.
//
// Selection (Open):
//   1. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If URL is set, fetch the JSON word list (answers = allowed).
//   4. Otherwise fall back to the lists embedded in the assets package.
//
// When CacheDSN is set the chosen source is wrapped in a sqlite cache.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/gabble/assets"
)

// Source produces raw answer and allowed lists.
type Source interface {
	Load(ctx context.Context) (answers, allowed []string, err error)
}

// Keyed is implemented by sources that can name where their words come
// from. CachedSource refills the cache when the key changes.
type Keyed interface {
	SourceKey() string
}

// sourceKey returns src's key, or "" for sources that do not implement Keyed.
func sourceKey(src Source) string {
	if k, ok := src.(Keyed); ok {
		return k.SourceKey()
	}
	return ""
}

// Options selects a Source; zero value means the embedded lists.
type Options struct {
	AnswersFile string
	AllowedFile string
	URL         string
	CacheDSN    string
}

// SourceFor returns the uncached source described by o.
func SourceFor(o Options) Source {
	switch {
	case o.AnswersFile != "" && o.AllowedFile != "":
		return FileSource{AnswersPath: o.AnswersFile, AllowedPath: o.AllowedFile}
	case o.AllowedFile != "":
		return FileSource{AllowedPath: o.AllowedFile}
	case o.URL != "":
		return &RemoteSource{URL: o.URL}
	default:
		return EmbeddedSource{}
	}
}

// Open loads a Dictionary according to o, going through the sqlite cache
// when o.CacheDSN is set.
func Open(ctx context.Context, o Options) (*Dictionary, error) {
	src := SourceFor(o)
	if o.CacheDSN != "" {
		cache, err := OpenCache(o.CacheDSN)
		if err != nil {
			return nil, err
		}
		defer cache.Close()
		src = CachedSource{Cache: cache, Source: src}
	}

	d, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	a, g := d.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("finished adding words")
	return d, nil
}

// EmbeddedSource serves the default lists compiled into the binary.
type EmbeddedSource struct{}

// SourceKey implements Keyed.
func (EmbeddedSource) SourceKey() string { return "embedded" }

// Load implements Source.
func (EmbeddedSource) Load(context.Context) ([]string, []string, error) {
	ans, err := assets.AnswersList()
	if err != nil {
		return nil, nil, fmt.Errorf("embedded answers: %w", err)
	}
	all, err := assets.AllowedList()
	if err != nil {
		return nil, nil, fmt.Errorf("embedded allowed: %w", err)
	}
	return ans, all, nil
}

// FileSource reads one word per line. With AnswersPath empty the allowed
// file doubles as the answers list.
type FileSource struct {
	AnswersPath string
	AllowedPath string
}

// SourceKey implements Keyed; paths are made absolute when possible.
func (f FileSource) SourceKey() string {
	return "file:" + absPath(f.AnswersPath) + "|" + absPath(f.AllowedPath)
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Load implements Source.
func (f FileSource) Load(context.Context) ([]string, []string, error) {
	if f.AllowedPath == "" {
		return nil, nil, errors.New("file source: allowed path not set")
	}
	allowList, err := readWordFile(f.AllowedPath)
	if err != nil {
		return nil, nil, err
	}
	if f.AnswersPath == "" {
		return allowList, allowList, nil
	}
	ansList, err := readWordFile(f.AnswersPath)
	if err != nil {
		return nil, nil, err
	}
	return ansList, allowList, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := normalize(sc.Text())
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}
