package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultURL is the public five-letter word list the game was first built against.
const DefaultURL = "https://www.wordgamedictionary.com/word-lists/5-letter-words/5-letter-words.json"

// RemoteSource fetches a JSON array of {"word": "..."} objects.
// Every fetched word is both an answer and an allowed guess.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

type remoteWord struct {
	Word string `json:"word"`
}

// SourceKey implements Keyed.
func (s *RemoteSource) SourceKey() string { return "url:" + s.URL }

// Load implements Source.
func (s *RemoteSource) Load(ctx context.Context) ([]string, []string, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("remote words: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("remote words: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("remote words: %s: status %d", s.URL, res.StatusCode)
	}

	var entries []remoteWord
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, nil, fmt.Errorf("remote words: decode: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Word)
		log.Trace().Str("word", e.Word).Msg("adding word")
	}
	return out, out, nil
}
