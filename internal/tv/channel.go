// Package tv provides the read-only live TV channel source.
package tv

import (
	"encoding/json"
	"fmt"
)

// Channel is one playable live TV channel.
type Channel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
	URL     string `json:"url"`
}

// rawChannel mirrors one entry of the source document.
type rawChannel struct {
	Name    string     `json:"name"`
	Logo    string     `json:"logo"`
	Website string     `json:"website,omitempty"`
	Country string     `json:"country"`
	Streams streamList `json:"streams"`
}

// streamList accepts the source's streams field, which may be a single
// string or an ordered list of strings.
type streamList []string

func (s *streamList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = streamList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = streamList(many)
	return nil
}

// parseChannels decodes the source document. The first stream entry wins;
// channels with no resolvable stream are excluded. Channel ids derive
// from list position and name so they stay stable across reloads of the
// same document.
func parseChannels(data []byte) ([]Channel, error) {
	var raw []rawChannel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse channel document: %w", err)
	}

	out := make([]Channel, 0, len(raw))
	for i, rc := range raw {
		if len(rc.Streams) == 0 || rc.Streams[0] == "" {
			continue
		}
		out = append(out, Channel{
			ID:      fmt.Sprintf("%d-%s", i, rc.Name),
			Name:    rc.Name,
			Logo:    rc.Logo,
			Country: rc.Country,
			URL:     rc.Streams[0],
		})
	}
	return out, nil
}
