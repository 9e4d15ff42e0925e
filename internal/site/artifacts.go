package site

import (
	"encoding/json"
	"fmt"
)

// WriteJSON serialises the final project list and leaderboard to
// pretty-printed JSON dumps. These feed the in-browser search and the
// leaderboard filter, and deserialising then re-serialising them is
// byte-stable.
func (r *Renderer) WriteJSON(ds *Dataset) error {
	projects, err := json.MarshalIndent(nonNilProjects(ds.Projects), "", "  ")
	if err != nil {
		return fmt.Errorf("site: marshal projects.json: %w", err)
	}
	if err := r.out.Write("projects.json", projects); err != nil {
		return err
	}

	stats, err := json.MarshalIndent(nonNilStats(ds.Leaderboard), "", "  ")
	if err != nil {
		return fmt.Errorf("site: marshal leaderboard.json: %w", err)
	}
	return r.out.Write("leaderboard.json", stats)
}
