package ui

import (
	"encoding/json"
	"fmt"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

// exportSummary adds the rounded average to the raw statistics.
type exportSummary struct {
	reviews.Summary
	Average float64 `json:"average"`
}

type exportPayload struct {
	AppID   string           `json:"app_id"`
	Summary *exportSummary   `json:"summary,omitempty"`
	Reviews []reviews.Review `json:"reviews"`
}

// BuildExportJSON renders the loaded reviews of appID as indented JSON.
// The summary is omitted for an empty list.
func BuildExportJSON(appID string, list []reviews.Review) (string, error) {
	if list == nil {
		list = []reviews.Review{}
	}
	payload := exportPayload{AppID: appID, Reviews: list}
	if s, ok := reviews.Summarize(list); ok {
		payload.Summary = &exportSummary{Summary: s, Average: s.RoundedAverage()}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reviews: %w", err)
	}
	return string(data), nil
}

// copyCurrentReview puts the focused review on the clipboard.
func (m *Model) copyCurrentReview() error {
	card, ok := m.listView.Current()
	if !ok {
		return fmt.Errorf("no review selected")
	}
	if err := m.clipboardWrite(card.Text()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// exportToClipboard copies the loaded set as JSON.
func (m *Model) exportToClipboard() error {
	data, err := BuildExportJSON(m.state.CommittedID, m.state.Reviews)
	if err != nil {
		return err
	}
	if err := m.clipboardWrite(data); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
