package nn

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// RunReport bundles what a caller needs to reproduce and inspect one build.
type RunReport struct {
	Catalog   Catalog          `json:"catalog"`
	Summary   Summary          `json:"summary"`
	Blueprint NetworkBlueprint `json:"blueprint"`
}

// NewRunReport assembles a report for a store built with the given catalog.
func NewRunReport(s *Store, catalog Catalog) RunReport {
	return RunReport{
		Catalog:   append(Catalog(nil), catalog...),
		Summary:   Summarize(s),
		Blueprint: ExtractNetworkBlueprint(s),
	}
}

// MarshalIndentedJSON serializes the report with two-space indentation.
func (r RunReport) MarshalIndentedJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize run report")
	}
	return data, nil
}
