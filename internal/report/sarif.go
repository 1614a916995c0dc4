package report

import (
	"encoding/json"

	"sentra/internal/security"
)

// SARIF 2.1.0 export for CI integration. Every finding is advisory, so all
// results carry the "warning" level; the rule id is the stable diagnostic
// code (SEC-002/003/004).

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	Physical sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
}

const sarifSchema = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// ToSARIF serializes warnings as a SARIF 2.1.0 document.
func ToSARIF(warnings []security.SecurityWarning, toolName string) ([]byte, error) {
	rules := make(map[string]bool)
	var ruleList []sarifRule

	results := make([]sarifResult, 0, len(warnings))
	for _, w := range warnings {
		code := w.Code()
		if !rules[code] {
			rules[code] = true
			ruleList = append(ruleList, sarifRule{
				ID:               code,
				ShortDescription: sarifMessage{Text: security.DescribeCode(code)},
			})
		}

		endLine := w.EndPos.Line
		if endLine < w.Position.Line {
			endLine = w.Position.Line
		}
		results = append(results, sarifResult{
			RuleID:  code,
			Level:   "warning",
			Message: sarifMessage{Text: w.Message()},
			Locations: []sarifLoc{{Physical: sarifPhys{
				ArtifactLocation: sarifArt{URI: w.Position.Filename},
				Region: sarifRegion{
					StartLine:   w.Position.Line,
					StartColumn: w.Position.Column,
					EndLine:     endLine,
				},
			}}},
		})
	}

	doc := sarif{
		Version: "2.1.0",
		Schema:  sarifSchema,
		Runs: []sarifRun{{
			Tool:    sarifTool{Driver: sarifDriver{Name: toolName, Rules: ruleList}},
			Results: results,
		}},
	}
	return json.MarshalIndent(doc, "", "  ")
}
