package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDocumentNotObject = errors.New("document is not a JSON object")

// MergeDocument overlays the top-level keys present in raw onto base.
//
// The merge is shallow: a section present in raw replaces the base section
// entirely, nested objects are not merged field by field. Keys that are
// missing or null keep the base value; unknown keys are ignored.
func MergeDocument(base Document, raw []byte) (Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		if !json.Valid(raw) {
			return base, fmt.Errorf("decode document: invalid json")
		}
		return base, ErrDocumentNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return base, fmt.Errorf("decode document: %w", err)
	}

	out := base.Clone()
	targets := map[string]func() any{
		"company":      func() any { out.Company = Company{}; return &out.Company },
		"client":       func() any { out.Client = Client{}; return &out.Client },
		"estimate":     func() any { out.Estimate = EstimateDetails{}; return &out.Estimate },
		"items":        func() any { out.Items = nil; return &out.Items },
		"customFields": func() any { out.CustomFields = nil; return &out.CustomFields },
		"notes":        func() any { out.Notes = ""; return &out.Notes },
		"terms":        func() any { out.Terms = ""; return &out.Terms },
	}

	for key, target := range targets {
		value, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(value, target()); err != nil {
			return base, fmt.Errorf("decode document %s: %w", key, err)
		}
	}

	if out.Items == nil {
		out.Items = []LineItem{}
	}
	if out.CustomFields == nil {
		out.CustomFields = []CustomField{}
	}
	return out, nil
}
