package domain

import (
	"fmt"
	"strings"
	"time"
)

// ValidationStatus indicates whether a single settings check passed.
type ValidationStatus string

const (
	ValidationStatusPass ValidationStatus = "pass"
	ValidationStatusFail ValidationStatus = "fail"
)

// ValidationItem is one field or cross-field check with optional hint.
type ValidationItem struct {
	ID      string           `json:"id"`
	Field   string           `json:"field"`
	Status  ValidationStatus `json:"status"`
	Message string           `json:"message"`
	Hint    string           `json:"hint,omitempty"`
}

// ValidationReport aggregates settings checks for form error display.
type ValidationReport struct {
	Kind        SettingsKind     `json:"kind"`
	GeneratedAt time.Time        `json:"generated_at"`
	HasFailures bool             `json:"has_failures"`
	Items       []ValidationItem `json:"items"`
}

// Failures returns only the failed items.
func (r ValidationReport) Failures() []ValidationItem {
	var out []ValidationItem
	for _, item := range r.Items {
		if item.Status == ValidationStatusFail {
			out = append(out, item)
		}
	}
	return out
}

// Err returns a *ReportError when the report has failures, nil otherwise.
func (r ValidationReport) Err() error {
	if !r.HasFailures {
		return nil
	}
	return &ReportError{Report: r}
}

// ReportError carries a failed validation report through error returns.
type ReportError struct {
	Report ValidationReport
}

// Error lists the failed fields with their messages.
func (e *ReportError) Error() string {
	if e == nil {
		return ""
	}

	parts := make([]string, 0, len(e.Report.Items))
	for _, item := range e.Report.Failures() {
		parts = append(parts, fmt.Sprintf("%s: %s", item.Field, item.Message))
	}
	return fmt.Sprintf("invalid %s settings: %s", e.Report.Kind, strings.Join(parts, "; "))
}
