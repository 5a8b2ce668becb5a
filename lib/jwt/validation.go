// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jwt

// ValidationIssue is one finding from a claim's validation hook. The
// two flags classify it: Blocking findings make the claim unusable;
// TimeCheck findings depend on the evaluation time (expired,
// not-yet-valid) and can be excluded by callers that only care about
// structural validity.
type ValidationIssue struct {
	Description string
	Blocking    bool
	TimeCheck   bool
}

// ValidationResults accumulates issues from validation. The
// collection is an unordered set: structurally identical issues
// collapse to one entry.
type ValidationResults struct {
	issues map[ValidationIssue]struct{}
}

// NewValidationResults returns an empty collector.
func NewValidationResults() *ValidationResults {
	return &ValidationResults{issues: make(map[ValidationIssue]struct{})}
}

// AddIssue inserts issue. Duplicates are absorbed.
func (r *ValidationResults) AddIssue(issue ValidationIssue) {
	if r.issues == nil {
		r.issues = make(map[ValidationIssue]struct{})
	}
	r.issues[issue] = struct{}{}
}

// AddError records a blocking, time-independent issue.
func (r *ValidationResults) AddError(description string) {
	r.AddIssue(ValidationIssue{Description: description, Blocking: true})
}

// AddTimeCheck records a non-blocking, time-sensitive issue.
func (r *ValidationResults) AddTimeCheck(description string) {
	r.AddIssue(ValidationIssue{Description: description, TimeCheck: true})
}

// Issues returns the stored issues in no particular order.
func (r *ValidationResults) Issues() []ValidationIssue {
	issues := make([]ValidationIssue, 0, len(r.issues))
	for issue := range r.issues {
		issues = append(issues, issue)
	}
	return issues
}

// IsBlocking reports whether any stored issue makes the claim
// unusable: the issue must be blocking, and either time-independent
// or — when includeTimeChecks is set — time-sensitive as well. This
// lets callers separate "structurally invalid" from "currently
// expired".
func (r *ValidationResults) IsBlocking(includeTimeChecks bool) bool {
	for issue := range r.issues {
		if issue.Blocking && (!issue.TimeCheck || includeTimeChecks) {
			return true
		}
	}
	return false
}
