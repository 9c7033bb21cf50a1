// Package bind validates role bind payloads before they reach the store.
// Validation is fully up-front: a payload either passes as a whole or is
// rejected with the complete list of issues, never applied field by field.
package bind

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

// IssueCode classifies a validation failure in a machine-checkable way.
type IssueCode string

const (
	IssueCodeTooSmall         IssueCode = "too_small"
	IssueCodeTooBig           IssueCode = "too_big"
	IssueCodeInvalidEnumValue IssueCode = "invalid_enum_value"
	IssueCodeCustom           IssueCode = "custom"
)

// Issue is a single field-level validation failure. Path names the offending
// field as a sequence of object keys and array indices, e.g.
// ["requirements", 2, "data", 1].
type Issue struct {
	Code    IssueCode `json:"code"`
	Path    []any     `json:"path"`
	Message string    `json:"message"`
}

// ValidateCreate checks a create payload, shape first and then requirement
// semantics. The returned slice is empty for a valid payload.
func ValidateCreate(p *Payload) []Issue {
	issues := validateShape(p)
	issues = append(issues, CheckRequirements(p.Requirements)...)

	return issues
}

// ValidateUpdate checks an update payload. Beyond the create rules it
// requires a target identifying the bind to mutate.
func ValidateUpdate(p *UpdatePayload) []Issue {
	issues := validateShape(&p.Payload)

	if p.Target == "" {
		issues = append(issues, Issue{
			Code:    IssueCodeTooSmall,
			Path:    []any{"target"},
			Message: "target is required",
		})
	}

	issues = append(issues, CheckRequirements(p.Requirements)...)

	return issues
}

// validateShape enforces the structural rules a schema can express:
// lengths, counts, and enum membership.
func validateShape(p *Payload) []Issue {
	var issues []Issue

	if p.Name == "" {
		issues = append(issues, Issue{
			Code:    IssueCodeTooSmall,
			Path:    []any{"name"},
			Message: "name must not be empty",
		})
	} else if utf8.RuneCountInString(p.Name) > MaxNameLength {
		issues = append(issues, Issue{
			Code:    IssueCodeTooBig,
			Path:    []any{"name"},
			Message: "name must be at most 50 characters",
		})
	}

	if !p.Type.IsValid() {
		issues = append(issues, Issue{
			Code:    IssueCodeInvalidEnumValue,
			Path:    []any{"type"},
			Message: "unknown bind type",
		})
	}

	switch {
	case len(p.Data) < MinTargets:
		issues = append(issues, Issue{
			Code:    IssueCodeTooSmall,
			Path:    []any{"data"},
			Message: "at least one target role is required",
		})
	case len(p.Data) > MaxTargets:
		issues = append(issues, Issue{
			Code:    IssueCodeTooBig,
			Path:    []any{"data"},
			Message: "at most 100 target roles are allowed",
		})
	}

	for i, target := range p.Data {
		if utf8.RuneCountInString(target) > MaxTargetLength {
			issues = append(issues, Issue{
				Code:    IssueCodeTooBig,
				Path:    []any{"data", i},
				Message: "target must be at most 100 characters",
			})
		}
	}

	for i, requirement := range p.Requirements {
		if !requirement.Type.IsValid() {
			issues = append(issues, Issue{
				Code:    IssueCodeInvalidEnumValue,
				Path:    []any{"requirements", i, "type"},
				Message: "unknown requirement type",
			})
		}

		if len(requirement.Data) > MaxRequirementValues {
			issues = append(issues, Issue{
				Code:    IssueCodeTooBig,
				Path:    []any{"requirements", i, "data"},
				Message: "at most 5 values are allowed",
			})
		}

		for j, value := range requirement.Data {
			if utf8.RuneCountInString(value) > MaxValueLength {
				issues = append(issues, Issue{
					Code:    IssueCodeTooBig,
					Path:    []any{"requirements", i, "data", j},
					Message: "value must be at most 100 characters",
				})
			}
		}
	}

	if !p.RequirementsType.IsValid() {
		issues = append(issues, Issue{
			Code:    IssueCodeInvalidEnumValue,
			Path:    []any{"requirementsType"},
			Message: "unknown requirements type",
		})
	}

	return issues
}

// CheckRequirements performs the cross-field checks a pure shape validator
// cannot express. Requirement kinds without numeric semantics pass through
// untouched.
//
// Note that HasRobloxGroupRankInRange deliberately performs no min<max
// cross-check; min=100/max=50 passes. Product intent is unclear, so the
// historical acceptance behavior is preserved.
func CheckRequirements(requirements []RequirementPayload) []Issue {
	var issues []Issue

	for i, requirement := range requirements {
		switch requirement.Type {
		case enum.BindRequirementTypeHasRobloxGroupRole:
			// Data layout: [groupID, rank]
			if _, ok := finiteValue(requirement.Data, 0); !ok {
				issues = append(issues, Issue{
					Code:    IssueCodeCustom,
					Path:    []any{"requirements", i, "data", 0},
					Message: "group ID must be a number",
				})
			}

			if _, ok := finiteValue(requirement.Data, 1); !ok {
				issues = append(issues, Issue{
					Code:    IssueCodeCustom,
					Path:    []any{"requirements", i, "data", 1},
					Message: "rank must be a number",
				})
			}

		case enum.BindRequirementTypeHasRobloxGroupRankInRange:
			// Data layout: [groupID, min, max]
			if _, ok := finiteValue(requirement.Data, 0); !ok {
				issues = append(issues, Issue{
					Code:    IssueCodeCustom,
					Path:    []any{"requirements", i, "data", 0},
					Message: "group ID must be a number",
				})
			}

			if minRank, ok := finiteValue(requirement.Data, 1); !ok || minRank <= MinRankExclusive {
				issues = append(issues, Issue{
					Code:    IssueCodeCustom,
					Path:    []any{"requirements", i, "data", 1},
					Message: "minimum rank must be a number greater than 0",
				})
			}

			if maxRank, ok := finiteValue(requirement.Data, 2); !ok || maxRank > MaxRank {
				issues = append(issues, Issue{
					Code:    IssueCodeCustom,
					Path:    []any{"requirements", i, "data", 2},
					Message: "maximum rank must be a number at most 255",
				})
			}

		case enum.BindRequirementTypeHasVerifiedUserLink:
			// No numeric payload to check.
		}
	}

	return issues
}

// finiteValue parses values[idx] as a finite number. A missing index, empty
// string, parse failure, infinity, or NaN all report false.
func finiteValue(values []string, idx int) (float64, bool) {
	if idx >= len(values) || values[idx] == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(values[idx], 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}
