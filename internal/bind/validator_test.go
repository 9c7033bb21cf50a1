package bind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelified/mellow-api/internal/bind"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

func validPayload() *bind.Payload {
	return &bind.Payload{
		Name: "VIP",
		Data: []string{"role123"},
		Type: enum.BindTypeStatic,
		Requirements: []bind.RequirementPayload{
			{Type: enum.BindRequirementTypeHasRobloxGroupRole, Data: []string{"123456", "5"}},
		},
		RequirementsType: enum.BindRequirementsTypeMeetAll,
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	t.Parallel()

	issues := bind.ValidateCreate(validPayload())
	assert.Empty(t, issues)
}

func TestValidateCreate_MultibyteNameAtLimit(t *testing.T) {
	t.Parallel()

	// Limits count characters, not bytes
	p := validPayload()
	p.Name = strings.Repeat("ü", 50)

	issues := bind.ValidateCreate(p)
	assert.Empty(t, issues)
}

func TestValidateCreate_EmptyRequirements(t *testing.T) {
	t.Parallel()

	// Only upper bounds are enforced on the requirement list
	p := validPayload()
	p.Requirements = nil

	issues := bind.ValidateCreate(p)
	assert.Empty(t, issues)
}

func TestValidateCreate_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(p *bind.Payload)
		wantCode bind.IssueCode
		wantPath []any
	}{
		{
			name:     "empty name",
			mutate:   func(p *bind.Payload) { p.Name = "" },
			wantCode: bind.IssueCodeTooSmall,
			wantPath: []any{"name"},
		},
		{
			name:     "name too long",
			mutate:   func(p *bind.Payload) { p.Name = strings.Repeat("a", 51) },
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"name"},
		},
		{
			name:     "no targets",
			mutate:   func(p *bind.Payload) { p.Data = nil },
			wantCode: bind.IssueCodeTooSmall,
			wantPath: []any{"data"},
		},
		{
			name: "too many targets",
			mutate: func(p *bind.Payload) {
				p.Data = make([]string, 101)
				for i := range p.Data {
					p.Data[i] = "role"
				}
			},
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"data"},
		},
		{
			name:     "target too long",
			mutate:   func(p *bind.Payload) { p.Data = []string{strings.Repeat("x", 101)} },
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"data", 0},
		},
		{
			name:     "unknown bind type",
			mutate:   func(p *bind.Payload) { p.Type = enum.BindType(99) },
			wantCode: bind.IssueCodeInvalidEnumValue,
			wantPath: []any{"type"},
		},
		{
			name:     "unknown requirement type",
			mutate:   func(p *bind.Payload) { p.Requirements[0].Type = enum.BindRequirementType(99) },
			wantCode: bind.IssueCodeInvalidEnumValue,
			wantPath: []any{"requirements", 0, "type"},
		},
		{
			name: "too many requirement values",
			mutate: func(p *bind.Payload) {
				p.Requirements[0].Data = []string{"1", "2", "3", "4", "5", "6"}
			},
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"requirements", 0, "data"},
		},
		{
			name: "requirement value too long",
			mutate: func(p *bind.Payload) {
				p.Requirements[0].Data = []string{strings.Repeat("9", 101), "5"}
			},
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"requirements", 0, "data", 0},
		},
		{
			name:     "unknown requirements type",
			mutate:   func(p *bind.Payload) { p.RequirementsType = enum.BindRequirementsType(99) },
			wantCode: bind.IssueCodeInvalidEnumValue,
			wantPath: []any{"requirementsType"},
		},
		{
			name:     "multibyte name too long",
			mutate:   func(p *bind.Payload) { p.Name = strings.Repeat("ü", 51) },
			wantCode: bind.IssueCodeTooBig,
			wantPath: []any{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validPayload()
			tt.mutate(p)

			issues := bind.ValidateCreate(p)
			require.NotEmpty(t, issues)

			found := false

			for _, issue := range issues {
				if issue.Code == tt.wantCode && assert.ObjectsAreEqual(tt.wantPath, issue.Path) {
					found = true
					break
				}
			}

			assert.True(t, found, "expected issue %s at %v, got %v", tt.wantCode, tt.wantPath, issues)
		})
	}
}

func TestCheckRequirements_GroupRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []string
		wantPaths [][]any
	}{
		{
			name: "valid",
			data: []string{"123456", "5"},
		},
		{
			name:      "non-numeric group ID",
			data:      []string{"abc", "5"},
			wantPaths: [][]any{{"requirements", 0, "data", 0}},
		},
		{
			name:      "non-numeric rank",
			data:      []string{"123456", "officer"},
			wantPaths: [][]any{{"requirements", 0, "data", 1}},
		},
		{
			name:      "missing rank",
			data:      []string{"123456"},
			wantPaths: [][]any{{"requirements", 0, "data", 1}},
		},
		{
			name: "both missing",
			data: nil,
			wantPaths: [][]any{
				{"requirements", 0, "data", 0},
				{"requirements", 0, "data", 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := bind.CheckRequirements([]bind.RequirementPayload{{
				Type: enum.BindRequirementTypeHasRobloxGroupRole,
				Data: tt.data,
			}})

			require.Len(t, issues, len(tt.wantPaths))

			for i, wantPath := range tt.wantPaths {
				assert.Equal(t, bind.IssueCodeCustom, issues[i].Code)
				assert.Equal(t, wantPath, issues[i].Path)
			}
		})
	}
}

func TestCheckRequirements_RankInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []string
		wantPaths [][]any
	}{
		{
			name: "valid",
			data: []string{"123456", "1", "255"},
		},
		{
			name:      "min not greater than zero",
			data:      []string{"123456", "0", "200"},
			wantPaths: [][]any{{"requirements", 0, "data", 1}},
		},
		{
			name:      "max above 255",
			data:      []string{"123456", "1", "300"},
			wantPaths: [][]any{{"requirements", 0, "data", 2}},
		},
		{
			name: "min zero and max above 255",
			data: []string{"123456", "0", "300"},
			wantPaths: [][]any{
				{"requirements", 0, "data", 1},
				{"requirements", 0, "data", 2},
			},
		},
		{
			name:      "negative min",
			data:      []string{"123456", "-5", "200"},
			wantPaths: [][]any{{"requirements", 0, "data", 1}},
		},
		{
			name: "missing min and max",
			data: []string{"123456"},
			wantPaths: [][]any{
				{"requirements", 0, "data", 1},
				{"requirements", 0, "data", 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := bind.CheckRequirements([]bind.RequirementPayload{{
				Type: enum.BindRequirementTypeHasRobloxGroupRankInRange,
				Data: tt.data,
			}})

			require.Len(t, issues, len(tt.wantPaths))

			for i, wantPath := range tt.wantPaths {
				assert.Equal(t, bind.IssueCodeCustom, issues[i].Code)
				assert.Equal(t, wantPath, issues[i].Path)
			}
		})
	}
}

// Known gap: the checker never compares min against max, so an empty range
// like min=100/max=50 is accepted. Kept on purpose until product intent is
// clarified; this test pins the current behavior.
func TestCheckRequirements_InvertedRangeAccepted(t *testing.T) {
	t.Parallel()

	issues := bind.CheckRequirements([]bind.RequirementPayload{{
		Type: enum.BindRequirementTypeHasRobloxGroupRankInRange,
		Data: []string{"123456", "100", "50"},
	}})

	assert.Empty(t, issues)
}

func TestCheckRequirements_OtherKindsPassThrough(t *testing.T) {
	t.Parallel()

	issues := bind.CheckRequirements([]bind.RequirementPayload{{
		Type: enum.BindRequirementTypeHasVerifiedUserLink,
		Data: []string{"not a number"},
	}})

	assert.Empty(t, issues)
}

func TestCheckRequirements_IndexInPath(t *testing.T) {
	t.Parallel()

	// The failing requirement's index must be reported, not just the first
	requirements := []bind.RequirementPayload{
		{Type: enum.BindRequirementTypeHasRobloxGroupRole, Data: []string{"123456", "5"}},
		{Type: enum.BindRequirementTypeHasRobloxGroupRole, Data: []string{"123456", "abc"}},
	}

	issues := bind.CheckRequirements(requirements)
	require.Len(t, issues, 1)
	assert.Equal(t, []any{"requirements", 1, "data", 1}, issues[0].Path)
}

func TestValidateUpdate_RequiresTarget(t *testing.T) {
	t.Parallel()

	p := &bind.UpdatePayload{Payload: *validPayload()}

	issues := bind.ValidateUpdate(p)
	require.Len(t, issues, 1)
	assert.Equal(t, []any{"target"}, issues[0].Path)

	p.Target = "0e9eca02-8cc8-4475-9e6a-b2aaa225de35"
	assert.Empty(t, bind.ValidateUpdate(p))
}
