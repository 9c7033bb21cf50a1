package bind

import (
	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

// Payload limits enforced by Validate.
const (
	MaxNameLength        = 50
	MinTargets           = 1
	MaxTargets           = 100
	MaxTargetLength      = 100
	MaxRequirementValues = 5
	MaxValueLength       = 100
)

// Rank bounds for HasRobloxGroupRankInRange requirements. Roblox group
// ranks are 0-255, with 0 reserved for non-members.
const (
	MinRankExclusive = 0
	MaxRank          = 255
)

// RequirementPayload is one requirement entry of an incoming bind payload.
type RequirementPayload struct {
	Type enum.BindRequirementType `json:"type"`
	Data []string                 `json:"data"`
}

// Payload is the request body for creating a bind. Data holds the Discord
// role IDs the bind targets; the field name is part of the wire format.
type Payload struct {
	Name             string                    `json:"name"`
	Data             []string                  `json:"data"`
	Type             enum.BindType             `json:"type"`
	Requirements     []RequirementPayload      `json:"requirements"`
	RequirementsType enum.BindRequirementsType `json:"requirementsType"`
}

// UpdatePayload is the request body for updating a bind. Target identifies
// the existing bind to mutate.
type UpdatePayload struct {
	Payload

	Target string `json:"target"`
}
