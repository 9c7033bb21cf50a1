package enum

// BindType represents the kind of Discord role bind.
type BindType int

const (
	// BindTypeStatic links a fixed set of Discord roles to a requirement list.
	BindTypeStatic BindType = iota
)

// String returns the name of the bind type for logging and display.
func (t BindType) String() string {
	switch t {
	case BindTypeStatic:
		return "Static"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the value is a known bind type.
func (t BindType) IsValid() bool {
	return t == BindTypeStatic
}

// BindRequirementType represents one kind of condition a bind can check.
type BindRequirementType int

const (
	// BindRequirementTypeHasVerifiedUserLink checks that the member has a verified Roblox account link.
	BindRequirementTypeHasVerifiedUserLink BindRequirementType = iota
	// BindRequirementTypeHasRobloxGroupRole checks membership of a Roblox group at an exact rank.
	// Data layout: [groupID, rank].
	BindRequirementTypeHasRobloxGroupRole
	// BindRequirementTypeHasRobloxGroupRankInRange checks membership of a Roblox group with a rank
	// inside a range. Data layout: [groupID, min, max].
	BindRequirementTypeHasRobloxGroupRankInRange
)

func (t BindRequirementType) String() string {
	switch t {
	case BindRequirementTypeHasVerifiedUserLink:
		return "HasVerifiedUserLink"
	case BindRequirementTypeHasRobloxGroupRole:
		return "HasRobloxGroupRole"
	case BindRequirementTypeHasRobloxGroupRankInRange:
		return "HasRobloxGroupRankInRange"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the value is a known requirement type.
func (t BindRequirementType) IsValid() bool {
	return t >= BindRequirementTypeHasVerifiedUserLink && t <= BindRequirementTypeHasRobloxGroupRankInRange
}

// BindRequirementsType controls how a bind combines its requirements.
type BindRequirementsType int

const (
	// BindRequirementsTypeMeetAll requires every requirement to pass.
	BindRequirementsTypeMeetAll BindRequirementsType = iota
	// BindRequirementsTypeMeetOne requires at least one requirement to pass.
	BindRequirementsTypeMeetOne
)

func (t BindRequirementsType) String() string {
	switch t {
	case BindRequirementsTypeMeetAll:
		return "MeetAll"
	case BindRequirementsTypeMeetOne:
		return "MeetOne"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the value is a known combination mode.
func (t BindRequirementsType) IsValid() bool {
	return t == BindRequirementsTypeMeetAll || t == BindRequirementsTypeMeetOne
}
