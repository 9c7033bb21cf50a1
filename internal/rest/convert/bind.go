package convert

import (
	"github.com/voxelified/mellow-api/internal/database/types"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
)

// Bind converts a database bind to its REST API representation.
func Bind(b *types.Bind) *restTypes.Bind {
	if b == nil {
		return nil
	}

	requirements := make([]restTypes.BindRequirement, 0, len(b.Requirements))
	for _, req := range b.Requirements {
		requirements = append(requirements, restTypes.BindRequirement{
			ID:   req.ID,
			Type: req.Type,
			Data: req.Data,
		})
	}

	return &restTypes.Bind{
		ID:               b.ID,
		Name:             b.Name,
		Type:             b.Type,
		TargetIDs:        b.TargetIDs,
		RequirementsType: b.RequirementsType,
		Requirements:     requirements,
		Creator:          BindCreator(b.Creator),
		CreatedAt:        b.CreatedAt,
	}
}

// Binds converts a slice of database binds to REST API binds.
func Binds(binds []*types.Bind) []*restTypes.Bind {
	result := make([]*restTypes.Bind, 0, len(binds))
	for _, b := range binds {
		result = append(result, Bind(b))
	}

	return result
}

// BindCreator converts a database user to the creator slice exposed on binds.
func BindCreator(user *types.User) *restTypes.BindCreator {
	if user == nil {
		return nil
	}

	return &restTypes.BindCreator{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	}
}
