package convert

import (
	"github.com/voxelified/mellow-api/internal/database/types"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
)

// User converts a database user to its REST API representation.
func User(user *types.User) *restTypes.User {
	if user == nil {
		return nil
	}

	return &restTypes.User{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
