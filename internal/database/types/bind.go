package types

import (
	"errors"
	"time"

	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

var (
	ErrBindNotFound = errors.New("bind not found")
)

// Bind maps a set of Discord role targets to a list of requirements for one server.
type Bind struct {
	ID               string                    `bun:",pk,type:uuid"                          json:"id"`
	ServerID         uint64                    `bun:",notnull"                               json:"serverId"`
	Name             string                    `bun:",notnull"                               json:"name"`
	Type             enum.BindType             `bun:",notnull"                               json:"type"`
	CreatorID        uint64                    `bun:"creator,notnull"                        json:"-"`
	TargetIDs        []string                  `bun:"target_ids,array,notnull"               json:"targetIds"`
	RequirementsType enum.BindRequirementsType `bun:",notnull"                               json:"requirementsType"`
	CreatedAt        time.Time                 `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Creator      *User              `bun:"rel:belongs-to,join:creator=id" json:"creator,omitempty"`
	Requirements []*BindRequirement `bun:"rel:has-many,join:id=bind_id"   json:"requirements"`
}

// BindRequirement is one condition owned by a bind. Requirements have no independent
// lifecycle; they are always replaced wholesale when their bind is updated.
type BindRequirement struct {
	ID     string                   `bun:",pk,type:uuid"       json:"id"`
	BindID string                   `bun:",notnull,type:uuid"  json:"-"`
	Type   enum.BindRequirementType `bun:",notnull"            json:"type"`
	Data   []string                 `bun:",array,notnull"      json:"data"`
}
