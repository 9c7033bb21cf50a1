package types

import (
	"time"

	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

// ServerAuditLog records one configuration change made to a server.
type ServerAuditLog struct {
	Sequence  int64             `bun:",pk,autoincrement" json:"sequence"`
	Type      enum.AuditLogType `bun:",notnull"          json:"type"`
	ActorID   uint64            `bun:",notnull"          json:"actorId,string"`
	ServerID  uint64            `bun:",notnull"          json:"serverId,string"`
	Metadata  map[string]any    `bun:"type:jsonb"        json:"metadata"`
	CreatedAt time.Time         `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// AuditLogFilter provides filter criteria for retrieving audit logs.
type AuditLogFilter struct {
	ServerID uint64
	ActorID  uint64
	Type     enum.AuditLogType
}
