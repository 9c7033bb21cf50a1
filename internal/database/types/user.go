package types

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User stores the profile of a Mellow account, keyed by Discord user ID.
type User struct {
	ID        uint64    `bun:",pk"             json:"id,string"`
	Name      *string   `bun:",nullzero"       json:"name"`
	Username  string    `bun:",notnull,unique" json:"username"`
	AvatarURL string    `bun:",nullzero"       json:"avatarUrl"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
