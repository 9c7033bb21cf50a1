// Package discord confirms Discord server membership for incoming sessions.
package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"
)

// ErrNotMember is returned when a user's membership of a server cannot be confirmed.
var ErrNotMember = errors.New("user is not a member of this server")

// MembershipGuard checks server membership against the Discord API.
// Every operation scoped to a server runs through this check first,
// mutations and read-only proxies alike.
type MembershipGuard struct {
	rest   rest.Rest
	logger *zap.Logger
}

// NewMembershipGuard creates a guard backed by a rest-only Discord client.
func NewMembershipGuard(botToken string, logger *zap.Logger) *MembershipGuard {
	return &MembershipGuard{
		rest:   rest.New(rest.NewClient(botToken)),
		logger: logger.Named("membership_guard"),
	}
}

// VerifyServerMembership confirms the user is currently a member of the server.
// Any failure to confirm, including transient Discord API errors, is treated
// as not-a-member; the caller maps this to an authorization failure.
func (g *MembershipGuard) VerifyServerMembership(ctx context.Context, serverID, userID uint64) error {
	_, err := g.rest.GetMember(snowflake.ID(serverID), snowflake.ID(userID), rest.WithCtx(ctx))
	if err != nil {
		g.logger.Debug("Failed to confirm server membership",
			zap.Uint64("serverID", serverID),
			zap.Uint64("userID", userID),
			zap.Error(err))

		return fmt.Errorf("%w: %w", ErrNotMember, err)
	}

	return nil
}
