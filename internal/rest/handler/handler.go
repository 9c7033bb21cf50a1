package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/rest/middleware/session"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
)

// MembershipVerifier confirms that a user belongs to a Discord server.
// Satisfied by discord.MembershipGuard.
type MembershipVerifier interface {
	VerifyServerMembership(ctx context.Context, serverID, userID uint64) error
}

// authorizeServer parses the server ID from the route and confirms the
// session user is a member of that server. It writes the error response
// itself on failure.
func authorizeServer(
	w http.ResponseWriter, req bunrouter.Request, guard MembershipVerifier,
) (uint64, *session.Session, bool) {
	serverID, err := strconv.ParseUint(req.Param("serverID"), 10, 64)
	if err != nil {
		_ = restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, nil)
		return 0, nil, false
	}

	sess, ok := session.FromContext(req.Context())
	if !ok {
		_ = restTypes.WriteError(w, http.StatusUnauthorized, restTypes.ErrorUnauthenticated, nil)
		return 0, nil, false
	}

	if err := guard.VerifyServerMembership(req.Context(), serverID, sess.UserID); err != nil {
		_ = restTypes.WriteError(w, http.StatusForbidden, restTypes.ErrorUnauthorized, nil)
		return 0, nil, false
	}

	return serverID, sess, true
}

// decodeBody decodes a JSON request body, writing an invalid_body error on
// failure.
func decodeBody(w http.ResponseWriter, body io.Reader, v any) bool {
	data, err := io.ReadAll(body)
	if err == nil {
		err = sonic.Unmarshal(data, v)
	}

	if err != nil {
		_ = restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, nil)
		return false
	}

	return true
}
