package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-Id"

// SessionMiddleware resolves the anonymous widget session. A missing or
// malformed header mints a fresh id, echoed back so the widget can persist it.
func SessionMiddleware(ctx *fiber.Ctx) error {
	sessionID := ctx.Get(SessionHeader)
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.NewString()
	}
	ctx.Locals("session_id", sessionID)
	ctx.Set(SessionHeader, sessionID)
	return ctx.Next()
}
