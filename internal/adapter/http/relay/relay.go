package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SessionCookieName = "task_session"

// Relay binds a Store to the browser session cookie.
type Relay struct {
	store  Store
	secure bool
}

func New(store Store, secureCookie bool) *Relay {
	return &Relay{store: store, secure: secureCookie}
}

// Stash records a rejected attempt for the caller's session, starting a
// session first when the request has none.
func (r *Relay) Stash(c *gin.Context, state State) error {
	sessionID := r.sessionID(c)
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, sessionID, 0, "/", "", r.secure, true)
	}
	return r.store.Stash(c.Request.Context(), sessionID, state)
}

// ConsumeFor takes the session's pending state if it belongs to the form of
// taskID. The entry is removed either way. Store failures degrade to an
// empty form.
func (r *Relay) ConsumeFor(c *gin.Context, taskID uint64) (State, bool) {
	sessionID := r.sessionID(c)
	if sessionID == "" {
		return State{}, false
	}

	state, ok, err := r.store.Consume(c.Request.Context(), sessionID)
	if err != nil {
		zap.L().Warn("failed to read form state", zap.String("session_id", sessionID), zap.Error(err))
		return State{}, false
	}
	if !ok {
		return State{}, false
	}
	if state.TaskID != taskID {
		zap.L().Debug("discarding form state for another form",
			zap.String("session_id", sessionID),
			zap.Uint64("state_task_id", state.TaskID),
			zap.Uint64("task_id", taskID),
		)
		return State{}, false
	}
	return state, true
}

// sessionID returns the cookie value when it is a well-formed id.
func (r *Relay) sessionID(c *gin.Context) string {
	value, err := c.Cookie(SessionCookieName)
	if err != nil || value == "" {
		return ""
	}
	if _, err := uuid.Parse(value); err != nil {
		zap.L().Warn("ignoring malformed session cookie", zap.Error(err))
		return ""
	}
	return value
}
