package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

// ParseWait reads the wait query flag. Missing or unparsable values mean false.
func ParseWait(c *gin.Context) bool {
	wait, err := strconv.ParseBool(c.DefaultQuery("wait", "false"))
	if err != nil {
		return false
	}
	return wait
}

// AwaitSettled blocks until done delivers the settled state or ctx ends.
// It returns fallback and false when ctx ends first or done is nil.
func AwaitSettled(ctx context.Context, done <-chan entity.FormState, fallback entity.FormState) (entity.FormState, bool) {
	if done == nil {
		return fallback, false
	}

	select {
	case state, ok := <-done:
		if !ok {
			return fallback, false
		}
		return state, true
	case <-ctx.Done():
		return fallback, false
	}
}

// detachedContext keeps request values but outlives the request,
// so a classifier call started by a handler is not cancelled when it returns.
func detachedContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
