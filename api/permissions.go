package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"bitwise74/review-api/model"
	"bitwise74/review-api/pkg/permission"

	"github.com/gin-gonic/gin"
)

// Per-resource rule compositions, mirrored from the endpoint contracts:
// titles/genres/categories are admin-or-read-only, reviews and comments
// add author ownership and the moderator override, the users endpoint
// is staff plus the "me" self-service rules.
var (
	titlePerms  = permission.Composition{permission.ReadOnly, permission.IsAdmin}
	reviewPerms = permission.Composition{permission.ReadOnly, permission.IsAuthor, permission.IsAdmin, permission.IsModerator}
	userPerms   = permission.Composition{permission.IsSuperuser, permission.IsSelf, permission.IsAdmin}
)

func actorFrom(c *gin.Context) permission.Actor {
	if u, ok := c.Get("actor"); ok {
		return permission.Actor{User: u.(*model.User)}
	}

	return permission.Actor{}
}

func permReqFrom(c *gin.Context) permission.Request {
	if r, ok := c.Get("permReq"); ok {
		return r.(permission.Request)
	}

	return permission.Request{Method: c.Request.Method}
}

// gate runs the collection-phase permission check before the handler.
// The object phase happens in handlers once the resource is loaded, via
// checkObject.
func (a *API) gate(perms permission.Composition) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := permission.Request{
			Method:     c.Request.Method,
			SelfTarget: c.Param("username") == "me",
		}

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			req.PayloadFields = peekPayloadFields(c)
		}

		c.Set("permReq", req)

		if !perms.Allows(actorFrom(c), req) {
			abortDenied(c)
			return
		}

		c.Next()
	}
}

// checkObject runs the object phase against a loaded resource. Returns
// false after writing the error response.
func (a *API) checkObject(c *gin.Context, perms permission.Composition, obj permission.Owned) bool {
	if perms.AllowsObject(actorFrom(c), permReqFrom(c), obj) {
		return true
	}

	abortDenied(c)
	return false
}

func abortDenied(c *gin.Context) {
	if actorFrom(c).Authenticated() {
		errJSON(c, http.StatusForbidden, "You don't have permission to perform this action")
		return
	}

	errJSON(c, http.StatusUnauthorized, "Authentication required")
}

// peekPayloadFields extracts the top-level keys of a JSON mutation body
// without consuming it, so field-level rules (the "role" restriction on
// "me") can run before any binding happens. Keys are lowercased:
// encoding/json binds struct fields case-insensitively, so a cased key
// like "Role" still reaches the handler's binding.
func peekPayloadFields(c *gin.Context) []string {
	if c.Request.Body == nil {
		return nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	fields := make([]string, 0, len(payload))
	for k := range payload {
		fields = append(fields, strings.ToLower(k))
	}

	return fields
}
