// Package permission implements the request authorization rules as a
// small set of predicate variants composed with OR. Every endpoint
// declares a Composition, which is evaluated once against the bare
// request (collection phase) and, where a concrete resource exists,
// again with the resource attached (object phase).
package permission

import (
	"net/http"
	"slices"
	"strings"

	"bitwise74/review-api/model"
)

// Actor is the identity a request runs as. A nil User means the
// request is anonymous.
type Actor struct {
	User *model.User
}

func (a Actor) Authenticated() bool {
	return a.User != nil
}

// Request carries the parts of an HTTP request the rules look at.
// PayloadFields holds the top-level keys of a JSON mutation body and is
// only populated for unsafe methods.
type Request struct {
	Method        string
	SelfTarget    bool
	PayloadFields []string
}

// Owned is implemented by resources that belong to a single author.
type Owned interface {
	OwnerID() uint
}

type Rule uint8

const (
	// ReadOnly passes for safe methods regardless of who asks.
	ReadOnly Rule = iota
	// IsAuthor passes for any authenticated actor at the collection
	// phase and for the owning actor at the object phase.
	IsAuthor
	IsModerator
	IsAdmin
	IsSuperuser
	// IsSelf passes only for the caller's own identity record ("me"),
	// with per-method sub-rules. A PATCH that carries a "role" key is
	// rejected no matter what the value is.
	IsSelf
)

// Composition is an OR of rules. An empty composition denies everything.
type Composition []Rule

// Allows runs the collection phase: no concrete object is available yet.
func (c Composition) Allows(a Actor, r Request) bool {
	for _, rule := range c {
		if allows(rule, a, r) {
			return true
		}
	}
	return false
}

// AllowsObject runs the object phase. Only IsAuthor defines a distinct
// object predicate; every other rule reuses its collection result, so
// the method and field sub-rules of IsSelf still apply here.
func (c Composition) AllowsObject(a Actor, r Request, obj Owned) bool {
	for _, rule := range c {
		if rule == IsAuthor {
			if a.Authenticated() && obj != nil && obj.OwnerID() == a.User.ID {
				return true
			}
			continue
		}

		if allows(rule, a, r) {
			return true
		}
	}
	return false
}

func allows(rule Rule, a Actor, r Request) bool {
	switch rule {
	case ReadOnly:
		return SafeMethod(r.Method)
	case IsAuthor:
		return a.Authenticated()
	case IsModerator:
		return a.Authenticated() && a.User.Role == model.RoleModerator
	case IsAdmin:
		return a.Authenticated() && a.User.Role == model.RoleAdmin
	case IsSuperuser:
		return a.Authenticated() && a.User.Superuser
	case IsSelf:
		return allowsSelf(a, r)
	}

	return false
}

func allowsSelf(a Actor, r Request) bool {
	if !a.Authenticated() || !r.SelfTarget {
		return false
	}

	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		return true
	case http.MethodPatch:
		// case-insensitive: encoding/json matches struct fields that
		// way, so "Role" would otherwise slip past and still bind
		return !slices.ContainsFunc(r.PayloadFields, func(f string) bool {
			return strings.EqualFold(f, "role")
		})
	}

	return false
}

// SafeMethod reports whether m never mutates state.
func SafeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}
