package permission

import (
	"net/http"
	"testing"

	"bitwise74/review-api/model"
)

func user(role model.Role) Actor {
	return Actor{User: &model.User{ID: 1, Username: "alice", Role: role}}
}

func anonymous() Actor {
	return Actor{}
}

type ownedBy uint

func (o ownedBy) OwnerID() uint { return uint(o) }

func TestReadOnly(t *testing.T) {
	t.Parallel()

	c := Composition{ReadOnly}

	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		if !c.Allows(anonymous(), Request{Method: m}) {
			t.Fatalf("expected %v to pass ReadOnly", m)
		}
	}

	for _, m := range []string{http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete} {
		if c.Allows(anonymous(), Request{Method: m}) {
			t.Fatalf("expected %v to fail ReadOnly", m)
		}
	}
}

func TestAdminOrReadOnly(t *testing.T) {
	t.Parallel()

	c := Composition{ReadOnly, IsAdmin}

	tests := []struct {
		name   string
		actor  Actor
		method string
		want   bool
	}{
		{"anonymous read", anonymous(), http.MethodGet, true},
		{"anonymous write", anonymous(), http.MethodPost, false},
		{"user write", user(model.RoleUser), http.MethodPost, false},
		{"moderator write", user(model.RoleModerator), http.MethodPost, false},
		{"admin write", user(model.RoleAdmin), http.MethodPost, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Allows(tt.actor, Request{Method: tt.method}); got != tt.want {
				t.Fatalf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorObjectPhase(t *testing.T) {
	t.Parallel()

	c := Composition{ReadOnly, IsAuthor, IsAdmin, IsModerator}
	req := Request{Method: http.MethodPatch}

	// collection phase only needs authentication
	if !c.Allows(user(model.RoleUser), req) {
		t.Fatal("authenticated actor should pass the collection phase")
	}

	// object phase checks ownership for plain users
	if !c.AllowsObject(user(model.RoleUser), req, ownedBy(1)) {
		t.Fatal("owner should be allowed to modify their object")
	}
	if c.AllowsObject(user(model.RoleUser), req, ownedBy(2)) {
		t.Fatal("non-owner without a role should be denied")
	}

	// elevated roles override ownership
	if !c.AllowsObject(user(model.RoleModerator), req, ownedBy(2)) {
		t.Fatal("moderator should override ownership")
	}
	if !c.AllowsObject(user(model.RoleAdmin), req, ownedBy(2)) {
		t.Fatal("admin should override ownership")
	}

	// anonymous reads still pass through ReadOnly at the object phase
	if !c.AllowsObject(anonymous(), Request{Method: http.MethodGet}, ownedBy(2)) {
		t.Fatal("anonymous GET should pass at the object phase")
	}
}

func TestSuperuser(t *testing.T) {
	t.Parallel()

	c := Composition{IsSuperuser}

	super := Actor{User: &model.User{ID: 7, Role: model.RoleUser, Superuser: true}}
	if !c.Allows(super, Request{Method: http.MethodDelete}) {
		t.Fatal("superuser flag should pass regardless of role")
	}
	if c.Allows(user(model.RoleAdmin), Request{Method: http.MethodDelete}) {
		t.Fatal("admin role must not satisfy IsSuperuser")
	}
}

func TestSelfRules(t *testing.T) {
	t.Parallel()

	c := Composition{IsSelf}

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"get self", Request{Method: http.MethodGet, SelfTarget: true}, true},
		{"delete self", Request{Method: http.MethodDelete, SelfTarget: true}, true},
		{"patch bio", Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"bio"}}, true},
		{"patch role", Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"role"}}, false},
		{"patch role among others", Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"bio", "role"}}, false},
		{"patch cased role", Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"Role"}}, false},
		{"patch upper role", Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"ROLE"}}, false},
		{"put self", Request{Method: http.MethodPut, SelfTarget: true}, false},
		{"get not self", Request{Method: http.MethodGet, SelfTarget: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Allows(user(model.RoleUser), tt.req); got != tt.want {
				t.Fatalf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}

	if c.Allows(anonymous(), Request{Method: http.MethodGet, SelfTarget: true}) {
		t.Fatal("anonymous actor must never satisfy IsSelf")
	}
}

// The role-field restriction must survive into the object phase instead
// of being swallowed by a rule that forwards to the collection check.
func TestSelfRulesObjectPhase(t *testing.T) {
	t.Parallel()

	c := Composition{IsSuperuser, IsSelf, IsAdmin}

	req := Request{Method: http.MethodPatch, SelfTarget: true, PayloadFields: []string{"role"}}
	if c.AllowsObject(user(model.RoleUser), req, nil) {
		t.Fatal("role patch on self must be denied at the object phase too")
	}

	req.PayloadFields = []string{"first_name"}
	if !c.AllowsObject(user(model.RoleUser), req, nil) {
		t.Fatal("profile patch on self should be allowed at the object phase")
	}
}
