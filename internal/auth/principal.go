package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// RolePrefix is prepended to every role name extracted from the token so that
// authorities carry the same shape the identity provider's ecosystem expects.
const RolePrefix = "ROLE_"

// Principal is the authenticated caller: subject identifier plus the
// authorities derived from the token's client roles. Built once per request
// by the auth middleware and treated as immutable afterwards.
type Principal struct {
	Subject     string
	Authorities []string
}

// HasAnyRole reports whether the principal holds at least one of the given
// role names. Role names are matched against RolePrefix-ed authorities.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		for _, authority := range p.Authorities {
			if authority == RolePrefix+role {
				return true
			}
		}
	}
	return false
}

// PrincipalFromClaims translates a verified token's claim set into a
// Principal. It never fails: any absence or type mismatch in the claim
// structure degrades to the fallback subject or an empty authority set.
//
// Subject: the preferred_username claim wins whenever present, even when it
// holds an empty string; otherwise the standard sub claim is used.
// Authorities: read from resource_access.<clientID>.roles, each entry
// prefixed with RolePrefix. Duplicates are preserved as-is.
func PrincipalFromClaims(claims jwt.MapClaims, clientID string) Principal {
	return Principal{
		Subject:     subjectFromClaims(claims),
		Authorities: authoritiesFromClaims(claims, clientID),
	}
}

func subjectFromClaims(claims jwt.MapClaims) string {
	if username, ok := claims["preferred_username"]; ok {
		if s, ok := username.(string); ok {
			return s
		}
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func authoritiesFromClaims(claims jwt.MapClaims, clientID string) []string {
	resourceAccess, ok := claims["resource_access"].(map[string]interface{})
	if !ok {
		return nil
	}
	clientAccess, ok := resourceAccess[clientID].(map[string]interface{})
	if !ok {
		return nil
	}
	roles, ok := clientAccess["roles"].([]interface{})
	if !ok {
		return nil
	}

	authorities := make([]string, 0, len(roles))
	for _, role := range roles {
		if name, ok := role.(string); ok {
			authorities = append(authorities, RolePrefix+name)
		}
	}
	return authorities
}
