// Package permissions maps roles to the administrative actions they may
// perform. The manifest is embedded so a deployment cannot drift from the
// closed role set the code expects.
package permissions

import (
	_ "embed"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const (
	RouteWrite     = "routes:write"
	BookingReadAll = "bookings:read_all"
	BookingUpdate  = "bookings:update"
)

//go:embed permissions.json
var manifestJSON []byte

type manifest struct {
	Roles map[string][]string `json:"roles"`
}

var rolePermissions map[string]map[string]struct{}

func init() {
	var m manifest
	if err := json.Unmarshal(manifestJSON, &m); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse permissions manifest")
	}

	rolePermissions = make(map[string]map[string]struct{}, len(m.Roles))
	for role, perms := range m.Roles {
		set := make(map[string]struct{}, len(perms))
		for _, perm := range perms {
			set[perm] = struct{}{}
		}

		rolePermissions[role] = set
	}
}

// HasPermission reports whether the role grants the named permission.
// Unknown roles grant nothing.
func HasPermission(role, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}

	_, ok = perms[permission]

	return ok
}
