package config

import (
	"os"
	"strings"
)

// AdminTransitionOverride lets admin users approve/reject/reset any expense
// organization-wide. Default off: admins are reporting-only and approvals stay
// with the direct manager.
//
// Set via env:
// - ADMIN_TRANSITION_OVERRIDE=true
func AdminTransitionOverride() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_TRANSITION_OVERRIDE")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
