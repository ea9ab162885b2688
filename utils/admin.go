package utils

import "strings"

// ReservedAdminUsername is treated as an administrator regardless of flags
const ReservedAdminUsername = "admin"

// IsAdmin derives the informational is_admin flag returned on login.
// It is a UI hint only and does not gate any endpoint.
func IsAdmin(isStaff, isSuperuser bool, username string) bool {
	return isStaff || isSuperuser || strings.EqualFold(username, ReservedAdminUsername)
}
