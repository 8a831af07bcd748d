// Package brand holds the theme token model and the compiler stages that turn
// raw color definitions and a style guide into a flat CSS variable set.
//
// Compilation never fails: unresolvable references and invalid step keys
// degrade to visible fallback values and are reported with log.Warn.
package brand

import "slices"

// Role is a semantic UI purpose a color can serve.
type Role string

const (
	RolePrimary                  Role = "primary"
	RolePrimaryForeground        Role = "primary-foreground"
	RoleSecondary                Role = "secondary"
	RoleSecondaryForeground      Role = "secondary-foreground"
	RoleAccent                   Role = "accent"
	RoleAccentForeground         Role = "accent-foreground"
	RoleBackground               Role = "background"
	RoleForeground               Role = "foreground"
	RoleCard                     Role = "card"
	RoleCardForeground           Role = "card-foreground"
	RolePopover                  Role = "popover"
	RolePopoverForeground        Role = "popover-foreground"
	RoleMuted                    Role = "muted"
	RoleMutedForeground          Role = "muted-foreground"
	RoleDestructive              Role = "destructive"
	RoleDestructiveForeground    Role = "destructive-foreground"
	RoleSuccess                  Role = "success"
	RoleSuccessForeground        Role = "success-foreground"
	RoleInfo                     Role = "info"
	RoleInfoForeground           Role = "info-foreground"
	RoleWarning                  Role = "warning"
	RoleWarningForeground        Role = "warning-foreground"
	RoleBorder                   Role = "border"
	RoleInput                    Role = "input"
	RoleInputForeground          Role = "input-foreground"
	RoleRing                     Role = "ring"
	RoleChart1                   Role = "chart-1"
	RoleChart2                   Role = "chart-2"
	RoleChart3                   Role = "chart-3"
	RoleChart4                   Role = "chart-4"
	RoleChart5                   Role = "chart-5"
	RoleChartOutline             Role = "chart-outline"
	RoleSidebar                  Role = "sidebar"
	RoleSidebarForeground        Role = "sidebar-foreground"
	RoleSidebarPrimary           Role = "sidebar-primary"
	RoleSidebarPrimaryForeground Role = "sidebar-primary-foreground"
	RoleSidebarAccent            Role = "sidebar-accent"
	RoleSidebarAccentForeground  Role = "sidebar-accent-foreground"
	RoleSidebarBorder            Role = "sidebar-border"
	RoleSidebarRing              Role = "sidebar-ring"
)

// InfluenceHierarchy ranks roles. When a token serves several roles the one
// with the highest influence describes its primary purpose.
var InfluenceHierarchy = map[Role]float64{
	RolePrimary:    10,
	RoleBackground: 9.8,
	RoleForeground: 9.6,

	RoleSecondary:   8.5,
	RoleAccent:      8,
	RoleDestructive: 7.8,
	RoleSuccess:     7.6,
	RoleInfo:        7.4,
	RoleWarning:     7.2,

	RolePrimaryForeground:     7.5,
	RoleSecondaryForeground:   6.5,
	RoleAccentForeground:      6,
	RoleDestructiveForeground: 5.8,
	RoleSuccessForeground:     5.6,
	RoleInfoForeground:        5.4,
	RoleWarningForeground:     5.2,

	RoleCard:              7,
	RoleCardForeground:    5,
	RolePopover:           6.8,
	RolePopoverForeground: 4.8,
	RoleMuted:             6.6,
	RoleMutedForeground:   4.6,
	RoleBorder:            6.4,
	RoleInput:             6.2,
	RoleInputForeground:   4.4,
	RoleRing:              6,

	RoleChart1:       3.5,
	RoleChart2:       3.4,
	RoleChart3:       3.3,
	RoleChart4:       3.2,
	RoleChart5:       3.1,
	RoleChartOutline: 3,

	RoleSidebar:                  5.5,
	RoleSidebarForeground:        4.2,
	RoleSidebarPrimary:           5.2,
	RoleSidebarPrimaryForeground: 4,
	RoleSidebarAccent:            5,
	RoleSidebarAccentForeground:  3.8,
	RoleSidebarBorder:            3.6,
	RoleSidebarRing:              3.4,
}

// Influence returns the influence score of r. Unknown roles score 0.
func Influence(r Role) float64 {
	return InfluenceHierarchy[r]
}

// IsKnownRole reports whether r appears in InfluenceHierarchy.
func IsKnownRole(r Role) bool {
	_, ok := InfluenceHierarchy[r]
	return ok
}

// SortRolesByInfluence returns a copy of roles ordered by descending
// influence. Equal scores keep their input order.
func SortRolesByInfluence(roles []Role) []Role {
	sorted := slices.Clone(roles)
	slices.SortStableFunc(sorted, func(a, b Role) int {
		ia, ib := Influence(a), Influence(b)
		switch {
		case ia > ib:
			return -1
		case ia < ib:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// HasRole reports whether roles contains r.
func HasRole(roles []Role, r Role) bool {
	return slices.Contains(roles, r)
}
