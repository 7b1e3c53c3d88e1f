package models

import "time"

// User represents an authenticated operator: a commercial, a consultant,
// or an administrator. Visibility over financial entities is derived from
// the superuser flag and role permissions, never checked ad hoc.
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Phone               string     `json:"phone,omitempty"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	IsSuperuser         bool       `gorm:"default:false" json:"is_superuser"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Roles      []Role      `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Portfolios []Portfolio `gorm:"foreignKey:CommercialID" json:"portfolios,omitempty"`
}

// HasPermission reports whether any of the user's roles carries the
// given permission code. Roles and their permissions must be preloaded.
func (u *User) HasPermission(code string) bool {
	for i := range u.Roles {
		for j := range u.Roles[i].Permissions {
			if u.Roles[i].Permissions[j].Code == code {
				return true
			}
		}
	}
	return false
}

// FullName returns "First Last", falling back to the email address.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Role groups permissions. The COMMERCIAL role is assigned by default
// at registration.
type Role struct {
	Base
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

// Permission is a single capability, identified by a dotted code such
// as "creditsale.list_all".
type Permission struct {
	Base
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Description string `json:"description"`
}

// RoleCommercial is the default role for newly registered users.
const RoleCommercial = "COMMERCIAL"
