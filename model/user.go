package model

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

type User struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"size:150" json:"first_name"`
	LastName  string `gorm:"size:150" json:"last_name"`
	Bio       string `gorm:"type:text" json:"bio"`
	Role      Role   `gorm:"size:9;not null;default:user" json:"role"`
	Superuser bool   `gorm:"not null;default:false" json:"-"`

	// Last issued confirmation code. Cleared after a successful token
	// exchange, regenerated on every signup.
	ConfirmationCode string `gorm:"size:64" json:"-"`

	Reviews  []Review  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
