package domain

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAdvertiser Role = "advertiser"
	RolePartner    Role = "partner"
)

// Identity is the authenticated caller resolved by the authorization layer.
type Identity struct {
	UserID string
	Role   Role
}
