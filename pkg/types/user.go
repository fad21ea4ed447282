package types

// User is the identity snapshot of a SALT user, as recorded in the
// PiptUser and Investigator tables of the Science Database.
type User struct {
	UserID     int64  `json:"user_id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// TACMembership records that a user serves on the Time Allocation
// Committee of a SALT partner, possibly as its chair.
type TACMembership struct {
	PartnerCode string `json:"partner_code"`
	Chair       bool   `json:"chair"`
}

// Rights stored as PiptUserSetting values. A right is held when the
// setting row exists and its value is a positive integer.
const (
	RightAdmin = "RightAdmin"
	RightBoard = "RightBoard"
)
