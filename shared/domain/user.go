package domain

// User is the authenticated caller, as carried by the access token.
type User struct {
	Id       UserId
	Username Username
}
