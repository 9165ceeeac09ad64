package model

// User is an account of the cars marketplace stored in auto_user.
type User struct {
	ID       int64
	Login    string
	Password string
}
