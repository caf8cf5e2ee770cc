package wire

// User is a raw user record as found in the caller-supplied user table.
// Optional strings are empty when the wire flag was unset.
type User struct {
	ID        int64
	Bot       bool
	FirstName string
	LastName  string
	Username  string
	LangCode  string
	Phone     string
	Photo     *UserProfilePhoto
}

// UserProfilePhoto carries the small and big profile picture locations.
type UserProfilePhoto struct {
	PhotoSmall FileLocationClass
	PhotoBig   FileLocationClass
}
