package telemap

// User is a normalized user entity.
type User struct {
	ID           int64
	IsBot        bool
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	PhoneNumber  string
	Photo        *ChatPhoto
}

// ChatPhoto is the identifier pair for a profile picture. Present only when
// both renditions were resolvable.
type ChatPhoto struct {
	SmallFileID string
	BigFileID   string
}
