package telemap

import "time"

// PhotoSize is one rendition of a photo. FileID is empty when the size's
// location could not be resolved: the metadata is known but the content is
// unavailable.
type PhotoSize struct {
	FileID   string
	Width    int
	Height   int
	FileSize int
	Date     time.Time
}

// Photo is the ordered sequence of a photo's size renditions.
type Photo []PhotoSize

// Document is a generic file. Animated marks documents tagged as silent
// looping animations.
type Document struct {
	FileID   string
	Thumb    *PhotoSize
	FileName string
	MimeType string
	FileSize int
	Date     time.Time
	Animated bool
}

// Audio is a music track.
type Audio struct {
	FileID    string
	Duration  int
	Performer string
	Title     string
	MimeType  string
	FileSize  int
	Thumb     *PhotoSize
	FileName  string
	Date      time.Time
}

// Voice is a recorded voice note.
type Voice struct {
	FileID   string
	Duration int
	MimeType string
	FileSize int
	Thumb    *PhotoSize
	FileName string
	Date     time.Time
}

// Video is an ordinary video.
type Video struct {
	FileID   string
	Width    int
	Height   int
	Duration int
	Thumb    *PhotoSize
	MimeType string
	FileSize int
	FileName string
	Date     time.Time
}

// VideoNote is a round video note; Length is the square dimension.
type VideoNote struct {
	FileID   string
	Length   int
	Duration int
	Thumb    *PhotoSize
	MimeType string
	FileSize int
	FileName string
	Date     time.Time
}

// Sticker is a sticker. SetName is empty when the containing set could not
// be resolved; Emoji is empty when the sticker carries no alternative text.
type Sticker struct {
	FileID   string
	Width    int
	Height   int
	Thumb    *PhotoSize
	Emoji    string
	SetName  string
	MimeType string
	FileSize int
	FileName string
	Date     time.Time
}

// Contact is a shared phone-book contact. UserID is nil when the contact is
// not a registered user.
type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	UserID      *int64
}

// Location is a geographic point.
type Location struct {
	Longitude float64
	Latitude  float64
}

// Venue is a located venue. FoursquareID is empty when the provider
// assigned none.
type Venue struct {
	Location     Location
	Title        string
	Address      string
	FoursquareID string
}
