package wire

// MediaClass is the media envelope attached to a content message: exactly
// one of a closed set of shapes. MediaUnsupported stands in for envelope
// kinds outside that set; consumers normalize it to "no media".
type MediaClass interface {
	sealedMedia()
}

// MediaPhoto wraps a photo record. Photo is nil for the empty wire variant.
type MediaPhoto struct {
	Photo *Photo
}

// MediaGeo wraps a geographic point. Geo is nil for the empty wire variant.
type MediaGeo struct {
	Geo *GeoPoint
}

// MediaContact is a shared phone-book contact.
type MediaContact struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	UserID      int64
}

// MediaVenue is a located venue.
type MediaVenue struct {
	Geo     *GeoPoint
	Title   string
	Address string
	// Provider-assigned venue id; empty when the venue has none.
	VenueID string
}

// MediaDocument wraps a generic document record. Document is nil for the
// empty wire variant.
type MediaDocument struct {
	Document *Document
}

// MediaUnsupported is any envelope kind this schema revision does not model.
type MediaUnsupported struct{}

func (*MediaPhoto) sealedMedia()       {}
func (*MediaGeo) sealedMedia()         {}
func (*MediaContact) sealedMedia()     {}
func (*MediaVenue) sealedMedia()       {}
func (*MediaDocument) sealedMedia()    {}
func (*MediaUnsupported) sealedMedia() {}

// GeoPoint is a raw geographic coordinate pair.
type GeoPoint struct {
	Long float64
	Lat  float64
}

// Document is a raw generic document. Its attributes decide the normalized
// sub-kind (audio, voice, video, video note, sticker, animation, plain).
type Document struct {
	ID         int64
	AccessHash int64
	Date       int
	MimeType   string
	Size       int
	Thumb      PhotoSizeClass
	DCID       int
	Attributes []DocumentAttributeClass
}

// DocumentAttributeClass is one tag attached to a generic document.
// Multiple tags may co-occur; sub-kind selection applies a fixed precedence.
type DocumentAttributeClass interface {
	sealedDocumentAttribute()
}

// DocumentAttributeAudio tags audio content. Voice distinguishes recorded
// voice notes from music tracks.
type DocumentAttributeAudio struct {
	Voice     bool
	Duration  int
	Title     string
	Performer string
}

// DocumentAttributeVideo tags video content. RoundMessage distinguishes
// square video notes from ordinary videos.
type DocumentAttributeVideo struct {
	RoundMessage bool
	Duration     int
	W            int
	H            int
}

// DocumentAttributeSticker tags a sticker. Alt is the emoji alternative
// text; Stickerset references the containing set.
type DocumentAttributeSticker struct {
	Alt        string
	Stickerset InputStickerSetClass
}

// DocumentAttributeAnimated tags a silent looping animation.
type DocumentAttributeAnimated struct{}

// DocumentAttributeFilename carries the original file name.
type DocumentAttributeFilename struct {
	FileName string
}

// DocumentAttributeImageSize carries still-image dimensions.
type DocumentAttributeImageSize struct {
	W int
	H int
}

func (*DocumentAttributeAudio) sealedDocumentAttribute()     {}
func (*DocumentAttributeVideo) sealedDocumentAttribute()     {}
func (*DocumentAttributeSticker) sealedDocumentAttribute()   {}
func (*DocumentAttributeAnimated) sealedDocumentAttribute()  {}
func (*DocumentAttributeFilename) sealedDocumentAttribute()  {}
func (*DocumentAttributeImageSize) sealedDocumentAttribute() {}

// InputStickerSetClass references a sticker set. Closed set.
type InputStickerSetClass interface {
	sealedInputStickerSet()
}

// InputStickerSetID references a set by id and access hash.
type InputStickerSetID struct {
	ID         int64
	AccessHash int64
}

// InputStickerSetEmpty is the absent set reference.
type InputStickerSetEmpty struct{}

func (*InputStickerSetID) sealedInputStickerSet()    {}
func (*InputStickerSetEmpty) sealedInputStickerSet() {}
