// Package fileid packs media metadata into compact, self-describing binary
// file identifiers and unpacks them back. The identifier is the one
// wire-compatible artifact shared with other consumers: both byte layouts
// are fixed little-endian and must round-trip exactly.
package fileid

import (
	"errors"
	"fmt"

	"github.com/gotd/td/bin"
)

// ErrBadFileID reports a token or byte sequence that is not a well-formed
// file identifier: unknown kind tag, truncated layout or trailing bytes.
var ErrBadFileID = errors.New("fileid: bad file id")

// Type is the kind tag discriminating both the media sub-kind and the
// binary layout of the identifier. Tags are never reused across layouts or
// semantics.
type Type int

const (
	// TypeThumbnail is an inline preview addressed by bare file location.
	TypeThumbnail Type = 0
	// TypeProfilePhoto is a user or chat profile picture.
	TypeProfilePhoto Type = 1
	// TypePhoto is a full photo size entry.
	TypePhoto Type = 2
	// TypeVoice is a recorded voice note.
	TypeVoice Type = 3
	// TypeVideo is an ordinary video.
	TypeVideo Type = 4
	// TypeDocument is a generic document.
	TypeDocument Type = 5
	// TypeSticker is a sticker.
	TypeSticker Type = 8
	// TypeAudio is a music track.
	TypeAudio Type = 9
	// TypeAnimation is a silent looping animation document.
	TypeAnimation Type = 10
	// TypeVideoNote is a round video note.
	TypeVideoNote Type = 13
)

var typeNames = map[Type]string{
	TypeThumbnail:    "thumbnail",
	TypeProfilePhoto: "profile_photo",
	TypePhoto:        "photo",
	TypeVoice:        "voice",
	TypeVideo:        "video",
	TypeDocument:     "document",
	TypeSticker:      "sticker",
	TypeAudio:        "audio",
	TypeAnimation:    "animation",
	TypeVideoNote:    "video_note",
}

// String returns the canonical lowercase kind name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// Valid reports whether t is a known kind tag.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// LocationScoped reports whether t uses the location layout (volume, secret
// and local id fields) rather than the reference layout.
func (t Type) LocationScoped() bool {
	switch t {
	case TypeThumbnail, TypeProfilePhoto, TypePhoto:
		return true
	default:
		return false
	}
}

// Layout byte lengths: tag and DC are 32-bit, id and access hash 64-bit;
// the location layout appends volume (64), secret (64) and local id (32).
const (
	referenceLayoutLen = 4 + 4 + 8 + 8
	locationLayoutLen  = referenceLayoutLen + 8 + 8 + 4
)

// FileID is the decoded form of a file identifier. ID and AccessHash are
// zero for kinds addressed by bare file location (thumbnails, profile
// photos); VolumeID, Secret and LocalID are zero for reference-layout
// kinds.
type FileID struct {
	Type       Type
	DCID       int
	ID         int64
	AccessHash int64
	VolumeID   int64
	Secret     int64
	LocalID    int
}

// Bytes packs the identifier into its fixed little-endian layout, selected
// by the kind tag.
func (f FileID) Bytes() ([]byte, error) {
	if !f.Type.Valid() {
		return nil, fmt.Errorf("pack type %d: %w", int(f.Type), ErrBadFileID)
	}

	var b bin.Buffer
	b.PutInt(int(f.Type))
	b.PutInt(f.DCID)
	b.PutLong(f.ID)
	b.PutLong(f.AccessHash)
	if f.Type.LocationScoped() {
		b.PutLong(f.VolumeID)
		b.PutLong(f.Secret)
		b.PutInt(f.LocalID)
	}

	return b.Copy(), nil
}

// FromBytes unpacks a file identifier, recovering exactly the fields Bytes
// encoded. The kind tag read first dictates the expected layout; any length
// mismatch is ErrBadFileID.
func FromBytes(data []byte) (FileID, error) {
	b := &bin.Buffer{Buf: data}

	rawType, err := b.Int()
	if err != nil {
		return FileID{}, fmt.Errorf("unpack type: %w", ErrBadFileID)
	}
	f := FileID{Type: Type(rawType)}
	if !f.Type.Valid() {
		return FileID{}, fmt.Errorf("unpack type %d: %w", rawType, ErrBadFileID)
	}

	wantLen := referenceLayoutLen
	if f.Type.LocationScoped() {
		wantLen = locationLayoutLen
	}
	if len(data) != wantLen {
		return FileID{}, fmt.Errorf("unpack %s: length %d, want %d: %w", f.Type, len(data), wantLen, ErrBadFileID)
	}

	if f.DCID, err = b.Int(); err != nil {
		return FileID{}, fmt.Errorf("unpack dc id: %w", ErrBadFileID)
	}
	if f.ID, err = b.Long(); err != nil {
		return FileID{}, fmt.Errorf("unpack id: %w", ErrBadFileID)
	}
	if f.AccessHash, err = b.Long(); err != nil {
		return FileID{}, fmt.Errorf("unpack access hash: %w", ErrBadFileID)
	}
	if !f.Type.LocationScoped() {
		return f, nil
	}

	if f.VolumeID, err = b.Long(); err != nil {
		return FileID{}, fmt.Errorf("unpack volume id: %w", ErrBadFileID)
	}
	if f.Secret, err = b.Long(); err != nil {
		return FileID{}, fmt.Errorf("unpack secret: %w", ErrBadFileID)
	}
	if f.LocalID, err = b.Int(); err != nil {
		return FileID{}, fmt.Errorf("unpack local id: %w", ErrBadFileID)
	}

	return f, nil
}
