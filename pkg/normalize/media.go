package normalize

import (
	"context"
	"errors"
	"fmt"

	"telemap/pkg/fileid"
	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// mediaParts is the outcome of media classification. Construction sets at
// most one field, which apply copies onto the message; mutual exclusivity
// is enforced here, never left to callers.
type mediaParts struct {
	photo     telemap.Photo
	location  *telemap.Location
	contact   *telemap.Contact
	venue     *telemap.Venue
	audio     *telemap.Audio
	voice     *telemap.Voice
	video     *telemap.Video
	videoNote *telemap.VideoNote
	sticker   *telemap.Sticker
	document  *telemap.Document
}

func (p mediaParts) apply(m *telemap.Message) {
	m.Photo = p.photo
	m.Location = p.location
	m.Contact = p.contact
	m.Venue = p.venue
	m.Audio = p.audio
	m.Voice = p.voice
	m.Video = p.video
	m.VideoNote = p.videoNote
	m.Sticker = p.sticker
	m.Document = p.document
}

// media classifies a raw media envelope into exactly one normalized media
// entity. Envelope kinds outside the closed set normalize to no media.
func (n *Normalizer) media(ctx context.Context, media wire.MediaClass) (mediaParts, error) {
	var parts mediaParts

	switch typed := media.(type) {
	case nil:
	case *wire.MediaPhoto:
		if typed.Photo != nil {
			parts.photo = n.photo(typed.Photo)
		}
	case *wire.MediaGeo:
		if typed.Geo != nil {
			parts.location = &telemap.Location{
				Longitude: typed.Geo.Long,
				Latitude:  typed.Geo.Lat,
			}
		}
	case *wire.MediaContact:
		contact := &telemap.Contact{
			PhoneNumber: typed.PhoneNumber,
			FirstName:   typed.FirstName,
			LastName:    typed.LastName,
		}
		if typed.UserID != 0 {
			userID := typed.UserID
			contact.UserID = &userID
		}
		parts.contact = contact
	case *wire.MediaVenue:
		if typed.Geo == nil {
			return parts, fmt.Errorf("venue envelope without geo point: %w", telemap.ErrBadRecord)
		}
		parts.venue = &telemap.Venue{
			Location: telemap.Location{
				Longitude: typed.Geo.Long,
				Latitude:  typed.Geo.Lat,
			},
			Title:        typed.Title,
			Address:      typed.Address,
			FoursquareID: typed.VenueID,
		}
	case *wire.MediaDocument:
		if typed.Document != nil {
			return n.document(ctx, typed.Document)
		}
	default:
		n.debug("dropping unrecognized media envelope", "kind", fmt.Sprintf("%T", media))
	}

	return parts, nil
}

// photo builds the ordered size sequence. Sizes whose location cannot be
// resolved keep their metadata entry with an empty file id; the message
// never fails over them.
func (n *Normalizer) photo(raw *wire.Photo) telemap.Photo {
	sizes := make(telemap.Photo, 0, len(raw.Sizes))
	for _, size := range raw.Sizes {
		entry, ok := n.photoSize(size, raw.ID, raw.AccessHash, raw.Date)
		if !ok {
			continue
		}
		sizes = append(sizes, entry)
	}

	return sizes
}

func (n *Normalizer) photoSize(size wire.PhotoSizeClass, photoID, accessHash int64, date int) (telemap.PhotoSize, bool) {
	var (
		loc      wire.FileLocationClass
		w, h     int
		fileSize int
	)
	switch typed := size.(type) {
	case *wire.PhotoSize:
		loc, w, h, fileSize = typed.Location, typed.W, typed.H, typed.Size
	case *wire.PhotoCachedSize:
		loc, w, h, fileSize = typed.Location, typed.W, typed.H, len(typed.Bytes)
	default:
		return telemap.PhotoSize{}, false
	}

	entry := telemap.PhotoSize{
		Width:    w,
		Height:   h,
		FileSize: fileSize,
		Date:     timeFromUnix(date),
	}

	resolved, ok := loc.(*wire.FileLocation)
	if !ok {
		n.debug("photo size location unresolved", "photo_id", photoID)
		return entry, true
	}

	token, err := fileid.Encode(fileid.FileID{
		Type:       fileid.TypePhoto,
		DCID:       resolved.DCID,
		ID:         photoID,
		AccessHash: accessHash,
		VolumeID:   resolved.VolumeID,
		Secret:     resolved.Secret,
		LocalID:    resolved.LocalID,
	})
	if err != nil {
		return entry, true
	}
	entry.FileID = token

	return entry, true
}

// thumb builds a document's preview from its smallest inline or located
// size. Absent or unresolvable locations yield no thumbnail.
func (n *Normalizer) thumb(size wire.PhotoSizeClass) *telemap.PhotoSize {
	var (
		loc      wire.FileLocationClass
		w, h     int
		fileSize int
	)
	switch typed := size.(type) {
	case *wire.PhotoSize:
		loc, w, h, fileSize = typed.Location, typed.W, typed.H, typed.Size
	case *wire.PhotoCachedSize:
		loc, w, h, fileSize = typed.Location, typed.W, typed.H, len(typed.Bytes)
	default:
		return nil
	}

	resolved, ok := loc.(*wire.FileLocation)
	if !ok {
		return nil
	}

	token, err := fileid.Encode(fileid.FileID{
		Type:     fileid.TypeThumbnail,
		DCID:     resolved.DCID,
		VolumeID: resolved.VolumeID,
		Secret:   resolved.Secret,
		LocalID:  resolved.LocalID,
	})
	if err != nil {
		return nil
	}

	return &telemap.PhotoSize{
		FileID:   token,
		Width:    w,
		Height:   h,
		FileSize: fileSize,
	}
}

// document picks the normalized sub-kind of a generic document from its
// attribute tags: audio (voice or track), then animated, then video (note
// or ordinary), then sticker, else plain document.
func (n *Normalizer) document(ctx context.Context, doc *wire.Document) (mediaParts, error) {
	var (
		parts     mediaParts
		audio     *wire.DocumentAttributeAudio
		video     *wire.DocumentAttributeVideo
		sticker   *wire.DocumentAttributeSticker
		imageSize *wire.DocumentAttributeImageSize
		fileName  string
		animated  bool
	)
	for _, attribute := range doc.Attributes {
		switch typed := attribute.(type) {
		case *wire.DocumentAttributeAudio:
			audio = typed
		case *wire.DocumentAttributeVideo:
			video = typed
		case *wire.DocumentAttributeSticker:
			sticker = typed
		case *wire.DocumentAttributeImageSize:
			imageSize = typed
		case *wire.DocumentAttributeFilename:
			fileName = typed.FileName
		case *wire.DocumentAttributeAnimated:
			animated = true
		}
	}

	thumb := n.thumb(doc.Thumb)
	date := timeFromUnix(doc.Date)

	switch {
	case audio != nil && audio.Voice:
		parts.voice = &telemap.Voice{
			FileID:   documentFileID(fileid.TypeVoice, doc),
			Duration: audio.Duration,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			Thumb:    thumb,
			FileName: fileName,
			Date:     date,
		}
	case audio != nil:
		parts.audio = &telemap.Audio{
			FileID:    documentFileID(fileid.TypeAudio, doc),
			Duration:  audio.Duration,
			Performer: audio.Performer,
			Title:     audio.Title,
			MimeType:  doc.MimeType,
			FileSize:  doc.Size,
			Thumb:     thumb,
			FileName:  fileName,
			Date:      date,
		}
	case animated:
		parts.document = &telemap.Document{
			FileID:   documentFileID(fileid.TypeAnimation, doc),
			Thumb:    thumb,
			FileName: fileName,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			Date:     date,
			Animated: true,
		}
	case video != nil && video.RoundMessage:
		parts.videoNote = &telemap.VideoNote{
			FileID:   documentFileID(fileid.TypeVideoNote, doc),
			Length:   video.W,
			Duration: video.Duration,
			Thumb:    thumb,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			FileName: fileName,
			Date:     date,
		}
	case video != nil:
		parts.video = &telemap.Video{
			FileID:   documentFileID(fileid.TypeVideo, doc),
			Width:    video.W,
			Height:   video.H,
			Duration: video.Duration,
			Thumb:    thumb,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			FileName: fileName,
			Date:     date,
		}
	case sticker != nil:
		// A sticker without image dimensions breaks the upstream
		// decoder's contract.
		if imageSize == nil {
			return parts, fmt.Errorf("sticker document %d without image size attribute: %w", doc.ID, telemap.ErrBadRecord)
		}
		setName, err := n.stickerSetName(ctx, sticker.Stickerset)
		if err != nil {
			return parts, err
		}
		parts.sticker = &telemap.Sticker{
			FileID:   documentFileID(fileid.TypeSticker, doc),
			Width:    imageSize.W,
			Height:   imageSize.H,
			Thumb:    thumb,
			Emoji:    sticker.Alt,
			SetName:  setName,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			FileName: fileName,
			Date:     date,
		}
	default:
		parts.document = &telemap.Document{
			FileID:   documentFileID(fileid.TypeDocument, doc),
			Thumb:    thumb,
			FileName: fileName,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			Date:     date,
		}
	}

	return parts, nil
}

// stickerSetName resolves a set's short name through the injected
// collaborator. A set-not-found miss degrades to an absent name; any other
// failure propagates.
func (n *Normalizer) stickerSetName(ctx context.Context, set wire.InputStickerSetClass) (string, error) {
	ref, ok := set.(*wire.InputStickerSetID)
	if !ok || n.stickers == nil {
		return "", nil
	}

	name, err := n.stickers.ResolveStickerSet(ctx, *ref)
	if errors.Is(err, telemap.ErrStickerSetNotFound) {
		n.debug("sticker set not found", "set_id", ref.ID)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve sticker set %d: %w", ref.ID, err)
	}

	return name, nil
}

func documentFileID(kind fileid.Type, doc *wire.Document) string {
	token, err := fileid.Encode(fileid.FileID{
		Type:       kind,
		DCID:       doc.DCID,
		ID:         doc.ID,
		AccessHash: doc.AccessHash,
	})
	if err != nil {
		return ""
	}
	return token
}
