package normalize

import (
	"telemap/pkg/fileid"
	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// User maps a raw user record onto a normalized User. Nil in, nil out.
func (n *Normalizer) User(raw *wire.User) *telemap.User {
	if raw == nil {
		return nil
	}

	return &telemap.User{
		ID:           raw.ID,
		IsBot:        raw.Bot,
		FirstName:    raw.FirstName,
		LastName:     raw.LastName,
		Username:     raw.Username,
		LanguageCode: raw.LangCode,
		PhoneNumber:  raw.Phone,
		Photo:        n.profilePhoto(raw.Photo),
	}
}

func (n *Normalizer) profilePhoto(photo *wire.UserProfilePhoto) *telemap.ChatPhoto {
	if photo == nil {
		return nil
	}
	return n.chatPhoto(photo.PhotoSmall, photo.PhotoBig)
}

// chatPhoto builds the small/big identifier pair. The pair is produced only
// when both locations are resolvable; a single malformed side drops the
// whole photo.
func (n *Normalizer) chatPhoto(small, big wire.FileLocationClass) *telemap.ChatPhoto {
	smallLoc, ok := small.(*wire.FileLocation)
	if !ok {
		n.debug("chat photo small location unresolved")
		return nil
	}
	bigLoc, ok := big.(*wire.FileLocation)
	if !ok {
		n.debug("chat photo big location unresolved")
		return nil
	}

	smallID, err := fileid.Encode(profilePhotoFileID(smallLoc))
	if err != nil {
		return nil
	}
	bigID, err := fileid.Encode(profilePhotoFileID(bigLoc))
	if err != nil {
		return nil
	}

	return &telemap.ChatPhoto{
		SmallFileID: smallID,
		BigFileID:   bigID,
	}
}

func profilePhotoFileID(loc *wire.FileLocation) fileid.FileID {
	return fileid.FileID{
		Type:     fileid.TypeProfilePhoto,
		DCID:     loc.DCID,
		VolumeID: loc.VolumeID,
		Secret:   loc.Secret,
		LocalID:  loc.LocalID,
	}
}
