package wire

// FileLocationClass is the coordinate sub-record of a photo size. The
// unavailable variant models a server response that withheld the location;
// sizes carrying it stay listed but cannot be fetched.
type FileLocationClass interface {
	sealedFileLocation()
}

// FileLocation pinpoints stored file bytes on a datacenter volume.
type FileLocation struct {
	DCID     int
	VolumeID int64
	Secret   int64
	LocalID  int
}

// FileLocationUnavailable is a location the server declined to expose.
type FileLocationUnavailable struct {
	VolumeID int64
	Secret   int64
	LocalID  int
}

func (*FileLocation) sealedFileLocation()            {}
func (*FileLocationUnavailable) sealedFileLocation() {}

// PhotoSizeClass is one rendition of a photo. Closed set of the two legacy
// shapes: a located size and a small inline-cached size.
type PhotoSizeClass interface {
	sealedPhotoSize()
}

// PhotoSize is a photo rendition addressed by a file location.
type PhotoSize struct {
	Type     string
	Location FileLocationClass
	W        int
	H        int
	Size     int
}

// PhotoCachedSize is a small photo rendition with the bytes inlined into the
// record itself. It may still carry a location for re-fetching.
type PhotoCachedSize struct {
	Type     string
	Location FileLocationClass
	W        int
	H        int
	Bytes    []byte
}

func (*PhotoSize) sealedPhotoSize()       {}
func (*PhotoCachedSize) sealedPhotoSize() {}

// Photo is a raw photo record with its ordered size renditions.
type Photo struct {
	ID         int64
	AccessHash int64
	Date       int
	Sizes      []PhotoSizeClass
}
