package fileid

import (
	"encoding/base64"
	"fmt"
)

// TokenCodec turns raw identifier bytes into a transportable text token and
// back. *base64.Encoding satisfies it directly.
type TokenCodec interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// defaultCodec is unpadded URL-safe base64, safe inside callback payloads
// and deep links.
var defaultCodec TokenCodec = base64.RawURLEncoding

// Encode packs f and renders it with the default token codec.
func Encode(f FileID) (string, error) {
	return EncodeWith(f, defaultCodec)
}

// EncodeWith packs f and renders it with a caller-supplied token codec.
func EncodeWith(f FileID, codec TokenCodec) (string, error) {
	data, err := f.Bytes()
	if err != nil {
		return "", err
	}
	return codec.EncodeToString(data), nil
}

// Decode parses a token rendered by Encode.
func Decode(token string) (FileID, error) {
	return DecodeWith(token, defaultCodec)
}

// DecodeWith parses a token rendered with a caller-supplied token codec.
func DecodeWith(token string, codec TokenCodec) (FileID, error) {
	data, err := codec.DecodeString(token)
	if err != nil {
		return FileID{}, fmt.Errorf("decode token: %w", ErrBadFileID)
	}
	return FromBytes(data)
}
