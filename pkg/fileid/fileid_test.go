package fileid

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIDRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   FileID
	}{
		{
			name: "thumbnail",
			id:   FileID{Type: TypeThumbnail, DCID: 2, VolumeID: 400, Secret: -77, LocalID: 9},
		},
		{
			name: "profile photo",
			id:   FileID{Type: TypeProfilePhoto, DCID: 4, VolumeID: 123456789, Secret: 987654321, LocalID: 31337},
		},
		{
			name: "photo",
			id:   FileID{Type: TypePhoto, DCID: 2, ID: 5000000001, AccessHash: -6000000002, VolumeID: 7, Secret: 8, LocalID: 9},
		},
		{
			name: "voice",
			id:   FileID{Type: TypeVoice, DCID: 1, ID: 42, AccessHash: 43},
		},
		{
			name: "video",
			id:   FileID{Type: TypeVideo, DCID: 5, ID: -1, AccessHash: 1},
		},
		{
			name: "document",
			id:   FileID{Type: TypeDocument, DCID: 3, ID: 777, AccessHash: 888},
		},
		{
			name: "sticker",
			id:   FileID{Type: TypeSticker, DCID: 2, ID: 999, AccessHash: -999},
		},
		{
			name: "audio",
			id:   FileID{Type: TypeAudio, DCID: 4, ID: 12, AccessHash: 34},
		},
		{
			name: "animation",
			id:   FileID{Type: TypeAnimation, DCID: 1, ID: 56, AccessHash: 78},
		},
		{
			name: "video note",
			id:   FileID{Type: TypeVideoNote, DCID: 2, ID: 90, AccessHash: 12},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data, err := test.id.Bytes()
			require.NoError(t, err)

			got, err := FromBytes(data)
			require.NoError(t, err)
			assert.Equal(t, test.id, got)

			token, err := Encode(test.id)
			require.NoError(t, err)
			fromToken, err := Decode(token)
			require.NoError(t, err)
			assert.Equal(t, test.id, fromToken)
		})
	}
}

func TestFileIDByteLayout(t *testing.T) {
	t.Parallel()

	t.Run("location layout", func(t *testing.T) {
		t.Parallel()

		data, err := FileID{
			Type:       TypePhoto,
			DCID:       4,
			ID:         0x0102030405060708,
			AccessHash: -1,
			VolumeID:   5,
			Secret:     6,
			LocalID:    7,
		}.Bytes()
		require.NoError(t, err)

		want := []byte{
			0x02, 0x00, 0x00, 0x00, // tag
			0x04, 0x00, 0x00, 0x00, // dc
			0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // id
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // access hash
			0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // volume
			0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // secret
			0x07, 0x00, 0x00, 0x00, // local id
		}
		assert.Equal(t, want, data)
	})

	t.Run("reference layout", func(t *testing.T) {
		t.Parallel()

		data, err := FileID{Type: TypeVoice, DCID: 1, ID: 2, AccessHash: 3}.Bytes()
		require.NoError(t, err)

		want := []byte{
			0x03, 0x00, 0x00, 0x00,
			0x01, 0x00, 0x00, 0x00,
			0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		}
		assert.Equal(t, want, data)
	})

	t.Run("profile photo reserves id slots", func(t *testing.T) {
		t.Parallel()

		data, err := FileID{Type: TypeProfilePhoto, DCID: 2, VolumeID: 1, Secret: 1, LocalID: 1}.Bytes()
		require.NoError(t, err)
		require.Len(t, data, 40)
		assert.Equal(t, make([]byte, 16), data[8:24])
	})
}

func TestFileIDDecodeErrors(t *testing.T) {
	t.Parallel()

	valid, err := FileID{Type: TypeDocument, DCID: 1, ID: 2, AccessHash: 3}.Bytes()
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "unknown tag", data: append([]byte{0x06, 0x00, 0x00, 0x00}, valid[4:]...)},
		{name: "truncated", data: valid[:10]},
		{name: "trailing bytes", data: append(append([]byte{}, valid...), 0x00)},
		{name: "reference layout with location length", data: append(append([]byte{}, valid...), make([]byte, 20)...)},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromBytes(test.data)
			assert.ErrorIs(t, err, ErrBadFileID)
		})
	}
}

func TestEncodeRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := FileID{Type: Type(99)}.Bytes()
	assert.ErrorIs(t, err, ErrBadFileID)
}

func TestDecodeRejectsBadToken(t *testing.T) {
	t.Parallel()

	_, err := Decode("not!!base64//")
	assert.ErrorIs(t, err, ErrBadFileID)
}

func TestEncodeWithCustomCodec(t *testing.T) {
	t.Parallel()

	id := FileID{Type: TypeAudio, DCID: 2, ID: 10, AccessHash: 20}
	token, err := EncodeWith(id, base64.StdEncoding)
	require.NoError(t, err)

	got, err := DecodeWith(token, base64.StdEncoding)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
