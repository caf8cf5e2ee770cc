package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telemap/pkg/fileid"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	out, err := runCommand(t,
		"encode",
		"--type", "5",
		"--dc", "4",
		"--id", "9000",
		"--access-hash", "-9001",
	)
	require.NoError(t, err)
	token := strings.TrimSpace(out)
	require.NotEmpty(t, token)

	out, err = runCommand(t, "decode", token)
	require.NoError(t, err)

	assert.Contains(t, out, "type:        document")
	assert.Contains(t, out, "dc:          4")
	assert.Contains(t, out, "id:          9000")
	assert.Contains(t, out, "access_hash: -9001")
	assert.NotContains(t, out, "volume_id", "reference kinds carry no location fields")
}

func TestDecodeLocationKind(t *testing.T) {
	token, err := fileid.Encode(fileid.FileID{
		Type:     fileid.TypeThumbnail,
		DCID:     2,
		VolumeID: 55,
		Secret:   66,
		LocalID:  77,
	})
	require.NoError(t, err)

	out, err := runCommand(t, "decode", token)
	require.NoError(t, err)

	assert.Contains(t, out, "type:        thumbnail")
	assert.Contains(t, out, "volume_id:   55")
	assert.Contains(t, out, "secret:      66")
	assert.Contains(t, out, "local_id:    77")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := runCommand(t, "decode", "not-a-token")
	require.Error(t, err)
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, err := runCommand(t, "encode", "--type", "6")
	require.Error(t, err)
}
