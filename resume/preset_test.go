package resume

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0xf8, 0xcf, 0xc0, 0xf0,
	0x1f, 0x00, 0x05, 0x00, 0x01, 0xff, 0x89, 0x99, 0x3d, 0x1d, 0x00, 0x00,
	0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestParsePresetAcceptsStringOrArrayLists(t *testing.T) {
	p, err := ParsePreset([]byte(`{"name":"Jane","skills":"Go, SQL","languages":["Deutsch - C1"],"rtl_mode":true}`))
	require.NoError(t, err)
	assert.Equal(t, StringList{"Go", "SQL"}, p.Skills)
	assert.Equal(t, StringList{"Deutsch - C1"}, p.Languages)

	in := p.Form().Input()
	assert.Equal(t, []string{"Go", "SQL"}, in.Skills)
	assert.Equal(t, []string{"Deutsch – Sehr gute Kenntnisse"}, in.Languages)
	assert.True(t, in.RTL)
	assert.Nil(t, in.Photo)
}

func TestValidatePresetReportsFields(t *testing.T) {
	err := ValidatePreset([]byte(`{"name": 42, "rtl_mode": "yes"}`))
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	fields := map[string]bool{}
	for _, fe := range ve.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["rtl_mode"])

	err = ValidatePreset([]byte(`[1,2]`))
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "(root)", ve.Errors[0].Field)

	assert.Error(t, ValidatePreset([]byte(`{not json`)))
}

func TestParsePresetDropsBrokenPhoto(t *testing.T) {
	p, err := ParsePreset([]byte(`{"photo_b64":"%%%","photo_mime":"image/png","photo_name":"me.png"}`))
	require.NoError(t, err)
	assert.Nil(t, p.Photo())
	assert.Nil(t, p.PhotoB64)
	assert.Nil(t, p.PhotoMime)
	assert.Nil(t, p.PhotoName)
}

func TestParsePresetPhotoDefaults(t *testing.T) {
	doc := `{"photo_b64":"` + base64.StdEncoding.EncodeToString(tinyPNG) + `","photo_mime":null,"photo_name":null}`
	p, err := ParsePreset([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, p.Photo())
	require.NotNil(t, p.PhotoMime)
	assert.Equal(t, "image/png", *p.PhotoMime)
	require.NotNil(t, p.PhotoName)
	assert.Equal(t, "photo.png", *p.PhotoName)
	assert.Equal(t, tinyPNG, p.Form().Input().Photo)
}

func TestGuessMime(t *testing.T) {
	assert.Equal(t, "image/png", guessMime(tinyPNG, "x.bin"))
	assert.Equal(t, "image/jpeg", guessMime([]byte("plain text"), "me.jpg"))
	assert.Equal(t, "image/png", guessMime([]byte("plain text"), "notes"))
}

func TestSavePresetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.json")

	p := &Preset{Name: "Jane <Doe>", Skills: StringList{"Go"}, ProjectsText: "A\nB"}
	p.SetPhoto(tinyPNG, "", "")
	require.NoError(t, SavePreset(path, p))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"name\": \"Jane <Doe>\"")
	require.NoError(t, ValidatePreset(raw))

	loaded, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Skills, loaded.Skills)
	assert.Equal(t, tinyPNG, loaded.Photo())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestEmptyListsMarshalAsArrays(t *testing.T) {
	data, err := json.Marshal(&Preset{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skills":[]`)
	assert.Contains(t, string(data), `"photo_b64":null`)
	require.NoError(t, ValidatePreset(data))
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
