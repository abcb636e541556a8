package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodingCodecResolution tests that every declared encoding
// resolves to a codec.
func TestEncodingCodecResolution(t *testing.T) {
	t.Parallel()

	declared := []Encoding{
		EncodingUTF8,
		EncodingUTF16BE,
		EncodingUTF16LE,
		EncodingASCII,
		EncodingLatin1,
		EncodingKOI8R,
		EncodingKOI8U,
		EncodingMacintosh,
		EncodingShiftJIS,
		EncodingEUCJP,
		EncodingISO2022JP,
		EncodingEUCKR,
		EncodingGBK,
		EncodingGB18030,
		EncodingBig5,
		EncodingWindows874,
		EncodingWindows1250,
		EncodingWindows1251,
		EncodingWindows1252,
		EncodingWindows1253,
		EncodingWindows1254,
		EncodingWindows1255,
		EncodingWindows1256,
		EncodingWindows1257,
		EncodingWindows1258,
		EncodingISO8859_2,
		EncodingISO8859_5,
		EncodingISO8859_7,
		EncodingISO8859_15,
	}

	for _, enc := range declared {
		t.Run(enc.String(), func(t *testing.T) {
			t.Parallel()

			codec, err := enc.Codec()
			require.NoError(t, err)
			assert.NotNil(t, codec)
		})
	}
}

// TestEncodingUnknownLabel tests rejection of labels the index does not know.
func TestEncodingUnknownLabel(t *testing.T) {
	t.Parallel()

	_, err := Encoding("klingon").Codec()
	require.Error(t, err)

	var enc Encoding
	require.Error(t, enc.UnmarshalText([]byte("klingon")))
}

// TestEncodingCanonicalName tests alias folding.
func TestEncodingCanonicalName(t *testing.T) {
	t.Parallel()

	// "latin1" and "ascii" are historical aliases of windows-1252
	// in the WHATWG index.
	for _, alias := range []Encoding{EncodingLatin1, EncodingASCII} {
		name, err := alias.CanonicalName()
		require.NoError(t, err)
		assert.Equal(t, "windows-1252", name)
	}

	name, err := EncodingUTF8.CanonicalName()
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
}

// TestEncodingDecodeRoundTrip tests decoding bytes from a legacy
// character set into UTF-8 and back.
func TestEncodingDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	encoder, err := EncodingWindows1251.NewEncoder()
	require.NoError(t, err)

	encoded, err := encoder.String("Привет")
	require.NoError(t, err)
	assert.Len(t, encoded, 6)

	decoder, err := EncodingWindows1251.NewDecoder()
	require.NoError(t, err)

	decoded, err := decoder.String(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Привет", decoded)
}

// TestEncodingTextMarshal tests text marshalling of encodings.
func TestEncodingTextMarshal(t *testing.T) {
	t.Parallel()

	text, err := EncodingShiftJIS.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "shift_jis", string(text))

	var enc Encoding
	require.NoError(t, enc.UnmarshalText([]byte("gb18030")))
	assert.Equal(t, EncodingGB18030, enc)
}
