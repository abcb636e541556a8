package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Encoding names a character set resolvable to a text codec.
// Names follow the WHATWG encoding index (lowercase labels and aliases).
// The zero value is not valid; EncodingUTF8 is the conventional default.
type Encoding string

// Common character sets. Any other label known to the WHATWG index
// is equally valid.
const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingASCII       Encoding = "ascii"
	EncodingLatin1      Encoding = "latin1"
	EncodingKOI8R       Encoding = "koi8-r"
	EncodingKOI8U       Encoding = "koi8-u"
	EncodingMacintosh   Encoding = "macintosh"
	EncodingShiftJIS    Encoding = "shift_jis"
	EncodingEUCJP       Encoding = "euc-jp"
	EncodingISO2022JP   Encoding = "iso-2022-jp"
	EncodingEUCKR       Encoding = "euc-kr"
	EncodingGBK         Encoding = "gbk"
	EncodingGB18030     Encoding = "gb18030"
	EncodingBig5        Encoding = "big5"
	EncodingWindows874  Encoding = "windows-874"
	EncodingWindows1250 Encoding = "windows-1250"
	EncodingWindows1251 Encoding = "windows-1251"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingWindows1253 Encoding = "windows-1253"
	EncodingWindows1254 Encoding = "windows-1254"
	EncodingWindows1255 Encoding = "windows-1255"
	EncodingWindows1256 Encoding = "windows-1256"
	EncodingWindows1257 Encoding = "windows-1257"
	EncodingWindows1258 Encoding = "windows-1258"
	EncodingISO8859_2   Encoding = "iso-8859-2"
	EncodingISO8859_5   Encoding = "iso-8859-5"
	EncodingISO8859_7   Encoding = "iso-8859-7"
	EncodingISO8859_15  Encoding = "iso-8859-15"
)

// String returns the encoding label.
func (e Encoding) String() string {
	return string(e)
}

// Codec resolves the label to a text codec.
func (e Encoding) Codec() (encoding.Encoding, error) {
	codec, err := htmlindex.Get(strings.TrimSpace(string(e)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve encoding '%s': %w", e, err)
	}

	return codec, nil
}

// CanonicalName returns the canonical label of the encoding,
// folding aliases like "latin1" to their index name.
func (e Encoding) CanonicalName() (string, error) {
	codec, err := e.Codec()
	if err != nil {
		return "", err
	}

	name, err := htmlindex.Name(codec)
	if err != nil {
		return "", fmt.Errorf("failed to name encoding '%s': %w", e, err)
	}

	return name, nil
}

// NewDecoder returns a decoder transforming the character set to UTF-8.
func (e Encoding) NewDecoder() (*encoding.Decoder, error) {
	codec, err := e.Codec()
	if err != nil {
		return nil, err
	}

	return codec.NewDecoder(), nil
}

// NewEncoder returns an encoder transforming UTF-8 to the character set.
func (e Encoding) NewEncoder() (*encoding.Encoder, error) {
	codec, err := e.Codec()
	if err != nil {
		return nil, err
	}

	return codec.NewEncoder(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting labels
// the index does not know.
func (e *Encoding) UnmarshalText(text []byte) error {
	candidate := Encoding(strings.TrimSpace(string(text)))
	if _, err := candidate.Codec(); err != nil {
		return err
	}

	*e = candidate

	return nil
}
