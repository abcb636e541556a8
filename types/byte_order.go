package types

import (
	"encoding/binary"

	"gopkg.in/yaml.v3"
)

// ByteOrder represents the endianness used for interpreting binary data.
// The zero value is LittleEndian.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte first. Default.
	LittleEndian ByteOrder = iota
	// BigEndian stores the most significant byte first.
	BigEndian
	// NativeEndian is whichever order the running platform uses.
	NativeEndian
)

//nolint:gochecknoglobals // Immutable lookup tables initialized once.
var (
	// byteOrderMapping binds ByteOrder values to their lowercase wire names.
	byteOrderMapping = NewMapping(map[ByteOrder]string{
		LittleEndian: "little",
		BigEndian:    "big",
		NativeEndian: "native",
	})

	// nativeIsLittle is the platform's order, detected once at startup.
	nativeIsLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001
)

// ParseByteOrder converts a wire name ("little", "big", "native")
// to the corresponding ByteOrder.
func ParseByteOrder(name string) (ByteOrder, error) {
	return byteOrderMapping.Value(name)
}

// String returns the lowercase wire name of the byte order.
// Unknown values render as "little", matching the default.
func (o ByteOrder) String() string {
	name, err := byteOrderMapping.Name(o)
	if err != nil {
		return "little"
	}

	return name
}

// IsLittle reports whether the order resolves to little-endian.
func (o ByteOrder) IsLittle() bool {
	switch o {
	case BigEndian:
		return false
	case NativeEndian:
		return nativeIsLittle
	case LittleEndian:
		return true
	default:
		return true
	}
}

// IsBig reports whether the order resolves to big-endian.
func (o ByteOrder) IsBig() bool {
	return !o.IsLittle()
}

// IsNative reports whether the order matches the running platform.
func (o ByteOrder) IsNative() bool {
	if o == NativeEndian {
		return true
	}

	return o.IsLittle() == nativeIsLittle
}

// Order returns the binary.ByteOrder to use for encoding and decoding.
func (o ByteOrder) Order() binary.ByteOrder {
	if o.IsLittle() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// MarshalText implements encoding.TextMarshaler.
func (o ByteOrder) MarshalText() ([]byte, error) {
	name, err := byteOrderMapping.Name(o)
	if err != nil {
		return nil, err
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *ByteOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseByteOrder(string(text))
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the lowercase wire name.
func (o ByteOrder) MarshalYAML() (any, error) {
	name, err := byteOrderMapping.Name(o)
	if err != nil {
		return nil, err
	}

	return name, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *ByteOrder) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}

	return o.UnmarshalText([]byte(name))
}
