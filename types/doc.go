// Package types provides small serialization-oriented value types shared
// across programs: byte-order selection with native-order detection,
// charset names resolvable to text codecs, and a generic two-way mapping
// between enumeration values and their wire names.
package types
