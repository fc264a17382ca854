package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// StructureName is the name of the per region structure the downstream
// encoder looks for when embedding object metadata in the bitstream
const StructureName = "roi/arsei"

// Record is the tensor free metadata of a single region for serialization by
// a downstream encoder or muxer
type Record struct {
	// ObjectID is zero based.  For tracked frames it is the tracking
	// identifier minus one, otherwise the region's position in the frame.
	ObjectID int `json:"obj_id"`
	// Label is empty when labels are not being emitted
	Label string `json:"label,omitempty"`
	// Tracked reports if ObjectID was taken from the tracking identifier
	Tracked bool `json:"tracked"`
}

// String serializes the record as a structure, eg:
//
//	roi/arsei, obj_id=(int)4, label=(string)"face_";
func (r Record) String() string {

	var sb strings.Builder

	sb.WriteString(StructureName)
	sb.WriteString(", obj_id=(int)")
	sb.WriteString(strconv.Itoa(r.ObjectID))

	if r.Label != "" {
		sb.WriteString(", label=(string)")
		sb.WriteString(quote(r.Label))
	}

	sb.WriteString(";")

	return sb.String()
}

// quote wraps s in double quotes escaping quotes and backslashes with a
// backslash and control characters as three digit octal, eg: "\012"
func quote(s string) string {

	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, "\\%03o", r)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
