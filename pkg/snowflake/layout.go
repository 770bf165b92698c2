package snowflake

import "lukechampine.com/uint128"

// Field widths in bits.
const (
	TimestampBits  = 64
	EntityTypeBits = 8
	CounterBits    = 13
	APIVersionBits = 8
	NodeIDBits     = 16
)

// Largest value each field can carry.
const (
	MaxEntityType = 1<<EntityTypeBits - 1 // 255
	MaxCounter    = 1<<CounterBits - 1    // 8191
	MaxAPIVersion = 1<<APIVersionBits - 1 // 255
	MaxNodeID     = 1<<NodeIDBits - 1     // 65535
)

// Shifts within the low 64-bit word. The timestamp is the whole high word.
// One reserved bit separates the entity type from the counter and the low
// 18 bits are reserved; both are always zero in encoded IDs.
const (
	entityTypeShift = 56
	counterShift    = entityTypeShift - 1 - CounterBits // 42
	apiVersionShift = counterShift - APIVersionBits     // 34
	nodeIDShift     = apiVersionShift - NodeIDBits      // 18
)

// Fields is the decoded form of an ID.
type Fields struct {
	TimestampMs uint64 `json:"timestamp_ms"` // milliseconds since Epoch
	EntityType  uint32 `json:"entity_type"`
	Counter     uint32 `json:"counter"`
	APIVersion  uint32 `json:"api_version"`
	NodeID      uint32 `json:"node_id"`
}

// Encode packs f into an ID. It returns a *RangeError if any field does not
// fit its width.
func Encode(f Fields) (ID, error) {
	if err := checkRange("entity_type", uint64(f.EntityType), MaxEntityType); err != nil {
		return ID{}, err
	}
	if err := checkRange("counter", uint64(f.Counter), MaxCounter); err != nil {
		return ID{}, err
	}
	if err := checkRange("api_version", uint64(f.APIVersion), MaxAPIVersion); err != nil {
		return ID{}, err
	}
	if err := checkRange("node_id", uint64(f.NodeID), MaxNodeID); err != nil {
		return ID{}, err
	}
	return pack(f.TimestampMs, f.EntityType, f.Counter, nodeWord(f.NodeID, f.APIVersion)), nil
}

// nodeWord returns the per-generator constant bits of the low word.
func nodeWord(nodeID, apiVersion uint32) uint64 {
	return uint64(nodeID)<<nodeIDShift | uint64(apiVersion)<<apiVersionShift
}

// pack assembles an ID from fields already known to be in range.
func pack(ts uint64, entityType, counter uint32, node uint64) ID {
	lo := uint64(entityType)<<entityTypeShift | uint64(counter)<<counterShift | node
	return ID(uint128.New(lo, ts))
}

// Decode extracts every field of id. It never fails: any 128-bit value has a
// well-defined extraction and reserved bits are ignored.
func Decode(id ID) Fields {
	v := uint128.Uint128(id)
	return Fields{
		TimestampMs: v.Hi,
		EntityType:  uint32(v.Lo >> entityTypeShift & MaxEntityType),
		Counter:     uint32(v.Lo >> counterShift & MaxCounter),
		APIVersion:  uint32(v.Lo >> apiVersionShift & MaxAPIVersion),
		NodeID:      uint32(v.Lo >> nodeIDShift & MaxNodeID),
	}
}
