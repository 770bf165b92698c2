// Package snowflake generates 128-bit, time-sortable identifiers without
// coordination between nodes.
//
// An ID packs five fields into a single unsigned 128-bit value. The
// timestamp occupies the most significant 64 bits, so the numeric order of
// IDs follows the order in which they were generated, at millisecond
// granularity, across every node.
//
// Layout, counted from the most significant bit (position 0) down:
//
//	positions   0-63   timestamp, milliseconds since 2020-01-01T00:00:00Z
//	positions  64-71   entity type tag (user, channel, guild, ...)
//	position   72      reserved, always zero
//	positions  73-85   sequence counter (13 bits, 8192 IDs per millisecond)
//	positions  86-93   API version
//	positions  94-109  node identifier
//	positions 110-127  reserved, always zero
//
// Positions are numbered MSB-first: position p is bit 127-p when bits are
// counted from the least significant end, so position 0 is bit 63 of Hi.
//
// In terms of the two 64-bit words, the timestamp is the high word and the
// remaining fields live in the low word at shifts 56, 42, 34 and 18.
//
// Basic usage:
//
//	gen, err := snowflake.New(42, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, err := gen.Generate(1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)                   // decimal form
//	fmt.Println(snowflake.Decode(id)) // {TimestampMs EntityType Counter APIVersion NodeID}
//
// Thread safety:
//
// A Generator is safe for concurrent use. Its only mutable state is a single
// atomic word updated by compare-and-swap, so Generate never takes a lock.
// Generate blocks in two situations only: when all 8192 counter values of the
// current millisecond are used up, and, with the rollback guard enabled, when
// the system clock reads earlier than the last issued timestamp. Both waits
// spin briefly and then back off with short sleeps until the clock advances.
//
// Construct one Generator per node (or per shard) and share the pointer; the
// package keeps no global generator.
package snowflake
