// Package protocol implements the ArduBridge I2C bus packet format.
//
// This package provides functions to build command packets and decode
// firmware reply bytes for the GSOF ArduBridge firmware. It is pure and
// stateless: all timing, retry and transport concerns live in package bus.
//
// # Packet Overview
//
// Every I2C bus packet starts with the packet-kind identifier '2' and is
// built from single-byte sub-commands followed by their arguments:
//
//	Write:           ['2']['A'][DEV]['L'][n]['W'][DATA...]
//	Write register:  ['2']['A'][DEV]['L'][n+1]['W'][REG][DATA...]
//	Read request:    ['2']['A'][DEV]['L'][n]['R']
//	Register select: ['2']['A'][DEV]['L'][1]['w'][REG]
//	Read continue:   ['2']['L'][n]['R']
//	Set frequency:   ['2']['F'][HZ/10000]
//
// The command bytes are ASCII characters so a raw wire trace stays readable
// during debugging. The length byte always equals the number of bytes that
// follow in that logical segment, the register byte included.
//
// A register select packet and a read continue packet may be concatenated
// into a single send; the firmware keeps the device address latched between
// the two halves. This is how zero-delay write-then-read sequences are
// expressed on the wire.
//
// # Replies
//
// The first byte the firmware sends after any write is a status byte. The
// first byte after a read request is the count of payload bytes that follow.
// Use DecodeStatus and DecodeCount to classify them:
//
//	if err := protocol.DecodeStatus(reply); err != nil {
//	    // firmware rejected the write, or no byte arrived
//	}
//
// Status codes other than the defined error codes are treated as success,
// matching the observed firmware behavior.
package protocol
