package descriptor

const (
	bitDictId            = 0
	bitReserved          = 1
	bitContentChecksum   = 2
	bitSize              = 3
	bitBlockChecksum     = 4
	bitBlockIndependence = 5
)

// Flags is the FLG byte of the LZ4 frame header.
type Flags uint8

func (m Flags) DictId() bool            { return m.isSet(bitDictId) }
func (m Flags) Reserved() bool          { return m.isSet(bitReserved) }
func (m Flags) ContentChecksum() bool   { return m.isSet(bitContentChecksum) }
func (m Flags) ContentSize() bool       { return m.isSet(bitSize) }
func (m Flags) BlockChecksum() bool     { return m.isSet(bitBlockChecksum) }
func (m Flags) BlockIndependence() bool { return m.isSet(bitBlockIndependence) }
func (m Flags) Version() uint8          { return uint8(m >> 6 & 0x3) }

func (m Flags) isSet(pos uint8) bool {
	return (m & (1 << pos)) != 0
}
