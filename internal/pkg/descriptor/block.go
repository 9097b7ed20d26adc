package descriptor

// Block is the BD byte of the LZ4 frame header.
type Block uint8

func (m Block) Size() int {
	return m.Idx().Size()
}

// Valid reports whether all reserved BD bits are clear. The 3-bit block
// maximum size field is not range checked; the decoder sizes its buffers
// from actual block lengths rather than the advertised maximum.
func (m Block) Valid() bool {
	return m&0x8F == 0
}

// Convert to BlockIdx, see spec.
func (m Block) Idx() BlockIdxT {
	return BlockIdxT(m >> 4 & 0x7)
}
