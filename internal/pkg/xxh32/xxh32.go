// Package xxh32 implements the XXH32 hashing algorithm with a fixed seed
// of zero, the checksum used throughout the LZ4 frame format.
// (ported from the reference implementation https://github.com/Cyan4973/xxHash/)
package xxh32

import "encoding/binary"

const (
	prime1 uint32 = 2654435761
	prime2 uint32 = 2246822519
	prime3 uint32 = 3266489917
	prime4 uint32 = 668265263
	prime5 uint32 = 374761393

	primeMask   = 0xFFFFFFFF
	prime1plus2 = uint32((uint64(prime1) + uint64(prime2)) & primeMask)
	prime1minus = uint32((-int64(prime1)) & primeMask)
)

// ChecksumZero returns the XXH32 hash of 'input' using seed zero, as used
// for the frame header, block, and content checksums.
//
// The decoder only ever hashes complete, already-materialized slices (a
// header, a block payload, or the full output), so this is a one-shot
// function rather than the incremental hash.Hash32 this algorithm is
// usually wrapped in.
func ChecksumZero(input []byte) uint32 {
	n := len(input)
	h32 := uint32(n)

	if n < 16 {
		h32 += prime5
	} else {
		v1 := prime1plus2
		v2 := prime2
		v3 := uint32(0)
		v4 := prime1minus
		p := 0
		for n := n - 16; p <= n; p += 16 {
			sub := input[p:][:16] // bounds check hint for compiler
			v1 = rol13(v1+binary.LittleEndian.Uint32(sub[:])*prime2) * prime1
			v2 = rol13(v2+binary.LittleEndian.Uint32(sub[4:])*prime2) * prime1
			v3 = rol13(v3+binary.LittleEndian.Uint32(sub[8:])*prime2) * prime1
			v4 = rol13(v4+binary.LittleEndian.Uint32(sub[12:])*prime2) * prime1
		}
		input = input[p:]
		n -= p
		h32 += rol1(v1) + rol7(v2) + rol12(v3) + rol18(v4)
	}

	p := 0
	for n := n - 4; p <= n; p += 4 {
		h32 += binary.LittleEndian.Uint32(input[p:p+4]) * prime3
		h32 = rol17(h32) * prime4
	}
	for p < n {
		h32 += uint32(input[p]) * prime5
		h32 = rol11(h32) * prime1
		p++
	}

	h32 ^= h32 >> 15
	h32 *= prime2
	h32 ^= h32 >> 13
	h32 *= prime3
	h32 ^= h32 >> 16

	return h32
}

func rol1(u uint32) uint32  { return u<<1 | u>>31 }
func rol7(u uint32) uint32  { return u<<7 | u>>25 }
func rol11(u uint32) uint32 { return u<<11 | u>>21 }
func rol12(u uint32) uint32 { return u<<12 | u>>20 }
func rol13(u uint32) uint32 { return u<<13 | u>>19 }
func rol17(u uint32) uint32 { return u<<17 | u>>15 }
func rol18(u uint32) uint32 { return u<<18 | u>>14 }
