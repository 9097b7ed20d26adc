package block

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

func TestLiteralOnly(t *testing.T) {
	src := []byte{0x40, 'A', 'A', 'A', 'A'}

	out, err := Decode(src, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !bytes.Equal(out, []byte("AAAA")) {
		t.Errorf("Expected AAAA, got %q", out)
	}
}

func TestEmptyInput(t *testing.T) {
	out, err := Decode(nil, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Expected empty output, got %d bytes", len(out))
	}
}

// One literal 'X' followed by an offset-1 match with an extended length:
// token low nibble 15, continuation byte 45, so matchLen = 4+15+45 = 64.
// Classic RLE case; output is 65 X's.
func TestMatchRun(t *testing.T) {
	src := []byte{0x1F, 'X', 0x01, 0x00, 0x2D}

	out, err := Decode(src, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if want := strings.Repeat("X", 65); string(out) != want {
		t.Errorf("Expected 65 X's, got %d bytes %q", len(out), out)
	}
}

// Overlap copy where the offset is smaller than the match length but > 1.
func TestOverlapCopy(t *testing.T) {
	// Literals "ab", then offset 2, matchLen 4+1=5 -> "ab" + "ababa"
	src := []byte{0x21, 'a', 'b', 0x02, 0x00}

	out, err := Decode(src, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if string(out) != "abababa" {
		t.Errorf("Expected abababa, got %q", out)
	}
}

// A match whose offset equals the current output length reaches back to
// the very first byte of the working buffer.
func TestMatchAtFullDistance(t *testing.T) {
	src := []byte{0x40, 'W', 'X', 'Y', 'Z', 0x04, 0x00}

	out, err := Decode(src, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if string(out) != "WXYZWXYZ" {
		t.Errorf("Expected WXYZWXYZ, got %q", out)
	}
}

func TestExtendedLiteralLength(t *testing.T) {
	// litLen = 15 + 5 = 20
	src := append([]byte{0xF0, 0x05}, bytes.Repeat([]byte{'z'}, 20)...)

	out, err := Decode(src, nil, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if want := strings.Repeat("z", 20); string(out) != want {
		t.Errorf("Expected 20 z's, got %q", out)
	}
}

// Matches may reach into the dependent-block carry but no further.
func TestPrefixWindow(t *testing.T) {
	carry := []byte("....WXYZ")

	tests := map[string]struct {
		win  int
		err  error
		want string
	}{
		"within_window":  {win: 8, want: "....WXYZWXYZ"},
		"partial_window": {win: 4, want: "....WXYZWXYZ"},
		"beyond_window":  {win: 3, err: zerr.ErrBadOffset},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dst := append([]byte(nil), carry...)

			// Zero literals, offset 4, matchLen 4.
			out, err := Decode([]byte{0x00, 0x04, 0x00}, dst, tc.win)

			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("Expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if string(out) != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, out)
			}
		})
	}
}

func TestBadOffset(t *testing.T) {
	tests := map[string][]byte{
		"zero_offset":    {0x10, 'A', 0x00, 0x00},
		"offset_too_far": {0x10, 'A', 0x02, 0x00},
		"empty_output":   {0x00, 0x01, 0x00},
		"full_plus_one":  {0x40, 'W', 'X', 'Y', 'Z', 0x05, 0x00},
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(src, nil, 0); !errors.Is(err, zerr.ErrBadOffset) {
				t.Errorf("Expected ErrBadOffset, got %v", err)
			} else if !errors.Is(err, zerr.ErrCorrupted) {
				t.Errorf("Expected bad offset to classify corrupted, got %v", err)
			}
		})
	}
}

func TestTruncated(t *testing.T) {
	tests := map[string][]byte{
		"literals_short":  {0x50, 'H', 'e', 'l'},
		"offset_short":    {0x10, 'A', 0x01},
		"ext_lit_missing": {0xF0},
		"ext_match_hang":  {0x1F, 'A', 0x01, 0x00},
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(src, nil, 0); !errors.Is(err, zerr.ErrTruncated) {
				t.Errorf("Expected ErrTruncated, got %v", err)
			}
		})
	}
}
