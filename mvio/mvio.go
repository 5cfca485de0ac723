// Package mvio implements MvsOutput: the spec §6 binary layout of a
// searched motion vector field, and its serialization and parsing.
package mvio

import (
	"encoding/binary"
	"fmt"

	"github.com/ausocean/motionvec/block"
)

// mvSize is the on-wire size of one MotionVector: i32 dx, i32 dy, i64
// sad, all little-endian.
const mvSize = 4 + 4 + 8

// Level is one pyramid level's searched vector grid, in row-major
// order.
type Level struct {
	BlkX, BlkY int
	Vectors    []block.MotionVector // len == BlkX*BlkY
}

// MvsOutput is the persisted vector field for one src/ref frame pair:
// a concatenation of per-level blocks, ordered coarsest to finest,
// with an optional trailing divide block.
type MvsOutput struct {
	Levels      []Level // coarsest first, matching the search order.
	DivideBlock *Level  // non-nil only when extra_divide was applied.
}

func putMotionVector(b []byte, v block.MotionVector) {
	binary.LittleEndian.PutUint32(b[0:4], uint32(v.Dx))
	binary.LittleEndian.PutUint32(b[4:8], uint32(v.Dy))
	binary.LittleEndian.PutUint64(b[8:16], uint64(v.Sad))
}

func getMotionVector(b []byte) block.MotionVector {
	return block.MotionVector{
		Dx:  int32(binary.LittleEndian.Uint32(b[0:4])),
		Dy:  int32(binary.LittleEndian.Uint32(b[4:8])),
		Sad: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}

// Marshal serializes m into the §6 byte layout: each level is an
// 8-byte little-endian size (the level's vector payload length,
// excluding the size field itself) followed by that many bytes of
// packed MotionVector records.
func (m *MvsOutput) Marshal() []byte {
	levels := m.Levels
	if m.DivideBlock != nil {
		levels = append(append([]Level(nil), m.Levels...), *m.DivideBlock)
	}

	total := 0
	for _, lvl := range levels {
		total += 8 + len(lvl.Vectors)*mvSize
	}
	out := make([]byte, total)

	off := 0
	for _, lvl := range levels {
		payload := len(lvl.Vectors) * mvSize
		binary.LittleEndian.PutUint64(out[off:off+8], uint64(payload))
		off += 8
		for _, v := range lvl.Vectors {
			putMotionVector(out[off:off+mvSize], v)
			off += mvSize
		}
	}
	return out
}

// Unmarshal parses b into len(blkDims) levels plus an optional trailing
// divide block (present when divideDims is non-nil), reversing Marshal.
// Since the wire format does not itself carry blk_x/blk_y, the caller
// supplies the expected grid size of every level (and of the divide
// block, when present) to validate against the parsed payload size.
func Unmarshal(b []byte, blkDims [][2]int, divideDims *[2]int) (*MvsOutput, error) {
	out := &MvsOutput{Levels: make([]Level, len(blkDims))}
	off := 0
	for i, dims := range blkDims {
		lvl, n, err := parseLevel(b[off:], dims)
		if err != nil {
			return nil, fmt.Errorf("mvio: level %d: %w", i, err)
		}
		out.Levels[i] = lvl
		off += n
	}
	if divideDims != nil {
		lvl, _, err := parseLevel(b[off:], *divideDims)
		if err != nil {
			return nil, fmt.Errorf("mvio: divide block: %w", err)
		}
		out.DivideBlock = &lvl
	}
	return out, nil
}

func parseLevel(b []byte, dims [2]int) (Level, int, error) {
	if len(b) < 8 {
		return Level{}, 0, fmt.Errorf("truncated size header")
	}
	size := binary.LittleEndian.Uint64(b[0:8])
	want := uint64(dims[0] * dims[1] * mvSize)
	if size != want {
		return Level{}, 0, fmt.Errorf("size %d does not match expected grid %dx%d (%d bytes)", size, dims[0], dims[1], want)
	}
	if uint64(len(b)-8) < size {
		return Level{}, 0, fmt.Errorf("truncated payload: have %d, want %d", len(b)-8, size)
	}
	vectors := make([]block.MotionVector, dims[0]*dims[1])
	off := 8
	for i := range vectors {
		vectors[i] = getMotionVector(b[off : off+mvSize])
		off += mvSize
	}
	return Level{BlkX: dims[0], BlkY: dims[1], Vectors: vectors}, off, nil
}
