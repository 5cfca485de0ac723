package mvio

import (
	"testing"

	"github.com/ausocean/motionvec/block"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	coarse := Level{BlkX: 2, BlkY: 1, Vectors: []block.MotionVector{
		{Dx: 1, Dy: -1, Sad: 10},
		{Dx: 2, Dy: 2, Sad: 20},
	}}
	fine := Level{BlkX: 4, BlkY: 2, Vectors: make([]block.MotionVector, 8)}
	for i := range fine.Vectors {
		fine.Vectors[i] = block.MotionVector{Dx: int32(i), Dy: int32(-i), Sad: int64(i * 100)}
	}

	m := &MvsOutput{Levels: []Level{coarse, fine}}
	buf := m.Marshal()

	wantSize := 8 + len(coarse.Vectors)*mvSize + 8 + len(fine.Vectors)*mvSize
	if len(buf) != wantSize {
		t.Fatalf("Marshal size = %d, want %d", len(buf), wantSize)
	}

	got, err := Unmarshal(buf, [][2]int{{2, 1}, {4, 2}}, nil)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(got.Levels))
	}
	for i, v := range got.Levels[0].Vectors {
		if v != coarse.Vectors[i] {
			t.Errorf("level 0 vector %d = %+v, want %+v", i, v, coarse.Vectors[i])
		}
	}
	for i, v := range got.Levels[1].Vectors {
		if v != fine.Vectors[i] {
			t.Errorf("level 1 vector %d = %+v, want %+v", i, v, fine.Vectors[i])
		}
	}
}

func TestMarshalWithDivideBlock(t *testing.T) {
	lvl := Level{BlkX: 1, BlkY: 1, Vectors: []block.MotionVector{{Dx: 3, Dy: 4, Sad: 5}}}
	div := Level{BlkX: 2, BlkY: 2, Vectors: []block.MotionVector{
		{Dx: 3, Dy: 4, Sad: 1}, {Dx: 3, Dy: 4, Sad: 1},
		{Dx: 3, Dy: 4, Sad: 1}, {Dx: 3, Dy: 4, Sad: 1},
	}}
	m := &MvsOutput{Levels: []Level{lvl}, DivideBlock: &div}
	buf := m.Marshal()

	divDims := [2]int{2, 2}
	got, err := Unmarshal(buf, [][2]int{{1, 1}}, &divDims)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.DivideBlock == nil {
		t.Fatal("DivideBlock is nil, want parsed block")
	}
	if len(got.DivideBlock.Vectors) != 4 {
		t.Errorf("divide block vectors = %d, want 4", len(got.DivideBlock.Vectors))
	}
}

func TestUnmarshalRejectsSizeMismatch(t *testing.T) {
	lvl := Level{BlkX: 1, BlkY: 1, Vectors: []block.MotionVector{{Dx: 1, Dy: 1, Sad: 1}}}
	m := &MvsOutput{Levels: []Level{lvl}}
	buf := m.Marshal()

	if _, err := Unmarshal(buf, [][2]int{{2, 2}}, nil); err == nil {
		t.Fatal("Unmarshal: want error for mismatched grid dims")
	}
}
