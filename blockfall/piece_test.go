package blockfall

import "testing"

func TestShapeTable(t *testing.T) {
	for k := I; k <= L; k++ {
		for rot := 0; rot < 4; rot++ {
			seen := map[Offset]bool{}
			for _, o := range shapes[k-1][rot] {
				if o.DX < 0 || o.DX > 3 || o.DY < 0 || o.DY > 3 {
					t.Errorf("%v rot %d: offset (%d,%d) outside the 4x4 frame", k, rot, o.DX, o.DY)
				}
				seen[o] = true
			}
			if len(seen) != 4 {
				t.Errorf("%v rot %d: expected 4 distinct cells, got %d", k, rot, len(seen))
			}
		}
	}
}

func TestPieceCells(t *testing.T) {
	p := Piece{Kind: O, X: 4, Y: 2}
	want := [4]Offset{{5, 2}, {6, 2}, {5, 3}, {6, 3}}
	if p.Cells() != want {
		t.Errorf("expected cells %v, got %v", want, p.Cells())
	}
}

func TestRotatedCycles(t *testing.T) {
	p := Piece{Kind: T, X: 3}
	for i := 1; i <= 4; i++ {
		p = p.rotated()
		if p.Rot != i%4 {
			t.Errorf("expected rotation state %d after %d turns, got %d", i%4, i, p.Rot)
		}
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{I: "I", O: "O", T: "T", S: "S", Z: "Z", J: "J", L: "L", Kind(0): "?"}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("expected %q, got %q", want, k.String())
		}
	}
}
