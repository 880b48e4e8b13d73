package blockfall

// Kind identifies one of the seven tetromino shapes. The numeric value
// doubles as the board cell value and as the color index on the client.
type Kind uint8

const (
	I Kind = 1 + iota
	O
	T
	S
	Z
	J
	L
)

// NumKinds is the count of tetromino kinds; valid ids are 1..NumKinds.
const NumKinds = 7

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return "?"
}

// Offset is a cell position relative to a piece's origin, inside the
// piece's 4x4 local frame.
type Offset struct {
	DX, DY int
}

// shapes holds the occupied cells for every kind and rotation state.
// Indexed by kind-1, then rotation 0..3. Each rotation is exactly 4 cells.
//
//	.	rotation 0 of J:	0 1 2 3
//
//	0	O . . .
//	1	O O O .
//	2	. . . .
//	3	. . . .
var shapes = [NumKinds][4][4]Offset{
	{ // I
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	{ // O
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	{ // T
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	{ // S
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	{ // Z
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	{ // J
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	{ // L
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Piece is the falling tetromino: a kind, a rotation state and the origin
// of its 4x4 frame on the board. It only exists while falling; locking
// replaces it with the next one.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

// Cells returns the four absolute board positions the piece occupies.
func (p Piece) Cells() [4]Offset {
	var cells [4]Offset
	for i, o := range shapes[p.Kind-1][p.Rot] {
		cells[i] = Offset{DX: p.X + o.DX, DY: p.Y + o.DY}
	}
	return cells
}

// translated returns a copy of the piece moved by (dx, dy).
func (p Piece) translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// rotated returns a copy of the piece advanced one rotation state clockwise.
func (p Piece) rotated() Piece {
	p.Rot = (p.Rot + 1) % 4
	return p
}
