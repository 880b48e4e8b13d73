package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"text/template"

	"blockfall/blockfall"
	"blockfall/proto"
)

const (
	// ASCII colors, one per piece kind.
	Cyan    = "36"
	Yellow  = "33"
	Magenta = "35"
	Green   = "32"
	Red     = "31"
	Blue    = "34"
	Orange  = "38;5;214"

	resetPos = "\033[H" // Reset cursor position to 0,0
)

//go:embed "layout.tmpl"
var layout string

// colorMap is indexed by board cell value (= Kind id).
var colorMap = map[uint8]string{
	uint8(blockfall.I): Cyan,
	uint8(blockfall.O): Yellow,
	uint8(blockfall.T): Magenta,
	uint8(blockfall.S): Green,
	uint8(blockfall.Z): Red,
	uint8(blockfall.J): Blue,
	uint8(blockfall.L): Orange,
}

type templateData struct {
	Local   *blockfall.Snapshot
	Remote  *proto.GameMessage
	Name    string
	NoGhost bool

	mu sync.Mutex
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger, noGhost bool, name string) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:   os.Stdout,
		logger:   l,
		template: tmp,
		templateData: &templateData{
			Name:    name,
			NoGhost: noGhost,
		},
	}, nil
}

func (r *render) lobby() {
	fmt.Fprint(r.writer, "\033[9;7H+--------------------------------------+")
	fmt.Fprint(r.writer, "\033[10;7H|        Welcome to Blockfall          |")
	fmt.Fprint(r.writer, "\033[11;7H|                                      |")
	fmt.Fprint(r.writer, "\033[12;7H|      (p)lay   (o)nline   (q)uit      |")
	fmt.Fprint(r.writer, "\033[13;7H+--------------------------------------+")
}

func (r *render) local(s *blockfall.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s == nil {
		// pre-game lobby render over an empty board.
		s = blockfall.NewTestSnapshot(blockfall.J)
		s.Board = make([]uint8, blockfall.Width*blockfall.Height)
	}
	r.templateData.Local = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in local()", slog.String("error", err.Error()))
	}
	if s.GameOver {
		r.lobby()
		fmt.Fprint(r.writer, "\033[10;7H|             Game Over :)             |")
	}
}

func (r *render) remote(m *proto.GameMessage) {
	r.mu.Lock()
	r.templateData.Remote = m
	r.mu.Unlock()
	r.local(r.templateData.Local)
}

func (r *render) reset() {
	r.mu.Lock()
	r.templateData.Local = nil
	r.templateData.Remote = nil
	r.mu.Unlock()
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"localRows":  localRows,
		"remoteRows": remoteRows,
		"nextPiece":  nextPiece,
		"vs":         vs,
	}

	// the console runs raw, so new lines don't automatically imply a
	// carriage return; add one to every line of the layout.
	raw := strings.ReplaceAll(layout, "\n", "\r\n")
	return template.New("layout").Funcs(funcMap).Parse(raw)
}

func cell(v uint8) string {
	c, ok := colorMap[v]
	if !ok {
		return "  "
	}
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", c)
}

// localRows renders the board with the ghost and current piece overlaid,
// one string per row.
func localRows(t *templateData) []string {
	grid := make([][]string, blockfall.Height)
	for y := range grid {
		grid[y] = make([]string, blockfall.Width)
		for x := range grid[y] {
			grid[y][x] = cell(t.Local.Board[y*blockfall.Width+x])
		}
	}

	put := func(p blockfall.Piece, s string) {
		for _, c := range p.Cells() {
			if c.DY >= 0 && c.DY < blockfall.Height && c.DX >= 0 && c.DX < blockfall.Width {
				grid[c.DY][c.DX] = s
			}
		}
	}
	if !t.NoGhost {
		put(t.Local.Ghost, "[]")
	}
	put(t.Local.Current, cell(uint8(t.Local.Current.Kind)))

	rows := make([]string, blockfall.Height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return rows
}

// remoteRows renders the opponent's board from the relayed byte grid, or
// an empty pane when there is no opponent.
func remoteRows(t *templateData) []string {
	rows := make([]string, blockfall.Height)
	board := t.Remote.GetBoard()
	for y := range rows {
		var row strings.Builder
		for x := 0; x < blockfall.Width; x++ {
			i := y*blockfall.Width + x
			if i < len(board) {
				row.WriteString(cell(board[i]))
			} else {
				row.WriteString("  ")
			}
		}
		rows[y] = row.String()
	}
	return rows
}

// nextPiece renders the two top rows of the lookahead's 4x4 frame.
func nextPiece(t *templateData) []string {
	occupied := map[blockfall.Offset]bool{}
	for _, o := range (blockfall.Piece{Kind: t.Local.Next}).Cells() {
		occupied[o] = true
	}
	rendered := make([]string, 2)
	for y := range rendered {
		var row strings.Builder
		for x := 0; x < 4; x++ {
			if occupied[blockfall.Offset{DX: x, DY: y}] {
				row.WriteString(cell(uint8(t.Local.Next)))
			} else {
				row.WriteString("  ")
			}
		}
		rendered[y] = row.String()
	}
	return rendered
}

// vs formats the two player names around the versus marker, truncated or
// padded to a fixed width so the layout doesn't shift.
func vs(lName, rName string) string {
	maxL := 9
	l := len(lName)
	switch {
	case l > maxL:
		lName = lName[:maxL]
	case l < maxL:
		lName = strings.Repeat(" ", maxL-len(lName)) + lName
	}

	r := len(rName)
	switch {
	case r > maxL:
		rName = rName[:maxL]
	case r < maxL:
		rName += strings.Repeat(" ", maxL-len(rName))
	}
	return fmt.Sprintf(" %s <- vs -> %s ", lName, rName)
}

// stackBytes flattens a snapshot into the wire board: the locked grid
// with the falling piece stamped on top.
func stackBytes(s *blockfall.Snapshot) []byte {
	board := make([]byte, len(s.Board))
	copy(board, s.Board)
	for _, c := range s.Current.Cells() {
		if c.DY >= 0 && c.DY < blockfall.Height && c.DX >= 0 && c.DX < blockfall.Width {
			board[c.DY*blockfall.Width+c.DX] = byte(s.Current.Kind)
		}
	}
	return board
}
