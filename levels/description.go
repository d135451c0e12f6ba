package levels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/bomberman/ecs/component"
)

// Code is a terrain or spawn code from a map file.
type Code int

const (
	CodeIndestructibleWall Code = iota
	CodeDestructibleWall
	CodePlayerSpawn
	CodeEnemySpawn
	CodeExit
	CodeBombPowerUp
	CodeBlastPowerUp
	CodeSpeedPowerUp
)

func (c Code) Valid() bool {
	return c >= CodeIndestructibleWall && c <= CodeSpeedPowerUp
}

func (c Code) String() string {
	switch c {
	case CodeIndestructibleWall:
		return "indestructible_wall"
	case CodeDestructibleWall:
		return "destructible_wall"
	case CodePlayerSpawn:
		return "player_spawn"
	case CodeEnemySpawn:
		return "enemy_spawn"
	case CodeExit:
		return "exit"
	case CodeBombPowerUp:
		return "bomb_power_up"
	case CodeBlastPowerUp:
		return "blast_power_up"
	case CodeSpeedPowerUp:
		return "speed_power_up"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Description maps tiles to the single code placed there.
type Description map[component.GridPos]Code

var ErrNoPlayerSpawn = errors.New("levels: map has no player spawn")

// Parse reads "x,y=code" lines. Blank lines and lines starting with '#' are
// skipped. Malformed entries are logged and skipped; unknown codes are
// dropped. A later entry for the same tile replaces an earlier one. Only a
// failing reader stops parsing, and the entries read so far are returned
// with the error.
func Parse(r io.Reader) (Description, error) {
	desc := make(Description)
	br := bufio.NewReader(r)
	line := 0
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line++
			parseLine(desc, line, raw)
		}
		if err == io.EOF {
			return desc, nil
		}
		if err != nil {
			return desc, fmt.Errorf("levels: parse line %d: %w", line+1, err)
		}
	}
}

// maxLogged caps how much of a bad line ends up in the log.
const maxLogged = 64

func parseLine(desc Description, line int, raw string) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return
	}
	pos, code, err := parseEntry(text)
	if err != nil {
		if len(text) > maxLogged {
			text = text[:maxLogged] + "..."
		}
		log.Printf("levels: skipping line %d %q: %v", line, text, err)
		return
	}
	if !code.Valid() {
		return
	}
	desc[pos] = code
}

// ParseBytes is Parse over an in-memory map file.
func ParseBytes(data []byte) Description {
	desc, err := Parse(bytes.NewReader(data))
	if err != nil {
		log.Printf("%v", err)
	}
	return desc
}

func parseEntry(text string) (component.GridPos, Code, error) {
	key, value, ok := strings.Cut(text, "=")
	if !ok {
		return component.GridPos{}, 0, errors.New("missing '='")
	}
	parts := strings.Split(strings.TrimSpace(key), ",")
	if len(parts) != 2 {
		return component.GridPos{}, 0, fmt.Errorf("key %q is not x,y", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return component.GridPos{}, 0, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return component.GridPos{}, 0, fmt.Errorf("y: %w", err)
	}
	code, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return component.GridPos{}, 0, fmt.Errorf("code: %w", err)
	}
	return component.GridPos{X: x, Y: y}, Code(code), nil
}

// Encode writes the description in the text format Parse reads, sorted by
// row then column.
func Encode(w io.Writer, desc Description) error {
	positions := desc.Positions()
	bw := bufio.NewWriter(w)
	for _, pos := range positions {
		if _, err := fmt.Fprintf(bw, "%d,%d=%d\n", pos.X, pos.Y, int(desc[pos])); err != nil {
			return fmt.Errorf("levels: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("levels: encode: %w", err)
	}
	return nil
}

// Positions returns every described tile, sorted by row then column.
func (d Description) Positions() []component.GridPos {
	positions := make([]component.GridPos, 0, len(d))
	for pos := range d {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}

// PlayerSpawn returns the spawn tile. With several spawns the last one in
// row order wins.
func (d Description) PlayerSpawn() (component.GridPos, error) {
	var (
		spawn component.GridPos
		found bool
	)
	for _, pos := range d.Positions() {
		if d[pos] == CodePlayerSpawn {
			spawn = pos
			found = true
		}
	}
	if !found {
		return component.GridPos{}, ErrNoPlayerSpawn
	}
	return spawn, nil
}

// Count returns how many tiles carry code.
func (d Description) Count(code Code) int {
	n := 0
	for _, c := range d {
		if c == code {
			n++
		}
	}
	return n
}

// Bounds returns the inclusive min and max tile of the description.
func (d Description) Bounds() (component.GridPos, component.GridPos) {
	var lo, hi component.GridPos
	first := true
	for pos := range d {
		if first {
			lo, hi = pos, pos
			first = false
			continue
		}
		lo.X = min(lo.X, pos.X)
		lo.Y = min(lo.Y, pos.Y)
		hi.X = max(hi.X, pos.X)
		hi.Y = max(hi.Y, pos.Y)
	}
	return lo, hi
}

// Clone returns an independent copy.
func (d Description) Clone() Description {
	out := make(Description, len(d))
	for pos, code := range d {
		out[pos] = code
	}
	return out
}
