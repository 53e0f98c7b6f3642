package chess

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// parseCommentCommands scans a move comment for the "%clk", "%eval",
// "%cal" and "%csl" annotation commands and records them on node, both
// as typed fields (Clock/Eval/Arrows/Shapes) and as the raw name->arg
// pairs returned by node.Commands(). The commands are left in place in
// node.comment; callers wanting clean prose text should strip them
// separately.
func parseCommentCommands(node *GameNode, comment string) {
	raw := make(map[string]string)
	for _, cmd := range extractCommands(comment) {
		name, arg, ok := splitCommand(cmd)
		if !ok {
			continue
		}
		raw[name] = arg
		switch name {
		case "clk":
			if secs, ok := parseClock(arg); ok {
				node.SetClock(secs)
			}
		case "eval":
			if score, ok := parseEval(arg); ok {
				node.SetEval(score)
			}
		case "cal":
			for _, spec := range strings.Split(arg, ",") {
				if a, ok := parseArrowSpec(spec); ok {
					node.AddArrow(a)
				}
			}
		case "csl":
			for _, spec := range strings.Split(arg, ",") {
				if s, ok := parseShapeSpec(spec); ok {
					node.AddShape(s)
				}
			}
		}
	}
	if len(raw) == 0 {
		return
	}
	if node.commands == nil {
		node.commands = make(map[string]string, len(raw))
	}
	maps.Copy(node.commands, raw)
}

// extractCommands finds every "[%name arg]" bracketed annotation within a
// comment, in the order they appear.
func extractCommands(comment string) []string {
	var out []string
	for {
		start := strings.Index(comment, "[%")
		if start < 0 {
			return out
		}
		rest := comment[start+2:]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return out
		}
		out = append(out, strings.TrimSpace(rest[:end]))
		comment = rest[end+1:]
	}
}

func splitCommand(cmd string) (name, arg string, ok bool) {
	fields := strings.SplitN(cmd, " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return "", "", false
	}
	name = fields[0]
	if len(fields) == 2 {
		arg = strings.TrimSpace(fields[1])
	}
	return name, arg, true
}

// parseClock parses "%clk" argument shaped "H:MM:SS" into seconds.
func parseClock(arg string) (int, bool) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return h*3600 + m*60 + s, true
}

// parseEval parses "%eval" argument, a centipawn or mate score such as
// "0.34" or "#-3".
func parseEval(arg string) (float64, bool) {
	if strings.HasPrefix(arg, "#") {
		mateIn, err := strconv.Atoi(arg[1:])
		if err != nil {
			return 0, false
		}
		if mateIn < 0 {
			return -1000 + float64(mateIn), true
		}
		return 1000 - float64(mateIn), true
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseArrowSpec parses one "%cal" arrow spec such as "Ge2e4" into an
// Arrow (color letter + tail square + head square).
func parseArrowSpec(spec string) (Arrow, bool) {
	spec = strings.TrimSpace(spec)
	if len(spec) != 5 {
		return Arrow{}, false
	}
	color := spec[0:1]
	tail, err1 := ParseSquare(spec[1:3])
	head, err2 := ParseSquare(spec[3:5])
	if err1 != nil || err2 != nil {
		return Arrow{}, false
	}
	return Arrow{Color: color, Tail: tail, Head: head}, true
}

// parseShapeSpec parses one "%csl" shape spec such as "Re4" into a Shape.
func parseShapeSpec(spec string) (Shape, bool) {
	spec = strings.TrimSpace(spec)
	if len(spec) != 3 {
		return Shape{}, false
	}
	color := spec[0:1]
	sq, err := ParseSquare(spec[1:3])
	if err != nil {
		return Shape{}, false
	}
	return Shape{Color: color, Square: sq}, true
}
