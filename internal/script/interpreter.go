// Package script drives a bowling engine from text: one command per line,
// or raw keystrokes. It backs the replay command and scripted tests.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
)

// Status is the outcome of one script line.
type Status int

const (
	Applied Status = iota // the engine changed
	Ignored               // the engine refused the move
	Shown                 // output only
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

// LineResult records what happened to one command.
type LineResult struct {
	Line   int
	Verb   Verb
	Status Status
	Detail string
}

// Report summarizes a script run.
type Report struct {
	Lines   []LineResult
	Applied int
	Ignored int
}

func (r *Report) add(res LineResult) {
	r.Lines = append(r.Lines, res)
	switch res.Status {
	case Applied:
		r.Applied++
	case Ignored:
		r.Ignored++
	}
}

// LineError is a script error tied to its line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("script: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Interpreter runs commands against one engine.
type Interpreter struct {
	engine *bowling.Engine
	out    io.Writer
	logger *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets where the show command writes the board.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithLogger sets the logger that traces each command at debug level.
func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// New creates an interpreter for e.
func New(e *bowling.Engine, opts ...Option) *Interpreter {
	in := &Interpreter{
		engine: e,
		out:    io.Discard,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Engine returns the engine being driven.
func (in *Interpreter) Engine() *bowling.Engine {
	return in.engine
}

// Run executes a script. It stops at the first line it cannot parse and
// returns the report so far with a *LineError. Moves the engine refuses are
// not errors; they are counted as ignored.
func (in *Interpreter) Run(r io.Reader) (Report, error) {
	var report Report
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := in.Exec(line)
		if err != nil {
			return report, &LineError{Line: n, Err: err}
		}
		res.Line = n
		report.add(res)
		in.logger.Debug("script", "line", n, "verb", res.Verb, "status", res.Status, "detail", res.Detail)
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("script: read: %w", err)
	}
	return report, nil
}

// Exec runs a single command line.
func (in *Interpreter) Exec(line string) (LineResult, error) {
	word, rest := splitVerb(line)
	verb, err := MatchVerb(word)
	if err != nil {
		return LineResult{}, err
	}
	def := lookupVerb(verb)
	args := strings.Fields(rest)
	if def.maxArgs >= 0 && (len(args) < def.minArgs || len(args) > def.maxArgs) {
		return LineResult{}, fmt.Errorf("%s takes %s, got %d", verb, argCount(def), len(args))
	}

	res := LineResult{Verb: verb}
	e := in.engine
	switch verb {
	case VerbSelect:
		labels := []rune(strings.Join(args, ""))
		for _, l := range labels {
			if _, ok := bowling.PinIndex(l); !ok {
				return LineResult{}, fmt.Errorf("select: %q is not a pin (A-J)", l)
			}
		}
		var refused []string
		for _, l := range labels {
			if !e.SelectPin(l) {
				refused = append(refused, strings.ToUpper(string(l)))
			}
		}
		res.Status = Applied
		if len(refused) > 0 {
			res.Status = Ignored
			res.Detail = "refused " + strings.Join(refused, "")
		}

	case VerbPlay:
		pile, ok := parsePile(args[0])
		if !ok {
			return LineResult{}, fmt.Errorf("play: %q is not a pile (x, y, z or 1-3)", args[0])
		}
		res.Status = statusOf(e.PlayCard(pile))
		res.Detail = fmt.Sprintf("pile %c", bowling.PileLabels[pile])

	case VerbEnd:
		res.Status = statusOf(e.EndRoll())

	case VerbFrame:
		before := len(e.Rolls(e.Player()))
		e.StartNewFrame()
		res.Status = statusOf(len(e.Rolls(e.Player())) > before)

	case VerbNew:
		e.StartNewGame()
		res.Status = Applied

	case VerbKeys:
		raw := strings.TrimLeft(rest, " \t")
		accepted := in.Keys(raw)
		res.Status = statusOf(accepted > 0)
		res.Detail = fmt.Sprintf("%d of %d keys", accepted, len([]rune(raw)))

	case VerbShow:
		if _, err := io.WriteString(in.out, Board(e)+"\n"); err != nil {
			return LineResult{}, fmt.Errorf("show: %w", err)
		}
		res.Status = Shown
	}
	return res, nil
}

// Keys feeds raw keystrokes to the engine and returns how many it accepted.
func (in *Interpreter) Keys(keys string) int {
	accepted := 0
	for _, r := range keys {
		if in.engine.HandleKey(r) {
			accepted++
		}
	}
	in.logger.Debug("keys", "sent", len([]rune(keys)), "accepted", accepted)
	return accepted
}

func splitVerb(line string) (word, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

func parsePile(arg string) (int, bool) {
	switch strings.ToLower(arg) {
	case "x", "1":
		return 0, true
	case "y", "2":
		return 1, true
	case "z", "3":
		return 2, true
	}
	return 0, false
}

func argCount(d verbDef) string {
	switch {
	case d.maxArgs == 0:
		return "no arguments"
	case d.minArgs == d.maxArgs:
		return fmt.Sprintf("%d argument", d.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", d.minArgs, d.maxArgs)
	}
}

func statusOf(ok bool) Status {
	if ok {
		return Applied
	}
	return Ignored
}
