// Package shell provides the interactive REPL for repdemo.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/text/language"

	"github.com/gogpu/repdemo"
	"github.com/gogpu/repdemo/canvas"
	"github.com/gogpu/repdemo/plot"
)

// Shell drives one demo instance from typed commands. Every command that
// changes the state re-renders the scatter view before the next prompt.
type Shell struct {
	ctrl     *repdemo.Controller
	renderer *plot.Renderer
	surface  *canvas.ImageSurface
	out      io.Writer
	rl       *readline.Instance

	width, height int
	theme         plot.Theme
	output        string
	lang          language.Tag
	history       string
}

// Config holds shell configuration.
type Config struct {
	HistoryFile string
	Width       int
	Height      int
	DPR         float64
	Theme       plot.Theme
	Output      string // PNG rewritten after every change; empty keeps frames in memory
	Language    language.Tag
}

var errQuit = errors.New("quit")

// New creates a shell writing to out. Call Run for an interactive
// session or RunScript to feed it lines from a reader.
func New(ctrl *repdemo.Controller, cfg Config, out io.Writer) *Shell {
	if out == nil {
		out = os.Stdout
	}
	if cfg.Width <= 0 {
		cfg.Width = plot.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = plot.DefaultHeight
	}
	if cfg.Language == language.Und {
		cfg.Language = language.English
	}
	return &Shell{
		ctrl:     ctrl,
		renderer: plot.NewRenderer(),
		surface:  canvas.NewImageSurface(cfg.DPR),
		out:      out,
		width:    cfg.Width,
		height:   cfg.Height,
		theme:    cfg.Theme,
		output:   cfg.Output,
		lang:     cfg.Language,
		history:  cfg.HistoryFile,
	}
}

// Surface returns the surface the shell renders into.
func (s *Shell) Surface() *canvas.ImageSurface { return s.surface }

// Run starts the interactive loop on the terminal.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "repdemo> ",
		HistoryFile:     s.history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    Completer{},
	})
	if err != nil {
		return err
	}
	s.rl = rl
	defer rl.Close()

	fmt.Fprintln(s.out, "Type a slider name and a value, e.g. \"angle 45\". Use help for commands.")
	if err := s.redraw(); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	s.printState()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := s.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// RunScript executes one command per line from r until EOF or quit.
// Lines starting with # are ignored. The first failing command stops
// the script.
func (s *Shell) RunScript(ctx context.Context, r io.Reader) error {
	if err := s.redraw(); err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

// Exec runs a single command line. Blank lines are ignored.
func (s *Shell) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		return errQuit

	case "help", "h", "?":
		s.printHelp()

	case "show":
		s.printState()

	case "sliders":
		s.printSliders()

	case "about":
		fmt.Fprintln(s.out, repdemo.Explanation)

	case "set":
		if len(args) != 2 {
			return errors.New("usage: set <param> <value>")
		}
		return s.setParam(args[0], args[1])

	case "render":
		path := s.output
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return errors.New("usage: render <file.png>")
		}
		if err := s.renderTo(path); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "wrote %s\n", path)

	case "theme":
		if len(args) == 0 {
			fmt.Fprintln(s.out, s.theme)
			return nil
		}
		t, err := plot.ParseTheme(args[0])
		if err != nil {
			return err
		}
		s.theme = t
		return s.redraw()

	case "reset":
		if _, err := s.ctrl.Reset(); err != nil {
			return err
		}
		return s.changed()

	case "resample":
		if _, err := s.ctrl.Resample(); err != nil {
			return err
		}
		return s.changed()

	default:
		if len(args) == 1 {
			if _, err := repdemo.ParseParam(cmd); err == nil {
				return s.setParam(cmd, args[0])
			}
		}
		return fmt.Errorf("unknown command: %s (type help)", cmd)
	}
	return nil
}

func (s *Shell) setParam(name, raw string) error {
	k, err := repdemo.ParseParam(name)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", repdemo.ErrInvalidValue, raw)
	}
	if _, err := s.ctrl.Set(k, v); err != nil {
		return err
	}
	return s.changed()
}

// changed re-renders and prints the readout after a transition.
func (s *Shell) changed() error {
	if err := s.redraw(); err != nil {
		return err
	}
	s.printState()
	return nil
}

// redraw renders the current state into the surface and rewrites the
// output file when one is configured.
func (s *Shell) redraw() error {
	st := s.ctrl.State()
	s.renderer.Render(s.surface, st.Points, st.Matrix, s.width, s.height, s.theme)
	if s.output == "" {
		return nil
	}
	return s.save(s.output)
}

func (s *Shell) renderTo(path string) error {
	st := s.ctrl.State()
	s.renderer.Render(s.surface, st.Points, st.Matrix, s.width, s.height, s.theme)
	return s.save(path)
}

func (s *Shell) save(path string) error {
	if err := s.surface.SavePNG(path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	repdemo.Logger().Debug("shell: frame saved", slog.String("path", path))
	return nil
}

func (s *Shell) printState() {
	st := s.ctrl.State()
	s.printSliders()
	fmt.Fprintln(s.out, repdemo.NewReadout(st.Reading, s.lang))
}

func (s *Shell) printSliders() {
	for _, sl := range s.ctrl.Sliders() {
		fmt.Fprintf(s.out, "  %-8s %-20s %s\n", sl.Param, sl.Label, sl.Format())
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  angle <deg>          Rotate the encoder (0-90)
  scalex <x>           Scale the first latent axis (0.1-3)
  scaley <x>           Scale the second latent axis (0.1-3)
  corr <rho>           Latent correlation (0-0.95), draws a new batch
  set <param> <value>  Same as above by name
  show                 Print sliders and the MCC readout
  sliders              Print sliders only
  about                Explain what the demo shows
  render [file.png]    Write the current frame
  theme [light|dark]   Show or switch the colour theme
  reset                Restore the default parameters
  resample             Draw a fresh batch at the current correlation
  quit                 Leave the shell`)
}
