// Command repdemo shows how encoder geometry and latent correlation move
// the MCC identifiability score of a linear 2D encoder.
//
// Without -i it prints the readout once and, when -output is set, writes
// the scatter view as a PNG. With -i it starts a shell; on a terminal the
// shell is interactive, otherwise commands are read from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/gogpu/repdemo"
	"github.com/gogpu/repdemo/canvas"
	"github.com/gogpu/repdemo/internal/config"
	"github.com/gogpu/repdemo/internal/shell"
	"github.com/gogpu/repdemo/plot"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		angle       = flag.Float64("angle", 0, "encoder rotation in degrees (0-90)")
		scaleX      = flag.Float64("scalex", 1, "scale of the first latent axis (0.1-3)")
		scaleY      = flag.Float64("scaley", 1, "scale of the second latent axis (0.1-3)")
		corr        = flag.Float64("corr", 0, "latent correlation (0-0.95)")
		seed        = flag.Uint64("seed", 0, "seed for a reproducible batch")
		points      = flag.Int("points", repdemo.DefaultPointCount, "batch size")
		width       = flag.Int("width", plot.DefaultWidth, "logical canvas width")
		height      = flag.Int("height", plot.DefaultHeight, "logical canvas height")
		dpr         = flag.Float64("dpr", 1, "device pixel ratio of the output image")
		theme       = flag.String("theme", "light", "colour theme: light or dark")
		output      = flag.String("output", "", "PNG file for the scatter view")
		locale      = flag.String("lang", "en", "locale for the readout numbers")
		interactive = flag.Bool("i", false, "start the command shell")
		verbose     = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		repdemo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Explicit flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "angle":
			cfg.Demo.Params.Angle = *angle
		case "scalex":
			cfg.Demo.Params.ScaleX = *scaleX
		case "scaley":
			cfg.Demo.Params.ScaleY = *scaleY
		case "corr":
			cfg.Demo.Params.Correlation = *corr
		case "seed":
			s := *seed
			cfg.Demo.Seed = &s
		case "points":
			cfg.Demo.Points = *points
		case "width":
			cfg.Canvas.Width = *width
		case "height":
			cfg.Canvas.Height = *height
		case "dpr":
			cfg.Canvas.DPR = *dpr
		case "theme":
			cfg.Canvas.Theme = *theme
		case "output":
			cfg.Canvas.Output = *output
		case "lang":
			cfg.Shell.Locale = *locale
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctrl, err := repdemo.NewController(cfg.ControllerOptions()...)
	if err != nil {
		log.Fatalf("Failed to create demo: %v", err)
	}
	lang, _ := cfg.Language()

	if *interactive {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sh := shell.New(ctrl, shell.Config{
			HistoryFile: cfg.Shell.HistoryFile,
			Width:       cfg.Canvas.Width,
			Height:      cfg.Canvas.Height,
			DPR:         cfg.Canvas.DPR,
			Theme:       cfg.Theme(),
			Output:      cfg.Canvas.Output,
			Language:    lang,
		}, os.Stdout)

		if term.IsTerminal(int(os.Stdin.Fd())) {
			err = sh.Run(ctx)
		} else {
			err = sh.RunScript(ctx, os.Stdin)
		}
		if err != nil {
			log.Fatalf("Shell: %v", err)
		}
		return
	}

	st := ctrl.State()
	for _, sl := range st.Params.Sliders() {
		fmt.Printf("%-20s %s\n", sl.Label, sl.Format())
	}
	fmt.Println(repdemo.NewReadout(st.Reading, lang))

	if cfg.Canvas.Output == "" {
		return
	}
	s := canvas.NewImageSurface(cfg.Canvas.DPR)
	plot.Render(s, st.Points, st.Matrix, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Theme())
	if err := s.SavePNG(cfg.Canvas.Output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame saved to %s (%dx%d @%gx)\n", cfg.Canvas.Output, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.DPR)
}
