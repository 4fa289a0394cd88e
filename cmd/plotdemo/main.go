// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command plotdemo draws a small front-panel sketch with the plotter
// and writes it to a PNG file, and optionally to a PDF.
package main

import (
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/plotter"
	"github.com/gogpu/plotter/ggsurface"
	"github.com/gogpu/plotter/pdfsurface"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Width   int    `short:"W" long:"width"   default:"640"      description:"Surface width in pixels"`
	Height  int    `short:"H" long:"height"  default:"480"      description:"Surface height in pixels"`
	Output  string `short:"o" long:"output"  default:"plot.png" description:"Output PNG file"`
	PDF     string `short:"p" long:"pdf"     description:"Also write the sketch to this PDF file"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func parseCmd() options {
	var opts options
	cmdParser := flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return opts
}

func main() {
	opts := parseCmd()

	if opts.Verbose {
		plotter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	surface := ggsurface.NewContext(opts.Width, opts.Height)
	surface.Context().ClearWithColor(gg.White)

	id := plotter.RegisterSurface("plotdemo", surface)
	p, err := plotter.New(id)
	if err != nil {
		log.Fatalf("Failed to bind surface: %v", err)
	}

	drawPanel(p)
	drawTraces(p)
	drawDial(p)
	if err := p.Err(); err != nil {
		log.Fatalf("Drawing failed: %v", err)
	}

	if err := surface.Context().SavePNG(opts.Output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Sketch saved to %s (%dx%d)\n", opts.Output, opts.Width, opts.Height)

	if opts.PDF != "" {
		pdf := pdfsurface.New(opts.Width, opts.Height)
		q := plotter.NewForSurface(pdf)
		drawPanel(q)
		drawTraces(q)
		drawDial(q)
		if err := q.Err(); err != nil {
			log.Fatalf("PDF drawing failed: %v", err)
		}
		if err := pdf.SaveFile(opts.PDF); err != nil {
			log.Fatalf("Failed to save PDF: %v", err)
		}
		log.Printf("Sketch saved to %s\n", opts.PDF)
	}
}

// drawPanel outlines the front panel and its mounting square.
func drawPanel(p *plotter.Plotter) {
	w := float64(p.Surface().Width())
	h := float64(p.Surface().Height())

	p.SetLineWidth(2).
		RoundRectCentered(w-80, h-80, 24, "panel").
		SetLineWidth(1).
		CenterSquare(96)
}

// drawTraces routes two elbowed connector traces from the panel's
// top-left corner area toward the center square.
func drawTraces(p *plotter.Plotter) {
	blue, err := plotter.ParseColor("#3366cc")
	if err != nil {
		log.Fatalf("Bad trace color: %v", err)
	}

	panel, ok := p.Rect("panel")
	if !ok {
		log.Fatal("Panel rectangle was not recorded")
	}

	p.SetLineColor(blue).
		Move(panel.X, panel.Y+18, true).
		Begin().
		HLine(60).
		ES(12).
		VLine(36).
		End(false).
		Point()

	mid := p.Midpoint()
	p.Move(mid.X-140, mid.Y+96, true).
		Begin().
		ArcTo(92, -48, 16).
		End(false).
		Point()
}

// drawDial draws a gauge arc with tick marks in the panel's top-right
// quadrant.
func drawDial(p *plotter.Plotter) {
	mid := p.Midpoint()
	cx, cy := mid.X+mid.X/2, mid.Y-mid.Y/2
	const r = 42.0

	p.Begin().
		Arc(cx, cy, r, 150, 390).
		End(false).
		Begin()

	// One tick every 30 degrees along the gauge sweep.
	for degs := 150.0; degs <= 390; degs += 30 {
		a := degs * math.Pi / 180
		p.Move(cx+r*math.Cos(a), cy+r*math.Sin(a), true).
			Line(8*math.Cos(a), 8*math.Sin(a))
	}
	p.Stroke()
}
