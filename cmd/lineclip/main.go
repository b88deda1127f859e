// Command lineclip clips line segments against a rectangular viewport.
//
// Without -segment flags it clips the four sample segments L1..L4 against
// the viewport (8; 7) - (19; 13).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/lineclip"
)

func main() {
	var (
		viewport = quadFlag{8, 7, 19, 13}
		segments segmentList
		output   = flag.String("png", "", "write a rendering of the results to this PNG file")
		scale    = flag.Int("scale", 20, "pixels per grid unit in the PNG")
		verbose  = flag.Bool("v", false, "log every boundary test to stderr")
	)
	flag.Var(&viewport, "viewport", "viewport corners `x0,y0,x1,y1`")
	flag.Var(&segments, "segment", "segment `x0,y0,x1,y1` to clip (repeatable)")
	flag.Parse()

	if *verbose {
		lineclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	segs := segments.segments()
	if len(segs) == 0 {
		segs = sampleSegments()
	}

	c, err := lineclip.NewClipper(viewport.start(), viewport.finish())
	if err != nil {
		log.Fatalf("Failed to create clipper: %v", err)
	}

	results, err := run(os.Stdout, c, segs)
	if err != nil {
		log.Fatalf("Failed to clip: %v", err)
	}

	if *output == "" {
		return
	}
	if err := savePNG(*output, c.Viewport(), segs, results, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendering saved to %s\n", *output)
}

// sampleSegments returns the demonstration segments.
func sampleSegments() []lineclip.Segment {
	return []lineclip.Segment{
		lineclip.Seg(lineclip.Pt(10, 9), lineclip.Pt(15, 11)),
		lineclip.Seg(lineclip.Pt(6, 9), lineclip.Pt(12, 15)),
		lineclip.Seg(lineclip.Pt(15, 5), lineclip.Pt(21, 3)),
		lineclip.Seg(lineclip.Pt(17, 12), lineclip.Pt(22, 11)),
	}
}

// run clips every segment and prints each input next to its result.
func run(w io.Writer, c *lineclip.Clipper, segs []lineclip.Segment) ([]lineclip.Result, error) {
	results := make([]lineclip.Result, 0, len(segs))
	for i, s := range segs {
		r, err := c.Clip(s)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "   L%d: %v\n", i+1, s)
		fmt.Fprintf(w, "newL%d: %v\n", i+1, r)
		results = append(results, r)
	}
	return results, nil
}
