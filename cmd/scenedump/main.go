// Command scenedump loads a YAML scene description and reports its layout:
// every element's type, z-index, and bounding box.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
	"github.com/IamIpanda/g/sceneio"
	"github.com/IamIpanda/g/shape"
)

func main() {
	var (
		scenePath = flag.String("scene", "scene.yaml", "scene description file")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		g.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	canvas, err := sceneio.LoadFile(*scenePath, shape.Registry())
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	fmt.Printf("canvas %dx%d\n", canvas.Width(), canvas.Height())
	for _, child := range canvas.Children() {
		dump(child, 1)
	}

	updates := canvas.FlushUpdates()
	fmt.Printf("%d elements pending update\n", len(updates))
}

func dump(n scene.Node, depth int) {
	el := n.AsElement()
	box := el.GetBBox()
	indent := strings.Repeat("  ", depth)

	if box.IsEmpty() {
		fmt.Printf("%s%T z=%d (empty bbox)\n", indent, n, el.ZIndex())
	} else {
		fmt.Printf("%s%T z=%d bbox=(%.1f,%.1f)-(%.1f,%.1f)\n",
			indent, n, el.ZIndex(), box.MinX, box.MinY, box.MaxX, box.MaxY)
	}

	if ct, ok := n.(scene.Container); ok {
		for _, child := range ct.Children() {
			dump(child, depth+1)
		}
	}
}
