// Package export writes standalone snapshots of the scene.
package export

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"

	"github.com/pthm-cable/wallgrid/world"
)

// SVG styling. Lengths are in world units before the group scale.
const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	svgBackground  = "rgb(30%, 30%, 32%)"
	svgGridRadius  = "0.2"
	svgGridFill    = "black"
	svgWallStroke  = "blue"
	svgWallWidth   = "0.1"
	svgWallLinecap = "square"
)

// Document builds the SVG document for w: a group scaled by scale holding the
// background, one circle per grid node and one line per committed wall.
func Document(w *world.World, scale float64) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("width", num(float64(w.Width)*scale))
	svg.CreateAttr("height", num(float64(w.Height)*scale))

	g := svg.CreateElement("g")
	g.CreateAttr("transform", "scale("+num(scale)+")")

	bg := g.CreateElement("rect")
	bg.CreateAttr("x", "0")
	bg.CreateAttr("y", "0")
	bg.CreateAttr("width", strconv.Itoa(w.Width))
	bg.CreateAttr("height", strconv.Itoa(w.Height))
	bg.CreateAttr("fill", svgBackground)

	w.EachNode(func(n world.Node) {
		c := g.CreateElement("circle")
		c.CreateAttr("cx", strconv.FormatFloat(n.X, 'f', 2, 64))
		c.CreateAttr("cy", strconv.FormatFloat(n.Y, 'f', 2, 64))
		c.CreateAttr("r", svgGridRadius)
		c.CreateAttr("fill", svgGridFill)
	})

	for _, wall := range w.Walls() {
		l := g.CreateElement("line")
		l.CreateAttr("x1", num(wall.P.X))
		l.CreateAttr("y1", num(wall.P.Y))
		l.CreateAttr("x2", num(wall.Q.X))
		l.CreateAttr("y2", num(wall.Q.Y))
		l.CreateAttr("stroke", svgWallStroke)
		l.CreateAttr("stroke-width", svgWallWidth)
		l.CreateAttr("stroke-linecap", svgWallLinecap)
	}

	doc.Indent(2)
	return doc
}

// WriteSVG writes the SVG snapshot of w to out.
func WriteSVG(out io.Writer, w *world.World, scale float64) error {
	if _, err := Document(w, scale).WriteTo(out); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}

// SaveSVG overwrites path with an SVG snapshot of w.
func SaveSVG(path string, w *world.World, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := WriteSVG(f, w, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close svg: %w", err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
