package chess

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// lightSquare and darkSquare are the standard board colors.
const (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
)

// RenderSVG draws board onto w as an SVG diagram of size squareSize*8 in
// each dimension, drawing any arrows/shapes attached to node (if non-nil)
// as overlays.
func RenderSVG(w io.Writer, board *Board, node *GameNode, squareSize int) {
	dim := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(dim, dim)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			color := lightSquare
			if (file+rank)%2 == 1 {
				color = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)
		}
	}

	if node != nil {
		for _, shape := range node.Shapes() {
			drawShapeHighlight(canvas, shape, squareSize)
		}
	}

	for sq := a1; sq <= h8; sq++ {
		p, ok := board.PieceAt(sq)
		if !ok {
			continue
		}
		x := int(sq.File())*squareSize + squareSize/2
		y := (7-int(sq.Rank()))*squareSize + squareSize/2
		canvas.Text(x, y, string(p.Unicode()),
			"text-anchor:middle;dominant-baseline:central;font-size:"+strconv.Itoa(squareSize*3/4)+"px")
	}

	if node != nil {
		for _, arrow := range node.Arrows() {
			drawArrow(canvas, arrow, squareSize)
		}
	}
}

func drawShapeHighlight(canvas *svg.SVG, shape Shape, squareSize int) {
	x := int(shape.Square.File()) * squareSize
	y := (7 - int(shape.Square.Rank())) * squareSize
	canvas.Rect(x, y, squareSize, squareSize, "fill:none;stroke:"+annotationColor(shape.Color)+";stroke-width:3")
}

func drawArrow(canvas *svg.SVG, arrow Arrow, squareSize int) {
	x1 := int(arrow.Tail.File())*squareSize + squareSize/2
	y1 := (7-int(arrow.Tail.Rank()))*squareSize + squareSize/2
	x2 := int(arrow.Head.File())*squareSize + squareSize/2
	y2 := (7-int(arrow.Head.Rank()))*squareSize + squareSize/2
	canvas.Line(x1, y1, x2, y2, "stroke:"+annotationColor(arrow.Color)+";stroke-width:4")
}

func annotationColor(letter string) string {
	switch letter {
	case "R":
		return "#e8453c"
	case "G":
		return "#6bb04a"
	case "Y":
		return "#e6b81e"
	case "B":
		return "#3b70c4"
	default:
		return "#888888"
	}
}
