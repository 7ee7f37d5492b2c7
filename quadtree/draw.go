package quadtree

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// DrawPNG renders the leaf borders and stored points of qt into a
// size x size PNG at filename.
func DrawPNG(qt *QuadTree, filename string, size int, invertColor bool) error {
	img := Draw(qt, size, invertColor)
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	err = png.Encode(file, img)
	if err != nil {
		return err
	}
	return nil
}

func Draw(qt *QuadTree, size int, invertColor bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	background := color.White
	if invertColor {
		background = color.Black
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, background)
		}
	}
	borderColor := color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	pointColor := color.Black
	if invertColor {
		pointColor = color.White
	}
	root := qt.bounds
	toPixel := func(x, y float64) (int, int) {
		return int((x - root.X) / root.Width * float64(size)),
			int((y - root.Y) / root.Height * float64(size))
	}
	qt.Walk(func(node *QuadTree, _ int) bool {
		if node.children != nil {
			return true
		}
		x0, y0 := toPixel(node.bounds.X, node.bounds.Y)
		x1, y1 := toPixel(node.bounds.X+node.bounds.Width, node.bounds.Y+node.bounds.Height)
		// only the closed (top and left) edges, neighbours draw the rest
		for x := x0; x < x1; x++ {
			img.Set(x, y0, borderColor)
		}
		for y := y0; y < y1; y++ {
			img.Set(x0, y, borderColor)
		}
		for _, p := range node.points {
			x, y := toPixel(p.X(), p.Y())
			img.Set(x, y, pointColor)
		}
		return true
	})
	return img
}
