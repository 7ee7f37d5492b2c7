package quadtree

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	qt := newTestTree(t, 1)
	qt.AddPoint(NewPoint(-0.5, -0.5))
	qt.AddPoint(NewPoint(0.5, 0.5))
	img := Draw(qt, 100, false)
	assert := assert.New(t)
	assert.Equal(100, img.Bounds().Dx())
	r, g, b, _ := img.At(25, 25).RGBA()
	assert.Equal([3]uint32{0, 0, 0}, [3]uint32{r, g, b}, "point should be drawn")
	r, g, b, _ = img.At(60, 40).RGBA()
	assert.Equal([3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "background")
	assert.Equal(color.RGBAModel.Convert(color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}), img.At(50, 10), "leaf border at the seam")
}

func TestDrawPNG(t *testing.T) {
	qt := newTestTree(t, 4)
	qt.AddPoint(NewPoint(0.1, 0.1))
	filename := filepath.Join(t.TempDir(), "tree.png")
	require.NoError(t, DrawPNG(qt, filename, 32, true))
	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
