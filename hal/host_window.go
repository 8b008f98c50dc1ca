package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"flint/internal/buildinfo"
)

// RunWindow opens a desktop window over the canvas and drives step once per
// frame. It blocks until step reports stop or the window closes.
func RunWindow(c *HostCanvas, scale int, step func() (bool, error)) error {
	if scale < 1 {
		scale = 1
	}
	g := &hostGame{c: c, step: step}
	ebiten.SetWindowTitle("Flint (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(c.fb.width*scale, c.fb.height*scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

type hostGame struct {
	c       *HostCanvas
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() (bool, error)
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.c.setClosing()
	}
	g.c.pollInput()

	cont, err := g.step()
	if err != nil {
		return err
	}
	if !cont {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.c.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := unpackRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.fb.width, g.c.fb.height
}
