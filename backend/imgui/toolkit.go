// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

// Toolkit errors.
var (
	// ErrUnsupportedLayout is returned by New when ImGui was built with a
	// vertex or index layout ui.DrawList cannot hold.
	ErrUnsupportedLayout = errors.New("imgui: unsupported draw data layout")

	// ErrNoDrawData is returned by Render when ImGui produced no valid
	// draw data.
	ErrNoDrawData = errors.New("imgui: no draw data")

	// ErrFontRejected is returned by BuildFontAtlas when ImGui could not
	// load the font.
	ErrFontRejected = errors.New("imgui: font rejected")
)

// Toolkit is a ui.Toolkit backed by one ImGui context.
type Toolkit struct {
	context *imgui.Context
	io      imgui.IO
	layout  vertexLayout

	displaySize [2]float32
	scale       float32
}

var _ ui.Toolkit = (*Toolkit)(nil)

// New creates an ImGui context and maps the window keys into it.
func New() (*Toolkit, error) {
	if err := checkLayout(); err != nil {
		return nil, err
	}
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	for _, m := range keyMap {
		io.KeyMap(m.imgui, int(m.key))
	}
	return &Toolkit{context: context, io: io, layout: currentLayout(), scale: 1}, nil
}

// NewFrame implements ui.Toolkit.
func (t *Toolkit) NewFrame(in ui.FrameInput) {
	t.displaySize = in.DisplaySize
	t.scale = in.FramebufferScale
	if t.scale <= 0 {
		t.scale = 1
	}

	t.io.SetDisplaySize(imgui.Vec2{X: in.DisplaySize[0], Y: in.DisplaySize[1]})
	t.io.SetDeltaTime(float32(in.Delta.Seconds()))
	if in.FontGlobalScale > 0 {
		t.io.SetFontGlobalScale(in.FontGlobalScale)
	}
	t.feed(in.Input)
	imgui.NewFrame()
}

// feed replays the input snapshot into the IO block. Pointer positions are
// converted from physical to logical pixels.
func (t *Toolkit) feed(s input.State) {
	if s.PointerValid && s.Focused {
		t.io.SetMousePosition(imgui.Vec2{
			X: float32(s.Pointer.X) / t.scale,
			Y: float32(s.Pointer.Y) / t.scale,
		})
	} else {
		t.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}
	for i, down := range s.Buttons {
		t.io.SetMouseButtonDown(i, down)
	}
	if s.WheelX != 0 || s.WheelY != 0 {
		t.io.AddMouseWheelDelta(float32(s.WheelX), float32(s.WheelY))
	}

	for k := window.KeyTab; k < window.KeyCount; k++ {
		if s.KeyDown(k) {
			t.io.KeyPress(int(k))
		} else {
			t.io.KeyRelease(int(k))
		}
	}
	t.io.KeyCtrl(int(window.KeyLeftControl), int(window.KeyRightControl))
	t.io.KeyShift(int(window.KeyLeftShift), int(window.KeyRightShift))
	t.io.KeyAlt(int(window.KeyLeftAlt), int(window.KeyRightAlt))
	t.io.KeySuper(int(window.KeyLeftSuper), int(window.KeyRightSuper))

	if s.Text != "" {
		t.io.AddInputCharacters(s.Text)
	}
}

// Begin implements ui.Toolkit.
func (t *Toolkit) Begin(title string, opts ui.WindowOptions) bool {
	if opts.Pos != [2]float32{} {
		imgui.SetNextWindowPosV(imgui.Vec2{X: opts.Pos[0], Y: opts.Pos[1]}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	}
	if opts.Size != [2]float32{} {
		imgui.SetNextWindowSizeV(imgui.Vec2{X: opts.Size[0], Y: opts.Size[1]}, imgui.ConditionFirstUseEver)
	}
	return imgui.BeginV(title, opts.Open, windowFlags(opts.Flags))
}

func (t *Toolkit) End()                 { imgui.End() }
func (t *Toolkit) Text(text string)     { imgui.Text(text) }
func (t *Toolkit) Button(l string) bool { return imgui.Button(l) }
func (t *Toolkit) Separator()           { imgui.Separator() }
func (t *Toolkit) SameLine()            { imgui.SameLine() }
func (t *Toolkit) ShowDemoWindow(open *bool) {
	imgui.ShowDemoWindow(open)
}

// TextColored implements ui.Toolkit.
func (t *Toolkit) TextColored(c gputypes.Color, text string) {
	imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{
		X: float32(c.R), Y: float32(c.G), Z: float32(c.B), W: float32(c.A),
	})
	imgui.Text(text)
	imgui.PopStyleColor()
}

// Checkbox implements ui.Toolkit.
func (t *Toolkit) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

// SliderFloat implements ui.Toolkit.
func (t *Toolkit) SliderFloat(label string, v *float32, lo, hi float32) bool {
	return imgui.SliderFloat(label, v, lo, hi)
}

// Render implements ui.Toolkit. The returned lists are copies; the ImGui
// draw data is not referenced after Render returns.
func (t *Toolkit) Render() (*ui.FrameCommands, error) {
	imgui.Render()
	data := imgui.RenderedDrawData()
	if !data.Valid() {
		return nil, ErrNoDrawData
	}

	lists := data.CommandLists()
	cmds := &ui.FrameCommands{
		Lists:            make([]ui.DrawList, 0, len(lists)),
		DisplaySize:      t.displaySize,
		FramebufferScale: [2]float32{t.scale, t.scale},
	}
	for _, list := range lists {
		cmds.Lists = append(cmds.Lists, convertList(list, t.layout))
	}
	return cmds, nil
}

// MouseCursor implements ui.Toolkit.
func (t *Toolkit) MouseCursor() window.Cursor {
	return cursorFromID(int(imgui.MouseCursor()))
}

// BuildFontAtlas implements ui.Toolkit. It replaces every font in the
// atlas with src rasterized at src.Size*scale and tags the texture with
// ui.FontTexture.
func (t *Toolkit) BuildFontAtlas(src ui.FontSource, scale float64) (*ui.FontAtlas, error) {
	fonts := t.io.Fonts()
	fonts.Clear()
	if font := fonts.AddFontFromMemoryTTF(src.Data, src.Size*float32(scale)); font == 0 {
		return nil, fmt.Errorf("%w: size %v", ErrFontRejected, src.Size)
	}

	img := fonts.TextureDataRGBA32()
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: atlas build failed", ErrFontRejected)
	}
	raw := castBytes(img.Pixels, img.Width*img.Height*4)
	pixels := make([]byte, len(raw))
	copy(pixels, raw)
	fonts.SetTextureID(imgui.TextureID(ui.FontTexture))

	return &ui.FontAtlas{Width: img.Width, Height: img.Height, Pixels: pixels, Scale: scale}, nil
}

// Destroy implements ui.Toolkit. It is safe to call more than once.
func (t *Toolkit) Destroy() {
	if t.context == nil {
		return
	}
	t.context.Destroy()
	t.context = nil
}
