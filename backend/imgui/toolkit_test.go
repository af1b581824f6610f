// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imgui

import (
	"testing"
	"time"

	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

func newToolkit(t *testing.T) *Toolkit {
	t.Helper()
	tk, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(tk.Destroy)
	return tk
}

func TestToolkitFrame(t *testing.T) {
	tk := newToolkit(t)

	atlas, err := tk.BuildFontAtlas(ui.DefaultFontSource(13), 2)
	if err != nil {
		t.Fatalf("BuildFontAtlas: %v", err)
	}
	if !atlas.Valid() || atlas.Scale != 2 {
		t.Fatalf("atlas = %dx%d (%d bytes), scale %v", atlas.Width, atlas.Height, len(atlas.Pixels), atlas.Scale)
	}

	// ImGui may hide a new window on its first frame; check the second.
	var cmds *ui.FrameCommands
	for range 2 {
		tk.NewFrame(ui.FrameInput{
			Input: input.State{
				Pointer:      input.Point{X: 40, Y: 40},
				PointerValid: true,
				Focused:      true,
				ScaleFactor:  2,
				Keys:         map[window.Key]bool{window.KeyA: true},
			},
			Delta:            time.Second / 60,
			DisplaySize:      [2]float32{320, 240},
			FramebufferScale: 2,
			FontGlobalScale:  0.5,
		})
		tk.Begin("hello", ui.WindowOptions{Pos: [2]float32{10, 10}, Size: [2]float32{200, 100}})
		tk.Text("hello, world")
		tk.End()

		cmds, err = tk.Render()
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if len(cmds.Lists) == 0 {
		t.Fatal("no draw lists")
	}
	if cmds.DisplaySize != [2]float32{320, 240} || cmds.FramebufferScale != [2]float32{2, 2} {
		t.Errorf("display %v scale %v", cmds.DisplaySize, cmds.FramebufferScale)
	}
	v, i := cmds.Counts()
	if v == 0 || i == 0 {
		t.Errorf("counts = %d vertices, %d indices", v, i)
	}
	for _, list := range cmds.Lists {
		for _, b := range list.Batches {
			if b.IndexOffset+b.ElementCount > uint32(len(list.Indices)) {
				t.Errorf("batch %+v exceeds %d indices", b, len(list.Indices))
			}
			if b.Texture != ui.FontTexture {
				t.Errorf("batch texture = %d, want font texture", b.Texture)
			}
		}
	}
	if c := tk.MouseCursor(); c != window.CursorArrow {
		t.Errorf("MouseCursor = %v, want Arrow", c)
	}
}

func TestToolkitDestroyTwice(t *testing.T) {
	tk, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tk.Destroy()
	tk.Destroy()
}
