// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command imframe-demo opens a window and runs a Dear ImGui frame loop on
// the GPU.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/backend/imgui"
	"github.com/gogpu/imframe/backend/wgpu"
	"github.com/gogpu/imframe/frame"
	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window/glfw"
)

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := imframe.DefaultConfig().WithTitle("imframe demo")
	var (
		width    = flag.Int("width", cfg.Width, "initial window width")
		height   = flag.Int("height", cfg.Height, "initial window height")
		title    = flag.String("title", cfg.Title, "window title")
		vsync    = flag.Bool("vsync", cfg.VSync, "wait for vertical blank when presenting")
		fontSize = flag.Float64("font-size", float64(cfg.FontSize), "UI font size in logical pixels")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	imframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = cfg.WithSize(*width, *height).WithTitle(*title).WithVSync(*vsync).WithFontSize(float32(*fontSize))
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := exitError(run(ctx, cfg)); err != nil {
		log.Fatal(err)
	}
}

// exitError drops the error of a loop stopped by an interrupt.
func exitError(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func run(ctx context.Context, cfg imframe.Config) (err error) {
	// undo releases what was created so far if setup fails before the
	// driver takes ownership.
	var undo []func()
	defer func() {
		if err != nil {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
		}
	}()

	win, err := glfw.New(cfg)
	if err != nil {
		return err
	}
	undo = append(undo, win.Close)

	device, err := wgpu.OpenDevice(gputypes.BackendVulkan)
	if err != nil {
		return err
	}
	undo = append(undo, func() { _ = device.Close() })

	target, err := device.NewSurface(win.NativeHandles())
	if err != nil {
		return err
	}
	format, err := surface.ChooseFormat(target.Formats())
	if err != nil {
		target.Release()
		return err
	}
	surfaces := surface.NewManager(target, surface.Configuration{
		Format:      format,
		PresentMode: surface.ChoosePresentMode(cfg.VSync, target.PresentModes()),
		AlphaMode:   surface.AlphaModeOpaque,
	})
	undo = append(undo, surfaces.Release)

	backend, err := wgpu.NewBackend(device)
	if err != nil {
		return err
	}
	submitter := render.NewSubmitter(backend, cfg.ClearColor)
	undo = append(undo, submitter.Close)

	toolkit, err := imgui.New()
	if err != nil {
		return err
	}
	session, err := ui.NewSession(toolkit, ui.DefaultFontSource(cfg.FontSize))
	if err != nil {
		toolkit.Destroy()
		return err
	}
	undo = append(undo, session.Close)

	driver, err := frame.New(win, surfaces, session, submitter, newDemo(device.Info()),
		frame.WithConfig(cfg), frame.WithDevice(device))
	if err != nil {
		return err
	}
	undo = nil
	defer driver.Close()

	return driver.Run(ctx)
}

// demo is the layout of the demo windows.
type demo struct {
	gpu      wgpu.GPUInfo
	showDemo bool
	value    float32
	clicks   int
}

func newDemo(gpu wgpu.GPUInfo) *demo {
	return &demo{gpu: gpu, showDemo: true, value: 0.5}
}

func (d *demo) Layout(f *ui.Frame) {
	if f.Window("Hello world", ui.WindowOptions{Size: [2]float32{300, 100}}) {
		f.Text("Hello world!")
		f.Text("This...is...imframe on " + d.gpu.String())
		f.Separator()
		f.Text(mousePosition(f.Input()))
		f.Separator()
		f.Checkbox("Show ImGui demo window", &d.showDemo)
		f.SliderFloat("value", &d.value, 0, 1)
		if f.Button("Click me") {
			d.clicks++
		}
		f.SameLine()
		f.Text(fmt.Sprintf("clicked %d times", d.clicks))
	}
	f.End()

	if f.Window("Hello too", ui.WindowOptions{Pos: [2]float32{400, 200}, Size: [2]float32{400, 200}}) {
		f.TextColored(gputypes.Color{R: 0.4, G: 0.9, B: 0.4, A: 1},
			fmt.Sprintf("Frametime: %v", f.Delta()))
	}
	f.End()

	f.ShowDemoWindow(&d.showDemo)
}

// mousePosition formats the pointer position in logical pixels.
func mousePosition(in input.State) string {
	if !in.PointerValid {
		return "Mouse Position: (none)"
	}
	scale := in.ScaleFactor
	if !(scale > 0) {
		scale = 1
	}
	return fmt.Sprintf("Mouse Position: (%.1f,%.1f)", in.Pointer.X/scale, in.Pointer.Y/scale)
}
