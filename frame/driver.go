// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/imframe"
	"github.com/gogpu/imframe/input"
	"github.com/gogpu/imframe/render"
	"github.com/gogpu/imframe/surface"
	"github.com/gogpu/imframe/ui"
	"github.com/gogpu/imframe/window"
)

// Defaults used when no option overrides them.
const (
	DefaultPollInterval        = 16 * time.Millisecond
	DefaultMaxConsecutiveDrops = 8
)

// ErrTerminated is returned by Tick after the driver reached
// StateTerminated.
var ErrTerminated = errors.New("frame: driver terminated")

// Stats counts driver activity.
type Stats struct {
	// Ticks is the number of ticks that reached the redraw signal.
	Ticks uint64
	// Presented is the number of frames displayed.
	Presented uint64
	// Dropped is the number of ticks skipped because no image was
	// available.
	Dropped uint64
	// Failed is the number of ticks abandoned after acquisition.
	Failed uint64
	// Resyncs is the number of times repeated drops forced the surface
	// to be resized from the window size.
	Resyncs uint64
}

// Driver runs the frame loop for one window and surface.
//
// Driver is NOT safe for concurrent use; it runs on the goroutine that owns
// the window.
type Driver struct {
	win       Window
	surface   *surface.Manager
	session   *ui.Session
	submitter *render.Submitter
	layout    Layout
	device    io.Closer

	bridge *input.Bridge
	cursor input.CursorTracker

	pollInterval time.Duration
	maxDrops     int
	now          func() time.Time
	hook         func(from, to State)

	state  State
	exit   bool
	drops  int
	stats  Stats
	closed bool
}

// New creates a driver and configures the surface for the current window
// size. A zero window size (a minimized window) is not an error; the
// driver waits for a resize.
func New(win Window, surfaces *surface.Manager, session *ui.Session, submitter *render.Submitter, layout Layout, opts ...Option) (*Driver, error) {
	d := &Driver{
		win:          win,
		surface:      surfaces,
		session:      session,
		submitter:    submitter,
		layout:       layout,
		bridge:       input.NewBridge(),
		pollInterval: DefaultPollInterval,
		maxDrops:     DefaultMaxConsecutiveDrops,
		now:          time.Now,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.bridge.SetScaleFactor(win.ScaleFactor())
	size := win.Size()
	d.session.SetDisplaySize(size)
	if _, err := d.surface.Configure(size); err != nil && !errors.Is(err, surface.ErrInvalidSize) {
		return nil, fmt.Errorf("frame: initial configure: %w", err)
	}
	return d, nil
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Stats returns the activity counters.
func (d *Driver) Stats() Stats { return d.stats }

// Input returns the input bridge the driver feeds.
func (d *Driver) Input() *input.Bridge { return d.bridge }

func (d *Driver) transition(to State) {
	from := d.state
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("frame: invalid transition %v -> %v", from, to))
	}
	d.state = to
	imframe.Logger().Debug("frame: transition", "from", from.String(), "to", to.String())
	if d.hook != nil {
		d.hook(from, to)
	}
}

func (d *Driver) terminate(reason string) {
	if d.state == StateTerminated {
		return
	}
	imframe.Logger().Info("frame: terminating", "reason", reason, "state", d.state.String())
	d.transition(StateTerminated)
}

// Tick runs one tick: it pumps events until the redraw signal, then
// acquires, builds, submits and presents one frame.
//
// Per-tick failures (dropped images, render errors) are logged and end the
// tick early; Tick returns nil for them. Tick returns ErrTerminated once
// the driver has terminated and ctx.Err() when ctx is done.
func (d *Driver) Tick(ctx context.Context) error {
	if d.state == StateTerminated {
		return ErrTerminated
	}
	if err := ctx.Err(); err != nil {
		d.terminate("context done")
		return err
	}

	d.transition(StateAwaitingRedraw)
	if !d.awaitRedraw(ctx) {
		if d.exit {
			d.terminate("exit requested")
			return nil
		}
		d.terminate("context done")
		return ctx.Err()
	}
	d.stats.Ticks++

	d.transition(StateAcquiring)
	img, ok := d.acquire()
	if !ok {
		d.transition(StateIdle)
		return nil
	}
	if err := ctx.Err(); err != nil {
		d.abandon(img)
		d.terminate("context done")
		return err
	}

	d.transition(StateBuilding)
	cmds, err := d.build()
	if err != nil {
		imframe.Logger().Warn("frame: UI frame failed", "error", err)
		d.stats.Failed++
		d.abandon(img)
		d.transition(StateIdle)
		return nil
	}

	d.transition(StateSubmitting)
	if err := d.submitter.Submit(cmds, img); err != nil {
		d.stats.Failed++
		d.abandon(img)
		d.transition(StateIdle)
		return nil
	}

	d.transition(StatePresenting)
	if err := d.surface.Present(img); err != nil {
		imframe.Logger().Warn("frame: present failed", "error", err)
		d.stats.Dropped++
	} else {
		d.stats.Presented++
	}
	d.transition(StateIdle)
	return nil
}

// awaitRedraw requests a redraw and pumps events until it arrives. It
// returns false on an exit signal or when ctx is done.
//
// No redraw is requested while the window is minimized; the driver only
// waits for events then, each wait bounded by the poll interval.
func (d *Driver) awaitRedraw(ctx context.Context) bool {
	requested := false
	for {
		if !requested && !d.surface.Observed().IsZero() {
			d.win.RequestRedraw()
			requested = true
		}
		redraw := false
		for _, ev := range d.win.PollEvents(d.pollInterval) {
			if d.handle(ev) {
				redraw = true
			}
			if d.exit {
				return false
			}
		}
		if redraw {
			if !d.surface.Observed().IsZero() {
				return true
			}
			// Minimized since the request; ask again once a size returns.
			requested = false
		}
		if ctx.Err() != nil {
			return false
		}
	}
}

// handle applies one platform event and reports whether it is the redraw
// signal.
func (d *Driver) handle(ev window.Event) bool {
	switch e := ev.(type) {
	case window.RedrawRequested:
		return true
	case window.AboutToWait:
		return false
	case window.Resized:
		d.session.SetDisplaySize(e.Size)
		if err := d.surface.Resize(e.Size); err != nil {
			imframe.Logger().Warn("frame: resize failed", "size", e.Size.String(), "error", err)
		}
		return false
	}
	if d.bridge.HandleEvent(ev) == input.ActionExit {
		d.exit = true
	}
	return false
}

// acquire gets the tick's image, applying the drop policy on failure.
func (d *Driver) acquire() (surface.Image, bool) {
	img, err := d.surface.Acquire()
	if err == nil {
		d.drops = 0
		return img, true
	}

	switch {
	case errors.Is(err, surface.ErrDropped):
		d.stats.Dropped++
		d.drops++
		imframe.Logger().Warn("frame: dropped", "consecutive", d.drops, "error", err)
		if d.drops >= d.maxDrops {
			d.resync()
		}
	case errors.Is(err, surface.ErrSuspended):
		imframe.Logger().Debug("frame: surface suspended")
	default:
		d.stats.Dropped++
		imframe.Logger().Warn("frame: acquire failed", "error", err)
		d.surface.Invalidate()
	}
	return nil, false
}

// resync re-reads the window size after repeated drops, in case a resize
// was never delivered.
func (d *Driver) resync() {
	size := d.win.Size()
	imframe.Logger().Warn("frame: repeated drops, resyncing surface",
		"drops", d.drops, "size", size.String())
	d.stats.Resyncs++
	d.drops = 0
	d.session.SetDisplaySize(size)
	d.surface.Invalidate()
	if err := d.surface.Resize(size); err != nil {
		imframe.Logger().Warn("frame: resync failed", "error", err)
	}
}

// build runs the UI frame on this tick's input snapshot.
func (d *Driver) build() (*ui.FrameCommands, error) {
	snapshot := d.bridge.Snapshot()
	d.bridge.ResetFrame()

	f, err := d.session.BeginFrame(snapshot, d.now())
	if err != nil {
		return nil, err
	}
	d.layout.Layout(f)
	cmds, err := d.session.EndFrame(f)
	if err != nil {
		return nil, err
	}
	d.cursor.Update(cmds.Cursor, d.win)
	return cmds, nil
}

func (d *Driver) abandon(img surface.Image) {
	if err := d.surface.Discard(img); err != nil {
		imframe.Logger().Debug("frame: discard failed", "error", err)
	}
}

// Run calls Tick until the driver terminates. It returns nil after an exit
// signal and ctx.Err() when ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := d.Tick(ctx); err != nil {
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			return err
		}
		if d.state == StateTerminated {
			return nil
		}
	}
}

// Close terminates the driver and releases, in order, the UI session, the
// render backend, the surface, the device and the window. It is safe to
// call more than once.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.terminate("closed")

	d.session.Close()
	d.submitter.Close()
	d.surface.Release()
	if d.device != nil {
		if err := d.device.Close(); err != nil {
			imframe.Logger().Warn("frame: close device", "error", err)
		}
	}
	d.win.Close()

	imframe.Logger().Info("frame: closed",
		"ticks", d.stats.Ticks, "presented", d.stats.Presented,
		"dropped", d.stats.Dropped, "failed", d.stats.Failed)
}
