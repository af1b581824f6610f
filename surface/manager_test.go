// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imframe/window"
)

// stubImage implements Image for testing.
type stubImage struct {
	w, h uint32
}

func (i *stubImage) Width() uint32                  { return i.w }
func (i *stubImage) Height() uint32                 { return i.h }
func (i *stubImage) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// stubTarget implements Target and records calls in order.
type stubTarget struct {
	calls        []string
	configs      []Configuration
	configureErr error
	acquireErr   error
	presentErr   error
	// wrongSize makes Acquire return an image of a different size.
	wrongSize bool
	current   Configuration
	released  int
	discarded int
}

func (s *stubTarget) Configure(cfg Configuration) error {
	s.calls = append(s.calls, "configure")
	if s.configureErr != nil {
		return s.configureErr
	}
	s.configs = append(s.configs, cfg)
	s.current = cfg
	return nil
}

func (s *stubTarget) Acquire() (Image, error) {
	s.calls = append(s.calls, "acquire")
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	if s.wrongSize {
		return &stubImage{w: s.current.Width + 1, h: s.current.Height}, nil
	}
	return &stubImage{w: s.current.Width, h: s.current.Height}, nil
}

func (s *stubTarget) Present(Image) error {
	s.calls = append(s.calls, "present")
	return s.presentErr
}

func (s *stubTarget) Discard(Image) {
	s.calls = append(s.calls, "discard")
	s.discarded++
}

func (s *stubTarget) Release() { s.released++ }

func newTestManager() (*Manager, *stubTarget) {
	target := &stubTarget{}
	m := NewManager(target, Configuration{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		PresentMode: PresentModeFifo,
		AlphaMode:   AlphaModeOpaque,
	})
	return m, target
}

func TestConfigureAppliesSize(t *testing.T) {
	m, target := newTestManager()

	cfg, err := m.Configure(window.Size{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("Configure() = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("Configure() size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Format != gputypes.TextureFormatBGRA8Unorm || cfg.PresentMode != PresentModeFifo {
		t.Errorf("Configure() lost base fields: %v", cfg)
	}
	if len(target.configs) != 1 || target.configs[0] != cfg {
		t.Errorf("platform configs = %v, want [%v]", target.configs, cfg)
	}
}

func TestConfigureIdempotent(t *testing.T) {
	m, target := newTestManager()
	size := window.Size{Width: 640, Height: 480}

	first, err := m.Configure(size)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Configure(size)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Configure twice: %v != %v", first, second)
	}
	if got := m.Stats().Configures; got != 1 {
		t.Errorf("platform configures = %d, want 1", got)
	}
	if len(target.configs) != 1 {
		t.Errorf("target saw %d configures", len(target.configs))
	}
}

func TestConfigureZeroSize(t *testing.T) {
	m, target := newTestManager()
	for _, size := range []window.Size{{}, {Width: 100}, {Height: 100}} {
		if _, err := m.Configure(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Configure(%v) = %v, want ErrInvalidSize", size, err)
		}
	}
	if len(target.calls) != 0 {
		t.Errorf("platform called for invalid size: %v", target.calls)
	}
	if _, err := m.Acquire(); !errors.Is(err, ErrSuspended) {
		t.Errorf("Acquire() = %v, want ErrSuspended", err)
	}
}

func TestResizeSequenceTracksLatestSize(t *testing.T) {
	m, _ := newTestManager()
	sizes := []window.Size{
		{Width: 800, Height: 600},
		{Width: 1024, Height: 768},
		{Width: 0, Height: 0},
		{Width: 300, Height: 200},
		{Width: 300, Height: 200},
		{Width: 1920, Height: 1080},
	}
	for _, s := range sizes {
		if err := m.Resize(s); err != nil {
			t.Fatalf("Resize(%v) = %v", s, err)
		}
		img, err := m.Acquire()
		if s.IsZero() {
			if !errors.Is(err, ErrSuspended) {
				t.Errorf("Acquire after zero resize = %v, want ErrSuspended", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Acquire() after Resize(%v) = %v", s, err)
		}
		if got := m.Current().Size(); got != s {
			t.Errorf("configured %v, want %v", got, s)
		}
		if err := m.Present(img); err != nil {
			t.Fatalf("Present() = %v", err)
		}
	}
}

func TestResizeConfiguresBeforeAcquire(t *testing.T) {
	m, target := newTestManager()
	if err := m.Resize(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Acquire(); err != nil {
		t.Fatal(err)
	}
	want := []string{"configure", "acquire"}
	if len(target.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", target.calls, want)
	}
	for i := range want {
		if target.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", target.calls, want)
		}
	}
	if target.configs[0].Width != 800 || target.configs[0].Height != 600 {
		t.Errorf("configured %v", target.configs[0])
	}
}

func TestAcquireDropped(t *testing.T) {
	m, target := newTestManager()
	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	cause := errors.New("outdated")
	target.acquireErr = cause

	_, err := m.Acquire()
	if !errors.Is(err, ErrDropped) || !errors.Is(err, cause) {
		t.Fatalf("Acquire() = %v, want ErrDropped wrapping cause", err)
	}
	if m.Stats().Dropped != 1 {
		t.Errorf("Dropped = %d", m.Stats().Dropped)
	}

	// The next acquire re-sends the configuration first.
	target.acquireErr = nil
	target.calls = nil
	if _, err := m.Acquire(); err != nil {
		t.Fatalf("Acquire() after drop = %v", err)
	}
	if len(target.calls) != 2 || target.calls[0] != "configure" {
		t.Errorf("calls after drop = %v, want configure then acquire", target.calls)
	}
}

func TestAcquireStaleAfterFailedConfigure(t *testing.T) {
	m, target := newTestManager()
	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	target.configureErr = errors.New("device lost")
	if err := m.Resize(window.Size{Width: 1024, Height: 768}); err == nil {
		t.Fatal("Resize() with failing platform returned nil")
	}
	if err := m.Check(); !errors.Is(err, ErrStaleConfiguration) {
		t.Errorf("Check() = %v, want ErrStaleConfiguration", err)
	}
	if _, err := m.Acquire(); err == nil {
		t.Error("Acquire() with stale configuration succeeded")
	}
	for _, c := range target.calls {
		if c == "acquire" {
			t.Fatal("platform acquire reached with stale configuration")
		}
	}
}

func TestAcquireWrongImageSize(t *testing.T) {
	m, target := newTestManager()
	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	target.wrongSize = true
	if _, err := m.Acquire(); !errors.Is(err, ErrStaleConfiguration) {
		t.Fatalf("Acquire() = %v, want ErrStaleConfiguration", err)
	}
	if target.discarded != 1 {
		t.Errorf("mismatched image not discarded")
	}
}

func TestImageSingleUse(t *testing.T) {
	m, _ := newTestManager()
	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	img, err := m.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Acquire(); !errors.Is(err, ErrImageOutstanding) {
		t.Errorf("second Acquire() = %v, want ErrImageOutstanding", err)
	}
	if err := m.Present(img); err != nil {
		t.Fatal(err)
	}
	if err := m.Present(img); !errors.Is(err, ErrImageReleased) {
		t.Errorf("second Present() = %v, want ErrImageReleased", err)
	}
	if err := m.Discard(img); !errors.Is(err, ErrImageReleased) {
		t.Errorf("Discard() after Present = %v, want ErrImageReleased", err)
	}
}

func TestReleaseDiscardsOutstanding(t *testing.T) {
	m, target := newTestManager()
	if _, err := m.Configure(window.Size{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Acquire(); err != nil {
		t.Fatal(err)
	}
	m.Release()
	m.Release()
	if target.discarded != 1 || target.released != 1 {
		t.Errorf("discarded=%d released=%d, want 1 and 1", target.discarded, target.released)
	}
	if _, err := m.Acquire(); !errors.Is(err, ErrReleased) {
		t.Errorf("Acquire() after Release = %v", err)
	}
}

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name      string
		supported []gputypes.TextureFormat
		want      gputypes.TextureFormat
		wantErr   bool
	}{
		{"bgra preferred", []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm, false},
		{"rgba only", []gputypes.TextureFormat{gputypes.TextureFormatRGBA8Unorm}, gputypes.TextureFormatRGBA8Unorm, false},
		{"srgb", []gputypes.TextureFormat{gputypes.TextureFormatBGRA8UnormSrgb}, gputypes.TextureFormatBGRA8UnormSrgb, false},
		{"none", []gputypes.TextureFormat{gputypes.TextureFormatR8Unorm}, gputypes.TextureFormatUndefined, true},
		{"empty", nil, gputypes.TextureFormatUndefined, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChooseFormat(tt.supported)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChooseFormat() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrNoCompatibleFormat) {
				t.Errorf("ChooseFormat() err = %v, want ErrNoCompatibleFormat", err)
			}
			if got != tt.want {
				t.Errorf("ChooseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	all := []PresentMode{PresentModeFifo, PresentModeImmediate, PresentModeMailbox}
	if got := ChoosePresentMode(true, all); got != PresentModeFifo {
		t.Errorf("vsync = %v, want Fifo", got)
	}
	if got := ChoosePresentMode(false, all); got != PresentModeMailbox {
		t.Errorf("no vsync = %v, want Mailbox", got)
	}
	if got := ChoosePresentMode(false, []PresentMode{PresentModeFifo}); got != PresentModeFifo {
		t.Errorf("fallback = %v, want Fifo", got)
	}
}
