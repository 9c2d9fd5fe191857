package placement

import (
	"errors"
	"math"
	"testing"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/window"
)

func dualDisplays() []platform.Display {
	return []platform.Display{
		{
			ID: 0, Name: "eDP-1",
			Bounds:      geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			Usable:      geometry.Rect{X: 0, Y: 40, Width: 1920, Height: 1040},
			ScaleFactor: 1,
		},
		{
			ID: 1, Name: "DP-1",
			Bounds:      geometry.Rect{X: 1920, Y: 0, Width: 3840, Height: 2160},
			Usable:      geometry.Rect{X: 1920, Y: 0, Width: 3840, Height: 2160},
			ScaleFactor: 0.5,
			Primary:     true,
		},
	}
}

func TestResolve_NoDisplays(t *testing.T) {
	_, err := Resolve(window.DefaultSettings(), nil)
	if !errors.Is(err, ErrNoDisplays) {
		t.Fatalf("expected ErrNoDisplays, got %v", err)
	}
}

func TestResolve_DefaultPositionUsesPrimaryAndDoesNotPosition(t *testing.T) {
	res, err := Resolve(window.DefaultSettings(), dualDisplays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MonitorIndex != 1 || res.Display.Name != "DP-1" {
		t.Fatalf("expected primary DP-1, got %d %q", res.MonitorIndex, res.Display.Name)
	}
	if res.Positioned {
		t.Fatalf("expected default position to leave placement to the WM")
	}
	// 1024×768 logical at 0.5 physical-to-logical = 2048×1536 device pixels.
	if res.Bounds.Width != 2048 || res.Bounds.Height != 1536 {
		t.Fatalf("expected 2048x1536, got %dx%d", res.Bounds.Width, res.Bounds.Height)
	}
}

func TestResolve_CenteredUsesUsableArea(t *testing.T) {
	displays := dualDisplays()
	displays[1].Primary = false

	settings := window.DefaultSettings()
	settings.Position = window.CenteredPosition()
	settings.Size = window.Fixed(geometry.NewSize(800, 600))

	res, err := Resolve(settings, displays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MonitorIndex != 0 {
		t.Fatalf("expected first display without primary, got %d", res.MonitorIndex)
	}
	// usable 1920x1040 at y=40: x=(1920-800)/2=560, y=40+(1040-600)/2=260
	if res.Bounds != (geometry.Rect{X: 560, Y: 260, Width: 800, Height: 600}) {
		t.Fatalf("unexpected bounds %+v", res.Bounds)
	}
	if !res.Positioned {
		t.Fatalf("expected centered placement to be positioned")
	}
}

func TestResolve_SpecificOnMonitor(t *testing.T) {
	settings := window.DefaultSettings()
	settings.Position = window.OnMonitor(1, geometry.Point{X: 10, Y: 20})
	settings.Size = window.FromScreenSize(window.ScreenFraction{Width: 0.5, Height: 0.5})

	res, err := Resolve(settings, dualDisplays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Monitor 1 logical size: 1920×1080; half = 960×540 logical = 1920×1080 physical.
	if res.LogicalSize != geometry.NewSize(960, 540) {
		t.Fatalf("unexpected logical size %v", res.LogicalSize)
	}
	want := geometry.Rect{X: 1920 + 20, Y: 40, Width: 1920, Height: 1080}
	if res.Bounds != want {
		t.Fatalf("expected %+v, got %+v", want, res.Bounds)
	}
	if res.Fallback {
		t.Fatalf("did not expect fallback")
	}
}

func TestResolve_SpecificWithoutMonitorUsesDefault(t *testing.T) {
	settings := window.DefaultSettings()
	settings.Position = window.PositionAt(geometry.Point{X: 100, Y: 50})
	settings.Size = window.Fixed(geometry.NewSize(100, 100))

	res, err := Resolve(settings, dualDisplays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MonitorIndex != 1 {
		t.Fatalf("expected primary monitor, got %d", res.MonitorIndex)
	}
	if res.Bounds.X != 1920+200 || res.Bounds.Y != 100 {
		t.Fatalf("unexpected origin %d,%d", res.Bounds.X, res.Bounds.Y)
	}
}

func TestResolve_StaleIndexFallsBack(t *testing.T) {
	settings := window.DefaultSettings()
	settings.Position = window.OnMonitor(5, geometry.Point{})

	res, err := Resolve(settings, dualDisplays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback for stale index")
	}
	if res.MonitorIndex != 1 {
		t.Fatalf("expected fallback to primary, got %d", res.MonitorIndex)
	}
}

func TestResolve_MinMaxAndMinimumOnePixel(t *testing.T) {
	maxSize := geometry.NewSize(500, 500)
	settings := window.DefaultSettings()
	settings.MaxSize = &maxSize
	displays := dualDisplays()[:1]

	res, err := Resolve(settings, displays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bounds.Width != 500 || res.Bounds.Height != 500 {
		t.Fatalf("expected 500x500, got %dx%d", res.Bounds.Width, res.Bounds.Height)
	}

	settings = window.DefaultSettings()
	settings.Size = window.Fixed(geometry.Size{})
	res, err = Resolve(settings, displays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bounds.Width != 1 || res.Bounds.Height != 1 {
		t.Fatalf("expected 1x1 floor, got %dx%d", res.Bounds.Width, res.Bounds.Height)
	}
}

func TestResolve_RejectsInvalidGeometry(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name     string
		size     window.Size
		position window.Position
	}{
		{"nan width", window.Fixed(geometry.NewSize(nan, 100)), window.DefaultPosition()},
		{"infinite height", window.Fixed(geometry.NewSize(100, inf)), window.DefaultPosition()},
		{"huge width", window.Fixed(geometry.NewSize(1e30, 100)), window.DefaultPosition()},
		{"negative width", window.Fixed(geometry.NewSize(-5, 100)), window.DefaultPosition()},
		{
			"sizer returns nan",
			window.FromScreenSize(window.SizeFunc(func(geometry.Size) geometry.Size {
				return geometry.NewSize(nan, nan)
			})),
			window.DefaultPosition(),
		},
		{"nan position", window.DefaultSize(), window.PositionAt(geometry.Point{X: nan, Y: nan})},
		{"infinite position", window.DefaultSize(), window.PositionAt(geometry.Point{X: -inf, Y: 0})},
		{"huge position", window.DefaultSize(), window.PositionAt(geometry.Point{X: 1e30, Y: 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := window.DefaultSettings()
			settings.Size = tt.size
			settings.Position = tt.position
			res, err := Resolve(settings, dualDisplays())
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected ErrInvalidGeometry, got %v (bounds %+v)", err, res.Bounds)
			}
		})
	}
}

func TestResolve_NegativeOffsetAllowed(t *testing.T) {
	settings := window.DefaultSettings()
	settings.Position = window.OnMonitor(0, geometry.Point{X: -10, Y: -20})
	res, err := Resolve(settings, dualDisplays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bounds.X != -10 || res.Bounds.Y != -20 {
		t.Fatalf("unexpected origin %d,%d", res.Bounds.X, res.Bounds.Y)
	}
}

func TestResolve_SettingsMonitor(t *testing.T) {
	idx := func(i int) *window.MonitorIndex {
		m := window.MonitorIndex(i)
		return &m
	}
	size := window.Fixed(geometry.NewSize(800, 600))

	tests := []struct {
		name         string
		position     window.Position
		monitor      *window.MonitorIndex
		wantIndex    window.MonitorIndex
		wantBounds   geometry.Rect
		wantPosition bool
		wantFallback bool
	}{
		{
			name:         "centered on chosen monitor",
			position:     window.CenteredPosition(),
			monitor:      idx(0),
			wantIndex:    0,
			wantBounds:   geometry.Rect{X: 560, Y: 260, Width: 800, Height: 600},
			wantPosition: true,
		},
		{
			name:         "default position is centered on chosen monitor",
			position:     window.DefaultPosition(),
			monitor:      idx(0),
			wantIndex:    0,
			wantBounds:   geometry.Rect{X: 560, Y: 260, Width: 800, Height: 600},
			wantPosition: true,
		},
		{
			name:         "specific without index offsets from chosen monitor",
			position:     window.PositionAt(geometry.Point{X: 5, Y: 6}),
			monitor:      idx(0),
			wantIndex:    0,
			wantBounds:   geometry.Rect{X: 5, Y: 6, Width: 800, Height: 600},
			wantPosition: true,
		},
		{
			name:         "position index wins over settings monitor",
			position:     window.OnMonitor(1, geometry.Point{}),
			monitor:      idx(0),
			wantIndex:    1,
			wantBounds:   geometry.Rect{X: 1920, Y: 0, Width: 1600, Height: 1200},
			wantPosition: true,
		},
		{
			name:         "stale monitor keeps default position unpositioned",
			position:     window.DefaultPosition(),
			monitor:      idx(7),
			wantIndex:    1,
			wantBounds:   geometry.Rect{Width: 1600, Height: 1200},
			wantFallback: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := window.DefaultSettings()
			settings.Size = size
			settings.Position = tt.position
			settings.Monitor = tt.monitor

			res, err := Resolve(settings, dualDisplays())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.MonitorIndex != tt.wantIndex {
				t.Errorf("MonitorIndex = %d, want %d", res.MonitorIndex, tt.wantIndex)
			}
			if res.Bounds != tt.wantBounds {
				t.Errorf("Bounds = %+v, want %+v", res.Bounds, tt.wantBounds)
			}
			if res.Positioned != tt.wantPosition || res.Fallback != tt.wantFallback {
				t.Errorf("Positioned=%v Fallback=%v, want %v %v", res.Positioned, res.Fallback, tt.wantPosition, tt.wantFallback)
			}
		})
	}
}

type fakeBackend struct {
	displays   []platform.Display
	displayErr error
	moveErr    error
	moved      []geometry.Rect
	resized    [][2]int
}

func (f *fakeBackend) Displays() ([]platform.Display, error) { return f.displays, f.displayErr }
func (f *fakeBackend) ActiveWindow() (platform.WindowID, error) { return 42, nil }
func (f *fakeBackend) FindWindow(string) (platform.WindowID, error) {
	return 0, errors.New("not found")
}
func (f *fakeBackend) MoveResize(_ platform.WindowID, bounds geometry.Rect) error {
	f.moved = append(f.moved, bounds)
	return f.moveErr
}
func (f *fakeBackend) Resize(_ platform.WindowID, width, height int) error {
	f.resized = append(f.resized, [2]int{width, height})
	return nil
}

func TestPlacer_PositionedMovesAndDefaultResizes(t *testing.T) {
	b := &fakeBackend{displays: dualDisplays()}
	p := NewPlacer(b, nil)

	settings := window.DefaultSettings()
	if _, err := p.Place(1, settings); err != nil {
		t.Fatalf("place default: %v", err)
	}
	if len(b.resized) != 1 || len(b.moved) != 0 {
		t.Fatalf("expected one resize, got resized=%v moved=%v", b.resized, b.moved)
	}

	settings.Position = window.CenteredPosition()
	if _, err := p.Place(1, settings); err != nil {
		t.Fatalf("place centered: %v", err)
	}
	if len(b.moved) != 1 {
		t.Fatalf("expected one move, got %v", b.moved)
	}
}

func TestPlacer_Errors(t *testing.T) {
	enumErr := errors.New("boom")
	p := NewPlacer(&fakeBackend{displayErr: enumErr}, nil)
	if _, err := p.Place(1, window.DefaultSettings()); !errors.Is(err, enumErr) {
		t.Fatalf("expected wrapped enumeration error, got %v", err)
	}

	p = NewPlacer(&fakeBackend{}, nil)
	if _, err := p.Place(1, window.DefaultSettings()); !errors.Is(err, ErrNoDisplays) {
		t.Fatalf("expected ErrNoDisplays, got %v", err)
	}

	moveErr := errors.New("bad window")
	settings := window.DefaultSettings()
	settings.Position = window.CenteredPosition()
	p = NewPlacer(&fakeBackend{displays: dualDisplays(), moveErr: moveErr}, nil)
	if _, err := p.Place(1, settings); !errors.Is(err, moveErr) {
		t.Fatalf("expected wrapped move error, got %v", err)
	}
}
