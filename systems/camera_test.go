package systems

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/automoto/healthbars/components"
	"github.com/automoto/healthbars/config"
	"github.com/automoto/healthbars/systems/factory"
	"github.com/automoto/healthbars/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func approxEqual(a, b dmath.Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestWorldToScreen(t *testing.T) {
	viewport := image.Rect(0, 0, 640, 360)

	cases := []struct {
		name   string
		cam    components.CameraData
		world  dmath.Vec2
		want   dmath.Vec2
		wantOK bool
	}{
		{
			name:   "centre",
			cam:    components.CameraData{Zoom: 1, Viewport: viewport},
			world:  dmath.NewVec2(0, 0),
			want:   dmath.NewVec2(320, 180),
			wantOK: true,
		},
		{
			name:   "camera_offset",
			cam:    components.CameraData{Position: dmath.NewVec2(100, 50), Zoom: 1, Viewport: viewport},
			world:  dmath.NewVec2(110, 40),
			want:   dmath.NewVec2(330, 170),
			wantOK: true,
		},
		{
			name:   "zoomed",
			cam:    components.CameraData{Zoom: 2, Viewport: viewport},
			world:  dmath.NewVec2(10, 10),
			want:   dmath.NewVec2(340, 200),
			wantOK: true,
		},
		{
			name:   "zero_zoom_means_one",
			cam:    components.CameraData{Viewport: viewport},
			world:  dmath.NewVec2(10, 10),
			want:   dmath.NewVec2(330, 190),
			wantOK: true,
		},
		{
			name:   "rotated_quarter_turn",
			cam:    components.CameraData{Zoom: 1, Rotation: math.Pi / 2, Viewport: viewport},
			world:  dmath.NewVec2(10, 0),
			want:   dmath.NewVec2(320, 170),
			wantOK: true,
		},
		{
			name:   "viewport_offset",
			cam:    components.CameraData{Zoom: 1, Viewport: image.Rect(100, 100, 300, 200)},
			world:  dmath.NewVec2(0, 0),
			want:   dmath.NewVec2(200, 150),
			wantOK: true,
		},
		{
			name:  "right_of_viewport",
			cam:   components.CameraData{Zoom: 1, Viewport: viewport},
			world: dmath.NewVec2(320, 0),
		},
		{
			name:  "above_viewport",
			cam:   components.CameraData{Zoom: 1, Viewport: viewport},
			world: dmath.NewVec2(0, -181),
		},
		{
			name:  "not_a_number",
			cam:   components.CameraData{Zoom: 1, Viewport: viewport},
			world: dmath.NewVec2(math.NaN(), 0),
		},
		{
			name:  "empty_viewport",
			cam:   components.CameraData{Zoom: 1},
			world: dmath.NewVec2(0, 0),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := WorldToScreen(c.cam, c.world)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if !approxEqual(got, c.want) {
				t.Errorf("WorldToScreen = %v, want %v", got, c.want)
			}
		})
	}
}

func TestScreenToWorldInvertsWorldToScreen(t *testing.T) {
	cams := []components.CameraData{
		{Zoom: 1, Viewport: image.Rect(0, 0, 640, 360)},
		{Position: dmath.NewVec2(-40, 25), Zoom: 1.5, Viewport: image.Rect(0, 0, 640, 360)},
		{Position: dmath.NewVec2(12, 7), Zoom: 0.75, Rotation: 0.3, Viewport: image.Rect(20, 10, 660, 370)},
	}
	world := dmath.NewVec2(17, -9)

	for i, cam := range cams {
		screen, ok := WorldToScreen(cam, world)
		if !ok {
			t.Fatalf("camera %d: point should be visible", i)
		}
		if back := ScreenToWorld(cam, screen); !approxEqual(back, world) {
			t.Errorf("camera %d: ScreenToWorld(%v) = %v, want %v", i, screen, back, world)
		}
	}
}

func TestFindCamera(t *testing.T) {
	cases := []struct {
		name    string
		cameras int
		wantErr error
	}{
		{"none", 0, ErrNoCamera},
		{"one", 1, nil},
		{"two", 2, ErrMultipleCameras},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			for i := 0; i < c.cameras; i++ {
				factory.CreateCamera(e, tags.BarCamera, float64(i), 0)
			}

			entry, err := FindCamera(e.World, tags.BarCamera)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if c.cameras == 0 {
				if entry != nil {
					t.Error("expected no entry without a camera")
				}
				return
			}
			if entry == nil || !entry.HasComponent(components.Camera) {
				t.Error("expected a camera entry")
			}
		})
	}
}

func TestFindCamera_IgnoresUnmarkedCameras(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	other := donburi.NewTag().SetName("OtherCamera")
	factory.CreateCamera(e, other, 0, 0)

	if _, err := FindCamera(e.World, tags.BarCamera); !errors.Is(err, ErrNoCamera) {
		t.Errorf("err = %v, want %v", err, ErrNoCamera)
	}
}

func TestProjectToScreen(t *testing.T) {
	t.Run("no_camera", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		got, ok := ProjectToScreen(e.World, tags.BarCamera, dmath.NewVec2(1, 2))
		if ok || got != (dmath.Vec2{}) {
			t.Errorf("got %v, %v; want origin, false", got, ok)
		}
	})

	t.Run("single_camera", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		factory.CreateCamera(e, tags.BarCamera, 0, 0)
		got, ok := ProjectToScreen(e.World, tags.BarCamera, dmath.NewVec2(1, 2))
		if !ok || got != dmath.NewVec2(321, 182) {
			t.Errorf("got %v, %v; want (321, 182), true", got, ok)
		}
	})

	t.Run("multiple_cameras_use_first", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		factory.CreateCamera(e, tags.BarCamera, 0, 0)
		factory.CreateCamera(e, tags.BarCamera, 0, 0)
		got, ok := ProjectToScreen(e.World, tags.BarCamera, dmath.NewVec2(1, 2))
		if !ok || got != dmath.NewVec2(321, 182) {
			t.Errorf("got %v, %v; want (321, 182), true", got, ok)
		}
	})

	t.Run("behind_viewport", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		factory.CreateCamera(e, tags.BarCamera, 0, 0)
		got, ok := ProjectToScreen(e.World, tags.BarCamera, dmath.NewVec2(-1000, 0))
		if ok || got != (dmath.Vec2{}) {
			t.Errorf("got %v, %v; want origin, false", got, ok)
		}
	})
}

func TestClampZoom(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.01, config.Camera.MinZoom},
		{1, 1},
		{100, config.Camera.MaxZoom},
	}
	for _, c := range cases {
		if got := clampZoom(c.in); got != c.want {
			t.Errorf("clampZoom(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
