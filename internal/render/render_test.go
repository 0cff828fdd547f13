package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/logastroids/internal/loop"
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/score"
)

var testField = object.Field{Width: 1200, Height: 900}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestDirectionFrame(t *testing.T) {
	tests := []struct {
		rot  float64
		want int
	}{
		{0, 0},
		{14.9, 0},
		{15, 1},
		{90, 6},
		{359.9, 23},
		{360, 0},
		{-1, 23},
		{-15, 23},
		{-15.1, 22},
		{725, 0},
	}
	for _, tt := range tests {
		if got := DirectionFrame(tt.rot); got != tt.want {
			t.Errorf("DirectionFrame(%v) = %d, want %d", tt.rot, got, tt.want)
		}
	}
}

func TestFitTermKeepsAspect(t *testing.T) {
	tests := []struct {
		name                 string
		termW, termH         int
		w, h, offCol, offRow int
	}{
		{"wide terminal", 200, 50, 133, 50, 33, 0},
		{"tall terminal", 80, 60, 80, 30, 0, 15},
		{"huge terminal", 400, 200, 240, 90, 80, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := fitTerm(tt.termW, tt.termH, testField)
			if w != tt.w || h != tt.h || oc != tt.offCol || or != tt.offRow {
				t.Errorf("fitTerm = (%d,%d,%d,%d), want (%d,%d,%d,%d)", w, h, oc, or, tt.w, tt.h, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestHealthBar(t *testing.T) {
	if got := HealthBar(2, 3); got != "♥♥♡" {
		t.Errorf("HealthBar(2,3) = %q", got)
	}
	if got := HealthBar(7, 3); got != "♥♥♥" {
		t.Errorf("HealthBar clamps high values, got %q", got)
	}
	if got := HealthBar(-1, 2); got != "♡♡" {
		t.Errorf("HealthBar clamps negatives, got %q", got)
	}
}

func TestBossBar(t *testing.T) {
	if got := BossBar(25, 50, 10); got != "[█████░░░░░]" {
		t.Errorf("half health bar = %q", got)
	}
	if got := BossBar(1, 50, 10); !strings.HasPrefix(got, "[█░") {
		t.Errorf("a live boss keeps one cell, got %q", got)
	}
	if got := BossBar(0, 0, 10); got != "" {
		t.Errorf("no boss should render nothing, got %q", got)
	}
}

func renderSnapshot(t *testing.T, snap loop.Snapshot) string {
	t.Helper()
	var out bytes.Buffer
	r := New(&out, fixedSize(160, 60), testField)
	if err := r.Draw(snap); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestDrawPlayingHUD(t *testing.T) {
	out := renderSnapshot(t, loop.Snapshot{
		Mode:          loop.ModePlaying,
		Field:         testField,
		Score:         1234,
		Level:         4,
		Health:        2,
		MaxHealth:     3,
		Rockets:       5,
		BossHealth:    10,
		BossMaxHealth: 50,
		Banner:        "Shields",
		Entities: []object.Pose{
			{Kind: object.KindAsteroid, X: 300, Y: 300, Radius: 38, Scale: 1, Stage: 2},
			{Kind: object.KindPowerUp, X: 900, Y: 200, Radius: 20, PowerUp: object.PowerUpRockets},
			{Kind: object.KindShip, X: 600, Y: 450, Radius: 38.4, Thrust: true, Shield: true},
		},
	})
	for _, want := range []string{"Score: 1234", "Level: 4", "Rockets: 5", "♥♥♡", "BOSS [", "Shields", "R"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("no entity pixels rendered")
	}
}

func TestDrawScreens(t *testing.T) {
	table := score.Table{{Name: "ACE", Score: 900}, {Name: "BOB", Score: 120}}
	tests := []struct {
		name string
		snap loop.Snapshot
		want []string
	}{
		{"start", loop.Snapshot{Mode: loop.ModeStart, HighScores: table}, []string{"Press ENTER or P to Start", "ACE", "High Scores"}},
		{"start empty", loop.Snapshot{Mode: loop.ModeStart}, []string{"No high scores yet"}},
		{"paused", loop.Snapshot{Mode: loop.ModePaused, MaxHealth: 3}, []string{"P A U S E D", "Score:"}},
		{"game over", loop.Snapshot{Mode: loop.ModeGameOver, Score: 120, HighScores: table}, []string{"G A M E   O V E R", "BOB", "play again"}},
		{"name entry", loop.Snapshot{Mode: loop.ModeNameEntry, Score: 77, NameBuffer: "ZO"}, []string{"NEW HIGH SCORE", "Name: ZO__________", "Score: 77"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.snap.Field = testField
			out := renderSnapshot(t, tt.snap)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("screen missing %q", want)
				}
			}
		})
	}
}

func TestDrawWrapsAcrossEdge(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, fixedSize(120, 45), testField)
	// An asteroid straddling the left edge shows up on the right as well.
	r.compose(loop.Snapshot{Mode: loop.ModePlaying, Field: testField, Entities: []object.Pose{
		{Kind: object.KindAsteroid, X: 10, Y: 450, Radius: 38, Scale: 1},
	}})
	for y := range 90 {
		for x := 112; x < 120; x++ {
			if r.canvas.Pixel(x, y) {
				return
			}
		}
	}
	t.Error("wrapped copy not drawn on the right edge")
}

func TestEnteringPoseNotWrapped(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, fixedSize(120, 45), testField)
	r.compose(loop.Snapshot{Mode: loop.ModePlaying, Field: testField, Entities: []object.Pose{
		{Kind: object.KindAsteroid, X: 10, Y: 450, Radius: 38, Scale: 1, Entering: true},
	}})
	for y := range 90 {
		for x := 100; x < 119; x++ {
			if r.canvas.Pixel(x, y) {
				t.Fatalf("entering asteroid drawn on the far edge at (%d,%d)", x, y)
			}
		}
	}
}
