package render

import (
	"fmt"
	"strings"

	"github.com/tomz197/logastroids/internal/draw"
	"github.com/tomz197/logastroids/internal/loop"
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/score"
)

var titleArt = []string{
	` _    ___   ___   _   ___ _____ ___  ___ ___ ___  ___ `,
	`| |  / _ \ / __| /_\ / __|_   _| _ \/ _ \_ _|   \/ __|`,
	`| |_| (_) | (_ |/ _ \\__ \ | | |   / (_) | || |) \__ \`,
	`|____\___/ \___/_/ \_\___/ |_| |_|_\\___/___|___/|___/`,
}

var controls = []string{
	"W / Up  . . . . . Thrust",
	"A D / < >  . . .  Rotate",
	"SPACE  . . . . . . Shoot",
	"F / X  . . . . .  Rocket",
	"P  . . . . . . . . Pause",
	"Q  . . . . . . . .  Quit",
}

// powerUpGlyph labels a power-up pickup on screen.
func powerUpGlyph(t object.PowerUpType) string {
	switch t {
	case object.PowerUpHealth:
		return "+"
	case object.PowerUpInvulnerability:
		return "I"
	case object.PowerUpRockets:
		return "R"
	default:
		return "S"
	}
}

// drawLabels writes text that belongs to entities, after the canvas.
func (r *Renderer) drawLabels(snap loop.Snapshot) {
	for _, p := range snap.Entities {
		if p.Kind != object.KindPowerUp {
			continue
		}
		col, row := r.canvas.LogicalToTerminal(p.X, p.Y)
		if r.onScreen(col, row) {
			r.cw.WriteAt(col, row, powerUpGlyph(p.PowerUp))
		}
	}
}

func (r *Renderer) onScreen(col, row int) bool {
	return col >= 1 && col <= r.canvas.TerminalWidth() && row >= 1 && row <= r.canvas.TerminalHeight()
}

func (r *Renderer) drawOverlay(snap loop.Snapshot) {
	width := r.canvas.TerminalWidth()
	cx, cy := width/2, r.canvas.TerminalHeight()/2
	switch snap.Mode {
	case loop.ModeStart:
		r.drawStartScreen(snap, cx, cy)
	case loop.ModePlaying:
		r.drawHUD(snap, width)
	case loop.ModePaused:
		r.drawHUD(snap, width)
		r.cw.WriteCentered(cx, cy-1, draw.Bold("P A U S E D"))
		r.cw.WriteCentered(cx, cy+1, "Press P to resume, Q to quit")
	case loop.ModeGameOver:
		r.drawGameOver(snap, cx, cy)
	case loop.ModeNameEntry:
		r.drawNameEntry(snap, cx, cy)
	}
}

// HealthBar renders hit points as filled and empty hearts.
func HealthBar(health, maxHealth int) string {
	health = min(max(health, 0), maxHealth)
	return strings.Repeat("♥", health) + strings.Repeat("♡", maxHealth-health)
}

// BossBar renders boss health as a fixed-width gauge.
func BossBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := (max(health, 0)*width + maxHealth - 1) / maxHealth
	filled = min(filled, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (r *Renderer) drawHUD(snap loop.Snapshot, width int) {
	cw := r.cw
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d Level: %d", snap.Score, snap.Level))

	status := fmt.Sprintf("Rockets: %-3d %s", snap.Rockets, HealthBar(snap.Health, snap.MaxHealth))
	cw.WriteAt(max(width-len([]rune(status)), 1), 1, status)

	if snap.BossMaxHealth > 0 {
		bar := "BOSS " + BossBar(snap.BossHealth, snap.BossMaxHealth, min(40, width/3))
		cw.WriteCentered(width/2, 2, bar)
	}
	if snap.Banner != "" {
		cw.WriteCentered(width/2, 3, draw.Reverse(" "+snap.Banner+" "))
	}
}

func (r *Renderer) drawTitle(art []string, cx, top int) int {
	for i, line := range art {
		r.cw.WriteCentered(cx, top+i, line)
	}
	return top + len(art)
}

func (r *Renderer) drawStartScreen(snap loop.Snapshot, cx, cy int) {
	y := r.drawTitle(titleArt, cx, max(cy-12, 1))
	r.cw.WriteCentered(cx, y+1, "~ Asteroids, levels and a boss, in your terminal ~")

	y += 3
	r.cw.WriteCentered(cx, y, "Controls")
	for i, line := range controls {
		r.cw.WriteCentered(cx, y+1+i, line)
	}
	y += len(controls) + 2
	r.cw.WriteCentered(cx, y, ">>  Press ENTER or P to Start  <<")
	r.drawTable(snap.HighScores, cx, y+2, nil)
}

func (r *Renderer) drawGameOver(snap loop.Snapshot, cx, cy int) {
	y := max(cy-8, 1)
	r.cw.WriteCentered(cx, y, draw.Bold("G A M E   O V E R"))
	r.cw.WriteCentered(cx, y+2, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level))
	r.drawTable(snap.HighScores, cx, y+4, &snap.Score)
	r.cw.WriteCentered(cx, y+6+max(len(snap.HighScores), 1), "Press P or ENTER to play again, Q to quit")
}

func (r *Renderer) drawNameEntry(snap loop.Snapshot, cx, cy int) {
	y := max(cy-4, 1)
	r.cw.WriteCentered(cx, y, draw.Bold("NEW HIGH SCORE"))
	r.cw.WriteCentered(cx, y+2, fmt.Sprintf("Score: %d", snap.Score))
	field := snap.NameBuffer + strings.Repeat("_", score.MaxNameLen-len([]rune(snap.NameBuffer)))
	r.cw.WriteCentered(cx, y+4, "Name: "+field)
	r.cw.WriteCentered(cx, y+6, "ENTER to save, BACKSPACE to edit, ESC to quit")
}

// drawTable lists the high scores, highlighting the row matching mark.
func (r *Renderer) drawTable(t score.Table, cx, top int, mark *int) {
	if len(t) == 0 {
		r.cw.WriteCentered(cx, top, "No high scores yet")
		return
	}
	r.cw.WriteCentered(cx, top, "High Scores")
	marked := false
	for i, e := range t {
		line := fmt.Sprintf("%2d. %-*s %8d", i+1, score.MaxNameLen, e.Name, e.Score)
		if mark != nil && !marked && e.Score == *mark {
			line = draw.Reverse(line)
			marked = true
		}
		r.cw.WriteCentered(cx, top+1+i, line)
	}
}
