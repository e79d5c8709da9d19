package game

import (
	"fmt"
	"math"

	"github.com/luxa-club/luxa/internal/draw"
)

// DrawUI writes the text overlay for the current snapshot: HUD while
// running, and centered screens for the countdown, upgrade and game-over
// pauses. Must be called after the canvas render so text sits on top.
func DrawUI(snap *Snapshot, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch snap.Phase {
	case PhaseCountdown:
		drawCountdown(snap, cw, centerX, centerY)
	case PhaseRunning:
		drawHUD(snap, cw, termWidth)
	case PhaseUpgrade:
		drawHUD(snap, cw, termWidth)
		drawUpgradeMenu(snap, cw, centerX, centerY)
	case PhaseGameOver:
		drawGameOver(snap, cw, centerX, centerY)
	}
}

func drawCountdown(snap *Snapshot, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "L U X A   C L U B"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	n := int(math.Ceil(snap.Countdown))
	if n < 1 {
		n = 1
	}
	count := fmt.Sprintf("%d", n)
	cw.WriteAt(centerX, centerY+1, count)

	controls := "WASD/Arrows to move, SPACE to shoot, X to roll, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

func drawHUD(snap *Snapshot, cw *draw.ChunkWriter, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", snap.Score))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	cw.WriteAt(termWidth-len(lives)-1, 1, lives)

	if snap.Threshold > 0 {
		progress := fmt.Sprintf("Next upgrade: %d/%d", snap.Defeated, snap.Threshold)
		cw.WriteAt(termWidth/2-len(progress)/2, 1, progress)
	}
	if snap.Distance > 0 {
		dist := fmt.Sprintf("Distance: %d", int(snap.Distance))
		cw.WriteAt(2, 2, dist)
	}
	if !snap.RollReady {
		cw.WriteAt(2, 3, "Roll: cooling down")
	}
}

func drawUpgradeMenu(snap *Snapshot, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "CHOOSE AN UPGRADE"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	for i, name := range snap.Choices {
		line := fmt.Sprintf("%d) %s", i+1, name)
		cw.WriteAt(centerX-len(line)/2, centerY+i, line)
	}
}

func drawGameOver(snap *Snapshot, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	score := fmt.Sprintf("Final score: %d", snap.Score)
	cw.WriteAt(centerX-len(score)/2, centerY, score)

	prompt := "Press ENTER to restart, Q to quit"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
