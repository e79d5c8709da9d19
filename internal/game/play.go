package game

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/draw"
	"github.com/luxa-club/luxa/internal/input"
)

// PlayOptions configures a terminal play session.
type PlayOptions struct {
	Tuning config.Tuning

	// TermSize reports the terminal dimensions; defaults to stdout's size.
	TermSize draw.TermSizeFunc

	// OnGameOver is called once per run with the final score, at the moment
	// the simulation enters game over.
	OnGameOver func(score int)

	// Seed fixes the random stream; 0 means time-based.
	Seed int64
}

// Play runs the full terminal game loop (input, update, draw) until the
// player quits, the reader closes, or the context is cancelled. All timers
// die with the session.
func Play(ctx context.Context, r *bufio.Reader, w io.Writer, opts PlayOptions) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	st := New(opts.Tuning, seed)
	defer st.Close()

	tracker := input.NewTracker()
	input.StartStream(r, tracker)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	renderW, renderH, offCol, offRow := FitCanvas(termWidth, termHeight, opts.Tuning.Width, opts.Tuning.Height)
	canvas := draw.NewScaledCanvas(renderW, renderH, opts.Tuning.Width, opts.Tuning.Height)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	lastTime := time.Now()
	submitted := false

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := tracker.Snapshot(frameStart)
		if in.Quit {
			draw.ClearScreen(w)
			return nil
		}

		// Track terminal resizes and re-center.
		if tw, th, sizeErr := opts.TermSize(); sizeErr == nil && (tw != termWidth || th != termHeight) {
			termWidth, termHeight = tw, th
			renderW, renderH, offCol, offRow = FitCanvas(termWidth, termHeight, opts.Tuning.Width, opts.Tuning.Height)
			canvas.Resize(renderW, renderH)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
			draw.ClearScreen(w)
		}

		// ===== UPDATE PHASE =====
		wasOver := st.Phase == PhaseGameOver
		if err := st.Step(delta, in); err != nil {
			return err
		}
		if st.Phase == PhaseGameOver && !wasOver && !submitted {
			submitted = true
			if opts.OnGameOver != nil {
				opts.OnGameOver(st.Score)
			}
		}
		if st.Phase != PhaseGameOver {
			submitted = false
		}

		// ===== DRAW PHASE =====
		snap := st.Snapshot()
		draw.ClearScreen(cw)
		Render(snap, canvas)
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		DrawUI(snap, cw, canvas)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}
}
