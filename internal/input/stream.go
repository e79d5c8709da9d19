package input

import "bufio"

// StartStream spawns a goroutine that reads terminal bytes from r and feeds
// key presses into the tracker. The goroutine exits when the reader fails
// (connection closed). Escape sequences for arrow keys are decoded; anything
// unrecognized is dropped.
func StartStream(r *bufio.Reader, t *Tracker) {
	go func() {
		var esc [2]byte
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			if b != '\x1b' {
				applyByte(t, b)
				continue
			}

			// CSI sequence: ESC [ <code>. A lone ESC is the escape key.
			esc[0], err = r.ReadByte()
			if err != nil {
				t.Press(KeyEscape)
				return
			}
			if esc[0] != '[' {
				t.Press(KeyEscape)
				applyByte(t, esc[0])
				continue
			}
			esc[1], err = r.ReadByte()
			if err != nil {
				return
			}
			switch esc[1] {
			case 'A':
				t.Press(KeyUp)
			case 'B':
				t.Press(KeyDown)
			case 'C':
				t.Press(KeyRight)
			case 'D':
				t.Press(KeyLeft)
			}
		}
	}()
}

// applyByte maps a single byte to a key press.
func applyByte(t *Tracker, b byte) {
	switch b {
	case 'w', 'W', 'k', 'K':
		t.Press(KeyUp)
	case 's', 'S', 'j', 'J':
		t.Press(KeyDown)
	case 'a', 'A', 'h', 'H':
		t.Press(KeyLeft)
	case 'd', 'D', 'l', 'L':
		t.Press(KeyRight)
	case ' ':
		t.Press(KeyFire)
	case 'x', 'X':
		t.Press(KeyRoll)
	case '\n', '\r':
		t.Press(KeyEnter)
	case 'q', 'Q':
		t.Press(KeyQuit)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		t.PressChoice(int(b - '0'))
	}
}
