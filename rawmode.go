package termbox

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// rawModeState stores the original termios attributes for restoration by
// exitRawMode, plus the file descriptor raw mode was applied to.
type rawModeState struct {
	fd      int
	termios unix.Termios
}

// ttyFile reports whether in is backed by a real *os.File with a file
// descriptor (true TTYs and os.Stdin qualify; in-memory test streams do
// not), returning that file if so.
func ttyFile(in io.Reader) (*os.File, bool) {
	f, ok := in.(*os.File)
	return f, ok
}

// enterRawMode captures f's current termios attributes and switches it
// to raw mode: no input processing, no output post-processing, no echo,
// no canonical line mode, no signal generation from keys, 8-bit
// characters, VMIN=0 VTIME=0 for non-blocking reads.
func enterRawMode(f *os.File) (*rawModeState, error) {
	fd := int(f.Fd())

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, errors.Wrap(err, "get termios")
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, errors.Wrap(err, "set raw termios")
	}

	return &rawModeState{fd: fd, termios: *orig}, nil
}

// exitRawMode restores the termios attributes captured by enterRawMode.
func exitRawMode(st *rawModeState) error {
	if st == nil {
		return nil
	}
	return errors.Wrap(unix.IoctlSetTermios(st.fd, unix.TCSETS, &st.termios), "restore termios")
}

// queryTermSize reads the current window size via TIOCGWINSZ, falling
// back to 80x24 when the input stream isn't a real TTY.
func (s *session) queryTermSize() (int, int) {
	f, ok := ttyFile(s.in)
	if !ok {
		return 80, 24
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// readLoop reads up to 32 bytes at a time from s.in (spec.md's §4.7
// bound) and forwards each read to s.inputBytes, including zero-length
// reads that a resize signal can cause by interrupting the blocking read.
// Once Read returns any error it sends that read's bytes (or nil), then
// closes s.inputBytes and exits.
func (s *session) readLoop() {
	buf := make([]byte, 32)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			s.inputBytes <- data
		} else {
			s.inputBytes <- nil
		}
		if err != nil {
			close(s.inputBytes)
			return
		}
	}
}
