package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	sizeLine      = "File size is %s bytes\n"
	confirmPrompt = "Are you sure? (Y/N) "
)

// Confirm shows size, asks for confirmation and reports whether the answer
// was y or Y. Only one byte of input is consumed.
func Confirm(in io.Reader, out io.Writer, size int64) (bool, error) {
	fmt.Fprintf(out, sizeLine, FormatSize(size))
	fmt.Fprint(out, confirmPrompt)

	answer, err := readAnswer(in, out)
	if err != nil {
		return false, ioError(ErrConfirmRead, err)
	}
	return answer == 'y' || answer == 'Y', nil
}

func readAnswer(in io.Reader, out io.Writer) (byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		key, err := readKey(f)
		if !errors.Is(err, errNoRawMode) {
			fmt.Fprintln(out)
			return key, err
		}
	}

	var buf [1]byte
	if _, err := io.ReadFull(in, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

var (
	errNoRawMode = errors.New("terminal does not support raw mode")
	// ErrInterrupted reports Ctrl-C pressed at the prompt.
	ErrInterrupted = errors.New("interrupted")
)

const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
)

// rawKey turns control keys read in raw mode back into the conditions a
// canonical terminal would have produced.
func rawKey(b byte) (byte, error) {
	switch b {
	case keyEOF:
		return 0, io.EOF
	case keyInterrupt:
		return 0, ErrInterrupted
	}
	return b, nil
}

// readKey reads a single keypress without waiting for Enter.
func readKey(f *os.File) (byte, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, errNoRawMode
	}
	defer func() { _ = term.Restore(fd, state) }()

	var buf [1]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return rawKey(buf[0])
}
