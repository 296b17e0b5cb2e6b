//go:build unix

package util

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func readMetrics(f *os.File) (Metrics, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Metrics{}, fmt.Errorf("query window size: %w", err)
	}
	if ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return Metrics{}, ErrNoPixelSize
	}
	return Metrics{
		CellWidth:  float64(ws.Xpixel) / float64(ws.Col),
		CellHeight: float64(ws.Ypixel) / float64(ws.Row),
	}, nil
}
