//go:build !unix

package util

import "os"

func readMetrics(*os.File) (Metrics, error) {
	return Metrics{}, ErrNoPixelSize
}
