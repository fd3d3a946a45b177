//go:build !cgo

package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

func RunWindow(_ WindowConfig, _ zerolog.Logger, _ NewApp) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
