//go:build !ebiten

package app

import (
	"errors"

	"github.com/gfxprim/automata/internal/config"
	"github.com/gfxprim/automata/internal/sims/elementary"
)

// ErrHeadless is returned by Run when the binary was built without the
// ebiten tag.
var ErrHeadless = errors.New("the viewer requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/ca")

// Run always reports that the GUI build tag is missing.
func Run(*elementary.Simulator, config.Options) error {
	return ErrHeadless
}
