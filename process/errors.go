package process

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sac/dsp/filter/design"
	"github.com/cwbudde/algo-sac/dsp/interp"
	"github.com/cwbudde/algo-sac/sac"
)

// collaboratorErr maps the sentinels of the default filter designer and
// spline fitter onto sac.ErrValidation. Other errors pass through.
func collaboratorErr(err error) error {
	if err == nil || errors.Is(err, sac.ErrValidation) {
		return err
	}
	if errors.Is(err, design.ErrInvalidSpec) ||
		errors.Is(err, design.ErrUnimplementedPrototype) ||
		errors.Is(err, interp.ErrInvalidFit) {
		return fmt.Errorf("%w: %w", sac.ErrValidation, err)
	}
	return err
}
