// Package steps provides a set of handlers for create command chain of responsibility.
package steps

import (
	"errors"

	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
)

// ErrDestinationExists is returned if the application directory is already present.
var ErrDestinationExists = errors.New("destination already exists")

// Step is an interface for single step in create chain.
type Step interface {
	Run(ctx *create_ctx.CreateCtx, appTemplateCtx *app_template.TemplateCtx) error
}
