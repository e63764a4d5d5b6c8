package steps

import (
	"fmt"
	"io"

	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"github.com/rosjava/android-apps/cli/util"
)

type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints application follow-up message.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if createCtx.SilentMode || printFollowUpMsgStep.Writer == nil {
		return nil
	}

	var followUpText string
	if createCtx.FollowUpMessage != "" {
		followUpText = templateCtx.Engine.RenderText(createCtx.FollowUpMessage,
			templateCtx.Vars)
	} else {
		followUpText = fmt.Sprintf("Application %s is created in %s",
			util.Bold(createCtx.AppName), util.Highlight(templateCtx.AppPath))
	}

	_, err := printFollowUpMsgStep.Writer.Write([]byte(followUpText + "\n"))
	return err
}
