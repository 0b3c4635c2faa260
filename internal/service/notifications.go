package service

import (
	"fmt"

	"github.com/enigmora/lnxdrive-shell/internal/app"
)

// NotificationText returns the title and body reported for err.
func NotificationText(err *ActionError) (title, body string) {
	switch err.Kind {
	case ErrorInsufficientDiskSpace:
		return app.TitleInsufficientDiskSpace, app.MsgInsufficientDiskSpace
	case ErrorFileInUse:
		return app.TitleFileInUse, app.MsgFileInUse
	case ErrorInvalidPath:
		return app.TitleInvalidPath, app.MsgInvalidPath
	case ErrorNotRunning:
		return app.TitleNotRunning, app.MsgNotRunning
	case ErrorNotAuthenticated:
		return app.TitleNotAuthenticated, app.MsgNotAuthenticated
	case ErrorNetwork:
		return app.TitleNetworkError, app.MsgNetworkError
	case ErrorTimeout:
		return app.TitleTimeout, app.MsgTimeout
	case ErrorInvalidConfig:
		return app.TitleInvalidConfig, app.MsgInvalidConfig
	}

	msg := err.Message
	if msg == "" {
		msg = err.Kind.String()
	}
	return app.TitleOperationFailed, fmt.Sprintf(app.MsgOperationFailedFormat, err.Action.Title(), msg)
}
