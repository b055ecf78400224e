package worker

import (
	"github.com/spec-kit/bank-crm/internal/service"
)

// StartActionLogWorker subscribes the action log to session and overlay events.
func StartActionLogWorker(actionLog *service.ActionLogService) {
	if actionLog == nil {
		return
	}
	actionLog.RegisterHandlers()
}
