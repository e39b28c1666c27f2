package apierrors

const (
	MsgInvalidTaskID       = "invalidTaskID"
	MsgTaskNotFound        = "taskNotFound"
	MsgTaskNotDeleted      = "taskNotDeleted"
	MsgFailListTasks       = "failListTasks"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgInternalServerError = "internalServerError"
	MsgPageNotFound        = "pageNotFound"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
)

// Where a field error was found.
const (
	LocationBody   = "body"
	LocationParams = "params"
)
