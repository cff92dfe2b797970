package services

import "tasks-pro/taskspro/models"

// AccessLevel is the outcome of the single authorization check applied to
// every task read or mutation. It is resolved once per request and carried
// through the operation instead of re-checking the role at each step.
type AccessLevel int

const (
	AccessDenied AccessLevel = iota
	AccessOwner
	AccessAdmin
)

// ResolveTaskAccess computes the requester's access level for a task:
// administrators get AccessAdmin over every task, the task's owner gets
// AccessOwner, everyone else is denied.
func ResolveTaskAccess(task models.Task, requester models.User) AccessLevel {
	if requester.IsAdmin() {
		return AccessAdmin
	}
	if task.OwnerID == requester.ID {
		return AccessOwner
	}
	return AccessDenied
}

// Granted reports whether the level permits the operation.
func (l AccessLevel) Granted() bool {
	return l != AccessDenied
}
