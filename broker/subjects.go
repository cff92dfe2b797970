package broker

// EventType is a NATS subject in <resource>.<action> form.
type EventType string

const (
	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"

	UserCreated EventType = "user.created"
)

// TaskSubjects matches every task event.
const TaskSubjects = "task.*"
