package constants

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestAssigned   RequestStatus = "assigned"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
)

type AssignmentStatus string

const (
	AssignmentScheduled  AssignmentStatus = "scheduled"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

// ActiveAssignmentStatuses are the statuses that block a worker's time slot.
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentScheduled,
	AssignmentInProgress,
}

type RaterRole string

const (
	RaterClient RaterRole = "client"
	RaterWorker RaterRole = "worker"
)
