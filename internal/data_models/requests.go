package dto

type CreateRequestInput struct {
	ClientID   string `json:"client_id"`
	TaskID     string `json:"task_id"`
	LocationID string `json:"location_id"`
	TimeSlotID string `json:"time_slot_id"`
	Address    string `json:"address"`
}

// WorkerActionInput identifies the acting worker on start/complete calls.
// Identity is supplied per request; the core keeps no session state.
type WorkerActionInput struct {
	WorkerID string `json:"worker_id"`
}

type RateWorkerInput struct {
	Value    int    `json:"value"`
	Feedback string `json:"feedback"`
}

type RateClientInput struct {
	WorkerID string `json:"worker_id"`
	Value    int    `json:"value"`
	Feedback string `json:"feedback"`
}

type AvailabilityTupleInput struct {
	SpecialtyID string `json:"specialty_id"`
	LocationID  string `json:"location_id"`
	TimeSlotID  string `json:"time_slot_id"`
}

type ReplaceAvailabilityInput struct {
	Tuples []AvailabilityTupleInput `json:"tuples"`
}
