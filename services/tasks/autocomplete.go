package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAutoComplete = "appointments:autocomplete"

// AutoCompletePayload carries the cutoff moment for one sweep: appointments
// that ended before Date/Time and were never cancelled get marked Done.
type AutoCompletePayload struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:MM"
}

func NewAutoCompleteTask(payload AutoCompletePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAutoComplete, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
