// Package form validates task fields entered by a user before they reach the
// task store.
package form

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task_input.schema.json
var schemaSource string

const schemaURL = "task_input.schema.json"

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid task input")

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, schemaSource)
})

// Field messages shown to users instead of the raw schema messages.
var fieldMessages = map[string]string{
	"title":    "must not be empty",
	"priority": "must be one of low, medium, high",
}

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Input holds task fields as typed by a user.
type Input struct {
	Title       string
	Description string
	// Priority is a priority name; empty selects the default.
	Priority  string
	Completed *bool
}

// FromTaskDTO pre-fills an Input with the current fields of a task.
func FromTaskDTO(t queries.TaskDTO) Input {
	completed := t.Completed
	return Input{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   &completed,
	}
}

// Validate checks the input. Surrounding whitespace in the title does not
// count towards its length.
func (in Input) Validate() error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile task schema: %w", err)
	}

	if err := schema.Validate(in.document()); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return firstFieldError(ve)
		}
		return err
	}
	return nil
}

// ToData validates the input and converts it into task data. An empty
// priority becomes defaultPriority.
func (in Input) ToData(defaultPriority value_objects.Priority) (task.Data, error) {
	if err := in.Validate(); err != nil {
		return task.Data{}, err
	}

	priority := defaultPriority
	if !priority.IsValid() {
		priority = value_objects.DefaultPriority
	}
	if p := strings.TrimSpace(in.Priority); p != "" {
		parsed, err := value_objects.ParsePriority(p)
		if err != nil {
			return task.Data{}, &ValidationError{Field: "priority", Message: fieldMessages["priority"]}
		}
		priority = parsed
	}

	return task.Data{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		Completed:   in.Completed,
	}, nil
}

func (in Input) document() map[string]any {
	doc := map[string]any{
		"title":       strings.TrimSpace(in.Title),
		"description": in.Description,
	}
	if p := strings.ToLower(strings.TrimSpace(in.Priority)); p != "" {
		doc["priority"] = p
	}
	if in.Completed != nil {
		doc["completed"] = *in.Completed
	}
	return doc
}

func firstFieldError(root *jsonschema.ValidationError) *ValidationError {
	var leaves []*jsonschema.ValidationError
	collectLeaves(root, &leaves)

	errs := make([]*ValidationError, 0, len(leaves))
	for _, leaf := range leaves {
		field := strings.TrimPrefix(leaf.InstanceLocation, "/")
		message := leaf.Message
		if friendly, ok := fieldMessages[field]; ok {
			message = friendly
		}
		errs = append(errs, &ValidationError{Field: field, Message: message})
	}
	if len(errs) == 0 {
		return &ValidationError{Message: root.Message}
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return fieldOrder(errs[i].Field) < fieldOrder(errs[j].Field)
	})
	return errs[0]
}

func collectLeaves(err *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*out = append(*out, err)
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(cause, out)
	}
}

func fieldOrder(field string) int {
	switch field {
	case "title":
		return 0
	case "description":
		return 1
	case "priority":
		return 2
	default:
		return 3
	}
}
