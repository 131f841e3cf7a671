package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Flyrell/daytask/internal/task"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SnapshotKey is the backend key holding the serialized task store.
const SnapshotKey = "tasksByDate"

// CorruptKey receives a copy of a snapshot that could not be loaded, so the
// next save does not destroy it.
const CorruptKey = SnapshotKey + ".corrupt"

// ErrCorruptSnapshot is returned by LoadTasks when the stored snapshot cannot
// be parsed. The returned store is empty but usable.
var ErrCorruptSnapshot = errors.New("task snapshot is unreadable")

const snapshotSchemaJSON = `{
	"type": "object",
	"propertyNames": {"pattern": "^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}$"},
	"additionalProperties": {
		"type": "array",
		"items": {
			"type": "object",
			"required": ["text"],
			"properties": {
				"text": {"type": "string", "minLength": 1},
				"done": {"type": "boolean"}
			}
		}
	}
}`

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaJSON)

// LoadTasks reads the task snapshot from b.
// A missing snapshot yields an empty store and no error. An unreadable
// snapshot yields an empty store and an error wrapping ErrCorruptSnapshot;
// any other backend failure is returned wrapped, also with an empty store.
func LoadTasks(b Backend) (*task.Store, error) {
	data, err := b.Get(SnapshotKey)
	if errors.Is(err, ErrNotFound) {
		return task.NewStore(), nil
	}
	if err != nil {
		return task.NewStore(), fmt.Errorf("reading task snapshot: %w", err)
	}

	store, err := decodeSnapshot(data)
	if err != nil {
		// Best effort: keep the unreadable blob around for manual recovery.
		_ = b.Put(CorruptKey, data)
		return task.NewStore(), fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return store, nil
}

func decodeSnapshot(data []byte) (*task.Store, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return nil, err
	}

	store := task.NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, err
	}
	return store, nil
}

// SaveTasks writes the whole store to b as one snapshot.
func SaveTasks(b Backend, store *task.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	if err := b.Put(SnapshotKey, data); err != nil {
		return fmt.Errorf("writing task snapshot: %w", err)
	}
	return nil
}
