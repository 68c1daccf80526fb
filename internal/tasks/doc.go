// Package tasks implements the persistent task list.
//
// # Storage Model
//
// A Store owns an ordered slice of Task records loaded once from a backing
// file. Every successful mutation rewrites the whole file:
//
//   - Create appends a task with id len+1 and the current local time.
//   - MarkDone sets done on the task with the given id.
//   - Remove drops the task and re-numbers the rest to 1..N in order.
//   - RemoveAll empties the list.
//
// Ids are positions, not stable identifiers. Removing task 2 turns the old
// task 3 into task 2.
//
// # Load Fallback
//
// A missing file, an empty file, or content that does not decode as a task
// list all start the store empty. The decode error is kept and exposed by
// LoadErr so callers and tests can tell the two cases apart.
//
// # File Format
//
// The default format is an indented JSON array:
//
//	[
//	    {
//	        "id": 1,
//	        "description": "Buy milk",
//	        "done": false,
//	        "createdAt": "2025-01-25 10:00:00"
//	    }
//	]
//
// YAML (top-level sequence) and TOML ([[tasks]] tables) are also supported;
// see CodecFor and FormatFromPath.
//
// # Usage
//
//	store := tasks.New("tasks.json")
//	ok, err := store.Create("Buy milk")
//	fmt.Println(store.Render())
package tasks
