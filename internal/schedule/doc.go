// Package schedule manages an ordered collection of tasks, an append-only
// history of the operations applied to it, and whole-file persistence.
//
// The schedule file is a JSON array of task records:
//
//	[
//	  {
//	    "id": "5f0c9a5e-3b1e-4c55-9d59-8c8e2f1f7a10",
//	    "title": "Buy groceries",
//	    "description": "Milk, Bread, Eggs",
//	    "due_date": "2024-05-24",
//	    "status": "Pending",
//	    "priority": "Medium",
//	    "notes": "",
//	    "duration": 0,
//	    "recurrence": null,
//	    "reminder_date": "2024-05-23"
//	  }
//	]
//
// title, description and due_date are required. id and reminder_date are
// optional; every other key falls back to its default when absent.
//
// # Lookups
//
// Most operations address a task by title. Titles are not unique: the first
// task in collection order wins. Operations on a title that matches nothing
// are silent no-ops; mutators report whether they found a task.
//
// # History
//
// Every add, remove, update, completion, and load appends an entry to the
// history log. Entries hold snapshots, so later edits to a task do not rewrite
// earlier entries. Clearing completed tasks and setting reminders are not
// recorded. History is never persisted.
//
// # Validation
//
// When validation is enabled (the default), LoadFromFile checks the file
// against an embedded JSON Schema (draft 2020-12) before decoding it, so that
// errors point at the offending record, e.g. "[2].due_date".
package schedule
