// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the session's commands.

# Command Registration

NewRouter builds the command table for a session:

	r := router.NewRouter(session)
	r.Dispatch(os.Stdout, "add Task Alpha")

# Commands

Items:

	add <name>     - Add an item (max 10)
	remove <id>    - Remove an item, relabel, clear comparisons
	clear          - Clear everything (asks for confirmation)

Grid variant:

	choose <row> <col> <winner> - Record the winner of a pair

Sequential variant:

	start          - Begin comparing pair by pair
	pick <id>      - Choose the winner of the current pair
	current        - Show the current pair
	restart        - Back to item entry

Views:

	pairs          - All pairs and their winners
	matrix         - Comparison grid with Count and Rank rows
	results        - Ranked list
	status         - Item count and progress
	export         - Stored state as JSON
	help           - This list

# Handler Initialization

The router creates handler instances sharing one session:

	itemHandler := handlers.NewItemHandler(s)
	comparisonHandler := handlers.NewComparisonHandler(s)
	resultsHandler := handlers.NewResultsHandler(s)
	wizardHandler := handlers.NewWizardHandler(s)
*/
package router
