/*
Package operation implements the recursive copy of platform entities.

	+-------------+
	|    Walk     |
	| (entities)  |
	+------+------+
	       |  mapping old -> new
	+------+------+
	|    Wikis    |
	| (replicate) |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	|  (links/ids)|
	+-------------+

🎯 Purpose:
- Copies a project, folder, file, link or table into an existing container
- Builds the mapping of source ids to destination ids
- Replicates wikis of copied entities once the whole tree exists

🔄 Flow:
1. Validate options before anything is created
2. Check destination names for collisions
3. Walk the source tree depth first; containers are mapped before their children
4. Copy wikis and rewrite references with the full mapping

⚡ Failure model:
- Name collisions, bad options and unsupported entity types stop the walk
- Links whose target is gone are reported as skipped and the walk continues
- Nothing is rolled back; the mapping holds everything created so far

🔍 Example:

	op, err := operation.New(operation.Config{Client: client, Reporter: logger})
	if err != nil {
		return err
	}
	m, err := op.Copy(ctx, "syn123", "syn456", operation.DefaultOptions())
*/
package operation
