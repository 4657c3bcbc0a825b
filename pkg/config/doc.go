/*
Package config loads copy jobs and runs them.

	            +-------------+
	            |   Config    |
	            |    (Job)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Parses job files (client, source, destination and copy options)
- Validates entity ids and option values
- Converts a job into operation.Options
- Runs the job and writes the lock file

🔄 Flow:
1. Load picks a parser by file extension
2. Validate fills defaults (provenance, wiki flags)
3. Options loads the seed mapping from mapping_file
4. Run resolves the client, copies, and writes lock_file

🤝 Interfaces:
- Parser: Format-specific parsing, registered with Register

📝 HCL jobs can read the environment:

	client      = "memory"
	source      = env.SOURCE_PROJECT
	destination = env.DESTINATION_PROJECT

	wiki {
	  entity_sub_page_id = "12"
	}

🔍 Example:

	cfg, err := config.Load(ctx, "syncopy.yaml")
	if err != nil {
		return err
	}

	logger := log.New(os.Stdout, zerolog.InfoLevel)
	start := time.Now()
	m, err := config.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return logger.Summary(ctx, m, time.Since(start))
*/
package config
