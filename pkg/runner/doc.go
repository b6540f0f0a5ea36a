/*
Package runner implements the interactive session loop of the bikeshare explorer.

It acts as the bridge between the analysis Engine and the person at the console.
A Session asks whether to explore, collects the city, month and day filters
(re-asking on invalid answers), runs one analysis round, prints each aggregator's
report, and offers to restart.

# Key Components

  - Session: the state machine (idle, prompting filters, loading, aggregating,
    prompting restart, terminated).
  - IOHandler: decouples how the session talks to the user.
  - TextHandler: the standard implementation for interactive CLI usage.

# Usage

	s := runner.NewSession(engine,
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := s.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
