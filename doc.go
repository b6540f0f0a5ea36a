/*
Package bikeshare explores historical bike-share trip data for Chicago, New York City
and Washington.

A round loads one city's trips, keeps those matching an optional month and day of
week, and computes four groups of statistics: the most frequent travel times, the most
popular stations and route, trip duration totals, and user demographics.

# Usage

	table, err := dataset.LoadTable("bikeshare.yaml", "./data")
	if err != nil {
		log.Fatal(err)
	}
	if err := table.Resolve(); err != nil {
		log.Fatal(err)
	}

	engine := bikeshare.New(table)
	results, err := engine.Analyze(ctx, domain.FilterSpec{
		City:  domain.Chicago,
		Month: domain.March,
		Day:   domain.DayAll,
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Print(r.Text())
	}

The interactive prompt loop lives in package runner; the command line in cmd/bikeshare.
*/
package bikeshare
