/*
Package domain contains the core models of the bikeshare explorer.

It defines the trip records loaded from a city's dataset, the record sets the filter
engine and aggregators operate on, and the categorical filter values accepted at the
prompts. This package is kept free of I/O and persistence.

# Key Entities

  - Trip: one ride (timestamps, stations, duration, user demographics).
  - RecordSet: the ordered trips of one city, before or after filtering.
  - FilterSpec: the city plus optional month and day-of-week restrictions.
  - LifecycleHooks: callbacks fired around each analysis round.
*/
package domain
