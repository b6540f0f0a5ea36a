/*
Package dataset loads city trip datasets into domain record sets.

A Table maps each supported city to its backing CSV file. It is built from defaults,
optionally overridden by a YAML (or JSON) configuration file, and resolved once at
startup so that a missing file is reported before the first prompt.

The Loader reads a city's CSV, normalizes column identifiers ("Start Time" becomes
"starttime") and decodes every row into a domain.Trip.
*/
package dataset
