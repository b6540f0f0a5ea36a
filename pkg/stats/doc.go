/*
Package stats computes the descriptive statistics printed after each round.

Four independent aggregators (time, station, duration, user) read a domain.RecordSet
and produce a Result. A Result either carries labeled lines or the fallback outcome,
rendered as the single line "Nothing found!". Aggregators never mutate the set and
can run in any order.

Ties in a mode are broken by taking the smallest value.
*/
package stats
