// Package bvgapi handles fetching departure and arrival boards from a
// v6.bvg.transport.rest compatible REST API.
//
// The main type is Client, which issues one GET per (station, endpoint)
// pair and returns the parsed JSON body.
package bvgapi
