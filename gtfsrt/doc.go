// Package gtfsrt reads upcoming arrivals from a GTFS-Realtime TripUpdates feed.
//
// VisitSource fetches the feed on every call, collects the stop time updates
// for one stop and returns them soonest first. It is an alternative to the
// 511.org StopMonitoring endpoint for agencies that publish GTFS-RT.
package gtfsrt
