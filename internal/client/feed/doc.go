// Package feed drives infinite-scroll consumption of the paged list
// endpoints (workouts, posts).
//
// A Fetcher accumulates pages in server order. Page 0 replaces the list,
// later pages append to it, and HasMore turns false once a page comes back
// shorter than the page size. Only one request runs at a time per Fetcher,
// and Remount discards whatever a previous mount still had in flight.
//
// Failures keep the accumulated items and record a user-visible message;
// a later successful fetch clears it.
package feed
