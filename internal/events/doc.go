// Package events carries finished readings to collaborators that live
// outside the core, such as a reading journal or an audit log.
//
// The reading service publishes an Event of type TypeReadingCast after every
// successful cast. Handlers subscribe per event type; the core never knows
// who stores or forwards a reading.
package events
