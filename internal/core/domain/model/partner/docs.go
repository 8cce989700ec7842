// Package partner holds the reference data the order workflow reads about
// partners: their contact channel and their sales history. It also defines
// the Notification event emitted to partners on order outcomes.
package partner
