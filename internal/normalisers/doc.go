// Package normalisers provides implementations of the TextNormaliser
// interface. Each normaliser rewrites license text in one specific way;
// the service layer composes them over parsed acknowledgement records.
package normalisers
