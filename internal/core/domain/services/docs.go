// Package services contains the stateless domain services of the rating
// core: route classification, business-day schedule arithmetic, and the rate
// assembler that turns parsed carrier rates into priced offers. All services
// are pure with respect to their inputs; the current time is always passed in
// by the caller, never read from the system clock.
package services
