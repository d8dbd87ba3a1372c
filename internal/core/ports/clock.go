package ports

import "time"

// Clock supplies the current time to the application layer. Injecting it
// keeps date arithmetic deterministic in tests; the domain services never
// read the system clock themselves.
type Clock interface {
	Now() time.Time
}
