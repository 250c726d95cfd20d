package service

import "time"

// Reloj abstracts "now" so date-sensitive services never read the wall clock
// implicitly and tests can pin time.
type Reloj func() time.Time

// RelojSistema is the production clock.
var RelojSistema Reloj = time.Now
