// Package rutgen issues random RUTs that are unique within a session.
//
// rut.Random draws independently and may repeat. A Generator draws from the
// same uniform source but reserves every candidate in a Store first, so a
// value is handed out at most once until the store is reset. Collisions are
// retried up to a bounded number of attempts before ErrExhausted is returned,
// which is the signal that the configured range is (nearly) used up.
//
//	gen := rutgen.New(rutgen.NewMemoryStore(),
//	    rutgen.WithRange(10_000_000, 10_000_999),
//	    rutgen.WithLogger(log),
//	)
//	r, err := gen.Next(ctx)
//
// MemoryStore keeps reservations in process. RedisStore keeps them in a Redis
// set, which lets several processes share one session:
//
//	store := rutgen.NewRedisStore(client, rutgen.WithKey("rut:issued"), rutgen.WithTTL(24*time.Hour))
//
// An optional check callback lets the caller veto candidates, for example
// values already present in a database. Vetoed candidates are released from
// the store and another is drawn.
package rutgen
