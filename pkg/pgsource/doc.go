// Package pgsource provides a PostgreSQL-backed message catalog source for
// the translate package, plus a pgxpool connection helper with retry logic.
//
// Catalogs are rows in a (locale, domain, key, pattern) table; see the
// Source documentation for the expected schema.
//
// # Usage
//
//	pool, err := pgsource.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	src, err := pgsource.New(pool, pgsource.WithTable(cfg.TranslationsTable))
//	if err != nil {
//		log.Fatal(err)
//	}
//	translator, err := translate.New(src, translate.WithFallbacks("en"))
//
// The source accepts any Querier, so it can also read through an open
// transaction.
package pgsource
