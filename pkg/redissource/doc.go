// Package redissource provides a Redis-backed message catalog source for the
// translate package, plus a connection helper with retry logic.
//
// Catalogs live in hashes keyed "<prefix>:<domain>:<locale>":
//
//	HSET translations:messages:en greet "Hi {name}"
//	HSET translations:messages:es greet "Hola {name}"
//
// # Usage
//
//	client, err := redissource.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	src, err := redissource.New(client)
//	if err != nil {
//		log.Fatal(err)
//	}
//	translator, err := translate.New(src, translate.WithFallbacks("en"))
//
// A missing hash reads as an empty catalog; only command failures surface as
// errors, which the translator propagates to its caller.
package redissource
