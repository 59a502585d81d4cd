// Package config loads env-tagged configuration structs from environment
// variables, reading a .env file first when one exists.
//
// Each translatekit package that touches infrastructure declares its own
// Config struct (redissource.Config, pgsource.Config, translate.Config);
// this package only provides the generic loading step:
//
//	var cfg pgsource.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	pool, err := pgsource.Connect(ctx, cfg)
package config
