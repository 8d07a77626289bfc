package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/qmlon/gomap"
	"github.com/signadot/qmlon/ir"
	"github.com/signadot/qmlon/parse"
)

// serverConfig is read from the document named by QMLON_LSP_CONFIG:
//
//	Server {
//	    logLevel: "debug"
//	    schemas: ["sprite.schema.qmlon"]
//	    Schema { path: "shapes.schema.qmlon" }
//	}
//
// Relative schema paths are relative to the config file.
type serverConfig struct {
	LogLevel string
	Gops     bool
	Schemas  []string
}

type schemaRef struct {
	Path string
}

func newConfigBinder() *gomap.Binder[serverConfig] {
	refs := gomap.NewBinder[schemaRef](gomap.Strict())
	refs.Prop("path", gomap.String(func(r *schemaRef) *string { return &r.Path }))

	b := gomap.NewBinder[serverConfig](gomap.Strict())
	b.Prop("logLevel", gomap.String(func(c *serverConfig) *string { return &c.LogLevel }))
	b.Prop("gops", gomap.Bool(func(c *serverConfig) *bool { return &c.Gops }))
	b.Prop("schemas", gomap.List((*ir.Value).AsString, func(c *serverConfig) *[]string { return &c.Schemas }))
	b.Child("Schema", gomap.AddChild(refs, func(c *serverConfig, r schemaRef) {
		c.Schemas = append(c.Schemas, r.Path)
	}))
	return b
}

func loadConfig(path string) (*serverConfig, error) {
	v, err := parse.ParseFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &serverConfig{}
	if err := newConfigBinder().BindValue(cfg, v); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, p := range cfg.Schemas {
		if !filepath.IsAbs(p) {
			cfg.Schemas[i] = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}

// configFromEnv merges QMLON_LSP_SCHEMA, QMLON_LSP_GOPS and the optional
// QMLON_LSP_CONFIG file.
func configFromEnv() (*serverConfig, error) {
	cfg := &serverConfig{}
	if p := os.Getenv("QMLON_LSP_CONFIG"); p != "" {
		fileCfg, err := loadConfig(p)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}
	cfg.Schemas = append(filepath.SplitList(os.Getenv("QMLON_LSP_SCHEMA")), cfg.Schemas...)
	if os.Getenv("QMLON_LSP_GOPS") != "" {
		cfg.Gops = true
	}
	if cfg.LogLevel != "" {
		if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return cfg, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
	}
	return cfg, nil
}
