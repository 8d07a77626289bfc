package gomap

type binderConfig struct {
	strict bool
}

type BinderOption func(*binderConfig)

// Strict makes properties and children which nothing handles an error.
func Strict() BinderOption {
	return func(c *binderConfig) { c.strict = true }
}
