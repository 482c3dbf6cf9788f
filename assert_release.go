//go:build !vectordebug

package vector

const debugAssertions = false

func assertf(bool, string, ...any) {}
