package logging

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func String[K, V ~string](k K, v V) Field {
	return zap.String(string(k), string(v))
}

func Int[K ~string, T constraints.Signed](k K, v T) Field {
	return zap.Int64(string(k), int64(v))
}

func Bool[K ~string](k K, v bool) Field {
	return zap.Bool(string(k), v)
}

func Any[K ~string](k K, v any) Field {
	return zap.Any(string(k), v)
}

func Error(err error) Field {
	return zap.Error(err)
}
