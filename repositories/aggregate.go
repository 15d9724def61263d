package repositories

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// groupInOrder groups rows by key and returns the keys in first-seen order.
func groupInOrder[T any, K comparable](rows []T, key func(T) K) ([]K, map[K][]T) {
	keys := lo.Uniq(lo.Map(rows, func(row T, _ int) K { return key(row) }))
	return keys, lo.GroupBy(rows, key)
}

func sumDecimal[T any](rows []T, value func(T) decimal.Decimal) decimal.Decimal {
	return lo.Reduce(rows, func(acc decimal.Decimal, row T, _ int) decimal.Decimal {
		return acc.Add(value(row))
	}, decimal.Zero)
}
