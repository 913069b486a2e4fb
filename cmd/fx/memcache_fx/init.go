package memcache_fx

import (
	"go.uber.org/fx"
	mem "wellspring/pkg/memcache"
)

var Module = fx.Provide(
	provideSubmissionGuard)

func provideSubmissionGuard() mem.SubmissionGuard {
	return mem.NewInflightSubmissions()
}
