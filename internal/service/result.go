package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crmconsole/internal/cache"
	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/session"
)

// Source tells where data shown by a view came from
type Source string

const (
	SourceLive        Source = "live"
	SourceCached      Source = "cached"
	SourcePlaceholder Source = "placeholder"
	SourceUnavailable Source = "unavailable"
)

const (
	cachedNotice      = "Couldn't reach the server, showing the last loaded data."
	placeholderNotice = "Couldn't reach the server, showing sample data. Actions are disabled."
	unavailableNotice = "Couldn't reach the server. Please try again later."
)

// Result is data of a view together with its origin.
// Notice is non-empty whenever data is not live and must be shown as non-blocking banner.
type Result[T any] struct {
	Data   T
	Source Source
	Notice string
}

// Live reports whether data was just received from backend
func (r Result[T]) Live() bool {
	return r.Source == SourceLive
}

// Actionable reports whether row actions may be offered for data
func (r Result[T]) Actionable() bool {
	return r.Source == SourceLive || r.Source == SourceCached
}

// Offline configures what views show when backend is unreachable
type Offline struct {
	// Lists keeps last good responses, nil disables it
	Lists *cache.Lists
	// Demo enables fixed sample data when nothing was remembered
	Demo bool
}

// forget drops remembered responses of groups after user changed them through console
func (o Offline) forget(ctx context.Context, groups ...string) {
	if o.Lists == nil {
		return
	}
	for _, g := range groups {
		if err := o.Lists.Forget(ctx, owner(ctx), g); err != nil {
			logrus.WithField("list", g).Warnf("failed to forget remembered response - %v", err)
		}
	}
}

func owner(ctx context.Context) string {
	if s := session.FromContext(ctx); s != nil {
		return s.Owner()
	}
	return "anonymous"
}

// fetch loads data of a view applying offline policy on network failures:
// last good response remembered for user, then sample data, then empty unavailable result.
// Any other error, authentication failure included, is returned as is.
func fetch[T any](ctx context.Context, o Offline, name string, load func(context.Context) (T, error), sample func() T) (Result[T], error) {
	data, err := load(ctx)
	if err == nil {
		if o.Lists != nil {
			if err := o.Lists.Remember(ctx, owner(ctx), name, data); err != nil {
				logrus.WithField("list", name).Warnf("failed to remember last good response - %v", err)
			}
		}
		return Result[T]{Data: data, Source: SourceLive}, nil
	}

	var netErr *apperrors.NetworkErr
	if !errors.As(err, &netErr) {
		return Result[T]{}, err
	}
	logrus.WithField("list", name).Warnf("backend is unreachable, applying offline fallback - %v", err)

	if o.Lists != nil {
		var remembered T
		ok, cErr := o.Lists.Recall(ctx, owner(ctx), name, &remembered)
		if cErr != nil {
			logrus.WithField("list", name).Warnf("failed to recall last good response - %v", cErr)
		}
		if ok {
			return Result[T]{Data: remembered, Source: SourceCached, Notice: cachedNotice}, nil
		}
	}

	if o.Demo && sample != nil {
		return Result[T]{Data: sample(), Source: SourcePlaceholder, Notice: placeholderNotice}, nil
	}

	var empty T
	return Result[T]{Data: empty, Source: SourceUnavailable, Notice: unavailableNotice}, nil
}
