package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lists keeps last good list responses of every user, they are served when backend is unreachable.
// List names are grouped by the part before "?", e.g. every filtered customers list belongs to
// "customers" group and is forgotten together with it.
type Lists struct {
	store Store
	ttl   time.Duration
}

// NewLists builds Lists, entries expire after ttl
func NewLists(store Store, ttl time.Duration) *Lists {
	return &Lists{store: store, ttl: ttl}
}

// Remember stores v as the last good response of list name for owner
func (l *Lists) Remember(ctx context.Context, owner, name string, v any) error {
	key, err := l.key(ctx, owner, name)
	if err != nil {
		return err
	}
	return Put(ctx, l.store, key, v, l.ttl)
}

// Recall decodes the last good response of list name for owner into v
func (l *Lists) Recall(ctx context.Context, owner, name string, v any) (bool, error) {
	key, err := l.key(ctx, owner, name)
	if err != nil {
		return false, err
	}
	return Fetch(ctx, l.store, key, v)
}

// Forget drops every remembered response of group for owner. Version of the group lives
// as long as the lists remembered under the previous one, so they can't come back.
func (l *Lists) Forget(ctx context.Context, owner, group string) error {
	return l.store.Set(ctx, l.versionKey(owner, group), []byte(uuid.NewString()), l.ttl)
}

func (l *Lists) key(ctx context.Context, owner, name string) (string, error) {
	group := name
	if i := strings.IndexByte(name, '?'); i >= 0 {
		group = name[:i]
	}

	version, err := l.store.Get(ctx, l.versionKey(owner, group))
	if err != nil && !errors.Is(err, ErrMiss) {
		return "", err
	}
	return "lists:" + owner + ":" + string(version) + ":" + name, nil
}

func (l *Lists) versionKey(owner, group string) string {
	return "lists-version:" + owner + ":" + group
}
