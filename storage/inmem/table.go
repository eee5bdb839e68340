package inmemdb

import (
	"context"
	"sort"
	"sync"

	"github.com/trezcool/educonnect/core/school"
)

type table[T school.Record] struct {
	t      map[int]T
	pk     int
	setKey func(*T, int)
	mutex  sync.RWMutex
}

var _ school.Table[school.Student] = (*table[school.Student])(nil)

func newTable[T school.Record](setKey func(*T, int), seed ...T) *table[T] {
	tbl := &table[T]{
		t:      make(map[int]T, len(seed)),
		setKey: setKey,
	}
	for _, rec := range seed {
		tbl.t[rec.Key()] = rec
		if rec.Key() > tbl.pk {
			tbl.pk = rec.Key()
		}
	}
	return tbl
}

func (tbl *table[T]) query() []T {
	recs := make([]T, 0, len(tbl.t))
	for _, rec := range tbl.t {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Key() < recs[j].Key() })
	return recs
}

func (tbl *table[T]) All(_ context.Context) ([]T, error) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()
	return tbl.query(), nil
}

func (tbl *table[T]) Get(_ context.Context, id int) (T, error) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if rec, ok := tbl.t[id]; ok {
		return rec, nil
	}
	var zero T
	return zero, school.ErrNotFound
}

func (tbl *table[T]) Insert(_ context.Context, rec T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	tbl.pk++
	tbl.setKey(&rec, tbl.pk)
	tbl.t[tbl.pk] = rec
	return rec, nil
}

func (tbl *table[T]) Update(_ context.Context, rec T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if _, ok := tbl.t[rec.Key()]; !ok {
		var zero T
		return zero, school.ErrNotFound
	}
	tbl.t[rec.Key()] = rec
	return rec, nil
}

func (tbl *table[T]) Delete(_ context.Context, ids ...int) error {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()
	for _, id := range ids {
		delete(tbl.t, id)
	}
	return nil
}
