package simulation

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const c_resultCacheSize = 1024

// ResultDB remembers the estimates of seeded runs.
type ResultDB struct {
	results *lru.Cache[Hash, float64]
}

func NewResultDB() *ResultDB {
	results, _ := lru.New[Hash, float64](c_resultCacheSize)
	return &ResultDB{
		results: results,
	}
}

func (db *ResultDB) Get(params Params) (float64, bool) {
	return db.results.Get(params.Hash())
}

func (db *ResultDB) Add(params Params, estimate float64) {
	db.results.Add(params.Hash(), estimate)
}

func (db *ResultDB) Len() int {
	return db.results.Len()
}
