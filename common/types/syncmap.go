package types

import (
	"sort"
	"sync"
)

type SyncMap struct {
	data map[string]interface{}
	lock *sync.RWMutex
}

func NewSyncMap() *SyncMap {
	return &SyncMap{
		data: make(map[string]interface{}, 0),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap) GetGeneric(id string) interface{} {
	var res interface{}
	present := false

	wmap.lock.RLock()
	if res, present = wmap.data[id]; !present {
		res = nil
	}
	wmap.lock.RUnlock()

	return res
}

func (wmap *SyncMap) Set(id string, item interface{}) error {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()

	return nil
}

// Remove reports whether id was present.
func (wmap *SyncMap) Remove(id string) bool {
	wmap.lock.Lock()
	_, present := wmap.data[id]
	delete(wmap.data, id)
	wmap.lock.Unlock()

	return present
}

func (wmap *SyncMap) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// Keys returns the ids in lexical order.
func (wmap *SyncMap) Keys() []string {
	wmap.lock.RLock()
	keys := make([]string, 0, len(wmap.data))
	for key := range wmap.data {
		keys = append(keys, key)
	}
	wmap.lock.RUnlock()

	sort.Strings(keys)

	return keys
}
