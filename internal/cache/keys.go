package cache

import (
	"strconv"
	"time"
)

// DefaultTTL is how long an entry lives unless a call site overrides it.
const DefaultTTL = 5 * time.Minute

const (
	collectionKey = "all_tasks"
	itemKeyPrefix = "task_"
)

// CollectionKey names the entry holding the full task list.
func CollectionKey() string {
	return collectionKey
}

// ItemKey names the entry holding the task with the given id.
func ItemKey(id int64) string {
	return itemKeyPrefix + strconv.FormatInt(id, 10)
}
