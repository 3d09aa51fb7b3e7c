package common

import "fmt"

func RedisKeyEntryCount(giveawayID uint64) string {
	return fmt.Sprintf("entry_count:%d", giveawayID)
}
