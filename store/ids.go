package store

import (
	"fmt"
	"strconv"
	"strings"

	"quickbite-api/models"

	"gorm.io/gorm"
)

func numericSuffix(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// nextOrderID continues the ORDnnn sequence past every existing order and
// every order a task refers to, so a live checkout can never collide with
// a pre-seeded task's dangling correlation.
func nextOrderID(tx *gorm.DB) string {
	var ids []string
	tx.Model(&models.Order{}).Pluck("id", &ids)
	var refs []string
	tx.Model(&models.DeliveryTask{}).Pluck("order_id", &refs)

	max := 0
	for _, id := range append(ids, refs...) {
		if n, ok := numericSuffix(id, "ORD"); ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("ORD%03d", max+1)
}

func nextTaskID(tx *gorm.DB) string {
	var ids []string
	tx.Model(&models.DeliveryTask{}).Pluck("id", &ids)

	max := 0
	for _, id := range ids {
		if n, ok := numericSuffix(id, "TASK"); ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("TASK%03d", max+1)
}
