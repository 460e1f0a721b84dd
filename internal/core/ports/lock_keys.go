package ports

import "fmt"

// Lock keys shared by command handlers. Two commands that may break the same invariant
// when interleaved must take at least one common key.

func WarehouseLockKey(businessUnitCode string) string {
	return "warehouse:" + businessUnitCode
}

func LocationLockKey(identification string) string {
	return "location:" + identification
}

func StoreLockKey(storeID int64) string {
	return fmt.Sprintf("store:%d", storeID)
}

func WarehouseProductsLockKey(businessUnitCode string) string {
	return "warehouse-products:" + businessUnitCode
}

func ProductLockKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}
