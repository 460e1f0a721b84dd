// Package location models the places warehouses are built in. A Location carries two limits
// that every warehouse operation checks against: the number of active warehouses and their
// summed capacity.
package location
