package car

// CreateCarRequest for registering a new car. DriverIDs is the complete
// desired driver assignment, not a delta.
type CreateCarRequest struct {
	Model          string  `json:"model" binding:"required"`
	ManufacturerID int64   `json:"manufacturer_id" binding:"required"`
	DriverIDs      []int64 `json:"driver_ids"`
}

// UpdateCarRequest overwrites the car and replaces its driver assignment
// with DriverIDs. An empty list unassigns every driver.
type UpdateCarRequest struct {
	Model          string  `json:"model" binding:"required"`
	ManufacturerID int64   `json:"manufacturer_id" binding:"required"`
	DriverIDs      []int64 `json:"driver_ids"`
}
