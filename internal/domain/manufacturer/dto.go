package manufacturer

// CreateManufacturerRequest for registering a new manufacturer
type CreateManufacturerRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// UpdateManufacturerRequest for overwriting manufacturer details
type UpdateManufacturerRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}
