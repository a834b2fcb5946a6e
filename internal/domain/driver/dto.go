package driver

// CreateDriverRequest for registering a new driver
type CreateDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Login         string `json:"login" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
}

// UpdateDriverRequest for overwriting driver details
type UpdateDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Login         string `json:"login" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries submitted credentials
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returned on successful authentication
type LoginResponse struct {
	Token  string  `json:"token"`
	Driver *Driver `json:"driver"`
}
