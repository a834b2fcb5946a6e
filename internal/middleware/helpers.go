package middleware

import "github.com/gin-gonic/gin"

// GetDriverID gets the authenticated driver id from context
func GetDriverID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("driver_id")
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}

// MustGetDriverID gets the driver id from context or panics
func MustGetDriverID(c *gin.Context) int64 {
	id, exists := GetDriverID(c)
	if !exists {
		panic("driver_id not found in context")
	}
	return id
}

// MustGetJTI gets the token jti from context or panics
func MustGetJTI(c *gin.Context) string {
	v, exists := c.Get("jti")
	if !exists {
		panic("jti not found in context")
	}

	jti, ok := v.(string)
	if !ok {
		panic("jti has unexpected type")
	}
	return jti
}
