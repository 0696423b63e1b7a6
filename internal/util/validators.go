package util

import (
	"github.com/go-playground/validator/v10"
)

// ValidatePositiveIDs 验证整数列表中的每个 id 都为正数
func ValidatePositiveIDs(fl validator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]int)
	if !ok {
		return false
	}
	for _, id := range ids {
		if id <= 0 {
			return false
		}
	}
	return true
}
