package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定义错误响应结构
// 与前端约定的错误格式保持一致
type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,
	ErrTimeout:  http.StatusRequestTimeout,

	// 认证错误 (2000-2999)
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusUnprocessableEntity,
	ErrResourceNotFound: http.StatusNotFound,
	ErrResourceExists:   http.StatusConflict,

	// 业务错误 (4000-4999)
	ErrUserNotFound:   http.StatusNotFound,
	ErrTweetNotFound:  http.StatusNotFound,
	ErrMediaNotFound:  http.StatusNotFound,
	ErrLikeNotFound:   http.StatusNotFound,
	ErrFollowNotFound: http.StatusNotFound,
}

// 错误码对应的错误类型名称
var errorTypeMap = map[ErrorCode]string{
	ErrInternal:         "ServerHTTPException",
	ErrDatabase:         "DatabaseException",
	ErrTimeout:          "ServerHTTPException",
	ErrUnauthorized:     "ClientHTTPException",
	ErrForbidden:        "ClientHTTPException",
	ErrBadRequest:       "ClientHTTPException",
	ErrValidation:       "ValidationException",
	ErrResourceNotFound: "ClientHTTPException",
	ErrResourceExists:   "ClientHTTPException",
	ErrUserNotFound:     "ClientHTTPException",
	ErrTweetNotFound:    "ClientHTTPException",
	ErrMediaNotFound:    "ClientHTTPException",
	ErrLikeNotFound:     "ClientHTTPException",
	ErrFollowNotFound:   "ClientHTTPException",
}

// HandleError 统一处理错误响应
func HandleError(c *gin.Context, err error) {
	c.Error(err)

	if appErr, ok := err.(*AppError); ok {
		status := errorStatusMap[appErr.Code]
		if status == 0 {
			status = http.StatusInternalServerError
		}

		errType := errorTypeMap[appErr.Code]
		if errType == "" {
			errType = "ServerHTTPException"
		}

		c.JSON(status, ErrorResponse{
			Result:       false,
			ErrorType:    errType,
			ErrorMessage: appErr.Message,
		})
		return
	}

	// 处理非 AppError 类型的错误
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Result:       false,
		ErrorType:    "ServerHTTPException",
		ErrorMessage: err.Error(),
	})
}
