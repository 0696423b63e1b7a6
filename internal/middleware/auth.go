package middleware

import (
	"github.com/danil-baybakov/app-clone-twitter/internal/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/service"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 通过 api-key 请求头解析当前用户身份
// 解析成功后把用户 id 写入上下文，任何修改操作都必须先经过这里
func AuthMiddleware(userService service.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("api-key")
		if apiKey == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "缺少 api-key 请求头"))
			c.Abort()
			return
		}

		user, err := userService.GetUserByAPIKey(apiKey)
		if err != nil {
			util.Logger.Error("解析用户身份失败", zap.Error(err))
			errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "解析用户身份失败", err))
			c.Abort()
			return
		}
		if user == nil {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "无效的 api-key"))
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
