package util

import "github.com/danil-baybakov/app-clone-twitter/internal/model"

// SeedUsers 是存储为空时启动引导写入的初始用户列表
var SeedUsers = []model.User{
	{Name: "TestUser", APIKey: "test"},
	{Name: "Danil Baybakov", APIKey: "danil"},
	{Name: "Egor Egorov", APIKey: "egor"},
	{Name: "Sergey Sergeev", APIKey: "sergey"},
}
