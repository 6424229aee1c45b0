package main

import "sellora/internal/app"

// @title           Sellora Identity API
// @version         1.0
// @description     Identity-сервис: аккаунты, верификация email, восстановление пароля и прокси каталога.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app.Run()
}
