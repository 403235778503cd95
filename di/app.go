package di

import (
	"buslink/helper"
	transportHTTP "buslink/transport/http"
)

// App bundles everything main needs after injection.
type App struct {
	HTTP   *transportHTTP.HTTP
	Seeder *helper.Seeder
}

func ProvideApp(httpServer *transportHTTP.HTTP, seeder *helper.Seeder) *App {
	return &App{
		HTTP:   httpServer,
		Seeder: seeder,
	}
}
